package site

import (
	"fmt"
	"strings"
)

// ContactForm holds one submission from the contact page.
type ContactForm struct {
	Name    string
	Email   string
	Message string
}

// Validate checks the submission before any mail is sent. Errors are
// phrased for direct display in the form fragment.
func (f ContactForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("Please enter your name.")
	}
	if !validEmail(f.Email) {
		return fmt.Errorf("Please enter a valid email address.")
	}
	if strings.TrimSpace(f.Message) == "" {
		return fmt.Errorf("Please enter a message.")
	}
	return nil
}

// validEmail does a shape check, not RFC validation: one @ with a dotted
// domain after it.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	at := strings.Index(email, "@")
	if at <= 0 || at != strings.LastIndex(email, "@") {
		return false
	}
	domain := email[at+1:]
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
