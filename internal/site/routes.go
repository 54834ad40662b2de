// Package site wires up the portfolio's routes: the rendered pages, the
// contact form fragments, and the form submission handler.
package site

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register attaches all page routes to the engine. Templates and static
// mounts are the caller's responsibility.
func Register(r *gin.Engine) {
	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMeContent":      AboutMe,
			"projectOneContent":   ProjectOne,
			"projectTwoContent":   ProjectTwo,
			"projectThreeContent": ProjectThree,
			"projectFourContent":  ProjectFour,
		})
	})

	// Contact form fragment for HTMX swaps
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Handle contact form submission
	r.POST("/contact", func(c *gin.Context) {
		form := ContactForm{
			Name:    c.PostForm("fullName"),
			Email:   c.PostForm("email"),
			Message: c.PostForm("message"),
		}

		if err := form.Validate(); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": err.Error(),
			})
			return
		}

		if err := sendContactEmail(form); err != nil {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error": "Sorry, there was an error sending your message. Please try again later.",
			})
			return
		}

		c.HTML(http.StatusOK, "contact-success.html", gin.H{
			"success": "Thank you for your message! I'll get back to you soon.",
		})
	})
}
