package publish

import (
	"fmt"
	"log"
)

// Run executes the whole pipeline: mirror the content into the build
// directory, upload it, invalidate the CDN. Returns the public site URL.
func Run(cfg Config, srcDir, buildDir string) (string, error) {
	n, err := Mirror(srcDir, buildDir)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", fmt.Errorf("build output %s is empty; nothing to publish", buildDir)
	}
	log.Printf("Mirrored %d files into %s", n, buildDir)

	u := NewUploader(cfg)
	if err := u.Upload(buildDir); err != nil {
		return "", err
	}
	if err := u.Invalidate(); err != nil {
		return "", err
	}
	return cfg.SiteURL, nil
}
