// Package publish pushes the static site out: it mirrors the content into a
// build directory, uploads it to an object-storage bucket with per-type
// metadata, and invalidates the CDN, all by driving the provider's CLI.
package publish

import (
	"fmt"
	"os"
)

// Config names the deployment target. Values come from the environment; the
// CLI loads a .env file first, like the rest of the project.
type Config struct {
	Bucket         string
	Region         string
	DistributionID string // empty skips CDN invalidation
	SiteURL        string
}

// LoadConfig reads the deployment settings and fails with a descriptive
// message when a required one is missing.
func LoadConfig() (Config, error) {
	cfg := Config{
		Bucket:         os.Getenv("S3_BUCKET"),
		Region:         os.Getenv("AWS_REGION"),
		DistributionID: os.Getenv("CLOUDFRONT_DISTRIBUTION_ID"),
		SiteURL:        os.Getenv("SITE_URL"),
	}
	if cfg.Bucket == "" {
		return Config{}, fmt.Errorf("S3_BUCKET is not set; add it to .env or the environment")
	}
	if cfg.Region == "" {
		return Config{}, fmt.Errorf("AWS_REGION is not set; add it to .env or the environment")
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = fmt.Sprintf("http://%s.s3-website-%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	return cfg, nil
}
