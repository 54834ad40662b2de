package publish

import (
	"fmt"
	"os"
	"os/exec"
)

// runner executes one provider CLI invocation. Tests substitute it to
// capture the commands instead of running aws.
type runner func(name string, args ...string) error

// Uploader pushes a build directory into the configured bucket.
type Uploader struct {
	cfg Config
	run runner
}

func NewUploader(cfg Config) *Uploader {
	return &Uploader{cfg: cfg, run: runCommand}
}

func runCommand(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// assetGroup ties a set of file patterns to upload metadata. HTML must
// revalidate on every request; fingerprinted assets can cache for a year.
type assetGroup struct {
	name         string
	includes     []string
	cacheControl string
	contentType  string // empty lets the CLI guess per file
}

var assetGroups = []assetGroup{
	{
		name:         "html",
		includes:     []string{"*.html"},
		cacheControl: "no-cache",
		contentType:  "text/html; charset=utf-8",
	},
	{
		name:         "css",
		includes:     []string{"*.css"},
		cacheControl: "public, max-age=31536000, immutable",
		contentType:  "text/css; charset=utf-8",
	},
	{
		name:         "js",
		includes:     []string{"*.js"},
		cacheControl: "public, max-age=31536000, immutable",
		contentType:  "application/javascript",
	},
	{
		name:         "media",
		includes:     []string{"*.png", "*.jpg", "*.jpeg", "*.svg", "*.webp", "*.ico", "*.woff2"},
		cacheControl: "public, max-age=31536000, immutable",
	},
}

// Upload syncs the build directory into the bucket, one pass per asset
// group so each gets its own content-type and cache-control metadata.
func (u *Uploader) Upload(buildDir string) error {
	for _, g := range assetGroups {
		if err := u.run("aws", syncArgs(u.cfg, buildDir, g)...); err != nil {
			return fmt.Errorf("uploading %s files: %w", g.name, err)
		}
	}
	return nil
}

func syncArgs(cfg Config, buildDir string, g assetGroup) []string {
	args := []string{
		"s3", "sync", buildDir, "s3://" + cfg.Bucket,
		"--region", cfg.Region,
		"--exclude", "*",
	}
	for _, inc := range g.includes {
		args = append(args, "--include", inc)
	}
	args = append(args, "--cache-control", g.cacheControl)
	if g.contentType != "" {
		args = append(args, "--content-type", g.contentType)
	}
	return args
}

// Invalidate flushes every cached path on the distribution. An empty
// distribution id means no CDN sits in front of the bucket; nothing to do.
func (u *Uploader) Invalidate() error {
	if u.cfg.DistributionID == "" {
		return nil
	}
	err := u.run("aws", "cloudfront", "create-invalidation",
		"--distribution-id", u.cfg.DistributionID,
		"--paths", "/*")
	if err != nil {
		return fmt.Errorf("invalidating distribution %s: %w", u.cfg.DistributionID, err)
	}
	return nil
}
