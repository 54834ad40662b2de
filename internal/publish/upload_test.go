package publish

import (
	"errors"
	"strings"
	"testing"
)

type capturedCommand struct {
	name string
	args []string
}

func captureRunner(cmds *[]capturedCommand, fail error) runner {
	return func(name string, args ...string) error {
		*cmds = append(*cmds, capturedCommand{name: name, args: args})
		return fail
	}
}

func testConfig() Config {
	return Config{
		Bucket:         "my-site",
		Region:         "us-east-1",
		DistributionID: "E123ABC",
		SiteURL:        "https://example.dev",
	}
}

func TestUploadOnePassPerGroup(t *testing.T) {
	var cmds []capturedCommand
	u := &Uploader{cfg: testConfig(), run: captureRunner(&cmds, nil)}

	if err := u.Upload("build"); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if len(cmds) != len(assetGroups) {
		t.Fatalf("ran %d commands, want one per group (%d)", len(cmds), len(assetGroups))
	}

	for i, g := range assetGroups {
		cmd := cmds[i]
		if cmd.name != "aws" {
			t.Errorf("group %s: command %q, want aws", g.name, cmd.name)
		}
		joined := strings.Join(cmd.args, " ")
		if !strings.HasPrefix(joined, "s3 sync build s3://my-site") {
			t.Errorf("group %s: unexpected invocation %q", g.name, joined)
		}
		if !strings.Contains(joined, "--cache-control "+g.cacheControl) {
			t.Errorf("group %s: missing cache-control metadata in %q", g.name, joined)
		}
		if g.contentType != "" && !strings.Contains(joined, "--content-type "+g.contentType) {
			t.Errorf("group %s: missing content-type metadata in %q", g.name, joined)
		}
		for _, inc := range g.includes {
			if !strings.Contains(joined, "--include "+inc) {
				t.Errorf("group %s: missing include %s in %q", g.name, inc, joined)
			}
		}
	}
}

func TestUploadStopsOnFailure(t *testing.T) {
	var cmds []capturedCommand
	u := &Uploader{cfg: testConfig(), run: captureRunner(&cmds, errors.New("exit status 1"))}

	err := u.Upload("build")
	if err == nil {
		t.Fatal("expected the upload failure to surface")
	}
	if len(cmds) != 1 {
		t.Errorf("expected upload to stop after the first failing group, ran %d", len(cmds))
	}
}

func TestInvalidate(t *testing.T) {
	var cmds []capturedCommand
	u := &Uploader{cfg: testConfig(), run: captureRunner(&cmds, nil)}

	if err := u.Invalidate(); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if len(cmds) != 1 {
		t.Fatalf("ran %d commands, want 1", len(cmds))
	}
	joined := strings.Join(cmds[0].args, " ")
	want := "cloudfront create-invalidation --distribution-id E123ABC --paths /*"
	if joined != want {
		t.Errorf("invalidation args = %q, want %q", joined, want)
	}
}

func TestInvalidateSkippedWithoutDistribution(t *testing.T) {
	cfg := testConfig()
	cfg.DistributionID = ""

	var cmds []capturedCommand
	u := &Uploader{cfg: cfg, run: captureRunner(&cmds, nil)}

	if err := u.Invalidate(); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if len(cmds) != 0 {
		t.Errorf("expected no CLI call without a distribution id, got %d", len(cmds))
	}
}
