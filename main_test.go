package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out.String(), version) {
		t.Errorf("expected version %s in output, got %q", version, out.String())
	}
}

func TestSnapshotCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.png")

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"snapshot",
		"--frames", "5",
		"--width", "64",
		"--height", "48",
		"--seed", "3",
		"--pointer-x", "0",
		"--out", path,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("snapshot is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("expected 64x48 image, got %v", b)
	}
}

func TestSnapshotRejectsBadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(cfgPath, []byte("network:\n  label_probability: 2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"snapshot", "--config", cfgPath, "--out", filepath.Join(t.TempDir(), "x.png")})
	if err := cmd.Execute(); err == nil {
		t.Error("expected invalid config to fail")
	}
}
