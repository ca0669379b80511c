package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subfix/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// A second init must refuse to clobber the file without --overwrite.
	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected init over existing file to fail")
	}
	if _, _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, "config", "validate", "--path", target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigShowDefaults(t *testing.T) {
	out, _, err := runCLI(t, "config", "show", "--path", filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "built-in defaults")
	requireContains(t, out, "target_encoding")
	requireContains(t, out, "fallback_encoding")
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "movie.srt")
	testsupport.WriteFileBytes(t, source, testsupport.CP1256Sample)
	target := filepath.Join(dir, "out")

	out, _, err := runCLI(t, "convert", source, "--target-dir", target, "--from", "cp1256")
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "Converted")

	converted := filepath.Join(target, "movie.srt")
	if got := string(testsupport.ReadFile(t, converted)); got != "سلام" {
		t.Fatalf("converted content = %q, want %q", got, "سلام")
	}
}

func TestBatchCommand(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()
	for _, name := range []string{"a.srt", "b.srt"} {
		testsupport.WriteFile(t, filepath.Join(dir, name), testsupport.SampleSRT)
	}

	_, _, err := runCLI(t, "batch", dir, "--target-dir", target, "--from", "utf-8")
	if err != nil {
		t.Fatalf("batch: %v", err)
	}
	for _, name := range []string{"a.1.srt", "b.2.srt"} {
		if _, err := os.Stat(filepath.Join(target, name)); err != nil {
			t.Fatalf("expected %s in target directory: %v", name, err)
		}
	}
}

func TestBatchCommandPrintsLedger(t *testing.T) {
	dir := t.TempDir()
	target := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "ok.srt"), testsupport.SampleSRT)
	// Unencodable in cp1256, so this file ends up in the ledger.
	testsupport.WriteFile(t, filepath.Join(dir, "bad.srt"), "日本語")

	_, stderr, err := runCLI(t, "batch", dir,
		"--target-dir", target, "--from", "utf-8", "--to", "cp1256")
	if err == nil {
		t.Fatal("expected batch to report failures")
	}
	requireContains(t, stderr, "bad.srt")
	requireContains(t, stderr, "Error")
}

func TestDetectCommand(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "movie.srt")
	testsupport.WriteFile(t, source, strings.Repeat("سلام عليكم\n", 20))

	out, _, err := runCLI(t, "detect", source)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	requireContains(t, out, "movie.srt")
	requireContains(t, out, "Decision")
}
