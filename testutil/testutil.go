package testutil

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/alwinb/whatwg-url/cliout"
)

// CaptureOutput runs fn with cliout writing to a buffer in the given format
// ("default", "json" or "yaml") and returns what was written. The previous
// writer and format are restored afterwards, even if fn returns an error.
// Tests using it must not run in parallel since cliout state is global.
//
// Example:
//
//	output := testutil.CaptureOutput(t, "default", func() error {
//	    cliout.Plain("test output")
//	    return nil
//	})
func CaptureOutput(t *testing.T, format string, fn func() error) string {
	t.Helper()

	var buf bytes.Buffer
	restore := cliout.SetOutput(&buf)
	prev := cliout.GetFormat()
	defer func() {
		restore()
		_ = cliout.SetFormat(string(prev))
	}()

	if err := cliout.SetFormat(format); err != nil {
		t.Fatalf("Failed to set output format: %v", err)
	}

	if err := fn(); err != nil {
		t.Logf("Command error: %v", err)
	}
	return buf.String()
}

// FindTestData finds a test data directory relative to the current working
// directory, searching up to five parent directories. It accepts variadic
// subdirectory names to construct the path.
//
// Example:
//
//	dir := testutil.FindTestData(t, "whatwgurl", "testdata")
func FindTestData(t *testing.T, subdirs ...string) string {
	t.Helper()

	if len(subdirs) == 0 {
		t.Fatal("FindTestData requires at least one subdirectory")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}

	targetPath := filepath.Join(subdirs...)
	dir := cwd
	for range 6 {
		candidate := filepath.Join(dir, targetPath)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		dir = filepath.Dir(dir)
	}

	t.Fatalf("Test data directory not found: %s (searched from %s)", targetPath, cwd)
	return ""
}

// LoadYAML decodes the YAML file at the joined path into a value of type T.
// Unknown fields fail the test so that typos in fixtures are caught.
//
// Example:
//
//	cases := testutil.LoadYAML[[]urlCase](t, "testdata", "urltests.yaml")
func LoadYAML[T any](t *testing.T, path ...string) T {
	t.Helper()

	var v T
	f, err := os.Open(filepath.Join(path...))
	if err != nil {
		t.Fatalf("Failed to open fixture: %v", err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&v); err != nil && !errors.Is(err, io.EOF) {
		t.Fatalf("Failed to decode fixture %s: %v", filepath.Join(path...), err)
	}
	return v
}
