// Package testutil provides common testing helpers for the whatwg-url packages.
//
// This package includes helpers for:
//   - Capturing cliout output in a given format (CaptureOutput)
//   - Locating test fixture directories (FindTestData)
//   - Decoding YAML fixture files into typed test cases (LoadYAML)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestCommand(t *testing.T) {
//	    output := testutil.CaptureOutput(t, "json", func() error {
//	        return runCommand()
//	    })
//	    if !strings.Contains(output, `"href"`) {
//	        t.Error("expected href in output")
//	    }
//	}
//
//	func TestFixtures(t *testing.T) {
//	    cases := testutil.LoadYAML[[]urlCase](t, "testdata", "urltests.yaml")
//	    ...
//	}
package testutil
