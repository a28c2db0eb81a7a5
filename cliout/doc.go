// Package cliout formats the output of the whatwg-url command.
//
// # Output Formats
//
//   - default: labelled, colored text for people
//   - json: indented JSON for scripts
//   - yaml: YAML for scripts and config snippets
//
// Commands build one result value and pass it to Print together with a
// function that renders the default format:
//
//	return cliout.Print(result, func() {
//		cliout.Label("href", result.Href)
//		cliout.Label("origin", result.Origin)
//	})
//
// # Color
//
// Colors are used only when stdout is a terminal and NO_COLOR is unset.
// ForceColor and NoColor override the detection. Symbols fall back to ASCII
// on Windows consoles that are not known to render Unicode.
//
// # Testing
//
// SetOutput redirects everything the package writes:
//
//	var buf bytes.Buffer
//	restore := cliout.SetOutput(&buf)
//	defer restore()
package cliout
