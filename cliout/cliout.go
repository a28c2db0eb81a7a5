package cliout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatYAML is YAML format.
	FormatYAML Format = "yaml"
)

// ANSI color codes.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"

	BrightRed    = "\033[91m"
	BrightGreen  = "\033[92m"
	BrightYellow = "\033[93m"
	BrightBlue   = "\033[94m"
)

// Unicode symbols and their ASCII fallbacks.
const (
	SymbolCheck   = "✓"
	SymbolCross   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"

	ASCIICheck   = "[+]"
	ASCIICross   = "[-]"
	ASCIIWarning = "[!]"
	ASCIIInfo    = "[i]"
)

var (
	mu              sync.RWMutex
	globalFormat             = FormatDefault
	output          io.Writer = os.Stdout
	useColor                  = detectColor()
	supportsUnicode           = detectUnicodeSupport()
)

// detectColor enables color for an interactive stdout unless NO_COLOR is set.
func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	for _, key := range []string{"WT_SESSION", "ConEmuPID", "PSModulePath", "TERM"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return os.Getenv("TERM_PROGRAM") == "vscode"
}

// ForceColor enables color output regardless of terminal detection.
func ForceColor() {
	mu.Lock()
	useColor = true
	mu.Unlock()
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	useColor = false
	mu.Unlock()
}

// SetOutput redirects output to w and returns a function restoring the
// previous writer. Color is turned off unless w is a terminal.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	prev, prevColor := output, useColor
	output = w
	if f, ok := w.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		useColor = false
	}
	mu.Unlock()
	return func() {
		mu.Lock()
		output, useColor = prev, prevColor
		mu.Unlock()
	}
}

func writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return output
}

func colorEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return useColor
}

// SetFormat sets the global output format. The empty string selects the
// default format.
func SetFormat(format string) error {
	var f Format
	switch format {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	case "yaml":
		f = FormatYAML
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", format)
	}
	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// GetFormat returns the current output format.
func GetFormat() Format {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	return GetFormat() == FormatJSON
}

// IsStructured reports whether output is machine readable.
func IsStructured() bool {
	return GetFormat() != FormatDefault
}

// PrintJSON writes data as indented JSON.
func PrintJSON(data any) error {
	encoder := json.NewEncoder(writer())
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// PrintYAML writes data as YAML.
func PrintYAML(data any) error {
	encoder := yaml.NewEncoder(writer())
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return encoder.Close()
}

// Print writes data in the structured formats and calls formatter for the
// default format.
func Print(data any, formatter func()) error {
	switch GetFormat() {
	case FormatJSON:
		return PrintJSON(data)
	case FormatYAML:
		return PrintYAML(data)
	}
	formatter()
	return nil
}

func colorize(color, s string) string {
	if !colorEnabled() {
		return s
	}
	return color + s + Reset
}

func symbol(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

func printf(format string, args ...any) {
	_, _ = fmt.Fprintf(writer(), format, args...)
}

// Header prints a bold header with a divider.
func Header(text string) {
	printf("%s\n%s\n", colorize(Bold, text), strings.Repeat("=", len([]rune(text))))
}

// Success prints a success message with a green check mark.
func Success(format string, args ...any) {
	printf("%s %s\n", colorize(BrightGreen, symbol(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints an error message with a red cross.
func Error(format string, args ...any) {
	printf("%s %s\n", colorize(BrightRed, symbol(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Warning prints a warning message with a yellow triangle.
func Warning(format string, args ...any) {
	printf("%s  %s\n", colorize(BrightYellow, symbol(SymbolWarning, ASCIIWarning)), fmt.Sprintf(format, args...))
}

// Info prints an info message with a blue info icon.
func Info(format string, args ...any) {
	printf("%s  %s\n", colorize(BrightBlue, symbol(SymbolInfo, ASCIIInfo)), fmt.Sprintf(format, args...))
}

// Plain prints plain text without any formatting.
func Plain(format string, args ...any) {
	printf(format+"\n", args...)
}

// Label prints a label and value pair. Absent values are shown dimmed.
func Label(label, value string) {
	if value == "" {
		value = colorize(Dim, "(none)")
	}
	printf("   %-10s %s\n", label+":", value)
}

// Highlight returns text in bold cyan.
func Highlight(format string, args ...any) string {
	return colorize(Bold+Cyan, fmt.Sprintf(format, args...))
}

// Muted returns dimmed text.
func Muted(format string, args ...any) string {
	return colorize(Dim, fmt.Sprintf(format, args...))
}

// TableRow represents a row in a table as a map of column header to value.
type TableRow map[string]string

// Table prints a simple table with the given headers and rows.
func Table(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	widths := make(map[string]int, len(headers))
	for _, header := range headers {
		widths[header] = len(header)
	}
	for _, row := range rows {
		for _, header := range headers {
			widths[header] = max(widths[header], len(row[header]))
		}
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for _, header := range headers {
		sb.WriteString(colorize(Bold, fmt.Sprintf("%-*s", widths[header], header)))
		sb.WriteString("  ")
	}
	sb.WriteString("\n   ")
	for _, header := range headers {
		sb.WriteString(strings.Repeat("─", widths[header]))
		sb.WriteString("  ")
	}
	sb.WriteByte('\n')
	for _, row := range rows {
		sb.WriteString("   ")
		for _, header := range headers {
			fmt.Fprintf(&sb, "%-*s  ", widths[header], row[header])
		}
		sb.WriteByte('\n')
	}
	printf("%s", sb.String())
}
