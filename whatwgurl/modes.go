package whatwgurl

import "strings"

// specialSchemes maps each special scheme to its default port; -1 means none.
var specialSchemes = map[string]int{
	"ftp":   21,
	"file":  -1,
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

// IsSpecialScheme reports whether scheme is one of ftp, file, http, https,
// ws or wss. The comparison is case-insensitive.
func IsSpecialScheme(scheme string) bool {
	_, ok := specialSchemes[strings.ToLower(scheme)]
	return ok
}

// DefaultPort returns the default port of a special scheme.
func DefaultPort(scheme string) (int, bool) {
	port, ok := specialSchemes[strings.ToLower(scheme)]
	if !ok || port < 0 {
		return 0, false
	}
	return port, true
}

// ParserMode selects how a scheme-less input is tokenized: whether "\" is a
// path separator and whether hosts are opaque.
type ParserMode uint8

const (
	// ModeWeb treats "/" and "\" as separators and parses domain hosts.
	ModeWeb ParserMode = iota
	// ModeFile is ModeWeb plus Windows drive letter detection.
	ModeFile
	// ModeNonSpecial treats only "/" as a separator and keeps hosts opaque.
	ModeNonSpecial
)

func (m ParserMode) String() string {
	switch m {
	case ModeWeb:
		return "web"
	case ModeFile:
		return "file"
	case ModeNonSpecial:
		return "non-special"
	}
	return "unknown"
}

// ParserModeFor derives the parser mode from a record's scheme. A nil record
// or a record without a scheme yields ModeWeb.
func ParserModeFor(r *Record) ParserMode {
	if r == nil || !r.Scheme.IsSet() {
		return ModeWeb
	}
	s := r.scheme()
	switch {
	case s == "file":
		return ModeFile
	case IsSpecialScheme(s):
		return ModeWeb
	}
	return ModeNonSpecial
}

// PercentCodingMode selects the encode sets used for the path and query.
type PercentCodingMode uint8

const (
	// CodingRegular is used for non-special URLs with a hierarchical path.
	CodingRegular PercentCodingMode = iota
	// CodingSpecial is used for special schemes.
	CodingSpecial
	// CodingNonBase is used for cannot-be-a-base URLs.
	CodingNonBase
)

// PercentCodingModeFor derives the percent-coding mode of a record.
func PercentCodingModeFor(r *Record) PercentCodingMode {
	switch {
	case IsSpecialScheme(r.scheme()):
		return CodingSpecial
	case r.CannotBeBase():
		return CodingNonBase
	}
	return CodingRegular
}
