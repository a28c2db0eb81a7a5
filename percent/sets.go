package percent

// EncodeSet reports whether a code point must be percent-encoded.
type EncodeSet func(r rune) bool

var (
	// C0Control is the C0 control percent-encode set: C0 controls and every
	// code point above U+007E.
	C0Control EncodeSet = isC0Control

	// Fragment adds space, ", <, > and ` to C0Control.
	Fragment EncodeSet = isFragment

	// Query adds space, ", #, < and > to C0Control.
	Query EncodeSet = isQuery

	// SpecialQuery adds ' to Query. It is used for special schemes.
	SpecialQuery EncodeSet = isSpecialQuery

	// Path adds ?, `, { and } to Query.
	Path EncodeSet = isPath

	// PathSegment adds / to Path. A single directory or file token uses it
	// so that an embedded slash cannot split the token when re-parsed.
	PathSegment EncodeSet = isPathSegment

	// Userinfo adds / : ; = @ [ \ ] ^ | to Path.
	Userinfo EncodeSet = isUserinfo
)

func isC0Control(r rune) bool {
	return (0 <= r && r <= 0x1F) || r > 0x7E
}

func isFragment(r rune) bool {
	switch r {
	case ' ', '"', '<', '>', '`':
		return true
	}
	return isC0Control(r)
}

func isQuery(r rune) bool {
	switch r {
	case ' ', '"', '#', '<', '>':
		return true
	}
	return isC0Control(r)
}

func isSpecialQuery(r rune) bool {
	return r == '\'' || isQuery(r)
}

func isPath(r rune) bool {
	switch r {
	case '?', '`', '{', '}':
		return true
	}
	return isQuery(r)
}

func isPathSegment(r rune) bool {
	return r == '/' || isPath(r)
}

func isUserinfo(r rune) bool {
	switch r {
	case '/', ':', ';', '=', '@', '[', '\\', ']', '^', '|':
		return true
	}
	return isPath(r)
}
