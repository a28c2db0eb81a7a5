package percent

// IsASCIIAlpha reports whether r is in A-Z or a-z.
func IsASCIIAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// IsASCIIDigit reports whether r is in 0-9.
func IsASCIIDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// IsASCIIHex reports whether r is an ASCII hexadecimal digit.
func IsASCIIHex(r rune) bool {
	return IsASCIIDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

// IsASCIIAlphanumeric reports whether r is an ASCII letter or digit.
func IsASCIIAlphanumeric(r rune) bool {
	return IsASCIIAlpha(r) || IsASCIIDigit(r)
}

// IsC0ControlOrSpace reports whether r is a C0 control or U+0020 SPACE.
func IsC0ControlOrSpace(r rune) bool {
	return 0 <= r && r <= 0x20
}

// IsTabOrNewline reports whether r is U+0009, U+000A or U+000D.
func IsTabOrNewline(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r'
}

func hexValue(b byte) (byte, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}
