package percent

import (
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// EncodeRune appends r to sb, percent-encoding its UTF-8 bytes when r is in set.
func EncodeRune(sb *strings.Builder, r rune, set EncodeSet) {
	if !set(r) {
		sb.WriteRune(r)
		return
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], r)
	for _, b := range buf[:n] {
		sb.WriteByte('%')
		sb.WriteByte(upperhex[b>>4])
		sb.WriteByte(upperhex[b&0x0F])
	}
}

// Encode percent-encodes every code point of s that is in set.
func Encode(s string, set EncodeSet) string {
	needs := false
	for _, r := range s {
		if set(r) {
			needs = true
			break
		}
	}
	if !needs {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 8)
	for _, r := range s {
		EncodeRune(&sb, r, set)
	}
	return sb.String()
}

// DecodeBytes percent-decodes s into a byte sequence. A "%" that is not
// followed by two hex digits is kept as a literal byte.
func DecodeBytes(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi, ok1 := hexValue(s[i+1])
			lo, ok2 := hexValue(s[i+2])
			if ok1 && ok2 {
				out = append(out, hi<<4|lo)
				i += 2
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// DecodeUTF8WithoutBOM decodes b as UTF-8 without stripping a leading byte
// order mark. Each invalid byte becomes U+FFFD.
func DecodeUTF8WithoutBOM(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	var sb strings.Builder
	sb.Grow(len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		sb.WriteRune(r)
		b = b[size:]
	}
	return sb.String()
}

// DecodeString percent-decodes s and decodes the resulting bytes as UTF-8.
func DecodeString(s string) string {
	return DecodeUTF8WithoutBOM(DecodeBytes(s))
}
