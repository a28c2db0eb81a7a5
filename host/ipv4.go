package host

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotIPv4 means the input does not look like an IPv4 address at all.
	// Domain parsing keeps such input as a domain.
	ErrNotIPv4 = errors.New("not an IPv4 address")

	// ErrInvalidIPv4 means the input is shaped like an IPv4 address but a
	// part is out of range. It matches ErrInvalidHost.
	ErrInvalidIPv4 = fmt.Errorf("%w: IPv4 part out of range", ErrInvalidHost)
)

// ParseIPv4 parses input as an IPv4 address. Parts are separated by "." and
// may be decimal, octal (leading "0") or hexadecimal ("0x" or "0X"). A single
// trailing "." is ignored. All parts but the last must be at most 255; the
// last fills the remaining bytes.
//
// The error is ErrNotIPv4 when input has more than four parts, an empty part
// or a part that is not a number, and wraps ErrInvalidIPv4 when a number is
// out of range.
func ParseIPv4(input string) (uint32, error) {
	parts := strings.Split(input, ".")
	if parts[len(parts)-1] == "" && len(parts) > 1 {
		parts = parts[:len(parts)-1]
	}

	if len(parts) > 4 {
		return 0, ErrNotIPv4
	}

	numbers := make([]uint64, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return 0, ErrNotIPv4
		}
		n, ok := parseIPv4Number(part)
		if !ok {
			return 0, ErrNotIPv4
		}
		numbers = append(numbers, n)
	}

	last := len(numbers) - 1
	for _, n := range numbers[:last] {
		if n > 255 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidIPv4, input)
		}
	}
	if numbers[last] >= 1<<(8*(5-len(numbers))) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidIPv4, input)
	}

	addr := numbers[last]
	for i, n := range numbers[:last] {
		addr += n << (8 * (3 - i))
	}
	return uint32(addr), nil
}

// parseIPv4Number parses one part with its radix detected from the prefix.
// Values too large for uint64 saturate so that range checks reject them.
func parseIPv4Number(input string) (uint64, bool) {
	radix := 10
	switch {
	case len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X'):
		input = input[2:]
		radix = 16
	case len(input) >= 2 && input[0] == '0':
		input = input[1:]
		radix = 8
	}

	if input == "" {
		return 0, true
	}

	for i := 0; i < len(input); i++ {
		if !isRadixDigit(input[i], radix) {
			return 0, false
		}
	}

	n, err := strconv.ParseUint(input, radix, 64)
	if err != nil {
		return math.MaxUint64, true
	}
	return n, true
}

func isRadixDigit(c byte, radix int) bool {
	switch radix {
	case 8:
		return '0' <= c && c <= '7'
	case 16:
		_, ok := hexValue(c)
		return ok
	}
	return '0' <= c && c <= '9'
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// SerializeIPv4 renders addr as four dotted decimal octets.
func SerializeIPv4(addr uint32) string {
	var sb strings.Builder
	for i := 3; i >= 0; i-- {
		sb.WriteString(strconv.FormatUint(uint64(addr>>(8*i)&0xFF), 10))
		if i != 0 {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
