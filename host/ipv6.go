package host

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseIPv6 parses the text between the brackets of an IPv6 literal into
// eight 16-bit pieces. It accepts one "::" compression and a trailing
// dotted-quad IPv4 address occupying the last two pieces.
func ParseIPv6(input string) ([8]uint16, error) {
	var address [8]uint16
	in := []rune(input)
	pieceIndex := 0
	compress := -1
	pointer := 0

	at := func(i int) rune {
		if i < len(in) {
			return in[i]
		}
		return -1
	}
	fail := func(reason string) ([8]uint16, error) {
		return [8]uint16{}, fmt.Errorf("%w: IPv6 address %q: %s", ErrInvalidHost, input, reason)
	}

	if at(pointer) == ':' {
		if at(pointer+1) != ':' {
			return fail("leading single colon")
		}
		pointer += 2
		pieceIndex++
		compress = pieceIndex
	}

	for at(pointer) != -1 {
		if pieceIndex == 8 {
			return fail("too many pieces")
		}

		if at(pointer) == ':' {
			if compress != -1 {
				return fail("multiple compressions")
			}
			pointer++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value, length := 0, 0
		for length < 4 && isHexRune(at(pointer)) {
			d, _ := hexValue(byte(at(pointer)))
			value = value*0x10 + int(d)
			pointer++
			length++
		}

		switch at(pointer) {
		case '.':
			if length == 0 {
				return fail("empty IPv4 part")
			}
			pointer -= length
			if pieceIndex > 6 {
				return fail("embedded IPv4 address too late")
			}

			numbersSeen := 0
			for at(pointer) != -1 {
				ipv4Piece := -1
				if numbersSeen > 0 {
					if at(pointer) == '.' && numbersSeen < 4 {
						pointer++
					} else {
						return fail("malformed embedded IPv4 address")
					}
				}
				if !isDigitRune(at(pointer)) {
					return fail("embedded IPv4 part is not a number")
				}
				for isDigitRune(at(pointer)) {
					number := int(at(pointer) - '0')
					switch ipv4Piece {
					case -1:
						ipv4Piece = number
					case 0:
						return fail("embedded IPv4 part has a leading zero")
					default:
						ipv4Piece = ipv4Piece*10 + number
					}
					if ipv4Piece > 255 {
						return fail("embedded IPv4 part out of range")
					}
					pointer++
				}

				address[pieceIndex] = address[pieceIndex]*0x100 + uint16(ipv4Piece)
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}

			if numbersSeen != 4 {
				return fail("embedded IPv4 address is incomplete")
			}
			return finishIPv6(address, pieceIndex, compress, input)

		case ':':
			pointer++
			if at(pointer) == -1 {
				return fail("trailing colon")
			}

		case -1:

		default:
			return fail(fmt.Sprintf("unexpected code point %q", at(pointer)))
		}

		address[pieceIndex] = uint16(value)
		pieceIndex++
	}

	return finishIPv6(address, pieceIndex, compress, input)
}

// finishIPv6 moves the pieces after the compression point to the end.
func finishIPv6(address [8]uint16, pieceIndex, compress int, input string) ([8]uint16, error) {
	if compress != -1 {
		swaps := pieceIndex - compress
		pieceIndex = 7
		for pieceIndex != 0 && swaps > 0 {
			address[compress+swaps-1], address[pieceIndex] = address[pieceIndex], address[compress+swaps-1]
			pieceIndex--
			swaps--
		}
		return address, nil
	}
	if pieceIndex != 8 {
		return [8]uint16{}, fmt.Errorf("%w: IPv6 address %q: too few pieces", ErrInvalidHost, input)
	}
	return address, nil
}

func isHexRune(r rune) bool {
	if r < 0 || r >= 0x80 {
		return false
	}
	_, ok := hexValue(byte(r))
	return ok
}

func isDigitRune(r rune) bool {
	return '0' <= r && r <= '9'
}

// SerializeIPv6 renders the pieces in lower-case hex without leading zeros,
// replacing the first longest run of two or more zero pieces with "::".
func SerializeIPv6(address [8]uint16) string {
	var sb strings.Builder
	compress := longestZeroRun(address)
	ignore0 := false

	for i := 0; i < 8; i++ {
		if ignore0 && address[i] == 0 {
			continue
		}
		ignore0 = false

		if i == compress {
			if i == 0 {
				sb.WriteString("::")
			} else {
				sb.WriteString(":")
			}
			ignore0 = true
			continue
		}

		sb.WriteString(strconv.FormatUint(uint64(address[i]), 16))
		if i != 7 {
			sb.WriteByte(':')
		}
	}
	return sb.String()
}

// longestZeroRun returns the start of the first longest run of zero pieces
// with length greater than one, or -1.
func longestZeroRun(address [8]uint16) int {
	maxIdx, maxLen := -1, 1
	currStart, currLen := -1, 0

	for i, piece := range address {
		if piece != 0 {
			if currLen > maxLen {
				maxIdx, maxLen = currStart, currLen
			}
			currStart, currLen = -1, 0
			continue
		}
		if currStart == -1 {
			currStart = i
		}
		currLen++
	}

	if currLen > maxLen {
		return currStart
	}
	return maxIdx
}
