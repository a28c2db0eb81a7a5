package host

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHost is returned when a host string cannot be parsed.
var ErrInvalidHost = errors.New("invalid host")

// Kind identifies the variant held by a Host.
type Kind uint8

const (
	// KindNone is the absent host.
	KindNone Kind = iota
	// KindDomain is an ASCII domain, possibly empty.
	KindDomain
	// KindIPv4 is a 32-bit IPv4 address.
	KindIPv4
	// KindIPv6 is an address of eight 16-bit pieces.
	KindIPv6
	// KindOpaque is a percent-encoded host of a non-special scheme.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDomain:
		return "domain"
	case KindIPv4:
		return "ipv4"
	case KindIPv6:
		return "ipv6"
	case KindOpaque:
		return "opaque"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Host is one of: absent, a domain, an IPv4 address, an IPv6 address or an
// opaque host. The zero value is the absent host. Host values are comparable.
type Host struct {
	kind Kind
	name string
	ipv4 uint32
	ipv6 [8]uint16
}

// None is the absent host.
var None = Host{}

// Domain returns a domain host. The empty domain is the empty host.
func Domain(name string) Host {
	return Host{kind: KindDomain, name: name}
}

// Opaque returns an opaque host.
func Opaque(name string) Host {
	return Host{kind: KindOpaque, name: name}
}

// IPv4 returns an IPv4 host.
func IPv4(addr uint32) Host {
	return Host{kind: KindIPv4, ipv4: addr}
}

// IPv6 returns an IPv6 host.
func IPv6(pieces [8]uint16) Host {
	return Host{kind: KindIPv6, ipv6: pieces}
}

// Kind returns the variant.
func (h Host) Kind() Kind { return h.kind }

// IsNone reports whether the host is absent.
func (h Host) IsNone() bool { return h.kind == KindNone }

// IsEmpty reports whether the host is the empty string. An absent host is not empty.
func (h Host) IsEmpty() bool {
	return (h.kind == KindDomain || h.kind == KindOpaque) && h.name == ""
}

// Name returns the domain or opaque host string, or "" for other kinds.
func (h Host) Name() string {
	if h.kind == KindDomain || h.kind == KindOpaque {
		return h.name
	}
	return ""
}

// IPv4 returns the address and whether the host is an IPv4 address.
func (h Host) IPv4() (uint32, bool) {
	return h.ipv4, h.kind == KindIPv4
}

// IPv6 returns the pieces and whether the host is an IPv6 address.
func (h Host) IPv6() ([8]uint16, bool) {
	return h.ipv6, h.kind == KindIPv6
}

// String serializes the host. See Serialize.
func (h Host) String() string {
	return Serialize(h)
}

// Serialize renders IPv4 hosts as dotted decimal, IPv6 hosts as bracketed
// compressed hex, and domain or opaque hosts as themselves. The absent host
// serializes to "".
func Serialize(h Host) string {
	switch h.kind {
	case KindIPv4:
		return SerializeIPv4(h.ipv4)
	case KindIPv6:
		return "[" + SerializeIPv6(h.ipv6) + "]"
	case KindDomain, KindOpaque:
		return h.name
	}
	return ""
}

// Parse parses input as a host. Bracketed input is parsed as IPv6. Otherwise,
// when opaque is true the input is parsed as an opaque host, and when it is
// false the input is percent-decoded, run through domain processing and
// checked for an IPv4 address.
func Parse(input string, opaque bool) (Host, error) {
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return None, fmt.Errorf("%w: unterminated IPv6 address %q", ErrInvalidHost, input)
		}
		pieces, err := ParseIPv6(input[1 : len(input)-1])
		if err != nil {
			return None, err
		}
		return IPv6(pieces), nil
	}

	if opaque {
		return ParseOpaque(input)
	}

	return parseDomain(input)
}

func parseDomain(input string) (Host, error) {
	ascii, err := DomainToASCII(decodeDomain(input))
	if err != nil {
		return None, err
	}

	if i := strings.IndexFunc(ascii, isForbiddenDomainCodePoint); i >= 0 {
		return None, fmt.Errorf("%w: forbidden code point %q in %q", ErrInvalidHost, ascii[i], ascii)
	}

	addr, err := ParseIPv4(ascii)
	switch {
	case err == nil:
		return IPv4(addr), nil
	case errors.Is(err, ErrNotIPv4):
		return Domain(ascii), nil
	default:
		return None, err
	}
}

// ParseOpaque validates an opaque host and percent-encodes its C0 controls.
func ParseOpaque(input string) (Host, error) {
	if i := strings.IndexFunc(input, isForbiddenHostCodePoint); i >= 0 {
		return None, fmt.Errorf("%w: forbidden code point %q in opaque host %q", ErrInvalidHost, input[i], input)
	}
	return Opaque(encodeOpaque(input)), nil
}

// isForbiddenHostCodePoint excludes "%", which opaque hosts may carry.
func isForbiddenHostCodePoint(r rune) bool {
	switch r {
	case 0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^':
		return true
	}
	return false
}

func isForbiddenDomainCodePoint(r rune) bool {
	return r == '%' || r <= 0x1F || r == 0x7F || isForbiddenHostCodePoint(r)
}
