package host

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		opaque bool
		want   Host
	}{
		{"lower-cases domain", "EXAMPLE.com", false, Domain("example.com")},
		{"percent-decoded domain", "ex%41mple.com", false, Domain("example.com")},
		{"idn domain", "münchen.de", false, Domain("xn--mnchen-3ya.de")},
		{"ipv4", "192.168.0.1", false, IPv4(0xC0A80001)},
		{"ipv4 short hex", "0x7f.1", false, IPv4(0x7F000001)},
		{"too many parts stays a domain", "1.2.3.4.5", false, Domain("1.2.3.4.5")},
		{"ipv6", "[::1]", false, IPv6([8]uint16{0, 0, 0, 0, 0, 0, 0, 1})},
		{"ipv6 in opaque mode", "[::1]", true, IPv6([8]uint16{0, 0, 0, 0, 0, 0, 0, 1})},
		{"opaque keeps case", "EXAMPLE", true, Opaque("EXAMPLE")},
		{"opaque keeps percent", "a%20b", true, Opaque("a%20b")},
		{"opaque encodes non-ascii", "é", true, Opaque("%C3%A9")},
		{"opaque encodes controls", "a\x01b", true, Opaque("a%01b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.opaque)
			if err != nil {
				t.Fatalf("Parse(%q, %v) unexpected error: %v", tt.input, tt.opaque, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q, %v) = %v (%s), want %v (%s)", tt.input, tt.opaque, got, got.Kind(), tt.want, tt.want.Kind())
			}
		})
	}
}

func TestParseFailures(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		opaque bool
	}{
		{"space in domain", "exa mple.com", false},
		{"percent in domain", "%zz", false},
		{"encoded space in domain", "a%20b", false},
		{"caret in domain", "a^b", false},
		{"ipv4 out of range", "999.1.1.1", false},
		{"unterminated ipv6", "[::1", false},
		{"bad ipv6", "[1:2]", false},
		{"empty domain", "", false},
		{"space in opaque", "a b", true},
		{"at sign in opaque", "a@b", true},
		{"colon in opaque", "a:b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, tt.opaque)
			if !errors.Is(err, ErrInvalidHost) {
				t.Errorf("Parse(%q, %v) error = %v, want ErrInvalidHost", tt.input, tt.opaque, err)
			}
		})
	}
}

func TestHostAccessors(t *testing.T) {
	if !None.IsNone() || None.IsEmpty() {
		t.Error("None must be absent and not empty")
	}
	if !Domain("").IsEmpty() || !Opaque("").IsEmpty() {
		t.Error("empty domain and opaque hosts must report IsEmpty")
	}
	if addr, ok := IPv4(7).IPv4(); !ok || addr != 7 {
		t.Errorf("IPv4 accessor = %v, %v", addr, ok)
	}
	if _, ok := Domain("a").IPv6(); ok {
		t.Error("domain must not report IPv6")
	}
	if IPv4(1).Name() != "" {
		t.Error("Name of an address must be empty")
	}
}

func TestSerialize(t *testing.T) {
	tests := []struct {
		host Host
		want string
	}{
		{None, ""},
		{Domain("example.com"), "example.com"},
		{Opaque("a%20b"), "a%20b"},
		{IPv4(0x7F000001), "127.0.0.1"},
		{IPv6([8]uint16{0, 0, 0, 0, 0, 0, 0, 1}), "[::1]"},
	}
	for _, tt := range tests {
		if got := Serialize(tt.host); got != tt.want {
			t.Errorf("Serialize(%v) = %q, want %q", tt.host.Kind(), got, tt.want)
		}
		if got := tt.host.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindIPv6.String() != "ipv6" || KindNone.String() != "none" {
		t.Error("unexpected Kind names")
	}
}
