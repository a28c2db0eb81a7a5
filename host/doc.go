// Package host parses and serializes URL hosts: domains, IPv4 addresses,
// bracketed IPv6 addresses and the opaque hosts of non-special schemes.
//
// A Host is a tagged value. Consumers switch on Kind rather than on the
// dynamic type of a field:
//
//	h, err := host.Parse("EXAMPLE.com", false)
//	switch h.Kind() {
//	case host.KindDomain:
//		fmt.Println(h.Name()) // "example.com"
//	case host.KindIPv4, host.KindIPv6:
//		fmt.Println(h.String())
//	}
//
// Domains go through IDNA compatibility processing with a fixed option set:
// bidi checks on, hyphen checks off, joiner checks on, STD3 ASCII rules off and
// DNS length verification off. Changing any of these changes which inputs parse.
package host
