package whatwgurl

import (
	"fmt"

	"github.com/alwinb/whatwg-url/host"
)

type authority struct {
	username Opt
	password Opt
	host     string
	port     Port
}

// parseAuthority splits an authority string. The last @ separates the
// credentials from the host, the first : before it separates username from
// password, and the first : after it outside of brackets starts the port.
func parseAuthority(s string) authority {
	lastAt, portCol, firstCol := -1, -1, -1
	bracks := false
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '@':
			lastAt = i
			bracks = false
		case ':':
			if firstCol < 0 {
				firstCol = i
			}
			if portCol <= lastAt && !bracks {
				portCol = i
			}
		case '[':
			bracks = true
		case ']':
			bracks = false
		}
	}

	var a authority
	if lastAt >= 0 {
		if 0 <= firstCol && firstCol < lastAt {
			a.username = Some(s[:firstCol])
			a.password = Some(s[firstCol+1 : lastAt])
		} else {
			a.username = Some(s[:lastAt])
		}
	}
	if portCol > lastAt {
		a.host = s[lastAt+1 : portCol]
		a.port = parsePortToken(s[portCol+1:])
	} else {
		a.host = s[lastAt+1:]
	}
	return a
}

// setAuthFromString replaces the authority of r with the one parsed from s.
// An empty host is kept as the empty domain.
func (r *Record) setAuthFromString(s string, opaque bool) error {
	a := parseAuthority(s)
	h := host.Domain("")
	if a.host != "" {
		var err error
		h, err = host.Parse(a.host, opaque)
		if err != nil {
			return fmt.Errorf("%w: %q", err, a.host)
		}
	}
	r.Username, r.Password, r.Host, r.Port = a.username, a.password, h, a.port
	return nil
}
