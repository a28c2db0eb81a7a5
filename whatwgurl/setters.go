package whatwgurl

import (
	"errors"

	"github.com/alwinb/whatwg-url/host"
	"github.com/alwinb/whatwg-url/percent"
)

var errSetterInput = errors.New("value not accepted")

// commit applies change to a copy of r and swaps the copy in only when it
// still satisfies the URL invariants. r is left untouched otherwise.
func commit(r *Record, setter, value string, change func(*Record)) {
	patch := r.Clone()
	change(patch)
	if err := patch.AssertConstraints(); err != nil {
		reject(setter, value, err)
		return
	}
	patch.normalizeAuthority()
	*r = *patch
}

func reject(setter, value string, err error) {
	debug("setter rejected", "setter", setter, "value", value, "error", err)
}

// SetScheme replaces the scheme. The value may carry a trailing ":". A scheme
// that would change how the rest of the URL is parsed, such as http to file
// or http to mailto, is not accepted.
func SetScheme(r *Record, value string) {
	p := newParser(prepareInput(value)+":", ModeWeb)
	p.parseScheme()
	if !p.rec.Scheme.IsSet() {
		reject("scheme", value, errSetterInput)
		return
	}
	if ParserModeFor(r) != ParserModeFor(p.rec) {
		reject("scheme", value, errSetterInput)
		return
	}
	commit(r, "scheme", value, func(patch *Record) {
		patch.Scheme = Some(p.scheme)
	})
}

// SetUsername percent-encodes value and sets it as the username.
func SetUsername(r *Record, value string) {
	username := percent.Encode(value, percent.Userinfo)
	commit(r, "username", value, func(patch *Record) {
		patch.Username = Some(username)
	})
}

// SetPassword percent-encodes value and sets it as the password. A missing
// username becomes the empty username.
func SetPassword(r *Record, value string) {
	password := percent.Encode(value, percent.Userinfo)
	commit(r, "password", value, func(patch *Record) {
		if !patch.Username.IsSet() {
			patch.Username = Some("")
		}
		patch.Password = Some(password)
	})
}

// parseHostInput parses value as the authority of r's kind of URL. Input
// that carries credentials is refused.
func parseHostInput(r *Record, setter, value string) (*Record, bool) {
	if r.CannotBeBase() {
		reject(setter, value, errSetterInput)
		return nil, false
	}
	rel, err := Parse("//"+trimTabAndNewline(value)+"/", ParserModeFor(r))
	if err != nil {
		reject(setter, value, err)
		return nil, false
	}
	if rel.Username.IsSet() {
		reject(setter, value, errSetterInput)
		return nil, false
	}
	return rel, true
}

// SetHost sets the host and, when value carries a valid port, the port.
func SetHost(r *Record, value string) {
	rel, ok := parseHostInput(r, "host", value)
	if !ok {
		return
	}
	port := r.Port
	if rel.Port.IsSet() && !rel.Port.IsEmpty() {
		if p, ok := parseSetterPort(rel.Port.String()); ok {
			port = p
		}
	}
	commit(r, "host", value, func(patch *Record) {
		patch.Host, patch.Port = rel.Host, port
	})
}

// SetHostname sets the host and ignores a port in value, except for file
// URLs where a port makes the whole value invalid.
func SetHostname(r *Record, value string) {
	rel, ok := parseHostInput(r, "hostname", value)
	if !ok {
		return
	}
	if rel.Port.IsSet() && r.scheme() == "file" {
		reject("hostname", value, errSetterInput)
		return
	}
	commit(r, "hostname", value, func(patch *Record) {
		patch.Host = rel.Host
	})
}

// SetPort sets the port from the leading digits of value. The empty string
// removes the port.
func SetPort(r *Record, value string) {
	port, ok := parseSetterPort(trimTabAndNewline(value))
	if !ok {
		reject("port", value, errSetterInput)
		return
	}
	commit(r, "port", value, func(patch *Record) {
		patch.Port = port
	})
}

// SetPathname replaces the path. It does nothing for a cannot-be-a-base URL.
// A relative value does not remove an existing path root.
func SetPathname(r *Record, value string) {
	if r.CannotBeBase() {
		reject("pathname", value, errSetterInput)
		return
	}
	p := newParser(trimTabAndNewline(value), ParserModeFor(r))
	p.parsePath(true)
	if r.scheme() == "file" {
		p.detectDrive()
	}
	path := p.rec
	path.PercentEncode()
	commit(r, "pathname", value, func(patch *Record) {
		patch.Drive = path.Drive
		patch.PathRoot = patch.PathRoot || path.PathRoot
		patch.Dirs = path.Dirs
		patch.File = path.File
		patch.normalizePath()
	})
}

// SetQuery percent-encodes value and sets it as the query.
func SetQuery(r *Record, value string) {
	r.Query = Some(percent.Encode(trimTabAndNewline(value), querySet(PercentCodingModeFor(r))))
}

// SetFragment percent-encodes value and sets it as the fragment.
func SetFragment(r *Record, value string) {
	r.Fragment = Some(percent.Encode(trimTabAndNewline(value), percent.Fragment))
}

// SerializeHost renders a host the way it appears in a URL.
func SerializeHost(h host.Host) string {
	return host.Serialize(h)
}

// ParseHost parses a host string. Opaque hosts are used for non-special
// schemes.
func ParseHost(input string, opaque bool) (host.Host, error) {
	return host.Parse(input, opaque)
}
