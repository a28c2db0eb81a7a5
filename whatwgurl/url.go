package whatwgurl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alwinb/whatwg-url/host"
)

// URL owns a single Record and exposes it through string properties.
// A URL is not safe for concurrent mutation.
type URL struct {
	rec *Record
}

// New parses input as an absolute URL.
func New(input string) (*URL, error) {
	r, err := ParseAndResolve(input, nil)
	if err != nil {
		return nil, err
	}
	return &URL{rec: r}, nil
}

// NewWithBase parses input relative to base.
func NewWithBase(input, base string) (*URL, error) {
	b, err := ParseAndResolve(base, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	r, err := ParseAndResolve(input, b)
	if err != nil {
		return nil, err
	}
	return &URL{rec: r}, nil
}

// FromRecord wraps a copy of r.
func FromRecord(r *Record) *URL {
	return &URL{rec: r.Clone()}
}

// Record returns a copy of the underlying record.
func (u *URL) Record() *Record {
	return u.rec.Clone()
}

func (u *URL) Href() string     { return Serialize(u.rec, false) }
func (u *URL) String() string   { return u.Href() }
func (u *URL) Origin() string   { return SerializeOrigin(u.rec) }
func (u *URL) Protocol() string { return u.rec.Scheme.String() + ":" }
func (u *URL) Username() string { return u.rec.Username.String() }
func (u *URL) Password() string { return u.rec.Password.String() }
func (u *URL) Pathname() string { return SerializePath(u.rec) }

func (u *URL) Host() string {
	if u.rec.Host.IsNone() {
		return ""
	}
	if !u.rec.Port.IsSet() {
		return host.Serialize(u.rec.Host)
	}
	return host.Serialize(u.rec.Host) + ":" + u.rec.Port.String()
}

func (u *URL) Hostname() string {
	if u.rec.Host.IsNone() {
		return ""
	}
	return host.Serialize(u.rec.Host)
}

func (u *URL) Port() string {
	return u.rec.Port.String()
}

// Search returns the query with a leading "?", or "" for an absent or empty
// query.
func (u *URL) Search() string {
	return prefixed("?", u.rec.Query)
}

// Hash returns the fragment with a leading "#", or "" for an absent or empty
// fragment.
func (u *URL) Hash() string {
	return prefixed("#", u.rec.Fragment)
}

func prefixed(prefix string, o Opt) string {
	if s := o.String(); s != "" {
		return prefix + s
	}
	return ""
}

// MarshalJSON encodes the URL as its href.
func (u *URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Href())
}

// SetHref replaces the whole URL. Unlike the other setters it reports
// invalid input.
func (u *URL) SetHref(value string) error {
	r, err := ParseAndResolve(value, nil)
	if err != nil {
		return err
	}
	u.rec = r
	return nil
}

func (u *URL) SetProtocol(value string) { SetScheme(u.rec, value) }
func (u *URL) SetUsername(value string) { SetUsername(u.rec, value) }
func (u *URL) SetPassword(value string) { SetPassword(u.rec, value) }
func (u *URL) SetHost(value string)     { SetHost(u.rec, value) }
func (u *URL) SetHostname(value string) { SetHostname(u.rec, value) }
func (u *URL) SetPort(value string)     { SetPort(u.rec, value) }
func (u *URL) SetPathname(value string) { SetPathname(u.rec, value) }

// SetSearch sets the query. The empty string removes it; a leading "?" is
// dropped.
func (u *URL) SetSearch(value string) {
	if value == "" {
		u.rec.Query = Opt{}
		return
	}
	SetQuery(u.rec, strings.TrimPrefix(value, "?"))
}

// SetHash sets the fragment. The empty string removes it; a leading "#" is
// dropped.
func (u *URL) SetHash(value string) {
	if value == "" {
		u.rec.Fragment = Opt{}
		return
	}
	SetFragment(u.rec, strings.TrimPrefix(value, "#"))
}
