package whatwgurl

import (
	"slices"
	"strings"

	"github.com/alwinb/whatwg-url/host"
)

// Record is a structured URL. Records produced by ParseAndResolve are
// normalized; records produced by Parse are raw tokens of the input.
type Record struct {
	Scheme   Opt
	Username Opt
	Password Opt
	Host     host.Host
	Port     Port
	Drive    Opt
	PathRoot bool
	Dirs     []string
	File     Opt
	Query    Opt
	Fragment Opt
}

// tokenType orders the components of a record for resolution.
type tokenType uint8

const (
	tokenScheme tokenType = iota + 1
	tokenAuth
	tokenDrive
	tokenPathRoot
	tokenDir
	tokenFile
	tokenQuery
	tokenFragment
)

var tokenOrder = [...]tokenType{
	tokenScheme, tokenAuth, tokenDrive, tokenPathRoot,
	tokenDir, tokenFile, tokenQuery, tokenFragment,
}

// scheme returns the lower-cased scheme, or "" when absent.
func (r *Record) scheme() string {
	return strings.ToLower(r.Scheme.String())
}

func (r *Record) isSpecial() bool {
	return r.Scheme.IsSet() && IsSpecialScheme(r.Scheme.String())
}

func (r *Record) has(t tokenType) bool {
	switch t {
	case tokenScheme:
		return r.Scheme.IsSet()
	case tokenAuth:
		return !r.Host.IsNone()
	case tokenDrive:
		return r.Drive.IsSet()
	case tokenPathRoot:
		return r.PathRoot
	case tokenDir:
		return len(r.Dirs) > 0
	case tokenFile:
		return r.File.IsSet()
	case tokenQuery:
		return r.Query.IsSet()
	case tokenFragment:
		return r.Fragment.IsSet()
	}
	return false
}

// firstTokenType returns the first component present in r. A scheme equal to
// ignoringScheme (lower case) does not count. An empty record yields the
// fragment type.
func (r *Record) firstTokenType(ignoringScheme string) tokenType {
	for _, t := range tokenOrder {
		if !r.has(t) {
			continue
		}
		if t == tokenScheme && r.scheme() == ignoringScheme {
			continue
		}
		return t
	}
	return tokenFragment
}

// Clone returns a deep copy of r.
func (r *Record) Clone() *Record {
	c := *r
	c.Dirs = slices.Clone(r.Dirs)
	return &c
}

// CannotBeBase reports whether r is a cannot-be-a-base URL: it has a
// non-special scheme, no host and no path root, such as mailto:a@b.com.
func (r *Record) CannotBeBase() bool {
	return r.Scheme.IsSet() && r.Scheme.String() != "" && !r.isSpecial() &&
		r.Host.IsNone() && !r.PathRoot
}

// IsFragmentOnly reports whether r consists of nothing but a fragment.
func (r *Record) IsFragmentOnly() bool {
	return r.firstTokenType("") == tokenFragment && r.Fragment.IsSet()
}

// HasSubstantialAuth reports whether r has a non-empty host, credentials or
// a port. It is equivalent to a non-empty authority string.
func (r *Record) HasSubstantialAuth() bool {
	return (!r.Host.IsNone() && !r.Host.IsEmpty()) ||
		r.Username.IsSet() || r.Password.IsSet() || r.Port.IsSet()
}

// IncludesCredentials reports whether r carries a non-empty username or
// password.
func (r *Record) IncludesCredentials() bool {
	return r.Username.String() != "" || r.Password.String() != ""
}

// Href returns the serialization of r.
func (r *Record) Href() string {
	return Serialize(r, false)
}

func (r *Record) String() string {
	return Serialize(r, false)
}
