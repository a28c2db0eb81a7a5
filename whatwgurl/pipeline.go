package whatwgurl

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alwinb/whatwg-url/host"
	"github.com/alwinb/whatwg-url/percent"
)

// ParseAndResolve parses input, resolves it against base when base is not
// nil, and returns the normalized, percent-encoded and validated record.
// base must be a record with a scheme, typically the result of an earlier
// call; it is not modified.
func ParseAndResolve(input string, base *Record) (*Record, error) {
	r, err := parseAndResolve(input, base)
	if err != nil {
		debug("parse failed", "input", input, "kind", ErrorKind(err), "error", err)
		return nil, err
	}
	return r, nil
}

func parseAndResolve(input string, base *Record) (*Record, error) {
	if base != nil && !base.Scheme.IsSet() {
		return nil, fmt.Errorf("%w: %q has no scheme", ErrInvalidBaseURL, base.Href())
	}

	rel, err := Parse(input, ParserModeFor(base))
	if err != nil {
		return nil, err
	}

	resolved := rel
	if base != nil && (!base.CannotBeBase() || rel.IsFragmentOnly()) {
		resolved = base.Goto(rel)
	}

	if !resolved.Scheme.IsSet() {
		if resolved.IsFragmentOnly() {
			return nil, fmt.Errorf("%w: %q", ErrFragmentOnlyInput, input)
		}
		return nil, fmt.Errorf("%w: %q", ErrMissingScheme, input)
	}

	if err := resolved.Force(); err != nil {
		return nil, err
	}
	if err := resolved.AssertConstraints(); err != nil {
		return nil, err
	}
	resolved.Normalize()
	resolved.PercentEncode()
	if err := resolved.AssertConstraints(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// Goto resolves rel against r and returns a new record. Components of rel
// from its first present component onward win; the ones before it come from
// r. A scheme in rel equal to the scheme of r does not count as present.
// Directories at the boundary are concatenated.
func (r *Record) Goto(rel *Record) *Record {
	out := &Record{}
	t2 := rel.firstTokenType(r.scheme())
	for _, t := range tokenOrder {
		from := rel
		if t < t2 {
			from = r
		}
		switch t {
		case tokenScheme:
			out.Scheme = from.Scheme
		case tokenAuth:
			out.Username, out.Password = from.Username, from.Password
			out.Host, out.Port = from.Host, from.Port
		case tokenDrive:
			out.Drive = from.Drive
		case tokenPathRoot:
			out.PathRoot = from.PathRoot
		case tokenDir:
			if t == t2 {
				out.Dirs = slices.Concat(r.Dirs, rel.Dirs)
			} else {
				out.Dirs = slices.Clone(from.Dirs)
			}
		case tokenFile:
			out.File = from.File
		case tokenQuery:
			out.Query = from.Query
		case tokenFragment:
			out.Fragment = from.Fragment
		}
	}
	return out
}

// Force gives a special URL a path root and an authority. A file URL without
// one gets the empty host. Any other special URL without an authority takes
// it from its first non-empty path segment, as in "http:example.com/x".
func (r *Record) Force() error {
	if !r.isSpecial() {
		return nil
	}
	if !r.Drive.IsSet() && !r.PathRoot {
		r.PathRoot = true
	}
	if r.HasSubstantialAuth() {
		return nil
	}
	if r.scheme() == "file" {
		r.Host = host.Domain("")
		return nil
	}

	i := 0
	for i < len(r.Dirs) && r.Dirs[i] == "" {
		i++
	}
	if i < len(r.Dirs) {
		auth := r.Dirs[i]
		r.PathRoot = true
		r.Dirs = slices.Clone(r.Dirs[i+1:])
		return r.setAuthFromString(auth, false)
	}
	if file := r.File.String(); file != "" {
		r.Dirs = nil
		r.File = Opt{}
		return r.setAuthFromString(file, false)
	}
	return fmt.Errorf("%w: %q", ErrCannotBecomeBaseURL, r.Href())
}

// AssertConstraints checks the invariants every valid URL satisfies.
func (r *Record) AssertConstraints() error {
	hasHost := !r.Host.IsNone() && !r.Host.IsEmpty()
	scheme := r.scheme()
	switch {
	case r.isSpecial() && scheme != "file" && !hasHost:
		return r.violation("special URL without host")
	case r.Password.IsSet() && !r.Username.IsSet():
		return r.violation("password without username")
	case scheme == "file" && (r.Username.IsSet() || r.Port.IsSet()):
		return r.violation("file URL with credentials or port")
	case (r.Username.IsSet() || r.Port.IsSet()) && !hasHost:
		return r.violation("credentials or port without host")
	case !r.Port.IsValid():
		return r.violation("invalid port " + r.Port.String())
	}
	return nil
}

func (r *Record) violation(reason string) error {
	return fmt.Errorf("%w: %s: %q", ErrConstraintViolation, reason, Serialize(r, false))
}

// Normalize lower-cases the scheme, drops empty and default authority
// components and removes dot segments from hierarchical paths.
func (r *Record) Normalize() {
	if r.Scheme.IsSet() {
		r.Scheme = Some(r.scheme())
	}
	r.normalizeAuthority()
	if !r.CannotBeBase() {
		r.normalizePath()
	}
}

func (r *Record) normalizeAuthority() {
	if r.Password.IsEmpty() {
		r.Password = Opt{}
	}
	if r.Username.IsEmpty() && !r.Password.IsSet() {
		r.Username = Opt{}
	}
	if r.Port.IsEmpty() {
		r.Port = NoPort
	} else if n, ok := r.Port.Number(); ok {
		if def, ok := DefaultPort(r.scheme()); ok && def == n {
			r.Port = NoPort
		}
	}
	if r.scheme() == "file" && r.Host.Kind() == host.KindDomain && strings.EqualFold(r.Host.Name(), "localhost") {
		r.Host = host.Domain("")
	}
}

func (r *Record) normalizePath() {
	if d, ok := r.Drive.Get(); ok && d != "" {
		r.Drive = Some(d[:1] + ":")
	}

	dirs := make([]string, 0, len(r.Dirs))
	for _, dir := range r.Dirs {
		switch {
		case isDoubleDot(dir):
			dirs = popDir(dirs)
		case !isSingleDot(dir):
			dirs = append(dirs, dir)
		}
	}
	if file := r.File.String(); file != "" {
		switch {
		case isDoubleDot(file):
			dirs = popDir(dirs)
			r.File = Opt{}
		case isSingleDot(file):
			r.File = Opt{}
		}
	}

	if !r.PathRoot && (!r.Host.IsNone() || r.Drive.IsSet()) && (len(r.Dirs) > 0 || r.File.String() != "") {
		r.PathRoot = true
	}
	r.Dirs = dirs
}

func popDir(dirs []string) []string {
	if len(dirs) == 0 {
		return dirs
	}
	return dirs[:len(dirs)-1]
}

func isSingleDot(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDot(s string) bool {
	switch strings.ToLower(s) {
	case "..", ".%2e", "%2e.", "%2e%2e":
		return true
	}
	return false
}

// PercentEncode encodes credentials, path, query and fragment with the
// encode sets selected by the percent-coding mode of r.
func (r *Record) PercentEncode() {
	mode := PercentCodingModeFor(r)
	r.Username = encodeOpt(r.Username, percent.Userinfo)
	r.Password = encodeOpt(r.Password, percent.Userinfo)

	pathSet := percent.PathSegment
	if mode == CodingNonBase {
		pathSet = percent.C0Control
	}
	for i, dir := range r.Dirs {
		r.Dirs[i] = percent.Encode(dir, pathSet)
	}
	r.File = encodeOpt(r.File, pathSet)
	r.Query = encodeOpt(r.Query, querySet(mode))
	r.Fragment = encodeOpt(r.Fragment, percent.Fragment)
}

func querySet(mode PercentCodingMode) percent.EncodeSet {
	if mode == CodingSpecial {
		return percent.SpecialQuery
	}
	return percent.Query
}

func encodeOpt(o Opt, set percent.EncodeSet) Opt {
	if s, ok := o.Get(); ok {
		return Some(percent.Encode(s, set))
	}
	return o
}
