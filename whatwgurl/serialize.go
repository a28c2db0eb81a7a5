package whatwgurl

import (
	"strings"

	"github.com/alwinb/whatwg-url/host"
)

// Serialize renders r as a URL string. The fragment is left out when
// excludeFragment is set.
//
// A record without an authority whose first directory is empty is written
// with a "./" before the directories, so that the output does not start a
// new authority when parsed again.
func Serialize(r *Record, excludeFragment bool) string {
	var sb strings.Builder
	if s, ok := r.Scheme.Get(); ok {
		sb.WriteString(s)
		sb.WriteByte(':')
	}
	hasAuth := !r.Host.IsNone()
	if hasAuth {
		sb.WriteString("//")
		writeAuthority(&sb, r)
	}
	if d, ok := r.Drive.Get(); ok {
		sb.WriteByte('/')
		sb.WriteString(d)
	}
	if r.PathRoot {
		sb.WriteByte('/')
	}
	if !hasAuth && len(r.Dirs) > 0 && r.Dirs[0] == "" {
		sb.WriteString("./")
	}
	for _, dir := range r.Dirs {
		sb.WriteString(dir)
		sb.WriteByte('/')
	}
	sb.WriteString(r.File.String())
	if q, ok := r.Query.Get(); ok {
		sb.WriteByte('?')
		sb.WriteString(q)
	}
	if f, ok := r.Fragment.Get(); ok && !excludeFragment {
		sb.WriteByte('#')
		sb.WriteString(f)
	}
	return sb.String()
}

func writeAuthority(sb *strings.Builder, r *Record) {
	start := sb.Len()
	sb.WriteString(r.Username.String())
	if p, ok := r.Password.Get(); ok {
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	if sb.Len() > start {
		sb.WriteByte('@')
	}
	sb.WriteString(host.Serialize(r.Host))
	if r.Port.IsSet() {
		sb.WriteByte(':')
		sb.WriteString(r.Port.String())
	}
}

// SerializePath renders the drive, path root, directories and file of r.
func SerializePath(r *Record) string {
	var sb strings.Builder
	if d, ok := r.Drive.Get(); ok {
		sb.WriteByte('/')
		sb.WriteString(d)
	}
	if r.PathRoot {
		sb.WriteByte('/')
	}
	for _, dir := range r.Dirs {
		sb.WriteString(dir)
		sb.WriteByte('/')
	}
	sb.WriteString(r.File.String())
	return sb.String()
}

// SerializeOrigin returns the ASCII serialization of the origin of r. Only
// ftp, http, https, ws and wss have a tuple origin; blob URLs take the origin
// of the URL in their path. Every other URL has the opaque origin "null".
func SerializeOrigin(r *Record) string {
	switch r.scheme() {
	case "blob":
		inner, err := ParseAndResolve(SerializePath(r), nil)
		if err != nil {
			return "null"
		}
		return SerializeOrigin(inner)
	case "ftp", "http", "https", "ws", "wss":
		var sb strings.Builder
		sb.WriteString(r.scheme())
		sb.WriteString("://")
		sb.WriteString(host.Serialize(r.Host))
		if r.Port.IsSet() {
			sb.WriteByte(':')
			sb.WriteString(r.Port.String())
		}
		return sb.String()
	}
	return "null"
}
