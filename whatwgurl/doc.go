// Package whatwgurl parses, resolves, normalizes and serializes URLs following
// the WHATWG URL Standard.
//
// A URL is held in a Record: scheme, credentials, host, port, an optional
// Windows drive letter, a path root marker, the directory segments, the final
// file segment, query and fragment. Absent and empty are distinct for every
// optional component.
//
// # Parsing
//
// Parse tokenizes a string into a raw Record without resolving or
// normalizing it. ParseAndResolve is the full pipeline: it parses, merges with
// an optional base, forces special URLs into a hierarchical shape, normalizes,
// percent-encodes and validates.
//
//	base, err := whatwgurl.ParseAndResolve("http://example.com/a/b/c", nil)
//	if err != nil {
//		return err
//	}
//	u, err := whatwgurl.ParseAndResolve("../d", base)
//	fmt.Println(whatwgurl.Serialize(u, false)) // http://example.com/a/d
//
// # Setters
//
// SetScheme, SetUsername, SetPassword, SetHost, SetHostname, SetPort,
// SetPathname, SetQuery and SetFragment mutate a Record in place the way the
// properties of a scriptable URL object do. They never return an error: a
// value that would produce an invalid Record leaves it unchanged.
//
// # URL
//
// URL wraps a Record with string getters and setters for callers that want
// the familiar href / origin / pathname view.
//
// # Concurrency
//
// Parsing and serialization are pure. A Record may be read concurrently, but
// setters and the pipeline steps need exclusive access to the Record they
// change.
package whatwgurl
