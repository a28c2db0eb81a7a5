// Package percent provides the code-point classes and percent-encode sets used
// by the WHATWG URL parser, together with the UTF-8 percent-encoding codec.
//
// Each encode set is a predicate over a single code point. A code point that is
// in the set is written as one "%XX" triplet per UTF-8 byte; everything else is
// copied through unchanged. The sets nest the way the URL Standard defines them:
//
//	C0Control ⊂ Fragment
//	C0Control ⊂ Query ⊂ SpecialQuery
//	Query ⊂ Path ⊂ PathSegment
//	Path ⊂ Userinfo
//
// The "%" code point is never part of a set, so encoding is idempotent:
// Encode(Encode(s, set), set) == Encode(s, set).
//
// # Usage
//
//	percent.Encode("a b", percent.Query)       // "a%20b"
//	percent.DecodeString("%F0%9F%98%80")       // "😀"
package percent
