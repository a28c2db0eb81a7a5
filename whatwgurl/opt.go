package whatwgurl

// Opt is a string component that may be absent. The zero value is absent,
// which is distinct from the empty string.
type Opt struct {
	val string
	set bool
}

// Some returns a present component holding s.
func Some(s string) Opt {
	return Opt{val: s, set: true}
}

// IsSet reports whether the component is present.
func (o Opt) IsSet() bool { return o.set }

// Get returns the value and whether it is present.
func (o Opt) Get() (string, bool) { return o.val, o.set }

// String returns the value, or "" when absent.
func (o Opt) String() string { return o.val }

// IsEmpty reports whether the component is present and empty.
func (o Opt) IsEmpty() bool { return o.set && o.val == "" }
