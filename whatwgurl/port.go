package whatwgurl

import (
	"strconv"
)

type portState uint8

const (
	portAbsent portState = iota
	portEmpty
	portNumber
	portInvalid
)

// maxPort is one past the largest valid port.
const maxPort = 1 << 16

// Port is an absent port, the empty port (a ":" with nothing after it), a
// number, or a non-numeric token kept only so that validation can reject it.
type Port struct {
	state portState
	num   int
	raw   string
}

// NoPort is the absent port.
var NoPort = Port{}

// EmptyPort returns the empty port.
func EmptyPort() Port {
	return Port{state: portEmpty}
}

// NumericPort returns a numeric port. Values outside [0, 65536) are kept and
// rejected by validation.
func NumericPort(n int) Port {
	return Port{state: portNumber, num: n}
}

// parsePortToken reads the text after the host/port separator. A string of
// digits becomes a number, anything else is kept as an invalid token.
func parsePortToken(s string) Port {
	if s == "" {
		return EmptyPort()
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Port{state: portInvalid, raw: s}
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Port{state: portInvalid, raw: s}
	}
	return NumericPort(n)
}

// parseSetterPort parses the value given to the port setter: the empty
// string clears the port, otherwise the leading digits are used and the rest
// is ignored.
func parseSetterPort(s string) (Port, bool) {
	if s == "" {
		return EmptyPort(), true
	}
	end := 0
	for end < len(s) && '0' <= s[end] && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return NoPort, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n >= maxPort {
		return NoPort, false
	}
	return NumericPort(n), true
}

// IsSet reports whether a port is present, including the empty port.
func (p Port) IsSet() bool { return p.state != portAbsent }

// IsEmpty reports whether this is the empty port.
func (p Port) IsEmpty() bool { return p.state == portEmpty }

// Number returns the port number and whether the port is numeric.
func (p Port) Number() (int, bool) {
	return p.num, p.state == portNumber
}

// IsValid reports whether the port is absent, empty or a number in range.
func (p Port) IsValid() bool {
	switch p.state {
	case portAbsent, portEmpty:
		return true
	case portNumber:
		return 0 <= p.num && p.num < maxPort
	}
	return false
}

func (p Port) String() string {
	switch p.state {
	case portNumber:
		return strconv.Itoa(p.num)
	case portInvalid:
		return p.raw
	}
	return ""
}
