package whatwgurl

import (
	"errors"
	"fmt"

	"github.com/alwinb/whatwg-url/host"
)

var (
	// ErrInvalidURL is the root of the errors for inputs that do not form a
	// valid absolute URL.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidHost is returned when a host cannot be parsed.
	ErrInvalidHost = host.ErrInvalidHost

	// ErrInvalidBaseURL is returned when a base URL is unusable.
	ErrInvalidBaseURL = errors.New("invalid base URL")

	// ErrMissingScheme is returned for a relative input without a base.
	ErrMissingScheme = fmt.Errorf("%w: missing scheme", ErrInvalidURL)

	// ErrFragmentOnlyInput is returned for a bare "#fragment" without a base.
	ErrFragmentOnlyInput = fmt.Errorf("%w: fragment-only input", ErrInvalidURL)

	// ErrConstraintViolation is returned when a record breaks a URL invariant.
	ErrConstraintViolation = fmt.Errorf("%w: constraint violation", ErrInvalidURL)

	// ErrCannotBecomeBaseURL is returned when a special URL has no authority
	// and none can be taken from its path.
	ErrCannotBecomeBaseURL = errors.New("cannot become a base URL")

	// ErrMalformed is returned by Parse for input that is not valid UTF-8.
	ErrMalformed = errors.New("malformed URL input")
)

// ErrorKind names the category of err for logs and metrics. It returns "" for
// a nil error and "unknown" for errors from outside this package.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidBaseURL):
		return "invalid_base_url"
	case errors.Is(err, ErrInvalidHost):
		return "invalid_host"
	case errors.Is(err, ErrMissingScheme):
		return "missing_scheme"
	case errors.Is(err, ErrFragmentOnlyInput):
		return "fragment_only_input"
	case errors.Is(err, ErrConstraintViolation):
		return "constraint_violation"
	case errors.Is(err, ErrCannotBecomeBaseURL):
		return "cannot_become_base_url"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrUnknownProperty):
		return "unknown_property"
	case errors.Is(err, ErrInvalidURL):
		return "invalid_url"
	}
	return "unknown"
}
