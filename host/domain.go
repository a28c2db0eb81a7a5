package host

import (
	"fmt"

	"golang.org/x/net/idna"

	"github.com/alwinb/whatwg-url/percent"
)

// profile is the compatibility-processing profile used for every domain.
// MapForLookup turns on hyphen checks and strict domain names; the options
// after it must stay after it.
var profile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.BidiRule(),
	idna.CheckJoiners(true),
	idna.CheckHyphens(false),
	idna.StrictDomainName(false),
	idna.VerifyDNSLength(false),
)

// DomainToASCII runs IDNA compatibility processing on domain. An empty result
// is a failure.
func DomainToASCII(domain string) (string, error) {
	ascii, err := profile.ToASCII(domain)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrInvalidHost, domain, err)
	}
	if ascii == "" {
		return "", fmt.Errorf("%w: empty domain", ErrInvalidHost)
	}
	return ascii, nil
}

func decodeDomain(input string) string {
	return percent.DecodeString(input)
}

func encodeOpaque(input string) string {
	return percent.Encode(input, percent.C0Control)
}
