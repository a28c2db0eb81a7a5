package urlutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alwinb/whatwg-url/whatwgurl"
)

const (
	// MaxURLLength is the RFC 2616 practical limit for URL length
	MaxURLLength = 2048
)

// Validate performs HTTP/HTTPS URL validation with the WHATWG URL parser.
// It validates that the URL:
//   - Is not empty or only whitespace
//   - Does not exceed MaxURLLength (2048 characters)
//   - Parses as an absolute WHATWG URL
//   - Uses http:// or https:// protocol
//   - Has a non-empty host
//   - Does not carry a username or password
//
// Example:
//
//	if err := urlutil.Validate("https://example.com"); err != nil {
//		return fmt.Errorf("invalid URL: %w", err)
//	}
func Validate(rawURL string) error {
	_, err := parse(rawURL)
	return err
}

// ValidateHTTPSOnly enforces HTTPS-only URLs for production use.
// HTTP is allowed for localhost (localhost, 127.0.0.1, [::1]) for local
// development, all other HTTP URLs are rejected.
//
// Example:
//
//	if err := urlutil.ValidateHTTPSOnly(apiEndpoint); err != nil {
//		return fmt.Errorf("production endpoint must use HTTPS: %w", err)
//	}
func ValidateHTTPSOnly(rawURL string) error {
	u, err := parse(rawURL)
	if err != nil {
		return err
	}
	if u.Protocol() == "https:" {
		return nil
	}
	if isLocalhost(u.Hostname()) {
		return nil
	}
	return fmt.Errorf("url must use https:// (http:// only allowed for localhost)")
}

// Parse validates rawURL like Validate and returns the canonical URL.
//
// Example:
//
//	parsed, err := urlutil.Parse(userInput)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Host: %s\n", parsed.Host())
func Parse(rawURL string) (*whatwgurl.URL, error) {
	return parse(rawURL)
}

func parse(rawURL string) (*whatwgurl.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}
	if len(rawURL) > MaxURLLength {
		return nil, fmt.Errorf("url exceeds maximum length of %d characters", MaxURLLength)
	}

	u, err := whatwgurl.New(rawURL)
	switch {
	case errors.Is(err, whatwgurl.ErrMissingScheme):
		return nil, fmt.Errorf("url must use http:// or https://")
	case errors.Is(err, whatwgurl.ErrCannotBecomeBaseURL):
		return nil, fmt.Errorf("url missing host/domain")
	case err != nil:
		return nil, fmt.Errorf("invalid URL format: %w", err)
	}

	switch u.Protocol() {
	case "http:", "https:":
	default:
		return nil, fmt.Errorf("url must use http:// or https://, got: %s", strings.TrimSuffix(u.Protocol(), ":"))
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("url missing host/domain")
	}
	if u.Record().IncludesCredentials() {
		return nil, fmt.Errorf("url must not include credentials")
	}
	return u, nil
}

// NormalizeScheme ensures URL has http:// or https:// prefix.
// If the URL already parses with an http or https scheme, it is returned
// trimmed but otherwise unchanged. Otherwise defaultScheme is prepended.
//
// The defaultScheme should be either "http" or "https" (without "://").
//
// Example:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
func NormalizeScheme(rawURL, defaultScheme string) string {
	rawURL = strings.TrimSpace(rawURL)
	if u, err := whatwgurl.New(rawURL); err == nil {
		if p := u.Protocol(); p == "http:" || p == "https:" {
			return rawURL
		}
	}
	return defaultScheme + "://" + rawURL
}

func isLocalhost(hostname string) bool {
	return hostname == "localhost" ||
		hostname == "127.0.0.1" ||
		hostname == "[::1]"
}
