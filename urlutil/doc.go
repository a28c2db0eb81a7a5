// Package urlutil provides HTTP/HTTPS URL validation helpers built on the
// WHATWG URL parser in package whatwgurl.
//
// Validation runs on the same canonical form a browser would produce, so
// "HTTP://LOCALHOST:3000", "http://0x7f.1/" and "http://[0:0:0:0:0:0:0:1]/"
// are all recognized as local development addresses.
//
// # Usage
//
// Use Validate for HTTP/HTTPS URL validation:
//
//	if err := urlutil.Validate(customURL); err != nil {
//		return fmt.Errorf("invalid custom URL: %w", err)
//	}
//
// Use ValidateHTTPSOnly for production environments requiring HTTPS:
//
//	if err := urlutil.ValidateHTTPSOnly(apiEndpoint); err != nil {
//		return fmt.Errorf("API endpoint must use HTTPS: %w", err)
//	}
//
// Use Parse to get the canonical URL:
//
//	parsed, err := urlutil.Parse(userProvidedURL)
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Accessing: %s\n", parsed.Origin())
//
// Use NormalizeScheme to ensure URLs have proper protocols:
//
//	normalized := urlutil.NormalizeScheme("example.com", "https")
//	// Returns: "https://example.com"
//
// # Validation Rules
//
//   - URL must not be empty or only whitespace
//   - URL must not exceed 2048 characters (RFC 2616 practical limit)
//   - URL must use http:// or https:// (rejects ftp:, file:, javascript:, data:)
//   - URL must have a non-empty host
//   - URL must not include a username or password
package urlutil
