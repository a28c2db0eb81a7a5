// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	pkgbrowser "github.com/pkg/browser"

	"github.com/alwinb/whatwg-url/whatwgurl"
)

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser
	TargetDefault Target = "default"
	// TargetSystem uses the system default browser (alias for TargetDefault)
	TargetSystem Target = "system"
	// TargetNone disables browser launching
	TargetNone Target = "none"
)

// ErrUnsupportedScheme is returned for URLs that are not http or https.
var ErrUnsupportedScheme = errors.New("URL must use the http or https scheme")

// opener is replaced in tests.
var opener = pkgbrowser.OpenURL

func init() {
	// pkg/browser writes the launcher's own output to the process stdio.
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
}

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetSystem, TargetNone}
}

// IsValid checks if a target string is valid.
func IsValid(target string) bool {
	t := Target(target)
	for _, valid := range ValidTargets() {
		if t == valid {
			return true
		}
	}
	return false
}

// ResolveTarget converts "default" to "system" and respects "none".
func ResolveTarget(target Target) Target {
	if target == TargetNone {
		return TargetNone
	}
	return TargetSystem
}

// LaunchOptions contains options for launching a browser.
type LaunchOptions struct {
	// URL to open. It is canonicalized before launching.
	URL string
	// Target browser to use
	Target Target
	// Timeout for the launch (default 5 seconds)
	Timeout time.Duration
}

// Canonicalize parses raw as an absolute URL and returns its href. Only http
// and https URLs are accepted.
func Canonicalize(raw string) (string, error) {
	u, err := whatwgurl.New(raw)
	if err != nil {
		return "", err
	}
	switch u.Protocol() {
	case "http:", "https:":
		return u.Href(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Protocol())
}

// Launch canonicalizes opts.URL and opens it in the browser determined by the
// target. It returns the canonical URL, which is also returned for TargetNone.
func Launch(ctx context.Context, opts LaunchOptions) (string, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Second
	}
	href, err := Canonicalize(opts.URL)
	if err != nil {
		return "", err
	}
	if ResolveTarget(opts.Target) == TargetNone {
		return href, nil
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	open := opener
	done := make(chan error, 1)
	go func() { done <- open(href) }()
	select {
	case err := <-done:
		if err != nil {
			return href, fmt.Errorf("could not open browser: %w", err)
		}
		return href, nil
	case <-ctx.Done():
		return href, fmt.Errorf("could not open browser: %w", ctx.Err())
	}
}

// GetTargetDisplayName returns a human-readable name for the browser target.
func GetTargetDisplayName(target Target) string {
	if ResolveTarget(target) == TargetNone {
		return "none"
	}
	return "default browser"
}

// FormatValidTargets returns a comma-separated list of valid targets.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}
