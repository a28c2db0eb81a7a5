// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package browser opens web URLs in the user's default browser.
//
// URLs are canonicalized with the whatwgurl package before launching, so
// "HTTPS://Example.COM/a/../b" opens as "https://example.com/b". Only http and
// https URLs are accepted; file: and javascript: URLs are rejected with
// ErrUnsupportedScheme.
//
// The launch itself is delegated to github.com/pkg/browser, which supports
// Windows (cmd /c start), macOS (open), and Linux (xdg-open).
//
// # Example Usage
//
//	href, err := browser.Launch(ctx, browser.LaunchOptions{
//	    URL:    "https://example.com",
//	    Target: browser.TargetDefault,
//	})
//	if err != nil {
//	    log.Printf("Failed to launch browser: %v", err)
//	}
//
// TargetNone canonicalizes the URL without opening anything.
package browser
