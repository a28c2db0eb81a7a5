// Package mcptool serves the URL operations as Model Context Protocol tools.
//
// The server exposes url_parse, url_resolve, url_origin, url_host and url_set.
// Results are JSON text. Invalid input produces a tool error result rather
// than a protocol error, so the calling model sees the error kind and can
// correct its input. All calls share one token-bucket rate limiter.
//
// Example:
//
//	srv := mcptool.New(mcptool.Options{Name: "whatwg-url", Version: "1.0.0"})
//	if err := srv.Serve(ctx, os.Stdin, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package mcptool
