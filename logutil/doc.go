// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil is the structured logging layer of the whatwg-url tools,
// built on log/slog.
//
// # Basic Usage
//
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("resolving", "input", ref, "base", base)
//	logutil.Info("mcp server started", "tools", 4)
//	logutil.Error("parse failed", "kind", kind)
//
// Library code takes a component logger instead of calling the package
// functions directly:
//
//	log := logutil.NewLogger("whatwgurl").WithOperation("resolve")
//	log.Debug("setter rejected", "setter", "port")
//
// A component logger looks up the global logger on every call, so it keeps
// working after SetupLogger reconfigures output or level.
//
// # Debug Mode
//
// Debug logging is enabled by passing debug=true to SetupLogger or by setting
// WHATWG_URL_DEBUG=true.
//
// # Structured Logging
//
// With structured=true records are written as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"DEBUG","msg":"parse failed","component":"whatwgurl","kind":"invalid_host"}
//
// Otherwise the slog text format is used:
//
//	time=2026-01-15T10:30:00Z level=DEBUG msg="parse failed" component=whatwgurl kind=invalid_host
package logutil
