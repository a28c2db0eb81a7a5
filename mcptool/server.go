package mcptool

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/alwinb/whatwg-url/logutil"
	"github.com/alwinb/whatwg-url/urlmetrics"
	"github.com/alwinb/whatwg-url/whatwgurl"
)

// Options configures a Server.
type Options struct {
	Name    string
	Version string
	// RateLimit is the sustained number of tool calls per second.
	RateLimit float64
	// Burst is the number of calls allowed at once.
	Burst int
}

// Server is an MCP server exposing the URL tools.
type Server struct {
	mcp      *server.MCPServer
	limiter  *limiter
	log      *logutil.ComponentLogger
	handlers map[string]server.ToolHandlerFunc
}

// HostResult is the result of url_host.
type HostResult struct {
	Host string `json:"host" yaml:"host"`
	Kind string `json:"kind" yaml:"kind"`
}

// SetResult is the result of url_set.
type SetResult struct {
	whatwgurl.Components `yaml:",inline"`
	Changed bool `json:"changed" yaml:"changed"`
}

type toolHandler func(ctx context.Context, args map[string]any) (any, error)

// New creates a Server with all tools registered.
func New(opts Options) *Server {
	if opts.Name == "" {
		opts.Name = "whatwg-url"
	}
	if opts.Version == "" {
		opts.Version = "0.0.0-dev"
	}
	s := &Server{
		mcp: server.NewMCPServer(opts.Name, opts.Version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		limiter:  newLimiter(opts.RateLimit, opts.Burst),
		log:      logutil.NewLogger("mcp"),
		handlers: make(map[string]server.ToolHandlerFunc),
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve speaks the protocol over in and out until ctx is done or in is
// closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.log.Info("serving MCP tools over stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

func (s *Server) registerTools() {
	s.add(mcp.NewTool("url_parse",
		mcp.WithDescription("Parse a URL, optionally relative to a base URL, and return its href and components"),
		mcp.WithString("input", mcp.Required(), mcp.Description("URL string to parse")),
		mcp.WithString("base", mcp.Description("Optional absolute base URL")),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.parse)

	s.add(mcp.NewTool("url_resolve",
		mcp.WithDescription("Resolve a URL reference against a base URL and return the resulting href"),
		mcp.WithString("input", mcp.Required(), mcp.Description("URL reference, such as ../a?b")),
		mcp.WithString("base", mcp.Required(), mcp.Description("Absolute base URL")),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.resolve)

	s.add(mcp.NewTool("url_origin",
		mcp.WithDescription("Return the serialized origin of a URL, or \"null\" for opaque origins"),
		mcp.WithString("input", mcp.Required(), mcp.Description("Absolute URL")),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.origin)

	s.add(mcp.NewTool("url_host",
		mcp.WithDescription("Parse a host string as a domain, IPv4, IPv6 or opaque host and return its serialization"),
		mcp.WithString("input", mcp.Required(), mcp.Description("Host string, IPv6 addresses in brackets")),
		mcp.WithBoolean("opaque", mcp.Description("Parse as the host of a non-special URL")),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.host)

	s.add(mcp.NewTool("url_set",
		mcp.WithDescription("Assign one property of a URL and return the resulting components"),
		mcp.WithString("input", mcp.Required(), mcp.Description("Absolute URL")),
		mcp.WithString("property", mcp.Required(), mcp.Enum(whatwgurl.Properties...), mcp.Description("Property to assign")),
		mcp.WithString("value", mcp.Required(), mcp.Description("New value")),
		mcp.WithReadOnlyHintAnnotation(true),
	), s.set)
}

// add registers a tool whose handler result is returned as JSON. Handler
// errors become tool errors prefixed with their error kind.
func (s *Server) add(tool mcp.Tool, handler toolHandler) {
	name := tool.Name
	wrapped := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := s.limiter.check(name); err != nil {
			s.log.Warn("tool call rejected", "tool", name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		start := time.Now()
		result, err := handler(ctx, argsMap(request))
		urlmetrics.RecordParse(strings.TrimPrefix(name, "url_"), time.Since(start), err)
		if err != nil {
			s.log.Debug("tool call failed", "tool", name, "error", err)
			return mcp.NewToolResultError(fmt.Sprintf("%s: %v", errorKind(err), err)), nil
		}
		return marshalResult(result)
	}
	s.handlers[name] = wrapped
	s.mcp.AddTool(tool, wrapped)
}

// call invokes a registered tool directly, bypassing the transport.
func (s *Server) call(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	handler, ok := s.handlers[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	var request mcp.CallToolRequest
	request.Params.Name = name
	request.Params.Arguments = args
	return handler(ctx, request)
}

func (s *Server) parse(_ context.Context, args map[string]any) (any, error) {
	input, err := requiredString(args, "input")
	if err != nil {
		return nil, err
	}
	var u *whatwgurl.URL
	if base, ok := stringParam(args, "base"); ok && base != "" {
		u, err = whatwgurl.NewWithBase(input, base)
	} else {
		u, err = whatwgurl.New(input)
	}
	if err != nil {
		return nil, err
	}
	return u.Components(), nil
}

func (s *Server) resolve(_ context.Context, args map[string]any) (any, error) {
	input, err := requiredString(args, "input")
	if err != nil {
		return nil, err
	}
	base, err := requiredString(args, "base")
	if err != nil {
		return nil, err
	}
	u, err := whatwgurl.NewWithBase(input, base)
	if err != nil {
		return nil, err
	}
	return map[string]string{"href": u.Href()}, nil
}

func (s *Server) origin(_ context.Context, args map[string]any) (any, error) {
	input, err := requiredString(args, "input")
	if err != nil {
		return nil, err
	}
	u, err := whatwgurl.New(input)
	if err != nil {
		return nil, err
	}
	return map[string]string{"origin": u.Origin()}, nil
}

func (s *Server) host(_ context.Context, args map[string]any) (any, error) {
	input, err := requiredString(args, "input")
	if err != nil {
		return nil, err
	}
	h, err := whatwgurl.ParseHost(input, boolParam(args, "opaque"))
	if err != nil {
		return nil, err
	}
	return HostResult{Host: whatwgurl.SerializeHost(h), Kind: h.Kind().String()}, nil
}

func (s *Server) set(_ context.Context, args map[string]any) (any, error) {
	input, err := requiredString(args, "input")
	if err != nil {
		return nil, err
	}
	property, err := requiredString(args, "property")
	if err != nil {
		return nil, err
	}
	value, err := requiredString(args, "value")
	if err != nil {
		return nil, err
	}
	u, err := whatwgurl.New(input)
	if err != nil {
		return nil, err
	}
	before := u.Href()
	if err := u.Set(property, value); err != nil {
		return nil, err
	}
	changed := u.Href() != before
	urlmetrics.RecordSetter(property, changed)
	return SetResult{Components: u.Components(), Changed: changed}, nil
}

func errorKind(err error) string {
	if errors.Is(err, errInvalidArgument) {
		return "invalid_argument"
	}
	return whatwgurl.ErrorKind(err)
}
