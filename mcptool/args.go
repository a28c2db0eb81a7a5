package mcptool

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// argsMap extracts the arguments map from a tool call request.
// Returns an empty map if arguments are nil or not a map.
func argsMap(request mcp.CallToolRequest) map[string]any {
	if request.Params.Arguments != nil {
		if m, ok := request.Params.Arguments.(map[string]any); ok {
			return m
		}
	}
	return map[string]any{}
}

var errInvalidArgument = errors.New("invalid argument")

func stringParam(args map[string]any, key string) (string, bool) {
	val, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := val.(string)
	return s, ok
}

func requiredString(args map[string]any, key string) (string, error) {
	s, ok := stringParam(args, key)
	if !ok {
		return "", fmt.Errorf("%w: missing required string argument %q", errInvalidArgument, key)
	}
	return s, nil
}

func boolParam(args map[string]any, key string) bool {
	b, _ := args[key].(bool)
	return b
}

// marshalResult returns data as indented JSON text.
func marshalResult(data any) (*mcp.CallToolResult, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return mcp.NewToolResultError("failed to marshal result: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}
