package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alwinb/whatwg-url/config"
	"github.com/alwinb/whatwg-url/testutil"
	"github.com/alwinb/whatwg-url/whatwgurl"
)

type result struct {
	stdout string
	stderr string
	code   int
}

// execute runs the command line with an empty config file and the URL
// environment variables cleared.
func execute(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv(config.EnvOutput, "")
	t.Setenv(config.EnvDebug, "")
	t.Setenv(config.EnvBase, "")

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	return executeWithConfig(t, cfgPath, args...)
}

func executeWithConfig(t *testing.T, cfgPath string, args ...string) result {
	t.Helper()
	var stderr bytes.Buffer
	var code int
	stdout := testutil.CaptureOutput(t, "default", func() error {
		code = run(context.Background(), append([]string{"--config", cfgPath}, args...), &stderr)
		if code != 0 {
			return fmt.Errorf("exit code %d", code)
		}
		return nil
	})
	return result{stdout: stdout, stderr: stderr.String(), code: code}
}

func TestParseCommand(t *testing.T) {
	res := execute(t, "parse", "HTTP://user@EXAMPLE.com:80/a/../b?q#f")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "http://user@example.com/b?q#f")
	assert.Contains(t, res.stdout, "Pathname:  /b")
	assert.Contains(t, res.stdout, "Username:  user")
	assert.Contains(t, res.stdout, "Origin:    http://example.com")
}

func TestParseCommandJSON(t *testing.T) {
	res := execute(t, "parse", "../x", "--base", "http://h/a/b", "-o", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var got whatwgurl.Components
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "http://h/x", got.Href)
	assert.Equal(t, "h", got.Hostname)
}

func TestParseCommandFailure(t *testing.T) {
	res := execute(t, "parse", "http://exa mple.com")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "(invalid_host)")
	assert.Empty(t, res.stdout)
}

func TestParseCommandFailureJSON(t *testing.T) {
	res := execute(t, "-o", "json", "parse", "no-scheme")
	assert.Equal(t, 1, res.code)

	var got errorOutput
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, "missing_scheme", got.Kind)
	assert.Contains(t, got.Error, "no-scheme")
}

func TestResolveCommand(t *testing.T) {
	res := execute(t, "resolve", "../c", "--base", "http://example.com/a/b/")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "http://example.com/a/c\n", res.stdout)
}

func TestResolveCommandUsesConfiguredBase(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("base: http://example.com/dir/\n"), 0o600))
	t.Setenv(config.EnvBase, "")
	t.Setenv(config.EnvOutput, "")

	res := executeWithConfig(t, cfgPath, "resolve", "file?x")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "http://example.com/dir/file?x\n", res.stdout)
}

func TestResolveCommandWithoutBase(t *testing.T) {
	res := execute(t, "resolve", "a")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "(missing_base)")
}

func TestOriginCommand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://example.com:8443/x", "https://example.com:8443"},
		{"blob:https://example.com/uuid", "https://example.com"},
		{"data:text/plain,hi", "null"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res := execute(t, "origin", tt.input)
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want+"\n", res.stdout)
		})
	}
}

func TestHostCommand(t *testing.T) {
	res := execute(t, "host", "0x7f.1", "-o", "yaml")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "host: 127.0.0.1")
	assert.Contains(t, res.stdout, "kind: ipv4")

	res = execute(t, "host", "Ex%41mple", "--opaque")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Ex%41mple")
	assert.Contains(t, res.stdout, "opaque")
}

func TestSetCommand(t *testing.T) {
	res := execute(t, "set", "http://example.com/", "port", "8080")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "http://example.com:8080/\n", res.stdout)

	res = execute(t, "set", "http://example.com/", "port", "http")
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "http://example.com/\n"), res.stdout)
	assert.Contains(t, res.stdout, "port was not changed")

	res = execute(t, "set", "http://example.com/", "color", "red")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "(unknown_property)")
}

func TestOpenCommandTargetNone(t *testing.T) {
	res := execute(t, "open", "HTTPS://Example.com/./x", "--browser", "none", "-o", "json")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, `"href": "https://example.com/x"`)

	res = execute(t, "open", "file:///etc/passwd", "--browser", "none")
	assert.Equal(t, 1, res.code)

	res = execute(t, "open", "https://example.com", "--browser", "chrome")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid browser target")
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, "version", "--quiet")
	require.Equal(t, 0, res.code, res.stderr)
	assert.NotEmpty(t, strings.TrimSpace(res.stdout))
}

func TestMetricsFlag(t *testing.T) {
	res := execute(t, "--metrics", "origin", "http://h/")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stderr, `whatwg_url_parse_total{operation="origin",outcome="ok"}`)
}

func TestInvalidConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output: xml\n"), 0o600))
	t.Setenv(config.EnvOutput, "")

	res := executeWithConfig(t, cfgPath, "origin", "http://h/")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "(invalid_config)")
}

func TestInvalidOutputFlag(t *testing.T) {
	res := execute(t, "-o", "xml", "origin", "http://h/")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "(invalid_config)")
}

func TestDebugLogsParseFailures(t *testing.T) {
	res := execute(t, "--debug", "parse", "#frag")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "parse failed")
	assert.Contains(t, res.stderr, "(fragment_only_input)")
}
