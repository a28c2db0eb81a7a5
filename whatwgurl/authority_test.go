package whatwgurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuthority(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  authority
	}{
		{
			name:  "host only",
			input: "example.com",
			want:  authority{host: "example.com"},
		},
		{
			name:  "empty",
			input: "",
			want:  authority{host: ""},
		},
		{
			name:  "username password host port",
			input: "user:pa:ss@host:1",
			want:  authority{username: Some("user"), password: Some("pa:ss"), host: "host", port: NumericPort(1)},
		},
		{
			name:  "last at separates host",
			input: "a@b@c",
			want:  authority{username: Some("a@b"), host: "c"},
		},
		{
			name:  "empty credentials",
			input: ":@host",
			want:  authority{username: Some(""), password: Some(""), host: "host"},
		},
		{
			name:  "bracketed ipv6 with port",
			input: "[::1]:80",
			want:  authority{host: "[::1]", port: NumericPort(80)},
		},
		{
			name:  "empty port",
			input: "host:",
			want:  authority{host: "host", port: EmptyPort()},
		},
		{
			name:  "non numeric port is kept",
			input: "host:8a",
			want:  authority{host: "host", port: Port{state: portInvalid, raw: "8a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAuthority(tt.input))
		})
	}
}

func TestPortValidity(t *testing.T) {
	assert.True(t, NoPort.IsValid())
	assert.True(t, EmptyPort().IsValid())
	assert.True(t, NumericPort(0).IsValid())
	assert.True(t, NumericPort(65535).IsValid())
	assert.False(t, NumericPort(65536).IsValid())
	assert.False(t, parsePortToken("x1").IsValid())
	assert.False(t, parsePortToken("99999999999999999999999").IsValid())
}

func TestParseSetterPort(t *testing.T) {
	tests := []struct {
		input  string
		want   Port
		wantOK bool
	}{
		{"", EmptyPort(), true},
		{"8080", NumericPort(8080), true},
		{"8080abc", NumericPort(8080), true},
		{"0", NumericPort(0), true},
		{"65535", NumericPort(65535), true},
		{"65536", NoPort, false},
		{"not-a-port", NoPort, false},
		{"-1", NoPort, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := parseSetterPort(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
