package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8000}, expected: "localhost:8000"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8000}, expected: ":8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8000", expectedAddr: NetAddress{Host: "localhost", Port: 8000}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8000", expectedAddr: NetAddress{Port: 8000}},
		{name: "missing colon", input: "localhost8000", expectError: true},
		{name: "port is not a number", input: "localhost:abc", expectError: true},
		{name: "port is zero", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "invalid IP", input: "wise.example:8000", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "http://10.0.0.5:8000",
				"-request-timeout", "45s",
				"-d", "/var/lib/wise.db",
				"-session-path", "/run/user/1000/wise.bolt",
				"-kdf-iterations", "400000",
				"-min-passphrase-length", "10",
				"-clear-on-format-error",
				"-server-address", "127.0.0.1:8001",
				"-server-request-timeout", "5s",
				"-c", "/etc/wise.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "http://10.0.0.5:8000", cfg.Adapter.HTTPAddress)
				assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "/var/lib/wise.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "/run/user/1000/wise.bolt", cfg.Storage.Session.Path)
				assert.Equal(t, 400000, cfg.Vault.KDFIterations)
				assert.Equal(t, 10, cfg.Vault.MinPassphraseLength)
				assert.True(t, cfg.Vault.ClearOnFormatError)
				assert.Equal(t, "127.0.0.1:8001", cfg.Server.HTTPAddress)
				assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, "/etc/wise.json", cfg.JSONFilePath)
			},
		},
		{
			name: "config alias",
			args: []string{"-config", "/etc/wise.json"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/wise.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid server address format", args: []string{"-server-address", "invalid"}},
		{name: "invalid port in server address", args: []string{"-server-address", "localhost:abc"}},
		{name: "invalid duration", args: []string{"-request-timeout", "later"}},
		{name: "unknown flag", args: []string{"-token-sign-key", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFlags(tt.args)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "error parsing flags")
		})
	}
}
