package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("NOTES_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 86400, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.PageSizeDefault)
	assert.Equal(t, 100, cfg.PageSizeMax)
	assert.Empty(t, cfg.TrustedProxies)
	assert.Equal(t, "default", cfg.Source("token_ttl"))
	assert.NoError(t, cfg.Validate())
}

func TestFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NOTES_CONFIG_PATH", dir)

	content := "token_ttl: 3600\npage_size_default: 20\npage_size_max: 50\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3600, cfg.TokenTTL)
	assert.Equal(t, 20, cfg.PageSizeDefault)
	assert.Equal(t, 50, cfg.PageSizeMax)
	assert.Equal(t, "file", cfg.Source("token_ttl"))
	assert.Equal(t, "default", cfg.Source("trusted_proxies"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NOTES_CONFIG_PATH", dir)
	t.Setenv("NOTES_TOKEN_TTL", "7200")

	content := "token_ttl: 3600\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7200, cfg.TokenTTL)
	assert.Equal(t, "environment", cfg.Source("token_ttl"))
}

func TestInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NOTES_CONFIG_PATH", dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("token_ttl: [not an int"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero token ttl",
			mutate:  func(c *Config) { c.TokenTTL = 0 },
			wantErr: true,
		},
		{
			name:    "negative page size",
			mutate:  func(c *Config) { c.PageSizeDefault = -1 },
			wantErr: true,
		},
		{
			name:    "max below default",
			mutate:  func(c *Config) { c.PageSizeMax = 5 },
			wantErr: true,
		},
		{
			name:    "bad trusted proxy",
			mutate:  func(c *Config) { c.TrustedProxies = []string{"not-a-cidr"} },
			wantErr: true,
		},
		{
			name:   "valid trusted proxy CIDR",
			mutate: func(c *Config) { c.TrustedProxies = []string{"10.0.0.0/8"} },
		},
		{
			name:   "plain IP trusted proxy",
			mutate: func(c *Config) { c.TrustedProxies = []string{"10.1.2.3"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsTrustedProxy(t *testing.T) {
	cfg := newDefault()
	cfg.TrustedProxies = []string{"10.0.0.0/8", "192.168.1.5"}

	assert.True(t, cfg.IsTrustedProxy("10.1.2.3"))
	assert.True(t, cfg.IsTrustedProxy("192.168.1.5"))
	assert.False(t, cfg.IsTrustedProxy("172.16.0.1"))
	assert.False(t, cfg.IsTrustedProxy("not-an-ip"))
}

func TestTokenTTLDuration(t *testing.T) {
	cfg := newDefault()
	cfg.TokenTTL = 3600

	assert.Equal(t, "1h0m0s", cfg.TokenTTLDuration().String())
}

func TestFormatText(t *testing.T) {
	cfg := newDefault()

	out := cfg.FormatText()
	assert.Contains(t, out, "token_ttl")
	assert.Contains(t, out, "86400")
	assert.Contains(t, out, "SOURCE")
}
