package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("log-level", DefaultLogLevel, "")
	fs.StringP("output", "o", DefaultOutput, "")
	fs.Int("precision", DefaultPrecision, "")
	fs.String("http-addr", DefaultHTTPAddr, "")
	return fs
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frames.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\noutput: json\nprecision: 3\nhttp_addr: \":9000\"\n"), 0644))

	t.Setenv("FRAMES_PRECISION", "6")
	t.Setenv("FRAMES_HTTP_ADDR", ":9100")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--http-addr", ":9200", "--config", path}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel, "file overrides default")
	assert.Equal(t, OutputJSON, cfg.Output, "file value kept when no env or flag")
	assert.Equal(t, 6, cfg.Precision, "env overrides file")
	assert.Equal(t, ":9200", cfg.HTTPAddr, "flag overrides env")
}

func TestLoadIgnoresUnchangedFlags(t *testing.T) {
	t.Setenv("FRAMES_OUTPUT", "table")

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, OutputTable, cfg.Output)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoadBadEnvValue(t *testing.T) {
	t.Setenv("FRAMES_PRECISION", "lots")

	_, err := Load("", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to decode config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"json output", func(c *Config) { c.Output = OutputJSON }, ""},
		{"unknown output", func(c *Config) { c.Output = "csv" }, "unknown output format"},
		{"fixed precision", func(c *Config) { c.Precision = 4 }, ""},
		{"negative precision", func(c *Config) { c.Precision = -2 }, "precision must be"},
		{"auth without token", func(c *Config) { c.AuthEnabled = true }, "auth_token is required"},
		{"auth with token", func(c *Config) { c.AuthEnabled = true; c.AuthToken = "s3cret" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}
