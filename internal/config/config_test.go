package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Port)
	assert.Equal(t, ":8080", c.Addr())
	assert.Equal(t, "text", c.LogFormat)
	assert.Equal(t, "nutrisnap-api", c.AppName)
	assert.Empty(t, c.DBDSN)
	assert.Empty(t, c.AllowedOrigins)
	assert.Equal(t, 1024, c.TokenCacheSize)
	assert.Equal(t, time.Minute, c.TokenCacheTTL)
	assert.Equal(t, 30*time.Second, c.SessionCacheTTL)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("SUPABASE_URL", "https://x.supabase.co/")
	t.Setenv("SUPABASE_ANON_KEY", "anon")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:8081, https://app.example.com,")
	t.Setenv("SESSION_CACHE_TTL", "5s")

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Port)
	assert.Equal(t, "json", c.LogFormat)
	assert.Equal(t, "https://x.supabase.co", c.Supabase.URL)
	assert.Equal(t, []string{"http://localhost:8081", "https://app.example.com"}, c.AllowedOrigins)
	assert.Equal(t, 5*time.Second, c.SessionCacheTTL)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrisnap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "7070"
app_name: from-file
allowed_origins:
  - http://a.example
  - http://b.example
`), 0o600))

	t.Setenv("APP_NAME", "from-env")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", c.Port)
	assert.Equal(t, "from-env", c.AppName)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, c.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"port":       {"PORT": "abc"},
		"log format": {"LOG_FORMAT": "xml"},
		"anon key":   {"SUPABASE_URL": "https://x.supabase.co"},
		"cache size": {"TOKEN_CACHE_SIZE": "0"},
		"timeout":    {"HTTP_TIMEOUT": "0s"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
