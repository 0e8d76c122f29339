package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aaywp/portal/internal/flagx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"server_base_url":  "https://flag.example.org/api",
		"request_timeout":  "30s",
		"photo_bucket":     "profiles",
		"photo_endpoint":   "http://127.0.0.1:9000",
		"photo_access_key": "minio",
	})
	pathEnv := writeTempJSON(t, dir, "env.json", map[string]any{
		"server_base_url": "https://env.example.org/api",
		"request_timeout": 2000000000,
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}
		t.Setenv(flagx.ConfigEnvVar, pathEnv)

		cfg := &Config{Language: "en"}
		parseJson(cfg)

		assert.Equal(t, "https://flag.example.org/api", cfg.ServerBaseURL)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "en", cfg.Language, "absent keys keep earlier values")
		assert.Equal(t, "profiles", cfg.PhotoBucket)
		assert.Equal(t, "http://127.0.0.1:9000", cfg.PhotoEndpoint)
		assert.Equal(t, "minio", cfg.PhotoAccessKey)
	})

	t.Run("falls back to env", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(flagx.ConfigEnvVar, pathEnv)

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "https://env.example.org/api", cfg.ServerBaseURL)
		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	})

	t.Run("no env and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv(flagx.ConfigEnvVar, "")

		cfg := &Config{ServerBaseURL: "http://defaults/api", RequestTimeout: 42 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://defaults/api", cfg.ServerBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
