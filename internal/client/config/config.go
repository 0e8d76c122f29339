package config

import (
	"path/filepath"
	"time"

	"github.com/aaywp/portal/internal/client/photo"
)

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - ServerBaseURL: backend REST base, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DataDir / StoreFile: location of the local SQLite store.
//   - Language: chat display language ("en" or "ur").
//   - LogFormat / LogLevel: see logging.New.
//   - Photo*: optional S3-compatible storage for profile photos.
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DataDir        string
	StoreFile      string
	Language       string
	LogFormat      string
	LogLevel       string

	PhotoBucket        string
	PhotoEndpoint      string
	PhotoRegion        string
	PhotoAccessKey     string
	PhotoSecretKey     string
	PhotoPublicBaseURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.DataDir = ".portal"
	c.StoreFile = "portal.db"
	c.Language = "en"
	c.LogFormat = "console"
	c.LogLevel = "warn"
}

// StorePath is the SQLite file inside DataDir.
func (c *Config) StorePath() string {
	return filepath.Join(c.DataDir, c.StoreFile)
}

// Photo returns the uploader settings. Photo uploads are disabled unless a
// bucket is configured.
func (c *Config) Photo() photo.Config {
	return photo.Config{
		Bucket:        c.PhotoBucket,
		Endpoint:      c.PhotoEndpoint,
		Region:        c.PhotoRegion,
		AccessKey:     c.PhotoAccessKey,
		SecretKey:     c.PhotoSecretKey,
		PublicBaseURL: c.PhotoPublicBaseURL,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
