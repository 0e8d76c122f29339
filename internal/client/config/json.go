package config

import (
	"encoding/json"
	"os"

	"github.com/aaywp/portal/internal/flagx"
	"github.com/aaywp/portal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// RequestTimeout uses timex.Duration, so it may be "10s" or integer
// nanoseconds.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	DataDir        string         `json:"data_dir"`
	StoreFile      string         `json:"store_file"`
	Language       string         `json:"language"`
	LogFormat      string         `json:"log_format"`
	LogLevel       string         `json:"log_level"`

	PhotoBucket        string `json:"photo_bucket"`
	PhotoEndpoint      string `json:"photo_endpoint"`
	PhotoRegion        string `json:"photo_region"`
	PhotoAccessKey     string `json:"photo_access_key"`
	PhotoSecretKey     string `json:"photo_secret_key"`
	PhotoPublicBaseURL string `json:"photo_public_base_url"`
}

// parseJson overlays Config with the non-empty values of a JSON file. The
// file comes from -c/-config, or from the PORTAL_CONFIG environment variable
// when no flag is given. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFile(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set(&cfg.ServerBaseURL, jc.ServerBaseURL)
	set(&cfg.DataDir, jc.DataDir)
	set(&cfg.StoreFile, jc.StoreFile)
	set(&cfg.Language, jc.Language)
	set(&cfg.LogFormat, jc.LogFormat)
	set(&cfg.LogLevel, jc.LogLevel)
	set(&cfg.PhotoBucket, jc.PhotoBucket)
	set(&cfg.PhotoEndpoint, jc.PhotoEndpoint)
	set(&cfg.PhotoRegion, jc.PhotoRegion)
	set(&cfg.PhotoAccessKey, jc.PhotoAccessKey)
	set(&cfg.PhotoSecretKey, jc.PhotoSecretKey)
	set(&cfg.PhotoPublicBaseURL, jc.PhotoPublicBaseURL)

	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
