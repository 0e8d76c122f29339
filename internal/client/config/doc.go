// Package config loads runtime configuration for the portal CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via -c or -config, or the
//     PORTAL_CONFIG environment variable.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL, e.g. http://127.0.0.1:8000/api
//	-t int      request timeout (seconds)
//	-l string   chat language: en or ur
//	-d string   data directory for the local store
//	-v string   log level
//
// # JSON schema
//
//	{
//	  "server_base_url": "https://portal.example.org/api",
//	  "request_timeout": "10s",
//	  "data_dir": ".portal",
//	  "store_file": "portal.db",
//	  "language": "ur",
//	  "log_format": "json",
//	  "log_level": "info",
//	  "photo_bucket": "profiles",
//	  "photo_endpoint": "http://127.0.0.1:9000",
//	  "photo_region": "us-east-1",
//	  "photo_access_key": "minio",
//	  "photo_secret_key": "minio123",
//	  "photo_public_base_url": "https://cdn.example.org/profiles-bucket"
//	}
//
// Empty JSON values leave the earlier value in place.
package config
