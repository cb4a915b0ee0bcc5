// Package config loads runtime configuration for the CEBIP CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. CEBIP_* environment variables, with a .env file loaded first if present
//     (see parseEnv). Secrets such as CEBIP_TOKEN_SECRET and
//     CEBIP_S3_SECRET_KEY usually come from here.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   storage backend: sqlite, redis or nop
//	-d string   SQLite DSN
//	-r string   Redis address (host:port)
//	-l string   log format: text, json or zap
//	-t int      per-operation timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "5s" or integer
// nanoseconds:
//
//	{
//	  "storage_backend": "sqlite",
//	  "database_dsn": "file:cebip.db",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_key_prefix": "cebip:",
//	  "token_secret": "change-me",
//	  "log_format": "text",
//	  "log_level": "info",
//	  "export_format": "json",
//	  "s3_bucket": "cebip-backups",
//	  "operation_timeout": "5s"
//	}
//
// Fields missing from the JSON file keep their previous value.
package config
