package config

import "time"

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendNop    = "nop"
)

// Config holds runtime settings for the CEBIP CLI.
//
// Fields:
//   - StorageBackend / DatabaseDSN: which key/value medium to use and, for
//     SQLite, where it lives.
//   - Redis*: connection settings for the Redis medium.
//   - TokenSecret: HMAC key for session tokens. The default is for local use only.
//   - LogFormat / LogLevel: logger selection (see logging.New).
//   - ExportFormat: json or yaml for backups.
//   - S3*: optional object storage target for backups. Uploads are enabled
//     when S3Bucket is set.
//   - OperationTimeout: deadline applied to each storage call chain.
type Config struct {
	StorageBackend   string
	DatabaseDSN      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	RedisKeyPrefix   string
	TokenSecret      string
	LogFormat        string
	LogLevel         string
	ExportFormat     string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
	S3AccessKey      string
	S3SecretKey      string
	OperationTimeout time.Duration
}

// LoadDefaults populates c with local development defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = BackendSQLite
	c.DatabaseDSN = "file:cebip.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisKeyPrefix = "cebip:"
	c.TokenSecret = "cebip-local-secret"
	c.LogFormat = "text"
	c.LogLevel = "info"
	c.ExportFormat = "json"
	c.S3Region = "us-east-1"
	c.OperationTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (CEBIP_*, optionally via .env), JSON (if present) and
// command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
