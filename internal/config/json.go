package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/cebip/internal/flagx"
	"github.com/dmitrijs2005/cebip/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value so a partial file only
// overrides what it names.
type JsonConfig struct {
	StorageBackend   *string         `json:"storage_backend"`
	DatabaseDSN      *string         `json:"database_dsn"`
	RedisAddr        *string         `json:"redis_addr"`
	RedisPassword    *string         `json:"redis_password"`
	RedisDB          *int            `json:"redis_db"`
	RedisKeyPrefix   *string         `json:"redis_key_prefix"`
	TokenSecret      *string         `json:"token_secret"`
	LogFormat        *string         `json:"log_format"`
	LogLevel         *string         `json:"log_level"`
	ExportFormat     *string         `json:"export_format"`
	S3Bucket         *string         `json:"s3_bucket"`
	S3Region         *string         `json:"s3_region"`
	S3BaseEndpoint   *string         `json:"s3_base_endpoint"`
	S3AccessKey      *string         `json:"s3_access_key"`
	S3SecretKey      *string         `json:"s3_secret_key"`
	OperationTimeout *timex.Duration `json:"operation_timeout"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config. Without either flag it does nothing. Read and unmarshal errors
// panic; the config is loaded once at startup.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIf(&cfg.StorageBackend, jc.StorageBackend)
	setIf(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setIf(&cfg.RedisAddr, jc.RedisAddr)
	setIf(&cfg.RedisPassword, jc.RedisPassword)
	setIf(&cfg.RedisDB, jc.RedisDB)
	setIf(&cfg.RedisKeyPrefix, jc.RedisKeyPrefix)
	setIf(&cfg.TokenSecret, jc.TokenSecret)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.ExportFormat, jc.ExportFormat)
	setIf(&cfg.S3Bucket, jc.S3Bucket)
	setIf(&cfg.S3Region, jc.S3Region)
	setIf(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setIf(&cfg.S3AccessKey, jc.S3AccessKey)
	setIf(&cfg.S3SecretKey, jc.S3SecretKey)
	if jc.OperationTimeout != nil {
		cfg.OperationTimeout = jc.OperationTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
