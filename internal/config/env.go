package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// loadDotEnv is a seam for tests.
var loadDotEnv = func() error { return godotenv.Load() }

// parseEnv overlays cfg with CEBIP_* environment variables. A .env file in
// the working directory is loaded first if present; variables already set
// in the environment win over it.
func parseEnv(cfg *Config) {
	_ = loadDotEnv()

	cfg.StorageBackend = getEnv("CEBIP_STORAGE_BACKEND", cfg.StorageBackend)
	cfg.DatabaseDSN = getEnv("CEBIP_DATABASE_DSN", cfg.DatabaseDSN)
	cfg.RedisAddr = getEnv("CEBIP_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("CEBIP_REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getEnvAsInt("CEBIP_REDIS_DB", cfg.RedisDB)
	cfg.TokenSecret = getEnv("CEBIP_TOKEN_SECRET", cfg.TokenSecret)
	cfg.LogLevel = getEnv("CEBIP_LOG_LEVEL", cfg.LogLevel)
	cfg.S3Bucket = getEnv("CEBIP_S3_BUCKET", cfg.S3Bucket)
	cfg.S3AccessKey = getEnv("CEBIP_S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getEnv("CEBIP_S3_SECRET_KEY", cfg.S3SecretKey)
	cfg.OperationTimeout = getEnvAsDuration("CEBIP_OPERATION_TIMEOUT", cfg.OperationTimeout)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, err := time.ParseDuration(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}
