package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvOverrides overrides fields of cfg from the environment.
//
// Environment variables supported:
// - RESEND_API_KEY, MAILERLITE_API_KEY, GITHUB_TOKEN, REDIS_PASSWORD (secrets)
// - SITE_URL (string)
// - SITE_CORS_ORIGINS (comma separated)
// - SITE_REDIS_ADDR (string), SITE_REDIS_DB (int)
// - SITE_HTTP_TIMEOUT (duration, e.g. "5s")
// - SITE_LOG_LEVEL (debug, info, warn, error), SITE_LOG_JSON (bool)
func ApplyEnvOverrides(cfg *Config) error {
	applySecretEnv(cfg)

	if v := os.Getenv("SITE_URL"); v != "" {
		cfg.Public.Site.URL = v
	}
	if v := os.Getenv("SITE_CORS_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		cfg.Public.CorsOrigins = parts
	}
	if v := os.Getenv("SITE_REDIS_ADDR"); v != "" {
		cfg.Public.Redis.Addr = v
	}
	if v := os.Getenv("SITE_REDIS_DB"); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SITE_REDIS_DB: %w", err)
		}
		cfg.Public.Redis.DB = db
	}
	if v := os.Getenv("SITE_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid SITE_HTTP_TIMEOUT: %w", err)
		}
		cfg.Public.HTTPTimeout = d
	}
	if v := os.Getenv("SITE_LOG_LEVEL"); v != "" {
		cfg.Public.LogLevel = v
	}
	if err := setBoolEnv("SITE_LOG_JSON", func(b bool) { cfg.Public.LogJSON = b }); err != nil {
		return err
	}
	return nil
}

func applySecretEnv(cfg *Config) {
	if v := os.Getenv("RESEND_API_KEY"); v != "" {
		cfg.Private.ResendAPIKey = Secret(v)
	}
	if v := os.Getenv("MAILERLITE_API_KEY"); v != "" {
		cfg.Private.MailerLiteAPIKey = Secret(v)
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.Private.GitHubToken = Secret(v)
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Private.RedisPassword = Secret(v)
	}
}

// setBoolEnv is a small helper to parse boolean environment variables
func setBoolEnv(env string, setter func(bool)) error {
	if v := os.Getenv(env); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", env, err)
		}
		setter(b)
	}
	return nil
}
