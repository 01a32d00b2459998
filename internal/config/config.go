// Package config resolves curaplan settings from .env files and the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Environment variable names.
const (
	EnvTone      = "CURAPLAN_TONE"
	EnvDays      = "CURAPLAN_DAYS"
	EnvPort      = "CURAPLAN_PORT"
	EnvLogLevel  = "CURAPLAN_LOG_LEVEL"
	EnvCacheSize = "CURAPLAN_CACHE_SIZE"
	EnvGinMode   = "CURAPLAN_GIN_MODE"
)

// Config holds the defaults used by the CLI and the server. Flags override it.
type Config struct {
	Tone      string
	Days      int
	Port      string
	LogLevel  string
	CacheSize int
	GinMode   string
}

// DefaultEnvFiles are loaded, when present, before the environment is read.
var DefaultEnvFiles = []string{".env", ".env.local"}

// LoadEnv loads the given env files without overriding variables already set
// in the process environment. It returns the files that were loaded.
func LoadEnv(logger *logrus.Logger, files ...string) []string {
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			if logger != nil {
				logger.WithError(err).Warnf("Failed to load %s", file)
			}
			continue
		}
		loaded = append(loaded, file)
	}
	if logger != nil {
		if len(loaded) == 0 {
			logger.Debug("No env files loaded; relying on process environment")
		} else {
			logger.Debugf("Loaded env files: %s", strings.Join(loaded, ", "))
		}
	}
	return loaded
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		Tone:      GetEnv(EnvTone, "poetic"),
		Days:      GetEnvInt(EnvDays, 5),
		Port:      GetEnv(EnvPort, "8080"),
		LogLevel:  GetEnv(EnvLogLevel, "info"),
		CacheSize: GetEnvInt(EnvCacheSize, 256),
		GinMode:   GetEnv(EnvGinMode, "release"),
	}
}

// GetEnv gets an environment variable with a default value.
func GetEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt gets an integer environment variable with a default value.
func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}
