package config

import "os"

type Config struct {
	DatabasePath string
	OutputDir    string
	Env          string
	LogLevel     string
}

// Load reads configuration from the environment with sensible
// defaults. Precedence: explicit env var > .env file (if loaded by the
// caller) > default.
func Load() Config {
	return Config{
		DatabasePath: getEnv("DATABASE_PATH", "billable.db"),
		OutputDir:    getEnv("OUTPUT_DIR", "out"),
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
