package config

import "os"

// AppConfig is assembled from the environment. DatabaseURL selects the
// postgres adapter; when it is empty the server runs on sqlite at
// DatabasePath.
type AppConfig struct {
	Port        string
	Environment string

	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	LogLevel string

	TracingEnabled bool
	OTLPEndpoint   string
}

func Load() *AppConfig {
	cfg := &AppConfig{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DatabasePath:   getEnv("DATABASE_PATH", "database.db"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		OTLPEndpoint:   getEnv("OTLP_ENDPOINT", "localhost:4317"),
		TracingEnabled: os.Getenv("TRACING_ENABLED") == "true",
	}

	defaultMigrations := "db/migrations"

	if cfg.DatabaseURL != "" {
		defaultMigrations = "infra/migrations"
	}

	cfg.MigrationsPath = getEnv("MIGRATIONS_PATH", defaultMigrations)

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}
