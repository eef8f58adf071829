package config

import "os"

// Config is the process-wide configuration, read once at startup. SQLUser
// and SQLPort pair with the per-request connection params to form a complete
// connection spec; clients never send them.
type Config struct {
	Port            string
	SQLUser         string
	SQLPort         string
	FrontendDomain  string
	AllowAllOrigins bool
	Environment     string
	OutputDir       string
}

func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", "8000"),
		SQLUser:         os.Getenv("SQL_USER"),
		SQLPort:         os.Getenv("SQL_PORT"),
		FrontendDomain:  getEnv("FRONTEND_DOMAIN", "http://localhost"),
		AllowAllOrigins: os.Getenv("ALLOW_ALL_ORIGINS") == "true",
		Environment:     getEnv("ENVIRONMENT", "development"),
		OutputDir:       getEnv("JSON_OUTPUT_DIR", "archivos_json"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
