package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	// AuditCollection receives one document per mutating request.
	AuditCollection   string
	HTTPListenAddr    string
	MetricsListenAddr string
	LogLevel          string
	ServiceName       string
	CORSOrigins       []string
	// EnableMutations mounts the create/update/delete routes behind bearer auth.
	EnableMutations bool
	JWTSecret       string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	mutations, err := strconv.ParseBool(getEnv("ENABLE_MUTATIONS", "false"))
	if err != nil {
		return nil, fmt.Errorf("parse ENABLE_MUTATIONS: %w", err)
	}

	cfg := &Config{
		MongoURI:          getEnv("MONGO_URI", ""),
		MongoDatabase:     getEnv("MONGO_DATABASE", "catalog"),
		MongoCollection:   getEnv("MONGO_COLLECTION", "products"),
		AuditCollection:   getEnv("MONGO_AUDIT_COLLECTION", "audit_logs"),
		HTTPListenAddr:    getEnv("HTTP_LISTEN_ADDR", ":8080"),
		MetricsListenAddr: getEnv("METRICS_LISTEN_ADDR", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		ServiceName:       getEnv("SERVICE_NAME", "catalog-api"),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		EnableMutations:   mutations,
		JWTSecret:         getEnv("JWT_SECRET", ""),
	}

	return cfg, nil
}

// Validate checks the settings the API server cannot start without. All
// missing keys are reported together.
func (c *Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.HTTPListenAddr == "" {
		missing = append(missing, "HTTP_LISTEN_ADDR")
	}
	if c.EnableMutations && c.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	if c.EnableMutations && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
