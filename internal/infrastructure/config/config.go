// Package config collects the service settings from environment variables.
// A .env file is loaded by the entrypoints through godotenv/autoload.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	BackendSQLite   = "sqlite"
	BackendDynamoDB = "dynamodb"
)

// Config holds all configuration for the quotebot binaries.
type Config struct {
	Port int

	// Record store
	StoreBackend  string
	SQLitePath    string
	ProjectsTable string
	PricingTable  string

	// Catalog seed; empty means the built-in HausVac rows.
	CatalogPath string

	// Vertex AI / Gemini
	GCPProject     string
	VertexAIRegion string
	GeminiModel    string
	LLMMock        bool
	LLMTimeout     time.Duration
}

// Load reads the environment and validates the combination of settings.
func Load() (*Config, error) {
	cfg := &Config{
		StoreBackend:   strings.ToLower(getenvDefault("STORE_BACKEND", BackendSQLite)),
		SQLitePath:     getenvDefault("SQLITE_PATH", "custom_craft.db"),
		ProjectsTable:  getenvDefault("PROJECTS_TABLE", "projects"),
		PricingTable:   getenvDefault("PRICING_TABLE", "pricing"),
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		GCPProject:     firstNonEmpty(os.Getenv("GOOGLE_CLOUD_PROJECT"), os.Getenv("PROJECT_ID")),
		VertexAIRegion: getenvDefault("VERTEX_AI_REGION", "us-central1"),
		GeminiModel:    getenvDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		LLMMock:        isEnabled(os.Getenv("LLM_MOCK")),
	}

	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	timeout, err := time.ParseDuration(getenvDefault("LLM_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
	}
	cfg.LLMTimeout = timeout

	switch cfg.StoreBackend {
	case BackendSQLite, BackendDynamoDB:
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.StoreBackend)
	}
	return cfg, nil
}

// ValidateLLM checks the settings needed by commands that call Gemini.
func (c *Config) ValidateLLM() error {
	if !c.LLMMock && c.GCPProject == "" {
		return fmt.Errorf("GOOGLE_CLOUD_PROJECT must be set unless LLM_MOCK is enabled")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func isEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
