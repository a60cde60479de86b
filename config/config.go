package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	Timezone   string
	DBDriver   string
	DBPath     string
	DBDSN      string
	LogLevel   string
	LogFormat  string
	SeedFile   string
	StaticDir  string
	APIBaseURL string
}

// DSN is the connection string for the configured driver.
func (c AppConfig) DSN() string {
	if c.DBDriver == "postgres" {
		return c.DBDSN
	}
	return c.DBPath
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := getenv
	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		Timezone:   get("TZ", "Europe/Moscow"),
		DBDriver:   strings.ToLower(get("DB_DRIVER", "sqlite")),
		DBPath:     get("DB_PATH", "silage.db"),
		DBDSN:      get("DB_DSN", ""),
		LogLevel:   get("LOG_LEVEL", "info"),
		LogFormat:  get("LOG_FORMAT", "json"),
		SeedFile:   get("SEED_FILE", ""),
		StaticDir:  get("STATIC_DIR", "static"),
		APIBaseURL: apiBaseURL(),
	}
	switch {
	case cfg.DBDriver != "sqlite" && cfg.DBDriver != "postgres":
		log.Printf("[cfg] unknown DB_DRIVER %q, using sqlite", cfg.DBDriver)
		cfg.DBDriver = "sqlite"
	case cfg.DBDriver == "postgres" && cfg.DBDSN == "":
		log.Printf("[cfg] DB_DRIVER=postgres without DB_DSN, using sqlite")
		cfg.DBDriver = "sqlite"
	}
	log.Printf("[cfg] port=%s driver=%s log=%s/%s seed=%q", cfg.Port, cfg.DBDriver, cfg.LogLevel, cfg.LogFormat, cfg.SeedFile)
	return cfg
}

// APIBaseURL is the records server address for clients. Unlike Load it
// reads .env silently and logs nothing.
func APIBaseURL() string {
	_ = godotenv.Load()
	return apiBaseURL()
}

func apiBaseURL() string {
	return strings.TrimRight(getenv("API_BASE_URL", "http://localhost:8080"), "/")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
