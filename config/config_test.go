package config

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DRIVER", "DB_PATH", "DB_DSN", "LOG_LEVEL", "SEED_FILE", "API_BASE_URL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "silage.db", cfg.DSN())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
}

func TestLoad_Postgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "host=db user=silage dbname=silage")
	t.Setenv("API_BASE_URL", "http://api:9000/")
	cfg := Load()
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=db user=silage dbname=silage", cfg.DSN())
	assert.Equal(t, "http://api:9000", cfg.APIBaseURL)
}

func TestLoad_BadDriverFallsBack(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	assert.Equal(t, "sqlite", Load().DBDriver)

	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")
	assert.Equal(t, "sqlite", Load().DBDriver)
}

func TestAPIBaseURL_IsQuiet(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	t.Setenv("API_BASE_URL", "http://records:8080/")
	assert.Equal(t, "http://records:8080", APIBaseURL())
	assert.Empty(t, buf.String())
}
