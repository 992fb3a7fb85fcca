package config

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "6543")
		t.Setenv("DB_SSLMODE", "require")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("CORS_ORIGIN", "http://localhost:3000")
		t.Setenv("RATE_LIMIT_RPS", "2.5")
		t.Setenv("RATE_LIMIT_BURST", "5")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "6543", cfg.DBPort)
		assert.Equal(t, "require", cfg.DBSSLMode)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
		assert.Equal(t, 2.5, cfg.RateLimitRPS)
		assert.Equal(t, 5, cfg.RateLimitBurst)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PORT", "")
		t.Setenv("DB_SSLMODE", "")
		t.Setenv("APP_PORT", "")
		t.Setenv("CORS_ORIGIN", "")
		t.Setenv("RATE_LIMIT_RPS", "not-a-number")
		t.Setenv("RATE_LIMIT_BURST", "")

		cfg := LoadConfig()

		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "disable", cfg.DBSSLMode)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "*", cfg.CORSOrigin)
		assert.Equal(t, float64(10), cfg.RateLimitRPS)
		assert.Equal(t, 20, cfg.RateLimitBurst)
	})
}

func TestLoadConfig_MissingDBHost(t *testing.T) {
	if os.Getenv("BE_CRASHER") == "1" {
		os.Unsetenv("DB_HOST")
		LoadConfig()
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestLoadConfig_MissingDBHost")
	cmd.Env = append(os.Environ(), "BE_CRASHER=1")
	err := cmd.Run()

	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		return
	}
	t.Fatalf("process ran with err %v, want exit status 1", err)
}
