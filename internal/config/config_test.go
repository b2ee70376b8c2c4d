package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "llama3-70b-8192", cfg.Groq.Model)
	assert.Equal(t, 30*time.Second, cfg.LinkedIn.Timeout)
	assert.Equal(t, "https://linkedin-data-api.p.rapidapi.com", cfg.LinkedIn.URL)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GROQ_TIMEOUT", "5s")
	t.Setenv("GROQ_MODEL", "llama-3.3-70b-versatile")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.outflo.io,http://localhost:4000")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Groq.Timeout)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Groq.Model)
	assert.Equal(t, []string{"https://app.outflo.io", "http://localhost:4000"}, cfg.Cors.AllowedOrigins)
}

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(Database{
		Driver:   "postgres",
		User:     "outflo",
		Password: "secret",
		URL:      "db:5432/outflo?sslmode=disable",
	})

	assert.Equal(t, "postgres://outflo:secret@db:5432/outflo?sslmode=disable", dsn)
}
