package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, int64(1), cfg.DefaultStoreID)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.PriceTraceFile)
}

func TestLoad_FromEnvVars(t *testing.T) {
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("DEFAULT_STORE_ID", "3")
	t.Setenv("PRICE_TRACE_FILE", "/tmp/price.log")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GRPCAddr)
	assert.Equal(t, int64(3), cfg.DefaultStoreID)
	assert.Equal(t, "/tmp/price.log", cfg.PriceTraceFile)
}

func TestLoad_InvalidType(t *testing.T) {
	t.Setenv("DEFAULT_STORE_ID", "main")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_NegativeStore(t *testing.T) {
	t.Setenv("DEFAULT_STORE_ID", "-1")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_DotenvFile(t *testing.T) {
	// t.Setenv registers cleanup so the value godotenv sets is removed afterwards.
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
