package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mzmzeee/hashing-showcase/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"database_dsn":      "postgres://json",
		"db_timeout":        "2s",
		"hash_construction": "iterated",
		"iterations":        1234,
		"max_iterations":    99999,
		"argon2_memory_kib": 2048,
		"argon2_lanes":      4,
		"salt_size":         24,
		"key_bits":          3072,
		"log_level":         "warn",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "postgres://json", cfg.DatabaseDSN)
		assert.Equal(t, 2*time.Second, cfg.DBTimeout)
		assert.Equal(t, "iterated", cfg.HashConstruction)
		assert.Equal(t, 1234, cfg.Iterations)
		assert.Equal(t, 99999, cfg.MaxIterations)
		assert.Equal(t, uint32(2048), cfg.Argon2MemoryKiB)
		assert.Equal(t, uint8(4), cfg.Argon2Lanes)
		assert.Equal(t, 24, cfg.SaltSize)
		assert.Equal(t, 3072, cfg.KeyBits)
		assert.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"iterations": 7})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, 7, cfg.Iterations)
		assert.Equal(t, "argon2id", cfg.HashConstruction)
		assert.Equal(t, 2048, cfg.KeyBits)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabaseDSN: "keep", Iterations: 3}
		require.NoError(t, parseJson(cfg))

		assert.Equal(t, "keep", cfg.DatabaseDSN)
		assert.Equal(t, 3, cfg.Iterations)
	})

	t.Run("json then flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", full, "-i", "42"}

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 42, cfg.Iterations)
		assert.Equal(t, "iterated", cfg.HashConstruction)
	})

	t.Run("unknown construction in json", func(t *testing.T) {
		bad := writeTempJSON(t, dir, "bcrypt.json", map[string]any{"hash_construction": "bcrypt"})
		os.Args = []string{"testbin", "-c", bad}

		_, err := LoadConfig()
		assert.ErrorIs(t, err, common.ErrInvalidArgument)
	})

	t.Run("lanes out of range in json", func(t *testing.T) {
		bad := writeTempJSON(t, dir, "lanes.json", map[string]any{"argon2_lanes": 256})
		os.Args = []string{"testbin", "-c", bad}

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("invalid JSON fails", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}
		assert.Error(t, parseJson(&Config{}))
	})

	t.Run("missing file fails", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "nope.json")}
		assert.ErrorIs(t, parseJson(&Config{}), os.ErrNotExist)
	})
}
