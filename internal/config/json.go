package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mzmzeee/hashing-showcase/internal/flagx"
	"github.com/mzmzeee/hashing-showcase/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Pointer fields
// distinguish "absent" from zero so a partial file only overrides what it
// names.
type JsonConfig struct {
	DatabaseDSN      *string         `json:"database_dsn"`
	DBTimeout        *timex.Duration `json:"db_timeout"`
	HashConstruction *string         `json:"hash_construction"`
	Iterations       *int            `json:"iterations"`
	MaxIterations    *int            `json:"max_iterations"`
	Argon2MemoryKiB  *uint32         `json:"argon2_memory_kib"`
	Argon2Lanes      *uint8          `json:"argon2_lanes"`
	SaltSize         *int            `json:"salt_size"`
	KeyBits          *int            `json:"key_bits"`
	LogLevel         *string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config onto config.
// Without the flag nothing is loaded. An unreadable file or invalid JSON is
// returned as an error.
func parseJson(config *Config) error {
	jsonConfigFile := flagx.ConfigFileFlag()
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	c.apply(config)
	return nil
}

func (c *JsonConfig) apply(config *Config) {
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.DBTimeout != nil {
		config.DBTimeout = c.DBTimeout.Duration
	}
	if c.HashConstruction != nil {
		config.HashConstruction = *c.HashConstruction
	}
	if c.Iterations != nil {
		config.Iterations = *c.Iterations
	}
	if c.MaxIterations != nil {
		config.MaxIterations = *c.MaxIterations
	}
	if c.Argon2MemoryKiB != nil {
		config.Argon2MemoryKiB = *c.Argon2MemoryKiB
	}
	if c.Argon2Lanes != nil {
		config.Argon2Lanes = *c.Argon2Lanes
	}
	if c.SaltSize != nil {
		config.SaltSize = *c.SaltSize
	}
	if c.KeyBits != nil {
		config.KeyBits = *c.KeyBits
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
