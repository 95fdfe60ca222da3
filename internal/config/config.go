package config

import (
	"time"

	"github.com/mzmzeee/hashing-showcase/internal/cryptox"
)

// Config holds runtime settings for the hashsig CLI.
type Config struct {
	DatabaseDSN      string
	DBTimeout        time.Duration
	HashConstruction string
	Iterations       int
	MaxIterations    int
	Argon2MemoryKiB  uint32
	Argon2Lanes      uint8
	SaltSize         int
	KeyBits          int
	LogLevel         string
}

// FlagNames lists the short flags owned by the configuration. The CLI strips
// them before parsing subcommand arguments.
var FlagNames = []string{"-c", "-config", "-d", "-o", "-k", "-i", "-x", "-m", "-p", "-s", "-b", "-l"}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = ""
	c.DBTimeout = 5 * time.Second
	c.HashConstruction = string(cryptox.ConstructionArgon2id)
	c.Iterations = 10000
	c.MaxIterations = 0
	c.Argon2MemoryKiB = 64 * 1024
	c.Argon2Lanes = 1
	c.SaltSize = 16
	c.KeyBits = 2048
	c.LogLevel = "info"
}

// StretchParams converts the hashing section into cryptox parameters. Zero
// values fall back to the construction defaults.
func (c *Config) StretchParams() cryptox.StretchParams {
	p := cryptox.DefaultStretchParams(cryptox.Construction(c.HashConstruction))
	if c.MaxIterations > 0 {
		p.MaxIterations = c.MaxIterations
	}
	if c.Argon2MemoryKiB > 0 {
		p.MemoryKiB = c.Argon2MemoryKiB
	}
	if c.Argon2Lanes > 0 {
		p.Lanes = c.Argon2Lanes
	}
	return p
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags. The result
// is validated before it is returned.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no component can honor.
func (c *Config) Validate() error {
	_, err := cryptox.ParseConstruction(c.HashConstruction)
	return err
}
