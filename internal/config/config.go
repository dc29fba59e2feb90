package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Server struct {
		Host      string `json:"host"`
		Port      int    `json:"port"`
		JWTSecret string `json:"jwtSecret"`
	} `json:"server"`
	Postgres struct {
		DSN string `json:"dsn"`
	} `json:"postgres"`
	Auth struct {
		// CreatorUserID is the seeded account whose role assignment can
		// never be changed, not even by an admin.
		CreatorUserID uint `json:"creatorUserId"`
	} `json:"auth"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton). A NEWSROOM_SECRET
// environment variable, optionally supplied via a .env file, overrides the
// jwtSecret from the config file.
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		_ = godotenv.Load()
		if secret := os.Getenv("NEWSROOM_SECRET"); secret != "" {
			c.Server.JWTSecret = secret
		}
		// Minimal validation
		if c.Server.JWTSecret == "" {
			cfgErr = errors.New("jwtSecret must be set in config or NEWSROOM_SECRET")
			return
		}
		if c.Server.Port == 0 {
			c.Server.Port = 4000
		}
		if c.Auth.CreatorUserID == 0 {
			c.Auth.CreatorUserID = 1
		}
		cfg = &c
	})
	return cfg, cfgErr
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
