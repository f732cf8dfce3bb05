package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const insecureDefaultSecret = "changemeplease"

type Config struct {
	Addr            string        `yaml:"addr"`
	DatabasePath    string        `yaml:"database_path"`
	SessionSecret   string        `yaml:"session_secret"`
	SessionDuration time.Duration `yaml:"session_duration"`
	APITimeout      time.Duration `yaml:"timeout"`
	Debug           bool          `yaml:"debug"`
}

// LoadConfig builds the config from environment variables, then overlays the
// optional YAML file at path when one is given.
func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	sessionDuration := 12 * time.Hour

	cfg := &Config{
		Addr:            getEnv("STRINGSHOP_ADDR", ":8080"),
		DatabasePath:    getEnv("STRINGSHOP_DATABASE_PATH", "stringshop.db"),
		SessionSecret:   getEnv("STRINGSHOP_SESSION_SECRET", insecureDefaultSecret),
		SessionDuration: sessionDuration,
		APITimeout:      apiTimeout,
		Debug:           getEnv("STRINGSHOP_DEBUG", "") == "true",
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate rejects configurations that must not reach production. The
// well-known default session secret is only tolerated when STRINGSHOP_ENV is
// "development".
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("session_secret must not be empty")
	}
	if c.SessionSecret == insecureDefaultSecret && os.Getenv("STRINGSHOP_ENV") != "development" {
		return fmt.Errorf("session_secret is the insecure default; set STRINGSHOP_SESSION_SECRET")
	}
	if c.SessionDuration <= 0 {
		return fmt.Errorf("session_duration must be positive")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
