package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"stackscan/api"
	"stackscan/checker"
)

type API struct {
	BaseURL     string        `yaml:"base_url"`
	AccountsURL string        `yaml:"accounts_url"`
	Timeout     time.Duration `yaml:"timeout"`
}

type Scan struct {
	Threshold         float64 `yaml:"threshold"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type Files struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type Config struct {
	API   API   `yaml:"api"`
	Scan  Scan  `yaml:"scan"`
	Files Files `yaml:"files"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		API: API{
			BaseURL:     api.MainnetStacksAPI,
			AccountsURL: api.MainnetAccountsAPI,
			Timeout:     api.DefaultTimeout,
		},
		Scan: Scan{
			Threshold:         5.0,
			RequestsPerSecond: float64(checker.DefaultRate),
			Burst:             checker.DefaultBurst,
		},
		Files: Files{
			Input:  "stacks_addresses.json",
			Output: "qualifying_addresses.json",
		},
	}
}

// Load reads a yaml config file; fields left unset fall back to defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	// Defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = api.MainnetStacksAPI
	}
	if c.API.AccountsURL == "" {
		c.API.AccountsURL = api.MainnetAccountsAPI
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = api.DefaultTimeout
	}
	if c.Scan.Threshold == 0 {
		c.Scan.Threshold = 5.0
	}
	if c.Scan.RequestsPerSecond == 0 {
		c.Scan.RequestsPerSecond = float64(checker.DefaultRate)
	}
	if c.Scan.Burst == 0 {
		c.Scan.Burst = checker.DefaultBurst
	}
	if c.Files.Input == "" {
		c.Files.Input = "stacks_addresses.json"
	}
	if c.Files.Output == "" {
		c.Files.Output = "qualifying_addresses.json"
	}
	return &c, nil
}
