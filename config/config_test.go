package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"stackscan/api"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c := Default()
	if c.API.BaseURL != api.MainnetStacksAPI {
		t.Errorf("BaseURL=%s", c.API.BaseURL)
	}
	if c.API.AccountsURL != api.MainnetAccountsAPI {
		t.Errorf("AccountsURL=%s", c.API.AccountsURL)
	}
	if c.Scan.Threshold != 5.0 {
		t.Errorf("Threshold=%v", c.Scan.Threshold)
	}
	if c.Files.Input != "stacks_addresses.json" || c.Files.Output != "qualifying_addresses.json" {
		t.Errorf("Files=%+v", c.Files)
	}
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stackscan.yaml")
	yaml := `
api:
  base_url: http://localhost:3999/extended/v1/address
  timeout: 2s
scan:
  threshold: 25
files:
  input: wallets.json
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.API.BaseURL != "http://localhost:3999/extended/v1/address" {
		t.Errorf("BaseURL=%s", c.API.BaseURL)
	}
	if c.API.Timeout != 2*time.Second {
		t.Errorf("Timeout=%v", c.API.Timeout)
	}
	if c.Scan.Threshold != 25 {
		t.Errorf("Threshold=%v", c.Scan.Threshold)
	}
	if c.Files.Input != "wallets.json" {
		t.Errorf("Input=%s", c.Files.Input)
	}
	// Unset fields fall back to defaults.
	if c.API.AccountsURL != api.MainnetAccountsAPI {
		t.Errorf("AccountsURL=%s", c.API.AccountsURL)
	}
	if c.Files.Output != "qualifying_addresses.json" {
		t.Errorf("Output=%s", c.Files.Output)
	}
	if c.Scan.RequestsPerSecond != 5 || c.Scan.Burst != 5 {
		t.Errorf("Scan=%+v", c.Scan)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("api: [not: a mapping"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error")
	}
}
