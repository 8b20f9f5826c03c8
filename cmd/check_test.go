package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stackscan/checker"
)

func TestLoadAddresses(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stacks_addresses.json")
	if err := os.WriteFile(path, []byte(`{"alice":"SP1","bob":"SP2"}`), 0644); err != nil {
		t.Fatal(err)
	}

	addresses, err := loadAddresses(path)
	if err != nil {
		t.Fatalf("loadAddresses: %v", err)
	}
	if len(addresses) != 2 || addresses["alice"] != "SP1" {
		t.Fatalf("addresses=%v", addresses)
	}
}

func TestLoadAddresses_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadAddresses(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err=%v", err)
	}
}

func TestLoadAddresses_InvalidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stacks_addresses.json")
	if err := os.WriteFile(path, []byte(`{"alice": `), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadAddresses(path); err == nil {
		t.Fatal("expected error")
	}
}

func TestWriteResults_PrettyPrinted(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "qualifying_addresses.json")
	results := map[string]checker.Record{
		"alice": {Address: "SP1", Balance: 8},
	}
	if err := writeResults(path, results); err != nil {
		t.Fatalf("writeResults: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  \"alice\"") {
		t.Fatalf("not indented: %s", data)
	}

	var decoded map[string]checker.Record
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	if decoded["alice"] != results["alice"] {
		t.Fatalf("decoded=%v", decoded)
	}
}
