package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "glossa.db" {
			t.Errorf("expected database path glossa.db, got %s", config.Database.Path)
		}

		if config.API.Language != "en" {
			t.Errorf("expected language en, got %s", config.API.Language)
		}

		if config.API.BaseURL == "" {
			t.Error("expected a default API base URL")
		}

		if config.Prefetch.PageSize != 50 {
			t.Errorf("expected prefetch page size 50, got %d", config.Prefetch.PageSize)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "http://localhost:3030"
language = "pt"

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10

[prefetch]
rate_per_second = 2.5
page_size = 25
max_pages = 3
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "http://localhost:3030" {
			t.Errorf("expected base URL http://localhost:3030, got %s", config.API.BaseURL)
		}

		if config.API.Language != "pt" {
			t.Errorf("expected language pt, got %s", config.API.Language)
		}

		if config.Database.MaxOpenConns != 20 {
			t.Errorf("expected max open conns 20, got %d", config.Database.MaxOpenConns)
		}

		if config.Prefetch.MaxPages != 3 {
			t.Errorf("expected max pages 3, got %d", config.Prefetch.MaxPages)
		}
	})

	t.Run("LoadConfig Missing File", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}
