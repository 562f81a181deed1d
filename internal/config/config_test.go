package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfigLoadSave(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := Default()
	cfg.UserName = "Ada"
	cfg.LastRoomID = "kitchen"
	cfg.NotificationTTLSeconds = 8

	if err := cfg.Save(); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	// Verify file exists
	configPath := filepath.Join(tmpDir, "smartroom", "config.json")
	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		t.Fatal("Config file was not created")
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected mode 0600, got %v", info.Mode().Perm())
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if loaded.UserName != "Ada" {
		t.Errorf("Expected user Ada, got %q", loaded.UserName)
	}
	if loaded.LastRoomID != "kitchen" {
		t.Errorf("Expected LastRoomID kitchen, got %q", loaded.LastRoomID)
	}
	if loaded.NotificationTTL() != 8*time.Second {
		t.Errorf("Expected 8s TTL, got %v", loaded.NotificationTTL())
	}
	if loaded.Path() != configPath {
		t.Errorf("Expected path %s, got %s", configPath, loaded.Path())
	}
}

func TestConfigLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected defaults for missing file, got %v", err)
	}

	d := Default()
	if cfg.NotificationTTLSeconds != d.NotificationTTLSeconds {
		t.Errorf("Expected default TTL %d, got %d", d.NotificationTTLSeconds, cfg.NotificationTTLSeconds)
	}
	if cfg.DemoFeedInterval() != 20*time.Second {
		t.Errorf("Expected 20s feed interval, got %v", cfg.DemoFeedInterval())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected info log level, got %q", cfg.LogLevel)
	}
}

func TestConfigEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"user_name": "File"}`), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SMARTROOM_USER_NAME", "Env")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.UserName != "Env" {
		t.Errorf("Expected env override, got %q", cfg.UserName)
	}
}

func TestConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{not json`), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestConfigValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"demo_fault_percent": 150}`), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestConfigDatabaseFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := Default()
	path, err := cfg.DatabaseFile()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(tmpDir, "smartroom", "rooms.db") {
		t.Errorf("Unexpected default database path %s", path)
	}

	cfg.DatabasePath = "/tmp/custom.db"
	path, _ = cfg.DatabaseFile()
	if path != "/tmp/custom.db" {
		t.Errorf("Expected custom database path, got %s", path)
	}
}

func TestConfigSaveLastRoomIDKeepsOverridesOffDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"user_name": "Ada", "log_level": "warn"}`), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SMARTROOM_LOG_FILE", "/tmp/env.log")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	cfg.DatabasePath = "/tmp/flag.db"

	if err := cfg.SaveLastRoomID("kitchen"); err != nil {
		t.Fatalf("SaveLastRoomID failed: %v", err)
	}
	if cfg.LastRoomID != "kitchen" {
		t.Errorf("Expected in-memory last room kitchen, got %q", cfg.LastRoomID)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, leaked := range []string{"/tmp/flag.db", "/tmp/env.log", "database_path", "log_file"} {
		if strings.Contains(string(data), leaked) {
			t.Errorf("Saved config contains %q:\n%s", leaked, data)
		}
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Failed to reload config: %v", err)
	}
	if reloaded.LastRoomID != "kitchen" || reloaded.UserName != "Ada" || reloaded.LogLevel != "warn" {
		t.Errorf("Unexpected reloaded config %+v", reloaded)
	}

	// Clearing removes the key
	if err := cfg.SaveLastRoomID(""); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if strings.Contains(string(data), "last_room_id") {
		t.Errorf("Expected last_room_id removed:\n%s", data)
	}
}

func TestConfigSaveLastRoomIDCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.SaveLastRoomID("office"); err != nil {
		t.Fatalf("SaveLastRoomID failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "{\n  \"last_room_id\": \"office\"\n}" {
		t.Errorf("Unexpected file contents:\n%s", data)
	}
}
