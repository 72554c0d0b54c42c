package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// isolate points config and env lookups at an empty temp directory
func isolate(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("HOME", tempDir)
	for _, key := range []string{EnvStorage, EnvDataDir, EnvRedisAddr, EnvRedisDB, EnvListenAddr, EnvThemeFile} {
		t.Setenv(key, "")
	}
	return tempDir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()

	configDir := filepath.Join(dir, "kanbanpro")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddTask != "a" {
		t.Errorf("Default AddTask key = %s, want a", defaults.AddTask)
	}
	if defaults.GrabTask != "space" {
		t.Errorf("Default GrabTask key = %q, want space", defaults.GrabTask)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	tempDir := isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("Backend = %s, want %s", cfg.Storage.Backend, BackendSQLite)
	}
	if cfg.Storage.Key != "kanban-columns" {
		t.Errorf("Key = %s, want kanban-columns", cfg.Storage.Key)
	}
	if want := filepath.Join(tempDir, ".kanbanpro"); cfg.Storage.DataDir != want {
		t.Errorf("DataDir = %s, want %s", cfg.Storage.DataDir, want)
	}
	if cfg.Server.ListenAddr != "127.0.0.1:8420" {
		t.Errorf("ListenAddr = %s, want 127.0.0.1:8420", cfg.Server.ListenAddr)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, `storage:
  backend: redis
  redis_addr: "10.0.0.5:6379"
  redis_db: 2
key_mappings:
  quit: "x"
theme:
  todo: "#123456"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Storage.Backend != BackendRedis {
		t.Errorf("Backend = %s, want redis", cfg.Storage.Backend)
	}
	if cfg.Storage.RedisAddr != "10.0.0.5:6379" || cfg.Storage.RedisDB != 2 {
		t.Errorf("Redis = %s/%d, want 10.0.0.5:6379/2", cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Custom Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	// Missing values should be filled with defaults
	if cfg.KeyMappings.AddTask != "a" {
		t.Errorf("AddTask key = %s, want a (default)", cfg.KeyMappings.AddTask)
	}
	if cfg.ColorScheme.Todo != "#123456" {
		t.Errorf("Todo color = %s, want #123456", cfg.ColorScheme.Todo)
	}
	if cfg.ColorScheme.Complete != "#86EFAC" {
		t.Errorf("Complete color = %s, want #86EFAC (default)", cfg.ColorScheme.Complete)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "storage: [not, a, map")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with invalid YAML should fail")
	}
}

func TestLoadConfigUnknownBackend(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "storage:\n  backend: etcd\n")

	_, err := Load()
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("Load() error = %v, want ErrUnknownBackend", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	tempDir := isolate(t)
	writeConfig(t, tempDir, "storage:\n  backend: sqlite\n")

	t.Setenv(EnvStorage, BackendMemory)
	t.Setenv(EnvDataDir, "/var/lib/kanbanpro")
	t.Setenv(EnvRedisAddr, "redis:6380")
	t.Setenv(EnvRedisDB, "3")
	t.Setenv(EnvListenAddr, ":9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("Backend = %s, want memory", cfg.Storage.Backend)
	}
	if cfg.Storage.DataDir != "/var/lib/kanbanpro" {
		t.Errorf("DataDir = %s, want /var/lib/kanbanpro", cfg.Storage.DataDir)
	}
	if cfg.Storage.RedisAddr != "redis:6380" || cfg.Storage.RedisDB != 3 {
		t.Errorf("Redis = %s/%d, want redis:6380/3", cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
	}
	if cfg.Server.ListenAddr != ":9000" {
		t.Errorf("ListenAddr = %s, want :9000", cfg.Server.ListenAddr)
	}
}

func TestEnvOverrides_InvalidRedisDB(t *testing.T) {
	isolate(t)
	t.Setenv(EnvRedisDB, "two")

	if _, err := Load(); err == nil {
		t.Fatal("Load() with non-numeric redis db should fail")
	}
}

func TestSaveAndReload(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.KeyMappings.Quit = "Q"
	cfg.Storage.Backend = BackendMemory
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	path, err := Path()
	if err != nil {
		t.Fatalf("Path() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}
	if reloaded.KeyMappings.Quit != "Q" {
		t.Errorf("Quit = %s, want Q", reloaded.KeyMappings.Quit)
	}
	if reloaded.KeyMappings.GrabTask != "space" {
		t.Errorf("GrabTask = %q, want space", reloaded.KeyMappings.GrabTask)
	}
	if reloaded.Storage.Backend != BackendMemory {
		t.Errorf("Backend = %s, want memory", reloaded.Storage.Backend)
	}
}

func TestSQLitePath(t *testing.T) {
	tests := []struct {
		name    string
		storage StorageConfig
		want    string
	}{
		{"relative", StorageConfig{DataDir: "/data", SQLiteFile: "board.db"}, filepath.Join("/data", "board.db")},
		{"absolute", StorageConfig{DataDir: "/data", SQLiteFile: "/tmp/board.db"}, "/tmp/board.db"},
		{"memory", StorageConfig{DataDir: "/data", SQLiteFile: ":memory:"}, ":memory:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.storage.SQLitePath(); got != tt.want {
				t.Errorf("SQLitePath() = %s, want %s", got, tt.want)
			}
		})
	}
}
