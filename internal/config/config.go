package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/thenoetrevino/kanbanpro/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Environment overrides, applied after the config file and .env
const (
	EnvStorage    = "KANBANPRO_STORAGE"
	EnvDataDir    = "KANBANPRO_DATA_DIR"
	EnvRedisAddr  = "KANBANPRO_REDIS_ADDR"
	EnvRedisDB    = "KANBANPRO_REDIS_DB"
	EnvListenAddr = "KANBANPRO_LISTEN_ADDR"
	EnvThemeFile  = "KANBANPRO_THEME_FILE"
)

// ErrUnknownBackend is returned for a storage backend outside the supported set
var ErrUnknownBackend = errors.New("unknown storage backend")

// Config represents the application configuration
type Config struct {
	Storage     StorageConfig      `yaml:"storage"`
	Server      ServerConfig       `yaml:"server"`
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// StorageConfig selects and locates the key-value store holding the board
type StorageConfig struct {
	Backend    string `yaml:"backend"`
	DataDir    string `yaml:"data_dir"`
	SQLiteFile string `yaml:"sqlite_file"`
	RedisAddr  string `yaml:"redis_addr"`
	RedisDB    int    `yaml:"redis_db"`
	Key        string `yaml:"key"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Default returns a config with every field set to its default
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from the user's config directory.
// Returns default config if file doesn't exist.
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := Path()
	if err == nil {
		data, readErr := os.ReadFile(configPath)
		switch {
		case readErr == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
			}
		case !errors.Is(readErr, os.ErrNotExist):
			return nil, readErr
		}
	}

	loadDotEnv()
	loadThemeFile(config)
	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Validate reports settings that cannot be used
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Storage.Backend)
	}
}

// SQLitePath returns the database file, resolved against the data directory
func (s StorageConfig) SQLitePath() string {
	if s.SQLiteFile == ":memory:" || filepath.IsAbs(s.SQLiteFile) {
		return s.SQLiteFile
	}
	return filepath.Join(s.DataDir, s.SQLiteFile)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "kanbanpro", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "kanbanpro", "config.yaml"), nil
}

// defaultDataDir returns ~/.kanbanpro, or a relative directory when there is
// no home directory
func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".kanbanpro"
	}
	return filepath.Join(homeDir, ".kanbanpro")
}

// loadDotEnv reads .env from the working directory. Variables already set in
// the environment win.
func loadDotEnv() {
	_ = godotenv.Load()
}

// loadThemeFile merges the theme from KANBANPRO_THEME_FILE when it is set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file settings with environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvStorage); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		c.Storage.DataDir = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Storage.RedisAddr = v
	}
	if v := os.Getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid KANBANPRO_REDIS_DB %q: %w", v, err)
		}
		c.Storage.RedisDB = db
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		c.Server.ListenAddr = v
	}
	return nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.Storage.applyDefaults()
	if c.Server.ListenAddr == "" {
		c.Server.ListenAddr = "127.0.0.1:8420"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}

func (s *StorageConfig) applyDefaults() {
	if s.Backend == "" {
		s.Backend = BackendSQLite
	}
	if s.DataDir == "" {
		s.DataDir = defaultDataDir()
	}
	if s.SQLiteFile == "" {
		s.SQLiteFile = "kanbanpro.db"
	}
	if s.RedisAddr == "" {
		s.RedisAddr = "localhost:6379"
	}
	if s.Key == "" {
		s.Key = "kanban-columns"
	}
}
