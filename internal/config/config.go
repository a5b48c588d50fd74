package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables understood by therapylog
const (
	EnvDBPath   = "THERAPYLOG_DB"
	EnvLogPath  = "THERAPYLOG_LOG"
	EnvLogLevel = "THERAPYLOG_LOG_LEVEL"
)

type Config struct {
	DBPath   string
	LogPath  string
	LogLevel slog.Level
}

// DefaultConfigWithRoot returns a config that keeps everything under root
func DefaultConfigWithRoot(root string) *Config {
	return &Config{
		DBPath:   filepath.Join(root, "therapy_sessions.db"),
		LogPath:  filepath.Join(root, "therapylog.log"),
		LogLevel: slog.LevelInfo,
	}
}

// Load builds the config from defaults, a .env file in the working
// directory, and the process environment, in that order.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home directory: %w", err)
	}

	cfg := DefaultConfigWithRoot(filepath.Join(homeDir, ".therapylog"))

	// Load environment variables from .env file
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv(EnvDBPath)); v != "" {
		c.DBPath = expandHome(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogPath)); v != "" {
		c.LogPath = expandHome(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		level, err := ParseLevel(v)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}
	return nil
}

// ParseLevel converts debug/info/warn/error into a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: use debug, info, warn or error", s)
	}
	return level, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
