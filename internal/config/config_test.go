package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogPath, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantDB := filepath.Join(home, ".therapylog", "therapy_sessions.db")
	if cfg.DBPath != wantDB {
		t.Fatalf("expected db path %s, got %s", wantDB, cfg.DBPath)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvDBPath, "~/clinic/patients.db")
	t.Setenv(EnvLogPath, "/tmp/therapylog-test.log")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if want := filepath.Join(home, "clinic", "patients.db"); cfg.DBPath != want {
		t.Fatalf("expected db path %s, got %s", want, cfg.DBPath)
	}
	if cfg.LogPath != "/tmp/therapylog-test.log" {
		t.Fatalf("unexpected log path %s", cfg.LogPath)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoadDotEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvLogLevel, "")

	work := t.TempDir()
	if err := os.WriteFile(filepath.Join(work, ".env"), []byte("THERAPYLOG_DB=/tmp/from-dotenv.db\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	wd, _ := os.Getwd()
	if err := os.Chdir(work); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	// godotenv never overrides variables that are already set
	os.Unsetenv(EnvDBPath)
	t.Cleanup(func() { os.Unsetenv(EnvDBPath) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DBPath != "/tmp/from-dotenv.db" {
		t.Fatalf("expected db path from .env, got %s", cfg.DBPath)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
