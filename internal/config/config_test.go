package config

import (
	"testing"
	"time"

	"github.com/diamondstats/gameday/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.GamedayBaseURL != "http://gd2.mlb.com/components/game/mlb" {
		t.Fatalf("unexpected GamedayBaseURL: %q", cfg.GamedayBaseURL)
	}
	if cfg.GamedayTimeout != 30*time.Second {
		t.Fatalf("unexpected GamedayTimeout: %s", cfg.GamedayTimeout)
	}
	if cfg.ImportMode != "replace" {
		t.Fatalf("unexpected ImportMode: %q", cfg.ImportMode)
	}
	if cfg.ImportMaxWorkers != 4 {
		t.Fatalf("unexpected ImportMaxWorkers: %d", cfg.ImportMaxWorkers)
	}
	if cfg.QStashEnabled {
		t.Fatalf("qstash must be disabled by default")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ImportModeValidation(t *testing.T) {
	t.Setenv("IMPORT_MODE", "upsert")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid IMPORT_MODE")
	}
}

func TestLoad_ImportModeMerge(t *testing.T) {
	t.Setenv("IMPORT_MODE", "Merge")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ImportMode != "merge" {
		t.Fatalf("unexpected ImportMode: %q", cfg.ImportMode)
	}
}

func TestLoad_QStashRequiresTokenWhenEnabled(t *testing.T) {
	t.Setenv("QSTASH_ENABLED", "true")
	t.Setenv("QSTASH_TOKEN", "")
	t.Setenv("QSTASH_TARGET_BASE_URL", "https://worker.internal")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when QSTASH_ENABLED=true without QSTASH_TOKEN")
	}
}

func TestLoad_QStashConfigParsing(t *testing.T) {
	t.Setenv("QSTASH_ENABLED", "true")
	t.Setenv("QSTASH_TOKEN", "token-123")
	t.Setenv("QSTASH_TARGET_BASE_URL", "https://worker.internal")
	t.Setenv("QSTASH_RETRIES", "5")
	t.Setenv("QSTASH_TIMEOUT", "7s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.QStashEnabled || cfg.QStashToken != "token-123" {
		t.Fatalf("unexpected qstash config: %+v", cfg)
	}
	if cfg.QStashRetries != 5 || cfg.QStashTimeout != 7*time.Second {
		t.Fatalf("unexpected qstash tuning: retries=%d timeout=%s", cfg.QStashRetries, cfg.QStashTimeout)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerWhenEnabled(t *testing.T) {
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_CircuitTuning(t *testing.T) {
	t.Setenv("GAMEDAY_CIRCUIT_FAILURE_COUNT", "9")
	t.Setenv("GAMEDAY_CIRCUIT_OPEN_TIMEOUT", "45s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.GamedayCircuitFailureCount != 9 {
		t.Fatalf("unexpected failure count: %d", cfg.GamedayCircuitFailureCount)
	}
	if cfg.GamedayCircuitOpenTimeout != 45*time.Second {
		t.Fatalf("unexpected open timeout: %s", cfg.GamedayCircuitOpenTimeout)
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}
