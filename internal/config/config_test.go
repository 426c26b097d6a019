package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.JWT.TokenExpiration != "24h" {
		t.Errorf("token expiration = %q, want 24h", cfg.JWT.TokenExpiration)
	}
	if cfg.Database.DBName != "coursehub" {
		t.Errorf("dbname = %q, want coursehub", cfg.Database.DBName)
	}
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error when no JWT secret is configured")
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := []byte(`
server:
  port: "9000"
jwt:
  secret: "file-secret"
  token_expiration: "1h"
`)
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	// Env beats file.
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "9999" {
		t.Errorf("port = %q, want env override 9999", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "file-secret" {
		t.Errorf("jwt secret = %q, want file-secret", cfg.JWT.Secret)
	}
	if cfg.JWT.TokenExpiration != "1h" {
		t.Errorf("token expiration = %q, want 1h", cfg.JWT.TokenExpiration)
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "coursehub"

	want := "postgres://app:pw@db.internal:5433/coursehub?sslmode=disable"
	if got := cfg.GetPostgresConnectionString(); got != want {
		t.Errorf("connection string = %q, want %q", got, want)
	}
}
