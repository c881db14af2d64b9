package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	configContent := `
server:
  port: 9090
log:
  level: "debug"
  format: "json"
auth:
  jwt_secret: "test-secret"
  access_expire_minutes: 15
  refresh_expire_hours: 48
openai:
  api_key: "sk-test"
  model: "gpt-4"
storage:
  endpoint: "localhost:9000"
  access_key: "minioadmin"
  secret_key: "minioadmin"
  bucket: "test-bucket"
  use_ssl: false
  expire_days: 14
rate_limit:
  requests_per_minute: 50
store:
  max_records: 200
users:
  - email: "admin@counselflow.test"
    password: "adminpass"
    first_name: "Admin"
    last_name: "User"
    role: "admin"
`
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(configContent); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}
	if cfg.Auth.JWTSecret != "test-secret" {
		t.Errorf("Expected jwt secret test-secret, got %s", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.AccessExpireMins != 15 {
		t.Errorf("Expected access expiry 15, got %d", cfg.Auth.AccessExpireMins)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("Expected api key sk-test, got %s", cfg.OpenAI.APIKey)
	}
	if cfg.Storage.Bucket != "test-bucket" {
		t.Errorf("Expected bucket test-bucket, got %s", cfg.Storage.Bucket)
	}
	if cfg.RateLimit.RequestsPerMinute != 50 {
		t.Errorf("Expected 50 requests per minute, got %d", cfg.RateLimit.RequestsPerMinute)
	}
	if len(cfg.Users) != 1 || cfg.Users[0].Email != "admin@counselflow.test" {
		t.Errorf("Expected seeded admin user, got %+v", cfg.Users)
	}
}

func TestLoadDefaults(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString("server:\n  port: 0\n"); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("Expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Auth.AccessExpireMins != 30 {
		t.Errorf("Expected default access expiry 30, got %d", cfg.Auth.AccessExpireMins)
	}
	if cfg.Auth.RefreshExpireHours != 168 {
		t.Errorf("Expected default refresh expiry 168, got %d", cfg.Auth.RefreshExpireHours)
	}
	if cfg.OpenAI.Model != "gpt-4" {
		t.Errorf("Expected default model gpt-4, got %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.Endpoint != "https://api.openai.com/v1/chat/completions" {
		t.Errorf("Expected default endpoint, got %s", cfg.OpenAI.Endpoint)
	}
	if cfg.RateLimit.RequestsPerMinute != 100 {
		t.Errorf("Expected default 100 requests per minute, got %d", cfg.RateLimit.RequestsPerMinute)
	}
	if cfg.Store.MaxRecords != 1000 {
		t.Errorf("Expected default max records 1000, got %d", cfg.Store.MaxRecords)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	content := "openai:\n  api_key: \"file-key\"\nauth:\n  jwt_secret: \"file-secret\"\n"
	if _, err := tmpFile.WriteString(content); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load(tmpFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.OpenAI.APIKey != "env-key" {
		t.Errorf("Expected env override env-key, got %s", cfg.OpenAI.APIKey)
	}
	if cfg.Auth.JWTSecret != "env-secret" {
		t.Errorf("Expected env override env-secret, got %s", cfg.Auth.JWTSecret)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString("server: [not a mapping"); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	tmpFile.Close()

	if _, err := Load(tmpFile.Name()); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}
