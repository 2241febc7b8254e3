package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
port = "9999"
db_user = "coach"
db_name = "healthcoach"
hf_model = "some/other-model"
`
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HEALTHCOACH_CONFIG", path)
	t.Setenv("PORT", "7070")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Port != "7070" {
		t.Errorf("env should override file: port=%q", cfg.Port)
	}
	if cfg.DBUser != "coach" || cfg.DBName != "healthcoach" {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.DBPassword != "secret" {
		t.Errorf("env-only value lost: %q", cfg.DBPassword)
	}
	if cfg.HFModel != "some/other-model" {
		t.Errorf("unexpected model: %q", cfg.HFModel)
	}
	if cfg.WgerBaseURL == "" || cfg.OCRLanguage == "" {
		t.Error("defaults not applied")
	}
}

func TestLoadConfigRequiresDatabaseSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(""), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HEALTHCOACH_CONFIG", path)
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error without database settings")
	}
}
