package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration. Values come from an optional
// TOML file, with every field overridable through environment variables.
type Config struct {
	Port string `toml:"port"`

	DBHost     string `toml:"db_host"`
	DBPort     string `toml:"db_port"`
	DBUser     string `toml:"db_user"`
	DBPassword string `toml:"db_password"`
	DBName     string `toml:"db_name"`

	HFBaseURL string `toml:"hf_base_url"`
	HFModel   string `toml:"hf_model"`

	WgerBaseURL string `toml:"wger_base_url"`

	OCRLanguage string `toml:"ocr_language"`
}

// LoadConfig reads the TOML config file (HEALTHCOACH_CONFIG or ./config.toml
// when present), applies environment overrides, then defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	path := os.Getenv("HEALTHCOACH_CONFIG")
	if path == "" {
		if _, err := os.Stat("config.toml"); err == nil {
			path = "config.toml"
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	}

	overrideFromEnv(&cfg.Port, "PORT")
	overrideFromEnv(&cfg.DBHost, "DB_HOST")
	overrideFromEnv(&cfg.DBPort, "DB_PORT")
	overrideFromEnv(&cfg.DBUser, "DB_USER")
	overrideFromEnv(&cfg.DBPassword, "DB_PASSWORD")
	overrideFromEnv(&cfg.DBName, "DB_NAME")
	overrideFromEnv(&cfg.HFBaseURL, "HF_BASE_URL")
	overrideFromEnv(&cfg.HFModel, "HF_MODEL")
	overrideFromEnv(&cfg.WgerBaseURL, "WGER_BASE_URL")
	overrideFromEnv(&cfg.OCRLanguage, "OCR_LANGUAGE")

	applyDefaults(cfg)

	if cfg.DBUser == "" || cfg.DBName == "" {
		return nil, fmt.Errorf("database configuration is missing (DB_USER, DB_NAME)")
	}

	return cfg, nil
}

func overrideFromEnv(field *string, key string) {
	if v := os.Getenv(key); v != "" {
		*field = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.HFBaseURL == "" {
		cfg.HFBaseURL = "https://api-inference.huggingface.co"
	}
	if cfg.HFModel == "" {
		cfg.HFModel = "mistralai/Mistral-7B-Instruct-v0.2"
	}
	if cfg.WgerBaseURL == "" {
		cfg.WgerBaseURL = "https://wger.de/api/v2"
	}
	if cfg.OCRLanguage == "" {
		cfg.OCRLanguage = "eng"
	}
}
