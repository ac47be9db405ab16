package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres (default) or mysql
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Reset struct {
		// BaseURL is the front-end page the emailed reset link points at.
		BaseURL string `yaml:"base_url"`
		// TokenTTLMinutes is how long a reset token stays redeemable.
		TokenTTLMinutes int `yaml:"token_ttl_minutes"`
	} `yaml:"reset"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. Environment variables win over the yaml
// file; secrets (DATABASE_URL, SMTP_PASSWORD) are only ever read from the
// environment, never stored in the repo.
func LoadConfig() {
	// A local .env is a convenience for development; absence is not an error.
	_ = godotenv.Load()

	var cfg Config
	cfg.Database.Driver = "postgres"
	cfg.Reset.TokenTTLMinutes = 60

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	applyEnvOverrides(&cfg)

	if cfg.Database.DSN == "" {
		log.Fatal("No database DSN configured: set DATABASE_URL or database.url in the config file")
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.Reset.BaseURL == "" {
		cfg.Reset.BaseURL = "http://localhost:3000/reset-password"
	}

	AppConfig = &cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		cfg.Email.SMTPPort, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.Email.SMTPUsername = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.SMTPPassword = v
	}
	if v := os.Getenv("FROM_EMAIL"); v != "" {
		cfg.Email.FromEmail = v
	}
	if v := os.Getenv("RESET_BASE_URL"); v != "" {
		cfg.Reset.BaseURL = v
	}
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
