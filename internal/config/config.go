package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Tokens struct {
		SignupGrant        int `yaml:"signup_grant"`         // balance for new users
		DefaultFeatureCost int `yaml:"default_feature_cost"` // fallback when feature_costs has no row
	} `yaml:"tokens"`

	Payment struct {
		WebhookSecret string `yaml:"webhook_secret"`
		Currency      string `yaml:"currency"`
	} `yaml:"payment"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseTLS       bool   `yaml:"use_tls"`
	} `yaml:"email"`

	Insights struct {
		RefreshInterval int `yaml:"refresh_interval"` // worker tick, minutes
		UpdatePeriod    int `yaml:"update_period"`    // days between insight refreshes
	} `yaml:"insights"`
}

var AppConfig *Config

// LoadConfig reads config.yaml unless DATABASE_URL is set, in which case
// configuration comes from environment variables (test mode).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60
	cfg.Payment.WebhookSecret = os.Getenv("PAYMENT_WEBHOOK_SECRET")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Tokens.SignupGrant == 0 {
		cfg.Tokens.SignupGrant = 10000
	}
	if cfg.Tokens.DefaultFeatureCost == 0 {
		cfg.Tokens.DefaultFeatureCost = 500
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = "INR"
	}
	if cfg.Insights.RefreshInterval == 0 {
		cfg.Insights.RefreshInterval = 60
	}
	if cfg.Insights.UpdatePeriod == 0 {
		cfg.Insights.UpdatePeriod = 7
	}
	if cfg.Email.FromEmail == "" {
		cfg.Email.FromEmail = "no-reply@careerpilot.app"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
