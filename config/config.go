package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/yeremiapane/cafe-api/utils"
)

const defaultAPIKey = "TopSecretApiKey"

type Config struct {
	Port           string  `validate:"required,numeric"`
	GinMode        string  `validate:"omitempty,oneof=debug release test"`
	LogLevel       string  `validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
	DBDriver       string  `validate:"required,oneof=sqlite mysql"`
	DBDSN          string  `validate:"required"`
	APIKey         string  `validate:"required_without=APIKeyHash"`
	APIKeyHash     string  `validate:"omitempty,startswith=$2"`
	CORSOrigin     string  `validate:"required"`
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"gte=1"`
	// TrustedProxies lists the proxies whose X-Forwarded-For is believed.
	// Empty means the client address is always the TCP peer.
	TrustedProxies []string `validate:"dive,ip|cidr"`
}

var validate = validator.New()

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Debug(".env file not found, using process environment")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables alone.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		GinMode:    os.Getenv("GIN_MODE"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBDSN:      os.Getenv("DB_DSN"),
		APIKey:     os.Getenv("API_KEY"),
		APIKeyHash: os.Getenv("API_KEY_HASH"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}

	for _, p := range strings.Split(os.Getenv("TRUSTED_PROXIES"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, p)
		}
	}

	if cfg.DBDSN == "" && cfg.DBDriver == "sqlite" {
		cfg.DBDSN = "cafes.db"
	}

	if cfg.APIKey == "" && cfg.APIKeyHash == "" {
		utils.InfoLogger.Warn("API_KEY not set, using the default key")
		cfg.APIKey = defaultAPIKey
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "50"), 64); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "100")); err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// KeyVerifier picks bcrypt verification when a hash is configured.
func (c *Config) KeyVerifier() utils.KeyVerifier {
	if c.APIKeyHash != "" {
		return utils.BcryptKeyVerifier(c.APIKeyHash)
	}
	return utils.PlainKeyVerifier(c.APIKey)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
