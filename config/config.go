package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port string

	MongoURI string
	DBName   string

	JWTSecretKey string
	JWTIssuer    string
	JWTAudience  string

	BookServiceURL    string
	CartServiceURL    string
	HTTPClientTimeout time.Duration

	CORSAllowedOrigins []string

	LogLevel  string
	LogPretty bool
	GinMode   string
}

// LoadEnv reads .env into the process environment. Variables already set win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using system environment")
	}
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func Load() (*Config, error) {
	timeout, err := time.ParseDuration(GetEnv("HTTP_CLIENT_TIMEOUT", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_CLIENT_TIMEOUT: %w", err)
	}

	pretty, err := strconv.ParseBool(GetEnv("LOG_PRETTY", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_PRETTY: %w", err)
	}

	cfg := &Config{
		Port:               GetEnv("PORT", "8080"),
		MongoURI:           GetEnv("MONGO_URI", ""),
		DBName:             GetEnv("DB_NAME", ""),
		JWTSecretKey:       GetEnv("JWT_SECRET_KEY", ""),
		JWTIssuer:          GetEnv("JWT_ISSUER", ""),
		JWTAudience:        GetEnv("JWT_AUDIENCE", ""),
		BookServiceURL:     GetEnv("BOOK_SERVICE_URL", "https://localhost:7183/api/book/"),
		CartServiceURL:     GetEnv("CART_SERVICE_URL", "https://localhost:7283/api/cart"),
		HTTPClientTimeout:  timeout,
		CORSAllowedOrigins: splitList(GetEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           GetEnv("LOG_LEVEL", "info"),
		LogPretty:          pretty,
		GinMode:            GetEnv("GIN_MODE", "release"),
	}

	var missing []string
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if cfg.JWTSecretKey == "" {
		missing = append(missing, "JWT_SECRET_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
