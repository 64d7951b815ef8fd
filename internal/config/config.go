package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Env             string
	LogLevel        string
	Addr            string
	MongoURI        string
	MongoDatabase   string
	CoachCollection string
	Timeout         time.Duration
	// JWTConfigs verify client tokens (review submission).
	JWTConfigs []JWTConfig
	// AdminJWTConfigs verify tokens for /admin routes.
	AdminJWTConfigs []JWTConfig
	JWTAudience     string
	AllowedOrigins  []string
	RateLimitRPS    float64
	RateLimitBurst  int
}

// Load reads an optional .env file and the environment, and returns a fully populated Config.
func Load() (Config, error) {
	if err := godotenv.Load(envOrDefault("ENV_FILE", ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	timeout, err := parseDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}
	rps, err := parseFloat("RATE_LIMIT_RPS", 10)
	if err != nil {
		return Config{}, err
	}
	burst, err := parseInt("RATE_LIMIT_BURST", 20)
	if err != nil {
		return Config{}, err
	}

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_JWT_ISSUER", "coach-auth"),
			Secret: []byte(secret),
		})
	}
	var adminConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_ADMIN_JWT_SECRET")); secret != "" {
		adminConfigs = append(adminConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_ADMIN_JWT_ISSUER", "coach-admin"),
			Secret: []byte(secret),
		})
	}
	if len(jwtConfigs) == 0 && len(adminConfigs) == 0 {
		return Config{}, errors.New("JWT secrets not configured. Set AUTH_JWT_SECRET or AUTH_ADMIN_JWT_SECRET")
	}

	return Config{
		Env:             envOrDefault("APP_ENV", "production"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		Addr:            envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:        strings.TrimSpace(os.Getenv("MONGO_URI")),
		MongoDatabase:   envOrDefault("MONGO_DB", "twentymincoach"),
		CoachCollection: envOrDefault("COACH_COLLECTION", "coaches"),
		Timeout:         timeout,
		JWTConfigs:      jwtConfigs,
		AdminJWTConfigs: adminConfigs,
		JWTAudience:     strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
		AllowedOrigins:  parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		RateLimitRPS:    rps,
		RateLimitBurst:  burst,
	}, nil
}

// NewLogger builds a development logger for APP_ENV=development and a JSON production logger otherwise.
func NewLogger(env, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", level, err)
	}
	var cfg zap.Config
	if strings.EqualFold(env, "development") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func parseFloat(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func parseInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
