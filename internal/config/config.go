// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres password=postgres dbname=thehfpv port=5432 sslmode=disable"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// JWTSecret is loaded once at startup and never mutated afterwards.
	JWTSecret   string        `env:"JWT_SECRET,notEmpty"`
	JWTValidity time.Duration `env:"JWT_VALIDITY" envDefault:"30m"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
	OAuthRedirectURL   string `env:"OAUTH_REDIRECT_URL" envDefault:"http://localhost:8080/login/oauth2/code/google"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`

	EmailAPIKey  string `env:"EMAIL_API_KEY"`
	EmailSender  string `env:"EMAIL_SENDER" envDefault:"noreply@thehfpv.com"`
	EmailEnabled bool   `env:"EMAIL_ENABLED" envDefault:"false"`

	UploadDir     string `env:"UPLOAD_DIR" envDefault:"uploads"`
	UploadBaseURL string `env:"UPLOAD_BASE_URL" envDefault:"http://localhost:8080/uploads"`
	MaxUploadMB   int64  `env:"MAX_UPLOAD_MB" envDefault:"10"`

	S3Enabled  bool   `env:"S3_ENABLED" envDefault:"false"`
	S3Bucket   string `env:"S3_BUCKET"`
	S3Region   string `env:"S3_REGION" envDefault:"us-east-1"`
	S3Endpoint string `env:"S3_ENDPOINT"`
	S3User     string `env:"S3_USER"`
	S3Password string `env:"S3_PASSWORD"`

	RateLimitWindow      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RateLimitMaxRequests int           `env:"RATE_LIMIT_MAX_REQUESTS" envDefault:"10"`
	GlobalRatePerSecond  int           `env:"GLOBAL_RATE_PER_SECOND" envDefault:"100"`
	GlobalRateBurst      int           `env:"GLOBAL_RATE_BURST" envDefault:"200"`
}

// Load reads .env if present, then parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
