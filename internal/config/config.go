package config

import (
	"os"
	"strings"
	"time"

	"github.com/tradeyardgit/TradeYard/internal/pkg/jwt"
)

type AppConfig struct {
	// Server
	HTTPAddr  string
	BaseURL   string
	RedisAddr string
	RedisPass string

	// JWT
	JWT jwt.Config

	// SMTP
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
	SMTPFromName string
	SMTPSecure   bool

	// Image storage (MinIO / S3-compatible)
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool

	// Messaging
	NATSURL string

	// Image analysis
	GeminiAPIKey string
	GeminiModel  string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8000"),
		BaseURL:   getEnv("BASE_URL", "https://tradeyard.com"),
		RedisAddr: getEnv("REDIS_ADDR", "redis-tradeyard:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		JWT: jwt.Config{
			PrivPath: getEnv("JWT_PRIVATE_KEY_PATH", "/app/secrets/jwt_private.pem"),
			PubPath:  getEnv("JWT_PUBLIC_KEY_PATH", "/app/secrets/jwt_public.pem"),
			Issuer:   "tradeyard",
			Audience: "tradeyard-users",
			TTL:      720 * time.Hour,
			KID:      "tradeyard-key",
		},

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "465"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPass:     getEnv("SMTP_PASS", ""),
		SMTPFromName: getEnv("SMTP_FROM_NAME", "TradeYard"),
		SMTPSecure:   strings.ToLower(getEnv("SMTP_SECURE", "true")) == "true",

		S3Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", "ad-images"),
		S3UseSSL:    strings.ToLower(getEnv("S3_USE_SSL", "false")) == "true",

		NATSURL: getEnv("NATS_URL", "nats://localhost:4222"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
