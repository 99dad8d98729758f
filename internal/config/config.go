package config

import (
	"os"
	"strconv"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// OpenAIConfig holds settings for the OpenAI-backed adapters
// (speech-to-text and translation).
type OpenAIConfig struct {
	APIKey           string
	WhisperModel     string
	TranslationModel string
}

// GeminiConfig holds settings for the Gemini-backed adapters
// (vision tagging, content generation, image styling).
type GeminiConfig struct {
	APIKey       string
	ContentModel string
	VisionModel  string
	ImageModel   string
}

// AIConfig holds the shared retry/breaker knobs applied to every
// outbound AI call, plus the content cache TTL.
type AIConfig struct {
	MaxRetries      int
	RetryBackoff    time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
	ContentCacheTTL time.Duration
}

// ExportConfig controls marketing-pack export behavior.
type ExportConfig struct {
	LinkExpiry time.Duration
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
	AI       AIConfig
	Export   ExportConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8080"),
		Port:    getEnv("PORT", "8080"), // default only for non-sensitive value
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		OpenAI: OpenAIConfig{
			APIKey:           getEnv("OPENAI_API_KEY", ""),
			WhisperModel:     getEnv("OPENAI_WHISPER_MODEL", "whisper-1"),
			TranslationModel: getEnv("OPENAI_TRANSLATION_MODEL", "gpt-4o-mini"),
		},
		Gemini: GeminiConfig{
			APIKey:       getEnv("GEMINI_API_KEY", ""),
			ContentModel: getEnv("GEMINI_CONTENT_MODEL", "gemini-2.5-flash"),
			VisionModel:  getEnv("GEMINI_VISION_MODEL", "gemini-2.5-flash"),
			ImageModel:   getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image-preview"),
		},
		AI: AIConfig{
			MaxRetries:      getEnvInt("AI_MAX_RETRIES", 3),
			RetryBackoff:    getEnvDuration("AI_RETRY_BACKOFF", 500*time.Millisecond),
			BreakerFailures: getEnvInt("AI_BREAKER_FAILURES", 5),
			BreakerCooldown: getEnvDuration("AI_BREAKER_COOLDOWN", 30*time.Second),
			ContentCacheTTL: getEnvDuration("AI_CONTENT_CACHE_TTL", 10*time.Minute),
		},
		Export: ExportConfig{
			LinkExpiry: getEnvDuration("EXPORT_LINK_EXPIRY", 7*24*time.Hour),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return def
}
