package config

import (
	"os"
	"strconv"
)

// StorageConfig selects where generated documents are written.
type StorageConfig struct {
	// Backend is either "local" or "minio".
	Backend  string
	FilesDir string
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ReferenceConfig controls the stamp duty reference table.
type ReferenceConfig struct {
	// DataFile optionally replaces the embedded jurisdiction data.
	DataFile           string
	DefaultDescription string
	DefaultURL         string
}

// LogConfig holds zap logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost string
	Port    string
	// PublicBaseURL prefixes links to generated files. When empty, links
	// are built from the incoming request's base URL.
	PublicBaseURL string
	AuthToken     string
	ValidatePhone string
	TemplatesDir  string
	BodyLimit     int
	Log           LogConfig
	Storage       StorageConfig
	MinIO         MinIOConfig
	Reference     ReferenceConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:       getEnv("APP_HOST", "localhost:8080"),
		Port:          getEnv("PORT", "8080"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		AuthToken:     getEnv("RENTSMART_VALID_TOKEN", ""),
		ValidatePhone: getEnv("VALIDATE_PHONE", "919999999999"),
		TemplatesDir:  getEnv("TEMPLATES_DIR", ""),
		BodyLimit:     getEnvInt("BODY_LIMIT_BYTES", 64*1024),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Storage: StorageConfig{
			Backend:  getEnv("STORAGE_BACKEND", "local"),
			FilesDir: getEnv("FILES_DIR", "files"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Reference: ReferenceConfig{
			DataFile:           getEnv("REFERENCE_DATA_FILE", ""),
			DefaultDescription: getEnv("STAMP_DUTY_DEFAULT_DESCRIPTION", ""),
			DefaultURL:         getEnv("STAMP_DUTY_DEFAULT_URL", ""),
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
