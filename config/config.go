package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the application. It is built
// once at startup and passed explicitly into the services that need it;
// business logic never reads the environment directly.
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	JWTSecret           string
	AccessExpiryMinutes int
	RefreshExpiryDays   int
	ResetExpiryMinutes  int
	BcryptCost          int

	LogLevel string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	FrontendURL string

	// Storage selects the avatar storage backend: "local", "s3" or "gcs".
	Storage            string
	LocalStoragePath   string
	S3Region           string
	S3Bucket           string
	GCSBucketName      string
	GCSCredentialsFile string

	Debug bool
}

// Load reads configuration from the environment (and an optional .env file)
// and validates the parts the process cannot run without.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: no .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		MongoURI: getEnv("MONGO_URI", ""),
		MongoDB:  getEnv("MONGO_DB", "ecommerce"),

		JWTSecret:           getEnv("JWT_SECRET", ""),
		AccessExpiryMinutes: getEnvAsInt("JWT_ACCESS_EXPIRATION_MINUTES", 30),
		RefreshExpiryDays:   getEnvAsInt("JWT_REFRESH_EXPIRATION_DAYS", 30),
		ResetExpiryMinutes:  getEnvAsInt("JWT_RESET_EXPIRATION_MINUTES", 10),
		BcryptCost:          getEnvAsInt("BCRYPT_COST", 10),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 465),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		EmailFrom:    getEnv("EMAIL_FROM", "no-reply@localhost"),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		Storage:            getEnv("STORAGE_BACKEND", "local"),
		LocalStoragePath:   getEnv("LOCAL_STORAGE_PATH", "./uploads"),
		S3Region:           getEnv("S3_REGION", "us-west-2"),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		GCSBucketName:      getEnv("GCS_BUCKET_NAME", ""),
		GCSCredentialsFile: getEnv("GCS_CREDENTIALS_FILE", ""),

		Debug: getEnvAsBool("DEBUG", false),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	return cfg, nil
}

// AccessExpiry returns the configured access token lifetime.
func (c *Config) AccessExpiry() time.Duration {
	return time.Duration(c.AccessExpiryMinutes) * time.Minute
}

// RefreshExpiry returns the configured refresh token lifetime.
func (c *Config) RefreshExpiry() time.Duration {
	return time.Duration(c.RefreshExpiryDays) * 24 * time.Hour
}

// ResetExpiry returns the configured password reset token lifetime.
func (c *Config) ResetExpiry() time.Duration {
	return time.Duration(c.ResetExpiryMinutes) * time.Minute
}

func (c *Config) validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is not set")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultVal int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultVal
}

func getEnvAsBool(key string, defaultVal bool) bool {
	valStr := getEnv(key, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return defaultVal
}
