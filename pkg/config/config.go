package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDriverS3    = "s3"
	StorageDriverMinio = "minio"
)

type Config struct {
	// Server
	ServerPort string
	LogLevel   string

	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// RabbitMQ
	RabbitMQHost     string
	RabbitMQPort     string
	RabbitMQUser     string
	RabbitMQPassword string

	// Object storage
	StorageDriver      string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSEndpoint        string
	S3UseSSL           string
	S3BucketName       string
	S3PublicBaseURL    string

	// Media
	ImageMaxWidth          int
	ImageMaxHeight         int
	ImageQuality           int
	ImageMaxPixels         int64
	ImageMaxBytes          int64
	VideoMaxBytes          int64
	DefaultBienID          string
	CompensateOrphanUpload bool
	MediaCacheTTL          time.Duration

	// Campay
	CampayBaseURL     string
	CampayAccessToken string
	CampayTimeout     time.Duration

	// Payments
	DefaultPaymentUserID string
	DefaultPaymentBienID string
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	config := &Config{
		ServerPort: getEnv("SERVER_PORT", getEnv("PORT", "8000")),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "immo_media"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		RabbitMQHost:     getEnv("RABBITMQ_HOST", "localhost"),
		RabbitMQPort:     getEnv("RABBITMQ_PORT", "5672"),
		RabbitMQUser:     getEnv("RABBITMQ_USER", "guest"),
		RabbitMQPassword: getEnv("RABBITMQ_PASSWORD", ""),

		StorageDriver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverS3)),
		AWSRegion:          getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpoint:        getEnv("AWS_ENDPOINT", ""),
		S3UseSSL:           getEnv("S3_USE_SSL", "true"),
		S3BucketName:       getEnv("S3_BUCKET_NAME", "immo-media"),
		S3PublicBaseURL:    getEnv("S3_PUBLIC_BASE_URL", ""),

		ImageMaxWidth:          getEnvInt("IMAGE_MAX_WIDTH", 1200),
		ImageMaxHeight:         getEnvInt("IMAGE_MAX_HEIGHT", 1200),
		ImageQuality:           getEnvInt("IMAGE_QUALITY", 75),
		ImageMaxPixels:         int64(getEnvInt("IMAGE_MAX_PIXELS", 89_478_485)),
		ImageMaxBytes:          int64(getEnvInt("IMAGE_MAX_BYTES", 10*1024*1024)),
		VideoMaxBytes:          int64(getEnvInt("VIDEO_MAX_BYTES", 50*1024*1024)),
		DefaultBienID:          getEnv("MEDIA_DEFAULT_BIEN_ID", "bien_test"),
		CompensateOrphanUpload: getEnvBool("MEDIA_COMPENSATE_ORPHANS", false),
		MediaCacheTTL:          getEnvDuration("MEDIA_CACHE_TTL", 10*time.Minute),

		CampayBaseURL:     strings.TrimRight(getEnv("CAMPAY_BASE_URL", "https://demo.campay.net/api"), "/"),
		CampayAccessToken: getEnv("CAMPAY_ACCESS_TOKEN", ""),
		CampayTimeout:     getEnvDuration("CAMPAY_TIMEOUT", 30*time.Second),

		DefaultPaymentUserID: getEnv("PAYMENT_DEFAULT_USER_ID", "user_test"),
		DefaultPaymentBienID: getEnv("PAYMENT_DEFAULT_BIEN_ID", "bien_test"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the values that would otherwise fail deep inside a request.
func (c *Config) Validate() error {
	if c.ImageMaxWidth <= 0 || c.ImageMaxHeight <= 0 {
		return fmt.Errorf("image bounding box must be positive, got %dx%d", c.ImageMaxWidth, c.ImageMaxHeight)
	}
	if c.ImageQuality < 1 || c.ImageQuality > 100 {
		return fmt.Errorf("image quality must be in 1..100, got %d", c.ImageQuality)
	}
	if c.ImageMaxPixels <= 0 {
		return fmt.Errorf("image pixel limit must be positive, got %d", c.ImageMaxPixels)
	}
	if c.ImageMaxBytes <= 0 || c.VideoMaxBytes <= 0 {
		return fmt.Errorf("media size limits must be positive")
	}
	switch c.StorageDriver {
	case StorageDriverS3, StorageDriverMinio:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	return nil
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost,
		c.DBUser,
		c.DBPassword,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
