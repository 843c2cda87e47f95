package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultEnv          = "development"
	DefaultPort         = "8080"
	DefaultRedisAddr    = "localhost:6379"
	DefaultRedisDB      = 0
	DefaultKafkaBrokers = "localhost:9092"
	DefaultS3Region     = "us-east-1"
	DefaultS3Bucket     = "autohub-images"
	DefaultCORSOrigins  = "http://localhost:5173"
)

type Config struct {
	Env  string
	Port string

	DBURL string

	// JWTSecret signs identity tokens. Loaded once at startup and treated as
	// immutable afterwards; the token TTL itself is a compile-time constant.
	JWTSecret string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	KafkaBrokers []string

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	CORSOrigins string
}

// Load reads configuration from config/.env.<env> (if present) and the
// process environment. Environment variables win over file values. Missing
// required keys are fatal.
func Load() *Config {
	env := getEnv("ENV", DefaultEnv)

	loadEnvFile(env)

	return &Config{
		Env:           env,
		Port:          getEnv("PORT", DefaultPort),
		DBURL:         mustGetEnv("DB_URL"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		RedisAddr:     getEnv("REDIS_ADDR", DefaultRedisAddr),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", DefaultRedisDB),
		KafkaBrokers:  splitList(getEnv("KAFKA_BROKERS", DefaultKafkaBrokers)),
		S3Endpoint:    getEnv("S3_ENDPOINT", ""),
		S3Region:      getEnv("S3_REGION", DefaultS3Region),
		S3AccessKey:   getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:   getEnv("S3_SECRET_KEY", ""),
		S3Bucket:      getEnv("S3_BUCKET", DefaultS3Bucket),
		S3PublicURL:   getEnv("S3_PUBLIC_URL", ""),
		CORSOrigins:   getEnv("CORS_ORIGINS", DefaultCORSOrigins),
	}
}

func loadEnvFile(env string) {
	suffix := "dev"
	if env == "production" {
		suffix = "prod"
	}

	path := filepath.Join("config", ".env."+suffix)
	if _, err := os.Stat(path); err != nil {
		return
	}

	// godotenv never overrides variables already present in the environment.
	if err := godotenv.Load(path); err != nil {
		log.Printf("Failed to load config file %s: %v", path, err)
	}
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	log.Fatalf("Missing required config: %s", key)

	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}

	return val
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")

	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}

	return out
}
