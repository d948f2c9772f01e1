package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DataSourceFile     = "file"
	DataSourceDynamoDB = "dynamodb"

	SessionStoreMemory = "memory"
	SessionStoreValkey = "valkey"
)

type Config struct {
	Env        string
	ServerPort string
	LogLevel   string

	DataSource       string
	ReviewsPath      string
	TopicsPath       string
	ReviewsTableName string
	TopicsTableName  string

	AWSEndpoint string
	AWSRegion   string

	SessionStore   string
	SessionTTL     time.Duration
	ValkeyAddress  string
	ValkeyPassword string
	ValkeyTLS      bool
}

// Load reads the dashboard configuration from the environment. Call LoadEnv
// first to pick up the per-environment .env file.
func Load() Config {
	return Config{
		Env:        getEnv("APP_ENV", "dev"),
		ServerPort: getEnv("SERVER_PORT", "8501"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		DataSource:       strings.ToLower(getEnv("DATA_SOURCE", DataSourceFile)),
		ReviewsPath:      getEnv("REVIEWS_PATH", "review_sentiments.xlsx"),
		TopicsPath:       getEnv("TOPICS_PATH", "topic_results.xlsx"),
		ReviewsTableName: getEnv("REVIEWS_TABLE_NAME", "ReviewSentiments"),
		TopicsTableName:  getEnv("TOPICS_TABLE_NAME", "TopicResults"),

		AWSEndpoint: getEnv("AWS_ENDPOINT", ""),
		AWSRegion:   getEnv("AWS_REGION", "us-west-2"),

		SessionStore:   strings.ToLower(getEnv("SESSION_STORE", SessionStoreMemory)),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		ValkeyAddress:  getEnv("VALKEY_INIT_ADDRESS", "localhost:6379"),
		ValkeyPassword: getEnv("VALKEY_PASSWORD", ""),
		ValkeyTLS:      getEnvAsBool("VALKEY_TLS", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
