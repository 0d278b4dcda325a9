// shared/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// CommonConfig holds infrastructure details used by MULTIPLE services.
// An empty host/broker means the dependency is not configured and the
// service falls back to its in-process implementation.
type CommonConfig struct {
	//Database (PostgreSQL) config
	DB_USER     string
	DB_PASSWORD string
	DB_NAME     string
	DB_HOST     string
	DB_PORT     string
	//Kafka config
	KAFKA_TOPIC    string
	KAFKA_BROKER   string
	KAFKA_GROUP_ID string
	//RabbitMQ config
	RABBITMQ_USER     string
	RABBITMQ_PASSWORD string
	RABBITMQ_HOST     string
	RABBITMQ_PORT     string
	//Redis (booking drafts)
	REDIS_URL string
	//Temporal
	TEMPORAL_HOST_PORT string
}

// LoadCommonConfig reads an optional .env file and returns the shared
// infrastructure config.
func LoadCommonConfig() *CommonConfig {
	LoadDotEnv()
	return &CommonConfig{
		DB_USER:     os.Getenv("DB_USER"),
		DB_PASSWORD: os.Getenv("DB_PASSWORD"),
		DB_HOST:     os.Getenv("DB_HOST"),
		DB_PORT:     GetEnv("DB_PORT", "5432"),
		DB_NAME:     os.Getenv("DB_NAME"),

		KAFKA_TOPIC:    GetEnv("KAFKA_TOPIC", "fretxpress.events"),
		KAFKA_BROKER:   os.Getenv("KAFKA_BROKER"),
		KAFKA_GROUP_ID: GetEnv("KAFKA_GROUP_ID", "communications-group"),

		RABBITMQ_USER:     GetEnv("RABBITMQ_USER", "guest"),
		RABBITMQ_PASSWORD: GetEnv("RABBITMQ_PASSWORD", "guest"),
		RABBITMQ_HOST:     os.Getenv("RABBITMQ_HOST"),
		RABBITMQ_PORT:     os.Getenv("RABBITMQ_PORT"),

		REDIS_URL: os.Getenv("REDIS_URL"),

		TEMPORAL_HOST_PORT: os.Getenv("TEMPORAL_HOST_PORT"),
	}
}

// LoadDotEnv loads ./.env into the process environment when the file exists.
// Variables already set in the environment win.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: failed to load .env: %v", err)
	}
}

// GetDBURL formats the config into a PostgreSQL connection string
func (c *CommonConfig) GetDBURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", c.DB_USER, c.DB_PASSWORD, c.DB_HOST, c.DB_PORT, c.DB_NAME)
}

// HasDB reports whether a Postgres host was configured.
func (c *CommonConfig) HasDB() bool {
	return c.DB_HOST != ""
}

// HasKafka reports whether both a broker and a topic were configured.
func (c *CommonConfig) HasKafka() bool {
	return c.KAFKA_BROKER != "" && c.KAFKA_TOPIC != ""
}

// HasRabbitMQ reports whether a RabbitMQ host was configured.
func (c *CommonConfig) HasRabbitMQ() bool {
	return c.RABBITMQ_HOST != ""
}

// GetRabbitMQURL formats the config into a RabbitMQ connection string
func (c *CommonConfig) GetRabbitMQURL() string {
	//DEFAULTS STANDARD PORTS IF MISSING
	host := c.RABBITMQ_HOST
	if host == "" {
		host = "localhost"
	}
	port := c.RABBITMQ_PORT
	if port == "" {
		port = "5672"
	}

	return fmt.Sprintf("amqp://%s:%s@%s:%s/",
		c.RABBITMQ_USER, c.RABBITMQ_PASSWORD, host, port)
}

// GetEnv returns the value of key, or defaultValue when unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsDuration parses key as a time.Duration ("30m", "1s").
// A bare integer is read as seconds.
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}
	log.Printf("config: invalid duration %s=%q, using %v", key, value, defaultValue)
	return defaultValue
}

// GetEnvAsInt parses key as an int.
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
