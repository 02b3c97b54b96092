package common

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all application configuration, loaded from the environment.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	OpenAI   OpenAIConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string        `env:"DB_URL" env-required:"true"`
	MaxConns         int32         `env:"DB_MAX_CONNS" env-default:"20"`
	MinConns         int32         `env:"DB_MIN_CONNS" env-default:"5"`
	MaxConnLifetime  time.Duration `env:"DB_MAX_CONN_LIFETIME" env-default:"30m"`
	MaxConnIdleTime  time.Duration `env:"DB_MAX_CONN_IDLE_TIME" env-default:"5m"`
	DialTimeout      time.Duration `env:"DB_DIAL_TIMEOUT" env-default:"3s"`
	StatementTimeout time.Duration `env:"DB_STATEMENT_TIMEOUT" env-default:"0"`
}

// ServerConfig holds gRPC server configuration
type ServerConfig struct {
	GRPCAddr string `env:"GRPC_ADDR" env-default:":8080"`
}

// StorageConfig holds the document store location.
type StorageConfig struct {
	Root string `env:"STORAGE_ROOT" env-default:"./data/docs"`
}

// OpenAIConfig holds generative-model configuration.
type OpenAIConfig struct {
	APIKey      string        `env:"OPENAI_API_KEY" env-default:""`
	BaseURL     string        `env:"OPENAI_BASE_URL" env-default:""`
	Model       string        `env:"OPENAI_MODEL" env-default:"gpt-4o"`
	Temperature float32       `env:"OPENAI_TEMPERATURE" env-default:"0.1"`
	Timeout     time.Duration `env:"OPENAI_TIMEOUT" env-default:"45s"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, NewAppError("CONFIG_ERROR", "reading environment", err)
	}
	return &cfg, nil
}
