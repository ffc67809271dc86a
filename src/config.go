package src

import (
	"fmt"
	"os"
	"strings"
	"time"

	"infinity_api/internal/config"
	"infinity_api/src/model"

	"github.com/kelseyhightower/envconfig"
)

// ConfigFileEnv names the variable holding an optional YAML config path.
const ConfigFileEnv = "CONFIG_FILE"

// Storage drivers.
const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Log        model.LogConfig        `envconfig:"LOG" yaml:"log"`
	Server     model.ServerConfig     `envconfig:"SERVER" yaml:"server"`
	Storage    model.StorageConfig    `envconfig:"STORAGE" yaml:"storage"`
	Mongo      model.MongoConfig      `envconfig:"MONGO" yaml:"mongo"`
	Redis      model.RedisConfig      `envconfig:"REDIS" yaml:"redis"`
	Simulation model.SimulationConfig `envconfig:"SIMULATION" yaml:"simulation"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Log: model.LogConfig{
			Level:      "info",
			Format:     "json",
			Output:     "stdout",
			FilePath:   "logs/infinity-api.log",
			TimeFormat: "rfc3339",
		},
		Server: model.ServerConfig{
			Host:            "0.0.0.0",
			Port:            3000,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Storage: model.StorageConfig{
			Driver: StorageMongo,
		},
		Mongo: model.MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "rocketpy",
			ConnectTimeout: 10 * time.Second,
		},
		Redis: model.RedisConfig{
			TTL: 10 * time.Minute,
		},
		Simulation: model.SimulationConfig{
			Timeout: 2 * time.Minute,
		},
	}
}

// LoadConfig layers defaults, the optional YAML file named by CONFIG_FILE and
// the process environment, in that order.
func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := config.LoadFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadFile overlays the YAML file at path onto c.
func (c *Config) LoadFile(path string) error {
	return config.LoadFile(path, c)
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Driver) {
	case StorageMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("MONGO_URI is required when STORAGE_DRIVER=mongo")
		}
		if c.Mongo.Database == "" {
			return fmt.Errorf("MONGO_DATABASE cannot be empty")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
