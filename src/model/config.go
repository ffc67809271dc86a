package model

import "time"

// ----------------------------------------------------
// ================ Config ================

// LogConfig holds configuration for the global logger.
// Format is json or console, Output is stdout, stderr or file, and
// TimeFormat is rfc3339, unix or iso8601.
type LogConfig struct {
	Level      string `envconfig:"LEVEL" yaml:"level"`
	Format     string `envconfig:"FORMAT" yaml:"format"`
	Output     string `envconfig:"OUTPUT" yaml:"output"`
	FilePath   string `envconfig:"FILE_PATH" yaml:"file_path"`
	TimeFormat string `envconfig:"TIME_FORMAT" yaml:"time_format"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host            string        `envconfig:"HOST" yaml:"host"`
	Port            int           `envconfig:"PORT" yaml:"port"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" yaml:"read_timeout"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`
}

// StorageConfig selects the document store backend: mongo or memory
type StorageConfig struct {
	Driver string `envconfig:"DRIVER" yaml:"driver"`
}

// MongoConfig holds MongoDB connection settings
type MongoConfig struct {
	URI            string        `envconfig:"URI" yaml:"uri"`
	Database       string        `envconfig:"DATABASE" yaml:"database"`
	ConnectTimeout time.Duration `envconfig:"CONNECT_TIMEOUT" yaml:"connect_timeout"`
	MaxPoolSize    uint64        `envconfig:"MAX_POOL_SIZE" yaml:"max_pool_size"`
}

// RedisConfig holds the read-through cache settings. An empty URL disables the cache.
type RedisConfig struct {
	URL string        `envconfig:"URL" yaml:"url"`
	TTL time.Duration `envconfig:"TTL" yaml:"ttl"`
}

// SimulationConfig points at the external simulation worker. An empty URL
// selects the offline engine.
type SimulationConfig struct {
	URL     string        `envconfig:"URL" yaml:"url"`
	Timeout time.Duration `envconfig:"TIMEOUT" yaml:"timeout"`
}
