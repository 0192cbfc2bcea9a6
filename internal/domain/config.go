package domain

import "time"

// Configuration Models

// Config represents the main application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Predictor PredictorConfig `mapstructure:"predictor"`
	Rationale RationaleConfig `mapstructure:"rationale"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// StorageConfig selects and configures the durable key/value backend
// that holds the prediction collection and session state.
type StorageConfig struct {
	// Backend is one of "sqlite", "postgres", "redis", "memory".
	Backend     string `mapstructure:"backend"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	PostgresURL string `mapstructure:"postgres_url"`
	RedisURL    string `mapstructure:"redis_url"`
}

// PredictorConfig configures the scoring service.
type PredictorConfig struct {
	// ScanDelay simulates processing latency around a scan. It exists
	// for UX parity with the original client and does no work; tests
	// run with zero delay.
	ScanDelay time.Duration `mapstructure:"scan_delay"`
	// ReportDelay simulates the deployment-report calculation delay.
	ReportDelay time.Duration `mapstructure:"report_delay"`
}

// RationaleConfig configures the external generative-text enrichment
// client. The core never depends on it for correctness.
type RationaleConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	Timeout   time.Duration `mapstructure:"timeout"`
	RateLimit int           `mapstructure:"rate_limit"`
	CacheSize int           `mapstructure:"cache_size"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
