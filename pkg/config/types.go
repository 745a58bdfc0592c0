package config

import "time"

// Config is the application configuration
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Audio       AudioConfig    `mapstructure:"audio"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	// MaxUploadBytes caps audio upload bodies; recordings can reach tens
	// of megabytes.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// AudioConfig holds engine defaults surfaced to the HTTP layer
type AudioConfig struct {
	// TargetPeak is the default normalization target.
	TargetPeak float64 `mapstructure:"target_peak"`
	// NoiseThreshold is the default noise gate threshold.
	NoiseThreshold float64 `mapstructure:"noise_threshold"`
	// PixelsPerSecond is the default waveform rendering density.
	PixelsPerSecond float64 `mapstructure:"pixels_per_second"`
}
