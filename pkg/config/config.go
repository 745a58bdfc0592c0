package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system. Called once at startup;
// later calls return the first result.
func Init() error {
	once.Do(func() {
		setDefaults()

		viper.SetEnvPrefix("MEMO")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing config file is fine; defaults and env vars apply.
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetFloat64 returns a float64 config value
func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate checks the configuration using Viper values and
// auto-corrects out-of-range engine defaults
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	if peak := viper.GetFloat64("audio.target_peak"); peak <= 0 || peak > 1 {
		viper.Set("audio.target_peak", 0.89)
	}
	if threshold := viper.GetFloat64("audio.noise_threshold"); threshold <= 0 || threshold >= 1 {
		viper.Set("audio.noise_threshold", 0.05)
	}
	if pps := viper.GetFloat64("audio.pixels_per_second"); pps <= 0 {
		viper.Set("audio.pixels_per_second", 100.0)
	}
	if viper.GetInt64("server.max_upload_bytes") <= 0 {
		viper.Set("server.max_upload_bytes", int64(64*1024*1024))
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Audio.TargetPeak <= 0 || c.Audio.TargetPeak > 1 {
		c.Audio.TargetPeak = 0.89
	}
	if c.Audio.NoiseThreshold <= 0 || c.Audio.NoiseThreshold >= 1 {
		c.Audio.NoiseThreshold = 0.05
	}
	if c.Audio.PixelsPerSecond <= 0 {
		c.Audio.PixelsPerSecond = 100.0
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_upload_bytes", int64(64*1024*1024))

	viper.SetDefault("database.path", "./data/memo.db")
	viper.SetDefault("database.verbose", false)

	viper.SetDefault("audio.target_peak", 0.89)
	viper.SetDefault("audio.noise_threshold", 0.05)
	viper.SetDefault("audio.pixels_per_second", 100.0)
}
