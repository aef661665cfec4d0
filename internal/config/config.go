package config

import (
	"os"
	"strconv"
	"time"

	"datasight/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	AI       AIConfig
	Data     DataConfig
	Analysis AnalysisConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
	UIPort  string
}

// AIConfig holds settings for the optional generative insight provider.
// APIKey may be empty: the engine runs fully without the provider and
// the insight composer substitutes its fallback set.
type AIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// DataConfig holds data processing settings
type DataConfig struct {
	UploadDir   string
	MaxFileSize int64
}

// AnalysisConfig holds the engine's tunable thresholds.
// Defaults match the documented behavior: a 100-row inference sample,
// full-dataset scope for quality and outlier passes.
type AnalysisConfig struct {
	SampleSize           int     // rows used for type inference and column stats
	MinOutlierRows       int     // numeric values required before fencing
	MinCorrelationPairs  int     // paired samples required per column pair
	CorrelationThreshold float64 // |r| below this is discarded
	MinTrendRows         int     // rows required for trend detection
	MaxConcurrentPairs   int64   // correlation pairs computed at once
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   loadServerConfig(),
		AI:       loadAIConfig(),
		Data:     loadDataConfig(),
		Analysis: loadAnalysisConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		UIPort:  getEnvOrDefault("UI_PORT", "8081"),
	}
}

func loadAIConfig() AIConfig {
	return AIConfig{
		APIKey:      os.Getenv("OPENAI_API_KEY"),
		BaseURL:     getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Model:       getEnvOrDefault("LLM_MODEL", "gpt-4o-mini"),
		MaxTokens:   getEnvIntOrDefault("MAX_TOKENS", 1024),
		Temperature: getEnvFloatOrDefault("TEMPERATURE", 0.7),
		Timeout:     getEnvDurationOrDefault("LLM_TIMEOUT", 30*time.Second),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		UploadDir:   getEnvOrDefault("UPLOAD_DIR", os.TempDir()),
		MaxFileSize: int64(getEnvIntOrDefault("MAX_FILE_SIZE_MB", 50)) << 20,
	}
}

func loadAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		SampleSize:           getEnvIntOrDefault("ANALYSIS_SAMPLE_SIZE", 100),
		MinOutlierRows:       getEnvIntOrDefault("ANALYSIS_MIN_OUTLIER_ROWS", 5),
		MinCorrelationPairs:  getEnvIntOrDefault("ANALYSIS_MIN_CORRELATION_PAIRS", 5),
		CorrelationThreshold: getEnvFloatOrDefault("ANALYSIS_CORRELATION_THRESHOLD", 0.5),
		MinTrendRows:         getEnvIntOrDefault("ANALYSIS_MIN_TREND_ROWS", 5),
		MaxConcurrentPairs:   int64(getEnvIntOrDefault("ANALYSIS_MAX_CONCURRENT_PAIRS", 4)),
	}
}

func validateConfig(config *Config) error {
	if config.Analysis.SampleSize <= 0 {
		return errors.ConfigInvalid("analysis sample size must be positive")
	}
	if config.Analysis.CorrelationThreshold < 0 || config.Analysis.CorrelationThreshold >= 1 {
		return errors.ConfigInvalid("correlation threshold must be in [0, 1)")
	}
	if config.Analysis.MaxConcurrentPairs <= 0 {
		return errors.ConfigInvalid("max concurrent pairs must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
