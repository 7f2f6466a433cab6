package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port             string         `mapstructure:"port"`
	Env              string         `mapstructure:"env"`
	LogLevel         string         `mapstructure:"log_level"`
	CORSAllowOrigins []string       `mapstructure:"cors_allow_origins"`
	Detector         DetectorConfig `mapstructure:"detector"`
	RateLimit        RateLimit      `mapstructure:"rate_limit"`
}

// DetectorConfig carries the process-wide anomaly pipeline settings. They are
// read once at startup and never mutated afterward.
type DetectorConfig struct {
	Contamination     float64 `mapstructure:"contamination"`
	Seed              int64   `mapstructure:"seed"`
	NeutralSeverity   int     `mapstructure:"neutral_severity"`
	HistoryMinRecords int     `mapstructure:"history_min_records"`
	HistoryFactor     float64 `mapstructure:"history_factor"`
	HistorySeverity   int     `mapstructure:"history_severity"`
}

// RateLimit configures the per-client token bucket on analysis endpoints.
type RateLimit struct {
	Enabled bool    `mapstructure:"enabled"`
	Rate    float64 `mapstructure:"rate"`
	Burst   int     `mapstructure:"burst"`
}

// Load reads configuration from an optional config.yaml and the environment,
// with sensible defaults for everything.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("port", "8080")
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_allow_origins", []string{"http://localhost:5173"})
	v.SetDefault("detector.contamination", 0.1)
	v.SetDefault("detector.seed", 42)
	v.SetDefault("detector.neutral_severity", 50)
	v.SetDefault("detector.history_min_records", 10)
	v.SetDefault("detector.history_factor", 2.0)
	v.SetDefault("detector.history_severity", 90)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rate", 5.0)
	v.SetDefault("rate_limit.burst", 10)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("freight")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Env = normalizeEnv(cfg.Env)
	return cfg, nil
}

func normalizeEnv(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	default:
		return "dev"
	}
}
