package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const EnvPrefix = "SALES_ANALYZER"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Parser   ParserConfig   `mapstructure:"parser"`
	Forecast ForecastConfig `mapstructure:"forecast"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json or console
}

type ParserConfig struct {
	// Strict rejects a whole submission on the first malformed number instead of
	// carrying it through the report as an invalid figure.
	Strict bool `mapstructure:"strict"`
}

type ForecastConfig struct {
	Horizon    int `mapstructure:"horizon"`
	MinSamples int `mapstructure:"min_samples"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("parser.strict", false)
	v.SetDefault("forecast.horizon", 20)
	v.SetDefault("forecast.min_samples", 5)
	v.SetDefault("tracing.enabled", false)
}

// Load reads the configuration from profilePath, when given, and from SALES_ANALYZER_*
// environment variables. Environment variables win over the file.
func Load(profilePath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if profilePath != "" {
		v.SetConfigFile(profilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Forecast.Horizon < 1 {
		return fmt.Errorf("forecast.horizon must be positive, got %d", c.Forecast.Horizon)
	}
	if c.Forecast.MinSamples < 2 {
		return fmt.Errorf("forecast.min_samples must be at least 2, got %d", c.Forecast.MinSamples)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console', got '%s'", c.Log.Format)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return errors.New("log.level must be one of debug, info, warn, error")
	}
	return nil
}

// NewLogger builds the root logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) zerolog.Logger {
	if c.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
