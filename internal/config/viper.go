// Package config provides Viper-based hierarchical configuration
// management: defaults, an optional YAML config file, and BORDEROU_*
// environment variables, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Dirs struct {
		Input  string `mapstructure:"input" yaml:"input"`
		Output string `mapstructure:"output" yaml:"output"`
	} `mapstructure:"dirs" yaml:"dirs"`

	Validation struct {
		// SampleSize caps the rows the rate validator samples per file.
		SampleSize int `mapstructure:"sample_size" yaml:"sample_size"`
	} `mapstructure:"validation" yaml:"validation"`

	Output struct {
		// XLSX additionally writes import tables as XLSX workbooks.
		XLSX bool `mapstructure:"xlsx" yaml:"xlsx"`
		// SummaryReport writes the per-file financial summary alongside
		// the cleaned CSV.
		SummaryReport bool `mapstructure:"summary_report" yaml:"summary_report"`
	} `mapstructure:"output" yaml:"output"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.borderou")
	v.AddConfigPath(".borderou")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BORDEROU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars; a broken config file
			// should not block a batch run.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("dirs.input", "in")
	v.SetDefault("dirs.output", "out")

	v.SetDefault("validation.sample_size", 10)

	v.SetDefault("output.xlsx", true)
	v.SetDefault("output.summary_report", true)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Validation.SampleSize < 1 || config.Validation.SampleSize > 10 {
		return fmt.Errorf("validation.sample_size must be between 1 and 10, got: %d", config.Validation.SampleSize)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logrus logger from the Config.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
