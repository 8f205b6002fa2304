// Package config loads strongcheck settings from defaults, an optional YAML
// file, STRONGCHECK_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g.
// STRONGCHECK_CHECK_KIND or STRONGCHECK_LOGGING_LEVEL.
const EnvPrefix = "STRONGCHECK"

// Config is the complete strongcheck configuration.
type Config struct {
	Check   CheckConfig   `mapstructure:"check" validate:"required"`
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
}

// CheckConfig selects what is checked and how results are written.
type CheckConfig struct {
	Kind   string `mapstructure:"kind" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=text json yaml yml"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}

var configValidator = validator.New()

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"kind":       "check.kind",
	"format":     "check.format",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// RegisterFlags adds the flags Load binds to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("kind", "k", "", "catalog kind to check values against")
	fs.StringP("format", "f", "", "output format: text, json or yaml")
	fs.String("log-level", "", "log level: debug, info, warn or error")
	fs.String("log-format", "", "log format: json or text")
	fs.StringP("config", "c", "", "path to a YAML config file")
}

// Load builds the configuration. fs may be nil; when it carries a
// non-empty --config flag that file must exist, otherwise config.yaml is
// looked up in the working directory and $HOME/.strongcheck and may be
// absent.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := ""
	if fs != nil {
		path, _ = fs.GetString("config")
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.strongcheck")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Check.Kind = strings.ToLower(strings.TrimSpace(cfg.Check.Kind))
	cfg.Check.Format = strings.ToLower(cfg.Check.Format)
	cfg.Logging.Level = strings.ToLower(cfg.Logging.Level)
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("check.kind", "email")
	v.SetDefault("check.format", "text")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: %v)",
			fieldError.Namespace(), fieldError.Tag(), fieldError.Value()))
	}
	return fmt.Errorf("validation errors: %s", strings.Join(messages, "; "))
}

// SlogLevel maps Level to a slog level, defaulting to warn.
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

// NewLogger returns a logger writing to w in the configured format.
func (l LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
