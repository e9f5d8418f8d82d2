// Package config loads the tourbelt command configuration.
package config

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment overrides, e.g. TOURBELT_LOG_LEVEL.
const EnvPrefix = "TOURBELT"

// Config holds the runtime configuration of one tourbelt invocation.
// Values are populated from .tourbelt.yaml, TOURBELT_* env vars, and CLI flags.
type Config struct {
	Output    string `mapstructure:"output"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Init points v at its sources. An explicit cfgFile must exist; otherwise
// .tourbelt.yaml in the working directory is read when present.
func Init(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".tourbelt")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}

	return nil
}

// Load applies the built-in defaults for any value not set by config file,
// environment, or flags, and validates the result.
func Load(v *viper.Viper) (Config, error) {
	v.SetDefault("output", "")
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports an unknown log level or format.
func (c Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
		return nil
	default:
		return errors.Errorf("log format %q: want text or json", c.LogFormat)
	}
}

// Level parses LogLevel (debug, info, warn, error).
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, errors.Wrapf(err, "log level %q", c.LogLevel)
	}

	return l, nil
}

// NewLogger builds the slog logger described by c, writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	level, _ := c.Level()
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
