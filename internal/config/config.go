// Package config loads searchquery settings from defaults, an optional YAML
// file and SEARCHQUERY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/searchquery/internal/syntax"
)

// EnvPrefix prefixes environment overrides, e.g. SEARCHQUERY_LOG_LEVEL.
const EnvPrefix = "SEARCHQUERY"

// Config holds all settings.
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Translate TranslateConfig `mapstructure:"translate"`
	Lint      LintConfig      `mapstructure:"lint"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// TranslateConfig holds defaults for the translate command.
type TranslateConfig struct {
	Syntax string `mapstructure:"syntax"`
}

// LintConfig holds defaults for the lint command.
type LintConfig struct {
	Strict      bool `mapstructure:"strict"`
	MaxAttempts int  `mapstructure:"max_attempts"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetDefault("translate.syntax", string(syntax.SyntaxWoS))

	v.SetDefault("lint.strict", false)
	v.SetDefault("lint.max_attempts", 5)
}

// Load reads configuration into v. With an empty cfgFile a searchquery.yaml
// in the working directory is used if present.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("searchquery")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}

	if _, err := syntax.ParseSyntax(c.Translate.Syntax); err != nil {
		return fmt.Errorf("translate.syntax: %w", err)
	}

	if c.Lint.MaxAttempts < 1 {
		return errors.New("lint.max_attempts must be at least 1")
	}
	return nil
}
