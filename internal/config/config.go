package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	StyleLetters = "letters"
	StyleUnicode = "unicode"
)

type Config struct {
	Log         LogConfig         `mapstructure:"log"`
	Development DevelopmentConfig `mapstructure:"development"`
	Display     DisplayConfig     `mapstructure:"display"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DevelopmentConfig struct {
	Debug bool `mapstructure:"debug"`
}

type DisplayConfig struct {
	Style   string `mapstructure:"style"`    // "letters" or "unicode"
	ShowFEN bool   `mapstructure:"show_fen"` // print the FEN placement after the board
}

// Load reads config.yaml from . or ./config, then CAPTURE_* environment
// variables. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Enable environment variables
	v.SetEnvPrefix("CAPTURE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	defaults := Default()
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("development.debug", defaults.Development.Debug)
	v.SetDefault("display.style", defaults.Display.Style)
	v.SetDefault("display.show_fen", defaults.Display.ShowFEN)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "warn",
		},
		Development: DevelopmentConfig{
			Debug: false,
		},
		Display: DisplayConfig{
			Style:   StyleLetters,
			ShowFEN: false,
		},
	}
}

func (c *Config) Validate() error {
	switch c.Display.Style {
	case StyleLetters, StyleUnicode:
	default:
		return fmt.Errorf("invalid display.style %q: expected %q or %q", c.Display.Style, StyleLetters, StyleUnicode)
	}
	return nil
}
