// Package config resolves runtime settings from the environment.
//
// The command line carries only the input path; everything else (log level and
// figure geometry) comes from JTOPPLOT_* variables so batch scripts can tune the
// output without changing invocations.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "JTOPPLOT"

// Default configuration values. 1800x1200 matches an 18x12 inch figure at 100 dpi.
const (
	DefaultLogLevel    = "info"
	DefaultWidth       = 1800
	DefaultHeight      = 1200
	DefaultTitlePrefix = "Jtop Plots - Thermal Chamber at"

	// MinPanelHeight is the smallest per-panel height that still fits a title,
	// tick labels and a legend.
	MinPanelHeight = 80
	MinWidth       = 400
)

// Config holds the application configuration.
type Config struct {
	LogLevel    string `mapstructure:"log_level"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	TitlePrefix string `mapstructure:"title_prefix"`
}

// Load reads configuration from JTOPPLOT_* environment variables.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("width", DefaultWidth)
	v.SetDefault("height", DefaultHeight)
	v.SetDefault("title_prefix", DefaultTitlePrefix)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the figure geometry can hold seven panels plus the title banner.
func (c *Config) Validate() error {
	if c.Width < MinWidth {
		return errors.Errorf("invalid width %d: must be at least %d", c.Width, MinWidth)
	}
	if min := 7*MinPanelHeight + 80; c.Height < min {
		return errors.Errorf("invalid height %d: must be at least %d", c.Height, min)
	}
	return nil
}
