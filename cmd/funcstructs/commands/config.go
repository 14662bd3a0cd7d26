package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/caleblevy/funcstructs-sub001/internal/plotpage"
)

// Default configuration values.
const (
	defaultTheme = string(plotpage.ThemeDark)
	defaultTitle = "Functional graph"
	defaultSeed  = int64(1)

	envPrefix = "FUNCSTRUCTS"
)

// ErrUnknownTheme is returned for a theme other than dark or light.
var ErrUnknownTheme = errors.New(`theme must be "dark" or "light"`)

// PlotConfig holds settings for the plot command.
type PlotConfig struct {
	Theme string `mapstructure:"theme"`
	Title string `mapstructure:"title"`
	Seed  int64  `mapstructure:"seed"`
}

// LoadPlotConfig loads plot settings from an optional config file with
// environment-variable overrides (FUNCSTRUCTS_THEME and friends).
func LoadPlotConfig(configPath string) (*PlotConfig, error) {
	v := viper.New()

	v.SetDefault("theme", defaultTheme)
	v.SetDefault("title", defaultTitle)
	v.SetDefault("seed", defaultSeed)

	if configPath != "" {
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var cfg PlotConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *PlotConfig) validate() error {
	switch plotpage.Theme(c.Theme) {
	case plotpage.ThemeDark, plotpage.ThemeLight:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrUnknownTheme, c.Theme)
	}
}
