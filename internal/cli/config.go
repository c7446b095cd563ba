package cli

import (
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mcoot/gridgame-go/internal/model"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration. Values come from an optional YAML file,
// then GRIDGAME_* environment variables, then command-line flags.
type Config struct {
	Width    int    `yaml:"width" env:"GRIDGAME_WIDTH" env-default:"7"`
	Height   int    `yaml:"height" env:"GRIDGAME_HEIGHT" env-default:"6"`
	Disks    int    `yaml:"disks" env:"GRIDGAME_DISKS" env-default:"5"`
	Towers   string `yaml:"towers" env:"GRIDGAME_TOWERS" env-default:"ABC"`
	Output   string `yaml:"output" env:"GRIDGAME_OUTPUT" env-default:"text"`
	LogFile  string `yaml:"log-file" env:"GRIDGAME_LOG_FILE"`
	LogLevel string `yaml:"log-level" env:"GRIDGAME_LOG_LEVEL" env-default:"warn"`
	Verbose  bool   `yaml:"verbose" env:"GRIDGAME_VERBOSE"`
}

// LoadConfig reads the config file at path, if any, and the environment
func LoadConfig(path string) (*Config, error) {
	c := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, c)
	} else {
		err = cleanenv.ReadEnv(c)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return c, nil
}

// Validate checks that the settings describe a playable game
func (c *Config) Validate() error {
	if c.Width < model.WinLength || c.Width > 9 {
		return fmt.Errorf("%w: width must be between %d and 9", model.ErrInvalidConfig, model.WinLength)
	}
	if c.Height < model.WinLength || c.Height > 9 {
		return fmt.Errorf("%w: height must be between %d and 9", model.ErrInvalidConfig, model.WinLength)
	}
	if c.Disks < 1 || c.Disks > 9 {
		return fmt.Errorf("%w: disks must be between 1 and 9", model.ErrInvalidConfig)
	}
	if len(c.Towers) < 2 {
		return fmt.Errorf("%w: at least two towers are required", model.ErrInvalidConfig)
	}
	seen := make(map[rune]bool)
	for _, name := range c.Towers {
		if name < 'A' || name > 'Z' || seen[name] {
			return fmt.Errorf("%w: towers must be distinct letters A-Z", model.ErrInvalidConfig)
		}
		seen[name] = true
	}
	if c.Output != OutputText && c.Output != OutputJSON {
		return fmt.Errorf("%w: output must be %s or %s", model.ErrInvalidConfig, OutputText, OutputJSON)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: %v", model.ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the configured log level, forced to debug by Verbose
func (c *Config) Level() (slog.Level, error) {
	if c.Verbose {
		return slog.LevelDebug, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, err
	}
	return level, nil
}

// GameConfig returns the engine settings
func (c *Config) GameConfig() model.GameConfig {
	return model.GameConfig{
		Width:      c.Width,
		Height:     c.Height,
		Disks:      c.Disks,
		TowerNames: c.Towers,
	}
}
