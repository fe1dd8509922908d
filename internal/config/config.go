package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"robotsim/internal/robot"
)

// EnvConfig names the config file when no path is given on the command line.
const EnvConfig = "ROBOTSIM_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Robot   RobotConfig   `toml:"robot"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// RobotConfig is the default placement used by single-robot commands
type RobotConfig struct {
	X         int    `toml:"x"`
	Y         int    `toml:"y"`
	Direction string `toml:"direction"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads path, falling back to $ROBOTSIM_CONFIG and then to defaults.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Robot.Direction == "" {
		c.Robot.Direction = string(robot.North)
	}
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.General.LogLevel); err != nil {
		return fmt.Errorf("general.log_level: %w", err)
	}
	switch c.General.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("general.log_format: unknown format %q", c.General.LogFormat)
	}
	if _, err := robot.ParseBearing(c.Robot.Direction); err != nil {
		return fmt.Errorf("robot.direction: %w", err)
	}
	return nil
}

// Placement returns the configured start position and bearing.
func (c *Config) Placement() (int, int, robot.Bearing, error) {
	b, err := robot.ParseBearing(c.Robot.Direction)
	if err != nil {
		return 0, 0, "", err
	}
	return c.Robot.X, c.Robot.Y, b, nil
}
