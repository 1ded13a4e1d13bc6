package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"carousel/internal/carousel"
)

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	Carousel CarouselConfig `toml:"carousel"`
	UI       UISettings     `toml:"ui"`
	Logging  LoggingConfig  `toml:"logging"`
}

// CarouselConfig holds the options passed to the carousel
type CarouselConfig struct {
	IntervalMS int    `toml:"interval_ms"`
	Direction  string `toml:"direction"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool `toml:"show_help"`
	Mouse    bool `toml:"mouse"`
	FrameMS  int  `toml:"frame_ms"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Interval returns the auto-advance delay
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Carousel.IntervalMS) * time.Millisecond
}

// FrameInterval returns the frame tick period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.UI.FrameMS) * time.Millisecond
}

// Direction returns the parsed auto-advance direction
func (c *Config) Direction() (carousel.Direction, error) {
	return carousel.ParseDirection(c.Carousel.Direction)
}

// Validate checks the values a carousel would reject
func (c *Config) Validate() error {
	if c.Carousel.IntervalMS <= 0 {
		return fmt.Errorf("carousel.interval_ms must be positive, got %d", c.Carousel.IntervalMS)
	}
	if _, err := c.Direction(); err != nil {
		return fmt.Errorf("carousel.direction: %w", err)
	}
	if c.UI.FrameMS <= 0 {
		return fmt.Errorf("ui.frame_ms must be positive, got %d", c.UI.FrameMS)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service rooted in the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "carousel", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration, returning defaults if the file is missing
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Carousel: CarouselConfig{
			IntervalMS: int(carousel.DefaultInterval / time.Millisecond),
			Direction:  string(carousel.DefaultDirection),
		},
		UI: UISettings{
			ShowHelp: true,
			Mouse:    true,
			FrameMS:  16,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "carousel.log",
		},
	}
}
