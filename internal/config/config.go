package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"checkgrip/internal/eventbus"
	"checkgrip/internal/selector"
)

const configFileName = "checkgrip/config.toml"

// Config represents the application configuration
type Config struct {
	Version        int               `toml:"version"`
	Title          string            `toml:"title"`
	SelectAllLabel string            `toml:"select_all_label"`
	AllSelected    bool              `toml:"all_selected"`
	Strategy       string            `toml:"strategy"`     // "derived" or "tracked"
	OptionsFile    string            `toml:"options_file"` // relative paths resolve against the config file
	Options        []selector.Option `toml:"options"`
	UISettings     UISettings        `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp    bool `toml:"show_help"`
	PrintOnQuit bool `toml:"print_on_quit"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service reading from path. An empty
// path means $XDG_CONFIG_HOME/checkgrip/config.toml.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, configFileName)
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	found := true
	if errors.Is(err, os.ErrNotExist) {
		cfg, err, found = DefaultConfig(), nil, false
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Found: found})
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if _, err := selector.ParseStrategy(cfg.Strategy); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cfg.OptionsFile != "" && cfg.OptionsFile != StdinSource && !filepath.IsAbs(cfg.OptionsFile) {
		cfg.OptionsFile = filepath.Join(filepath.Dir(path), cfg.OptionsFile)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
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
		Version:        1,
		Title:          "checkgrip",
		SelectAllLabel: "Select All",
		Strategy:       selector.StrategyDerived.String(),
		UISettings: UISettings{
			ShowHelp: true,
		},
	}
}
