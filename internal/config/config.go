package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the config file name inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	Source     string     `toml:"source"`     // provider source; empty uses the public endpoint
	LogFile    string     `toml:"log_file"`
	StrictIDs  bool       `toml:"strict_ids"` // drop missing and duplicate ids on load
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ConfirmBulkDelete bool `toml:"confirm_bulk_delete"`
	ShowIDColumn      bool `toml:"show_id_column"`
	UsePager          bool `toml:"use_pager"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/memberadmin/config.toml, or the
// platform equivalent
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "memberadmin", FileName)
}

// NewConfigService creates a config service for the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceWithPath creates a config service bound to path
func NewConfigServiceWithPath(path string) ConfigService {
	if path == "" {
		return NewConfigService()
	}
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, returning defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to the service path
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
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
		LogFile: "memberadmin.log",
		UISettings: UISettings{
			ConfirmBulkDelete: true,
			ShowIDColumn:      false,
			UsePager:          true,
		},
	}
}

// Overrides carries values set on the command line. Empty strings leave the
// config value alone.
type Overrides struct {
	Source  string
	LogFile string
}

// Apply layers flag values over the loaded config
func (c *Config) Apply(o Overrides) {
	if o.Source != "" {
		c.Source = o.Source
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
}
