package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"propcheck/internal/interfaces"
)

// Manager implements the ConfigManager interface
type Manager struct {
	v     *viper.Viper
	flags map[string]interface{} // Store flag values for precedence
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("PROPCHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	return &Manager{
		v:     v,
		flags: make(map[string]interface{}),
	}
}

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("trials", 100)
	v.SetDefault("max_discard_ratio", 5)
	v.SetDefault("max_size", 40)
	v.SetDefault("size_policy", "linear")
	v.SetDefault("seed", 0)
	v.SetDefault("target", "stdout")
	v.SetDefault("interactive_default", false)
	v.SetDefault("verbose", false)
}

// Load loads configuration from the specified path
func (m *Manager) Load(path string) (*interfaces.Config, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".config", "propcheck", "config.toml")
	}

	path = expandPath(path)

	// Missing config file means defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return m.getConfigFromViper(), nil
	}

	m.v.SetConfigFile(path)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return m.getConfigFromViper(), nil
}

// SetFlag sets a flag value for precedence resolution
func (m *Manager) SetFlag(key string, value interface{}) {
	m.flags[key] = value
}

// Resolve applies precedence rules (flags > env > config > defaults)
func (m *Manager) Resolve() (*interfaces.Config, error) {
	config := m.getConfigFromViper()
	m.applyFlagOverrides(config)
	return config, nil
}

// applyFlagOverrides applies flag values over the configuration
func (m *Manager) applyFlagOverrides(config *interfaces.Config) {
	if val, exists := m.flags["trials"]; exists && val != nil {
		if n, ok := val.(int); ok && n > 0 {
			config.Trials = n
		}
	}

	if val, exists := m.flags["max_size"]; exists && val != nil {
		if n, ok := val.(int); ok && n > 0 {
			config.MaxSize = n
		}
	}

	if val, exists := m.flags["size_policy"]; exists && val != nil {
		if s, ok := val.(string); ok && s != "" {
			config.SizePolicy = s
		}
	}

	if val, exists := m.flags["seed"]; exists && val != nil {
		if n, ok := val.(int64); ok && n != 0 {
			config.Seed = n
		}
	}

	if val, exists := m.flags["target"]; exists && val != nil {
		if s, ok := val.(string); ok && s != "" {
			config.Target = s
		}
	}

	if val, exists := m.flags["verbose"]; exists && val != nil {
		if b, ok := val.(bool); ok && b {
			config.Verbose = true
		}
	}
}

// getConfigFromViper builds a Config from the current viper state
func (m *Manager) getConfigFromViper() *interfaces.Config {
	return &interfaces.Config{
		Trials:             m.v.GetInt("trials"),
		MaxDiscardRatio:    m.v.GetInt("max_discard_ratio"),
		MaxSize:            m.v.GetInt("max_size"),
		SizePolicy:         m.v.GetString("size_policy"),
		Seed:               m.v.GetInt64("seed"),
		Target:             m.v.GetString("target"),
		InteractiveDefault: m.v.GetBool("interactive_default"),
		Verbose:            m.v.GetBool("verbose"),
	}
}

// Validate validates the configuration values
func (m *Manager) Validate(config *interfaces.Config) error {
	if config == nil {
		return fmt.Errorf("configuration is nil")
	}

	if config.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", config.Trials)
	}

	if config.MaxDiscardRatio <= 0 {
		return fmt.Errorf("max_discard_ratio must be positive, got %d", config.MaxDiscardRatio)
	}

	if config.MaxSize <= 0 {
		return fmt.Errorf("max_size must be positive, got %d", config.MaxSize)
	}

	switch config.SizePolicy {
	case "linear", "fixed":
	default:
		return fmt.Errorf("size_policy must be 'linear' or 'fixed', got %q", config.SizePolicy)
	}

	if err := validateTarget(config.Target); err != nil {
		return err
	}

	return nil
}

// validateTarget checks that the output target is one of the supported forms
func validateTarget(target string) error {
	switch {
	case target == "stdout" || target == "clipboard":
		return nil
	case strings.HasPrefix(target, "file:"):
		if strings.TrimPrefix(target, "file:") == "" {
			return fmt.Errorf("file target needs a path, e.g. file:/tmp/report.txt")
		}
		return nil
	default:
		return fmt.Errorf("target must be 'stdout', 'clipboard', or 'file:/path', got %q", target)
	}
}

// expandPath expands a leading ~ to the user's home directory
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
