package interfaces

// Config represents the application configuration
type Config struct {
	Trials             int    `toml:"trials"`
	MaxDiscardRatio    int    `toml:"max_discard_ratio"`
	MaxSize            int    `toml:"max_size"`
	SizePolicy         string `toml:"size_policy"`
	Seed               int64  `toml:"seed"`
	Target             string `toml:"target"`
	InteractiveDefault bool   `toml:"interactive_default"`
	Verbose            bool   `toml:"verbose"`
}

// ConfigManager handles configuration loading and resolution
type ConfigManager interface {
	// Load loads configuration from the specified path
	Load(path string) (*Config, error)

	// Resolve applies precedence rules (flags > env > config > defaults)
	Resolve() (*Config, error)

	// Validate validates the configuration values
	Validate(config *Config) error
}
