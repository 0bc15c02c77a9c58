package team

// Config holds team registry configuration.
type Config struct {
	// MaxNameLength is the maximum team name length in characters.
	MaxNameLength int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		MaxNameLength: 100,
	}
}

// Validate fills in defaults for unset values.
func (c *Config) Validate() error {
	if c.MaxNameLength <= 0 {
		c.MaxNameLength = 100
	}
	return nil
}
