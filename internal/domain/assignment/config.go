package assignment

// Config holds assignment configuration.
type Config struct {
	// ResolveReputation is the reputation every member earns when their team
	// resolves an issue. Zero disables the reward.
	ResolveReputation int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ResolveReputation: 1,
	}
}
