package issue

import "time"

// Config holds issue domain configuration.
type Config struct {
	// ClassifyTimeout bounds the background classifier request.
	ClassifyTimeout time.Duration

	// ClassifyConcurrency caps concurrent background classifications.
	ClassifyConcurrency int

	// MaxDescriptionLength is the maximum description length in characters.
	MaxDescriptionLength int

	// MaxTitleLength is the maximum title length in characters.
	MaxTitleLength int

	// MaxImages is the maximum number of image references per issue.
	MaxImages int

	// DefaultPageSize applies to listings without an explicit limit.
	DefaultPageSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ClassifyTimeout:      3 * time.Second,
		ClassifyConcurrency:  8,
		MaxDescriptionLength: 2000,
		MaxTitleLength:       200,
		MaxImages:            5,
		DefaultPageSize:      20,
	}
}

// Validate fills in defaults for unset values.
func (c *Config) Validate() error {
	def := DefaultConfig()
	if c.ClassifyTimeout <= 0 {
		c.ClassifyTimeout = def.ClassifyTimeout
	}
	if c.ClassifyConcurrency <= 0 {
		c.ClassifyConcurrency = def.ClassifyConcurrency
	}
	if c.MaxDescriptionLength <= 0 {
		c.MaxDescriptionLength = def.MaxDescriptionLength
	}
	if c.MaxTitleLength <= 0 {
		c.MaxTitleLength = def.MaxTitleLength
	}
	if c.MaxImages <= 0 {
		c.MaxImages = def.MaxImages
	}
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = def.DefaultPageSize
	}
	return nil
}
