package model

import "time"

// Config is the complete toneguard configuration
type Config struct {
	Analysis     AnalysisConfig     `yaml:"analysis" mapstructure:"analysis"`
	Lexicon      LexiconConfig      `yaml:"lexicon" mapstructure:"lexicon"`
	Cache        CacheConfig        `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig  `yaml:"concurrency" mapstructure:"concurrency"`
	RateLimiting RateLimitingConfig `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Output       OutputConfig       `yaml:"output" mapstructure:"output"`
	Logging      LoggingConfig      `yaml:"logging" mapstructure:"logging"`
}

// AnalysisConfig controls how input is prepared and matched
type AnalysisConfig struct {
	MaxChars      int  `yaml:"max_chars" mapstructure:"max_chars"`           // Input is truncated to this many runes (0 = no bound)
	AnchorPhrases bool `yaml:"anchor_phrases" mapstructure:"anchor_phrases"` // Count each multi-word phrase once per text
	HTML          bool `yaml:"html" mapstructure:"html"`                     // Strip markup before analysis
}

// LexiconConfig selects the lexicon
type LexiconConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // External YAML lexicon; empty uses the built-in one
}

// CacheConfig controls report memoization
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// ConcurrencyConfig controls batch parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// RateLimitingConfig throttles batch throughput
type RateLimitingConfig struct {
	TextsPerSecond float64 `yaml:"texts_per_second" mapstructure:"texts_per_second"` // 0 disables limiting
	BurstSize      int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// OutputConfig controls rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
	Color         bool `yaml:"color" mapstructure:"color"`
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text, json, logfmt
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			MaxChars:      1000,
			AnchorPhrases: false,
			HTML:          false,
		},
		Cache: CacheConfig{
			Enabled:         true,
			TTL:             30 * time.Minute,
			CleanupInterval: 10 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimiting: RateLimitingConfig{
			TextsPerSecond: 0,
			BurstSize:      10,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
			Color:         true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
