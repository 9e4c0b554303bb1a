package cashflow

import (
	"fmt"

	"github.com/etnz/cashflow/date"
)

// Default configuration values.
const (
	DefaultRate      = 0.10
	DefaultThreshold = 0.05
)

// DefaultOrigin returns the default time zero: 2013-12-30.
func DefaultOrigin() date.Date { return date.New(2013, 12, 30) }

// Config holds the settings a CashFlow carries.
type Config struct {
	Origin    date.Date // entries dated before Origin are discarded at construction.
	Rate      float64   // discount rate per period.
	Threshold float64   // fractional tolerance band for comparisons.
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Origin: DefaultOrigin(), Rate: DefaultRate, Threshold: DefaultThreshold}
}

// Validate checks that the rate can discount and that the threshold is a band.
func (c Config) Validate() error {
	if c.Rate <= -1 {
		return fmt.Errorf("%w: discount rate %v must be greater than -1", ErrInvalidConfig, c.Rate)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: equality threshold %v must not be negative", ErrInvalidConfig, c.Threshold)
	}
	return nil
}

// Option modifies the configuration of a CashFlow under construction.
type Option func(*Config)

// WithOrigin sets the time zero.
func WithOrigin(origin date.Date) Option { return func(c *Config) { c.Origin = origin } }

// WithRate sets the discount rate.
func WithRate(rate float64) Option { return func(c *Config) { c.Rate = rate } }

// WithThreshold sets the equality threshold.
func WithThreshold(threshold float64) Option { return func(c *Config) { c.Threshold = threshold } }

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }

// resolve applies opts on top of the defaults.
func resolve(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.Validate()
}
