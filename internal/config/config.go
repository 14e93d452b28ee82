// Package config holds the settings of the bookd process: logging, the size of
// the submission worker pool, the symbols to open books for and an optional
// list of orders to seed those books with.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"lobcore/internal/common"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is populated from a TOML file and then optionally overridden by
// LOBCORE_* environment variables.
type Config struct {
	LogLevel   string        `toml:"log_level"`
	Workers    int           `toml:"workers"`
	DepthWidth int           `toml:"depth_width"`
	Symbols    []string      `toml:"symbols"`
	Orders     []OrderConfig `toml:"orders"`
}

// OrderConfig describes one seed order. An empty ID gets a generated one.
type OrderConfig struct {
	Symbol string  `toml:"symbol"`
	Side   string  `toml:"side"`
	ID     string  `toml:"id"`
	Price  float64 `toml:"price"`
	Volume float64 `toml:"volume"`
}

func Defaults() Config {
	return Config{
		LogLevel:   "info",
		Workers:    4,
		DepthWidth: 40,
		Symbols:    []string{"DEMO"},
	}
}

// Validate reports the first problem found. Order prices and volumes are left
// to the book, which rejects bad ones on submission.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.DepthWidth < 1 {
		return fmt.Errorf("%w: depth_width must be at least 1, got %d", ErrInvalidConfig, c.DepthWidth)
	}
	if len(c.Symbols) == 0 {
		return fmt.Errorf("%w: symbols must not be empty", ErrInvalidConfig)
	}
	for i, order := range c.Orders {
		if !slices.Contains(c.Symbols, order.Symbol) {
			return fmt.Errorf("%w: orders[%d]: unknown symbol %q", ErrInvalidConfig, i, order.Symbol)
		}
		if _, err := order.ParseSide(); err != nil {
			return fmt.Errorf("%w: orders[%d]: %w", ErrInvalidConfig, i, err)
		}
	}
	return nil
}

func (c *Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(strings.ToLower(c.LogLevel))
}

func (o OrderConfig) ParseSide() (common.Side, error) {
	switch strings.ToLower(o.Side) {
	case "buy", "bid":
		return common.Buy, nil
	case "sell", "ask":
		return common.Sell, nil
	}
	return 0, fmt.Errorf("unknown side %q", o.Side)
}

// Order builds the seed order, generating an id when none is configured.
func (o OrderConfig) Order() (*common.Order, error) {
	side, err := o.ParseSide()
	if err != nil {
		return nil, err
	}
	id := o.ID
	if id == "" {
		id = common.GenerateID()
	}
	return common.NewOrder(side, id, o.Price, o.Volume), nil
}
