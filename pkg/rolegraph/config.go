package rolegraph

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically

	"github.com/authzkit/authzkit/pkg/rolematch"
)

var (
	cfg     Config
	cfgErr  error
	cfgOnce sync.Once
)

// Config holds the environment-driven settings of a Manager.
type Config struct {
	// MaxDepth is the reachability budget; zero permits only identity matches.
	MaxDepth int `env:"ROLEGRAPH_MAX_DEPTH" envDefault:"10"`
	// Matcher optionally names a built-in matching predicate, see rolematch.ByName.
	Matcher string `env:"ROLEGRAPH_MATCHER"`
}

// LoadConfig reads the manager configuration from the environment. The
// environment is parsed once per process; subsequent calls return the cached
// result.
func LoadConfig() (Config, error) {
	cfgOnce.Do(func() {
		if err := env.Parse(&cfg); err != nil {
			cfgErr = errors.Join(ErrInvalidConfig, err)
		}
	})
	if cfgErr != nil {
		return Config{}, cfgErr
	}
	return cfg, nil
}

// NewFromConfig creates a Manager from a Config, resolving the matcher name
// through the rolematch registry.
func NewFromConfig(cfg Config) (*Manager, error) {
	if cfg.MaxDepth < 0 {
		return nil, errors.Join(ErrInvalidConfig, fmt.Errorf("max depth must be non-negative, got %d", cfg.MaxDepth))
	}

	opts := []Option{WithMaxDepth(cfg.MaxDepth)}
	if cfg.Matcher != "" {
		fn, err := rolematch.ByName(cfg.Matcher)
		if err != nil {
			return nil, errors.Join(ErrInvalidConfig, err)
		}
		opts = append(opts, WithMatchFunc(MatchFunc(fn)))
	}
	return New(opts...), nil
}
