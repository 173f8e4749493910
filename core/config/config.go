package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache maps a config struct type to its loaded value, so each type is
	// parsed from the environment exactly once per process.
	cache sync.Map // reflect.Type -> struct value

	dotenvOnce sync.Once
)

// Load parses environment variables into cfg based on its `env` struct tags.
// A .env file in the working directory is loaded into the environment on
// first use; a missing .env is not an error. Each distinct config type is
// parsed once and cached, so later calls for the same type return the cached
// value even if the environment changed in between.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	key := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(key); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: failed to load %s: %w", key, err)
	}

	// LoadOrStore settles races between concurrent first loads: every caller
	// observes the same stored value.
	actual, _ := cache.LoadOrStore(key, *cfg)
	*cfg = actual.(T)
	return nil
}

// MustLoad is Load that panics on failure, for use during startup where a
// missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
