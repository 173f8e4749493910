// Package config provides type-safe environment variable loading with
// per-type caching. It loads a .env file on first use and parses variables
// into struct fields via caarlos0/env tags.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/assetkit/core/assets"
//		"github.com/dmitrymomot/assetkit/core/config"
//	)
//
//	var cfg assets.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	// Or panic on failure during startup:
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process; subsequent Load
// calls for the same type return the cached value. Different types cache
// independently. This makes config reads cheap and consistent, at the cost of
// not observing environment changes made after the first load — set the
// environment before touching config.
package config
