// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import (
	log "github.com/charmbracelet/log"
)

// Engine is the public decision entry point composing classification, route
// extraction and pattern matching.
//
// An Engine is stateless and safe for concurrent use.
type Engine struct {
	cfg *Config
}

// NewEngine creates an engine over a compiled configuration.
//
// A nil configuration compiles empty options, which filters nothing.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = NewConfig(Options{})
	}

	return &Engine{cfg: cfg}
}

// Config returns the engine's immutable configuration.
func (e *Engine) Config() *Config {
	return e.cfg
}

// Decide returns the filtering verdict for one discovered file path.
//
// Non-route files, paths outside both routing conventions and disabled
// configurations all decide "include": an extraction miss must never drop a
// file from the build.
func (e *Engine) Decide(rawPath string) Decision {
	if !e.cfg.enabled {
		return Decision{}
	}

	path := NormalizePath(rawPath)
	if !IsRouteFile(path, e.cfg) {
		return Decision{}
	}

	route, ok := ExtractRoute(path, e.cfg)
	if !ok {
		return Decision{}
	}

	d := e.cfg.matchRoute(route)
	if e.cfg.verbose {
		log.Debug("Route decision",
			"path", rawPath,
			"route", route,
			"excluded", d.Excluded,
			"pattern", d.Pattern)
	}

	return d
}
