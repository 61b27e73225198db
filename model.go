// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import "os"

// Default routing-convention directory names.
const (
	// DefaultFlatDir is the pages-router directory name.
	DefaultFlatDir = "pages"
	// DefaultNestedDir is the app-router directory name.
	DefaultNestedDir = "app"
)

// Options is the raw, loader-facing filter configuration surface.
//
// Pointer booleans distinguish "not set" from an explicit false so that
// defaults can be applied after file/env merging.
type Options struct {
	// Enabled gates whether the engine filters at all.
	// Unset defaults to NODE_ENV == "production".
	Enabled *bool `json:"enabled,omitempty" mapstructure:"enabled"`
	// IncludedPages switches the engine to allow-list mode when non-empty.
	IncludedPages []string `json:"includedPages,omitempty" mapstructure:"includedPages"`
	// ExcludedPages are deny-list glob/exact patterns.
	ExcludedPages []string `json:"excludedPages,omitempty" mapstructure:"excludedPages"`
	// ExcludePatterns are deny-list regular expression sources.
	ExcludePatterns []string `json:"excludePatterns,omitempty" mapstructure:"excludePatterns"`
	// FlatDir is the pages-router directory name, default "pages".
	FlatDir string `json:"flatDir,omitempty" mapstructure:"flatDir"`
	// NestedDir is the app-router directory name, default "app".
	NestedDir string `json:"nestedDir,omitempty" mapstructure:"nestedDir"`
	// FlatEnabled toggles the pages-router convention, default true.
	FlatEnabled *bool `json:"flatEnabled,omitempty" mapstructure:"flatEnabled"`
	// NestedEnabled toggles the app-router convention, default true.
	NestedEnabled *bool `json:"nestedEnabled,omitempty" mapstructure:"nestedEnabled"`
	// EnableInDev lets the calling pipeline filter outside production builds.
	EnableInDev bool `json:"enableInDev,omitempty" mapstructure:"enableInDev"`
	// Verbose enables per-decision debug logging.
	Verbose bool `json:"verbose,omitempty" mapstructure:"verbose"`
}

// RuleKind identifies the pattern set that produced a decision.
type RuleKind uint8

const (
	// RuleNone means no pattern matched and defaults applied.
	RuleNone RuleKind = iota
	// RuleIncluded means an includedPages pattern drove the decision.
	RuleIncluded
	// RuleExcluded means an excludedPages pattern drove the decision.
	RuleExcluded
	// RuleRegex means an excludePatterns regex drove the decision.
	RuleRegex
)

// Decision is the deterministic verdict for one candidate file.
type Decision struct {
	// Route is the canonical route identifier, empty when the path is not a route.
	Route string `json:"route,omitempty"`
	// Pattern is the matched pattern or regex source, empty on default decisions.
	Pattern string `json:"pattern,omitempty"`
	// Kind reports which pattern set produced the decision.
	Kind RuleKind `json:"kind,omitempty"`
	// Excluded reports whether the route must be replaced by a stand-in.
	Excluded bool `json:"excluded"`
}

// applyDefaults fills unset options with defaults.
func (opts *Options) applyDefaults() {
	if opts.FlatDir == "" {
		opts.FlatDir = DefaultFlatDir
	}

	if opts.NestedDir == "" {
		opts.NestedDir = DefaultNestedDir
	}

	if opts.Enabled == nil {
		enabled := os.Getenv("NODE_ENV") == "production"
		opts.Enabled = &enabled
	}

	if opts.FlatEnabled == nil {
		on := true
		opts.FlatEnabled = &on
	}

	if opts.NestedEnabled == nil {
		on := true
		opts.NestedEnabled = &on
	}
}
