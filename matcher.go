// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import "regexp"

// Config is the compiled, immutable filter configuration.
//
// All pattern and regex compilation happens in NewConfig; Matches and the
// engine built on top only read the compiled state, so one Config may serve
// any number of concurrent build workers.
type Config struct {
	// included switches matching to allow-list mode when non-empty.
	included []compiledPattern
	// excluded are deny-list page patterns.
	excluded []compiledPattern
	// regexes are deny-list compiled regular expressions.
	regexes []*regexp.Regexp
	// flatDir is the normalized pages-router directory name.
	flatDir string
	// nestedDir is the normalized app-router directory name.
	nestedDir string
	// flatEnabled toggles the pages-router convention.
	flatEnabled bool
	// nestedEnabled toggles the app-router convention.
	nestedEnabled bool
	// enabled gates filtering entirely.
	enabled bool
	// enableInDev lets callers filter outside production builds.
	enableInDev bool
	// verbose enables per-decision debug logging.
	verbose bool
}

// NewConfig compiles loader options into an immutable configuration.
//
// Nothing here is fatal: malformed regexes are dropped with a warning and
// glob-invalid patterns degrade to exact/substring matching.
func NewConfig(opts Options) *Config {
	opts.applyDefaults()

	return &Config{
		included:      compilePatterns(opts.IncludedPages),
		excluded:      compilePatterns(opts.ExcludedPages),
		regexes:       compileRegexes(opts.ExcludePatterns),
		flatDir:       NormalizePath(opts.FlatDir),
		nestedDir:     NormalizePath(opts.NestedDir),
		flatEnabled:   *opts.FlatEnabled,
		nestedEnabled: *opts.NestedEnabled,
		enabled:       *opts.Enabled,
		enableInDev:   opts.EnableInDev,
		verbose:       opts.Verbose,
	}
}

// Enabled reports whether the calling pipeline should filter at all.
func (c *Config) Enabled() bool {
	return c.enabled
}

// EnableInDev reports whether the caller applies filtering outside
// production builds.
func (c *Config) EnableInDev() bool {
	return c.enableInDev
}

// Matches reports whether a route identifier is excluded by the
// configuration's pattern sets.
func (c *Config) Matches(route string) bool {
	return c.matchRoute(route).Excluded
}

// matchRoute evaluates the pattern sets against one route identifier.
//
// Matching policy:
//   - allow-list mode whenever included patterns exist: the route survives
//     only by satisfying one of them; excluded patterns and regexes are
//     never consulted
//   - deny-list mode otherwise: first matching excluded pattern or regex
//     wins, default is include
func (c *Config) matchRoute(route string) Decision {
	if len(c.included) > 0 {
		for _, p := range c.included {
			if p.match(route) {
				return Decision{Route: route, Pattern: p.source, Kind: RuleIncluded}
			}
		}

		return Decision{Route: route, Kind: RuleIncluded, Excluded: true}
	}

	for _, p := range c.excluded {
		if p.match(route) {
			return Decision{Route: route, Pattern: p.source, Kind: RuleExcluded, Excluded: true}
		}
	}

	for _, re := range c.regexes {
		if re.MatchString(route) {
			return Decision{Route: route, Pattern: re.String(), Kind: RuleRegex, Excluded: true}
		}
	}

	return Decision{Route: route}
}
