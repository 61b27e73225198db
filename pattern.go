// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	log "github.com/charmbracelet/log"
)

// compiledPattern is the pre-validated form of one glob/exact page pattern.
type compiledPattern struct {
	// source is the original pattern string after normalization.
	source string
	// glob reports whether source is a valid doublestar pattern.
	glob bool
}

// match reports whether a route identifier satisfies the pattern.
//
// Fallback order: full glob match, then exact equality, then substring
// containment (legacy pre-glob configurations).
func (p compiledPattern) match(route string) bool {
	if p.glob {
		if ok, err := doublestar.Match(p.source, route); err == nil && ok {
			return true
		}
	}

	if route == p.source {
		return true
	}

	return strings.Contains(route, p.source)
}

// MatchPattern reports whether one route identifier satisfies one page
// pattern under the engine's fallback rules. Diagnostic helper used by the
// routematch CLI; decisions inside a build go through Engine.Decide.
func MatchPattern(pattern, route string) bool {
	compiled := compilePatterns([]string{pattern})
	if len(compiled) == 0 {
		return false
	}

	return compiled[0].match(NormalizePath(route))
}

// compilePatterns validates and dedupes page patterns, preserving order.
//
// Pattern sources are only trimmed and lowercased: a backslash is the glob
// escape character here, not a path separator, so `admin/\[id\]` targets
// the literal dynamic segment route `admin/[id]`.
//
// A pattern that fails doublestar validation is kept: the exact/substring
// fallbacks still apply, only the glob strategy is disabled for it.
func compilePatterns(patterns []string) []compiledPattern {
	out := make([]compiledPattern, 0, len(patterns))
	seen := make(map[string]struct{}, len(patterns))

	for _, raw := range patterns {
		source := asciiLower(strings.TrimSpace(raw))
		if source == "" {
			continue
		}

		if _, dup := seen[source]; dup {
			continue
		}

		seen[source] = struct{}{}
		out = append(out, compiledPattern{
			source: source,
			glob:   doublestar.ValidatePattern(source),
		})
	}

	return out
}

// compileRegexes compiles exclude regex sources once per configuration.
//
// A malformed source is logged and dropped so it never matches; it must not
// abort configuration loading or any later decision.
func compileRegexes(sources []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(sources))
	seen := make(map[string]struct{}, len(sources))

	for _, raw := range sources {
		source := strings.TrimSpace(raw)
		if source == "" {
			continue
		}

		if _, dup := seen[source]; dup {
			continue
		}

		seen[source] = struct{}{}

		re, err := regexp.Compile(source)
		if err != nil {
			log.Warn("Ignoring malformed exclude pattern", "pattern", source, "error", err)
			continue
		}

		out = append(out, re)
	}

	return out
}
