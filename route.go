// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import "strings"

// RouteIndex is the sentinel route identifier for the root route.
const RouteIndex = "index"

// flatAliasPrefix is the virtual-module alias Next.js uses for pages-router
// modules that never hit the real filesystem.
const flatAliasPrefix = "private-next-pages"

// ExtractRoute derives the canonical route identifier from a normalized path.
//
// When both conventions' directory segments are present, the one appearing
// earlier in the path decides, app-router first on a tie; an app-router
// segment without a page file falls through to the pages-router one. The
// returned identifier is never empty; the root route maps to RouteIndex.
// ok is false when neither convention's directory segment is present.
func ExtractRoute(path string, cfg *Config) (route string, ok bool) {
	nestedIdx, nestedRest, flatIdx, flatRest := conventionSplit(path, cfg)

	if nestedIdx >= 0 && (flatIdx < 0 || nestedIdx <= flatIdx) {
		if route, ok = nestedRoute(nestedRest); ok {
			return route, true
		}
	}

	if flatIdx >= 0 {
		return flatRoute(flatRest), true
	}

	return "", false
}

// conventionSplit locates both routing-convention directory segments and
// returns the first-occurrence index and remainder for each, -1 when the
// segment is absent or the convention disabled.
func conventionSplit(path string, cfg *Config) (nestedIdx int, nestedRest string, flatIdx int, flatRest string) {
	nestedIdx, flatIdx = -1, -1

	if cfg.nestedEnabled {
		if i := dirSegmentIndex(path, cfg.nestedDir); i >= 0 {
			nestedIdx, nestedRest = i, path[i+len(cfg.nestedDir)+1:]
		}
	}

	if cfg.flatEnabled {
		if rest, aliased := strings.CutPrefix(path, flatAliasPrefix+"/"); aliased {
			flatIdx, flatRest = 0, rest
		} else if i := dirSegmentIndex(path, cfg.flatDir); i >= 0 {
			flatIdx, flatRest = i, path[i+len(cfg.flatDir)+1:]
		}
	}

	return nestedIdx, nestedRest, flatIdx, flatRest
}

// nestedRoute maps an app-router remainder ("admin/users/page.tsx") to its
// route identifier ("admin/users").
func nestedRoute(rest string) (string, bool) {
	ext := pathExt(rest)
	if _, ok := sourceExts[ext]; !ok {
		return "", false
	}

	rest = strings.TrimSuffix(rest, ext)
	if rest != nestedPageName && !strings.HasSuffix(rest, "/"+nestedPageName) {
		return "", false
	}

	rest = strings.TrimSuffix(rest, nestedPageName)
	return joinRouteSegments(rest), true
}

// flatRoute maps a pages-router remainder ("admin/users.js") to its route
// identifier ("admin/users").
func flatRoute(rest string) string {
	rest = strings.TrimSuffix(rest, pathExt(rest))
	route := collapseRoute(rest)
	if route == "" {
		return RouteIndex
	}

	return route
}

// joinRouteSegments rebuilds a route from a raw remainder, dropping route
// group segments ("(marketing)") and empty segments.
func joinRouteSegments(rest string) string {
	segments := strings.Split(rest, "/")
	kept := segments[:0]

	for _, seg := range segments {
		if seg == "" || isRouteGroup(seg) {
			continue
		}

		kept = append(kept, seg)
	}

	if len(kept) == 0 {
		return RouteIndex
	}

	return strings.Join(kept, "/")
}

// isRouteGroup reports whether a segment is an organizational route group
// that never appears in the URL.
func isRouteGroup(seg string) bool {
	return len(seg) >= 2 && seg[0] == '(' && seg[len(seg)-1] == ')'
}
