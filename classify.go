// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import "strings"

// nestedPageName is the app-router base name that denotes a route.
const nestedPageName = "page"

// sourceExts are the file extensions that can hold route modules.
var sourceExts = map[string]struct{}{
	".js":  {},
	".jsx": {},
	".ts":  {},
	".tsx": {},
}

// nestedSiblingNames are app-router base names that share the route directory
// but carry non-route responsibilities.
var nestedSiblingNames = map[string]struct{}{
	"layout":    {},
	"loading":   {},
	"error":     {},
	"not-found": {},
	"template":  {},
	"default":   {},
}

// flatReservedNames are pages-router base names reserved by the framework.
var flatReservedNames = map[string]struct{}{
	"_app":      {},
	"_document": {},
	"_error":    {},
	"404":       {},
	"500":       {},
}

// IsRouteFile reports whether a normalized path denotes a filterable route
// file under the active routing conventions.
//
// Classification is independent of pattern matching: a path can classify as
// a route and still be decided "include".
func IsRouteFile(path string, cfg *Config) bool {
	ext := pathExt(path)
	if _, ok := sourceExts[ext]; !ok {
		return false
	}

	base := strings.TrimSuffix(pathBase(path), ext)

	nestedIdx, _, flatIdx, flatRest := conventionSplit(path, cfg)

	// The convention whose directory segment appears first in the path
	// decides, app-router first on a tie: siblings of a page file are never
	// routes even with a qualifying extension.
	if nestedIdx >= 0 && (flatIdx < 0 || nestedIdx <= flatIdx) {
		return base == nestedPageName
	}

	if flatIdx >= 0 {
		if strings.HasPrefix(flatRest, "api/") {
			return false
		}

		if _, reserved := flatReservedNames[base]; reserved {
			return false
		}

		return true
	}

	return false
}
