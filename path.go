// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import "strings"

// NormalizePath canonicalizes a raw path to slash-separated lowercase form.
//
// Idempotent: NormalizePath(NormalizePath(x)) == NormalizePath(x).
// Empty input yields an empty string.
func NormalizePath(raw string) string {
	if raw == "" {
		return ""
	}

	if strings.Contains(raw, `\`) {
		raw = strings.ReplaceAll(raw, `\`, `/`)
	}

	return asciiLower(raw)
}

// asciiLower converts only ASCII A-Z to a-z and leaves all other bytes unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return s
}

// pathBase returns the final path component using slash separator.
func pathBase(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}

	return path
}

// pathExt returns the extension of the final path component including the
// dot, or an empty string when the base name has no extension.
func pathExt(path string) string {
	base := pathBase(path)
	if i := strings.LastIndexByte(base, '.'); i > 0 {
		return base[i:]
	}

	return ""
}

// dirSegmentIndex returns the offset of the first occurrence of dir as a
// full path segment ("dir/..." or ".../dir/..."), or -1 when absent.
func dirSegmentIndex(path, dir string) int {
	if dir == "" || path == "" {
		return -1
	}

	if strings.HasPrefix(path, dir+"/") {
		return 0
	}

	if i := strings.Index(path, "/"+dir+"/"); i >= 0 {
		return i + 1
	}

	return -1
}

// collapseRoute collapses repeated slashes and trims leading/trailing ones.
func collapseRoute(s string) string {
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}

	return strings.Trim(s, "/")
}
