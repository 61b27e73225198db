// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import "fmt"

// ExcludedMarker is embedded in every stand-in module so an external
// verifier can grep compiled output for proof that filtering occurred
// without executing the route.
const ExcludedMarker = "NEXT_BUILD_FILTER_EXCLUDED"

// NotFoundStrategy selects how a stand-in module signals "not found" at
// request time. The calling pipeline injects the strategy; the engine never
// probes the framework for capabilities.
type NotFoundStrategy uint8

const (
	// NotFoundComponent renders a default stand-in component and returns
	// notFound from the data hooks (pages-router friendly).
	NotFoundComponent NotFoundStrategy = iota
	// NotFoundThrow calls the framework's throw-style notFound() signal
	// (app-router friendly).
	NotFoundThrow
)

// Standin renders the replacement module source for one excluded route.
//
// Both variants embed ExcludedMarker and resolve to a 404 semantic at
// request time.
func Standin(route string, strategy NotFoundStrategy) string {
	if strategy == NotFoundThrow {
		return fmt.Sprintf(`// %s route=%s
import { notFound } from "next/navigation";

export default function FilteredPage() {
  notFound();
}
`, ExcludedMarker, route)
	}

	return fmt.Sprintf(`// %s route=%s
export default function FilteredPage() {
  return null;
}

export function getStaticProps() {
  return { notFound: true };
}
`, ExcludedMarker, route)
}
