// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandinCarriesMarker(t *testing.T) {
	t.Parallel()

	for _, strategy := range []NotFoundStrategy{NotFoundComponent, NotFoundThrow} {
		src := Standin("admin/users", strategy)

		assert.Contains(t, src, ExcludedMarker)
		assert.Contains(t, src, "route=admin/users")
	}
}

func TestStandinThrowStrategy(t *testing.T) {
	t.Parallel()

	src := Standin("admin", NotFoundThrow)

	assert.Contains(t, src, "notFound()")
	assert.Contains(t, src, `"next/navigation"`)
	assert.False(t, strings.Contains(src, "getStaticProps"))
}

func TestStandinComponentStrategy(t *testing.T) {
	t.Parallel()

	src := Standin("admin", NotFoundComponent)

	assert.Contains(t, src, "getStaticProps")
	assert.Contains(t, src, "notFound: true")
	assert.False(t, strings.Contains(src, "next/navigation"))
}
