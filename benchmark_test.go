// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import (
	"fmt"
	"testing"
)

const (
	benchPatternCount = 64
	benchPathCount    = 512
)

var benchDecisionSink Decision

func buildBenchmarkOptions(patterns int) Options {
	opts := Options{Enabled: boolp(true)}
	for i := 0; i < patterns; i++ {
		opts.ExcludedPages = append(opts.ExcludedPages, fmt.Sprintf("section%d/**", i))
		opts.ExcludePatterns = append(opts.ExcludePatterns, fmt.Sprintf("^area%d/", i))
	}

	return opts
}

func buildBenchmarkPaths(count int) []string {
	paths := make([]string, 0, count)
	for i := 0; i < count; i++ {
		switch i % 3 {
		case 0:
			paths = append(paths, fmt.Sprintf("pages/section%d/item%d.js", i%benchPatternCount, i))
		case 1:
			paths = append(paths, fmt.Sprintf("app/blog/post%d/page.tsx", i))
		default:
			paths = append(paths, fmt.Sprintf("src/components/widget%d.tsx", i))
		}
	}

	return paths
}

func BenchmarkNewConfig(b *testing.B) {
	opts := buildBenchmarkOptions(benchPatternCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cfg := NewConfig(opts)
		if cfg == nil {
			b.Fatal("nil config")
		}
	}
}

func BenchmarkDecide(b *testing.B) {
	e := NewEngine(NewConfig(buildBenchmarkOptions(benchPatternCount)))
	paths := buildBenchmarkPaths(benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchDecisionSink = e.Decide(paths[i%len(paths)])
	}
}

func BenchmarkDecideAll(b *testing.B) {
	e := NewEngine(NewConfig(buildBenchmarkOptions(benchPatternCount)))
	paths := buildBenchmarkPaths(benchPathCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		report := e.DecideAll(paths)
		if report.Total != len(paths) {
			b.Fatal("unexpected total")
		}
	}
}
