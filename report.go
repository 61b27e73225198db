// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

// Report is the outcome of one full pass over a build's discovered files.
//
// It is returned by value from DecideAll so the orchestrating build step
// owns the collected results; the engine keeps no running state between
// passes or builds.
type Report struct {
	// Excluded are the decisions for routes that must be replaced.
	Excluded []Decision `json:"excluded,omitempty"`
	// Total is the number of candidate paths evaluated.
	Total int `json:"total"`
}

// DecideAll evaluates every discovered path and collects the excluded ones.
//
// Input order is preserved in the report; decisions are independent, so
// callers that already fan work out across workers can equally call Decide
// per path and assemble their own report.
func (e *Engine) DecideAll(paths []string) Report {
	report := Report{Total: len(paths)}

	for _, path := range paths {
		if d := e.Decide(path); d.Excluded {
			report.Excluded = append(report.Excluded, d)
		}
	}

	return report
}
