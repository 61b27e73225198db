// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

// Command routematch checks route identifiers against one page pattern.
//
// It applies the same fallback rules as the build filter (glob, exact,
// substring) and exits 0 when at least one identifier matches, 1 otherwise.
package main

import (
	"fmt"
	"os"

	buildfilter "github.com/banyudu/next-build-filter"
	"github.com/spf13/cobra"
)

var errNoMatch = fmt.Errorf("no route matched")

var rootCmd = &cobra.Command{
	Use:   "routematch PATTERN ROUTE...",
	Short: "Check route identifiers against a page pattern",
	Long: `Check one or more route identifiers against a page pattern.

The pattern uses the same rules as includedPages/excludedPages: a glob
(*, **, ?, [classes], {alternation}), an exact route id, or a legacy
substring. One line per route is printed with the verdict.

Examples:
  routematch 'admin/**' admin/users admin/users/edit about
  routematch blog blog/post1 docs/blog-archive`,
	Args:          cobra.MinimumNArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	matched := false

	for _, route := range args[1:] {
		verdict := "no-match"
		if buildfilter.MatchPattern(pattern, route) {
			verdict = "match"
			matched = true
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", route, verdict)
	}

	if !matched {
		return errNoMatch
	}

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if err != errNoMatch {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}
