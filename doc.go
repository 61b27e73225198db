// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

/*
Package buildfilter decides which discovered route files stay in a Next.js
build and which should be replaced by a 404 stand-in module.

Both routing conventions are supported at the same time: the pages router
(flat files, route id is the relative path minus extension) and the app
router (a fixed `page` file per directory, with layout/loading/error
siblings that are not routes themselves).

Basic flow:
  - load options from file/environment (`LoadConfig`) or build them directly
  - compile the filter configuration once (`NewConfig`)
  - create the engine (`NewEngine`)
  - ask for decisions (`Decide` / `DecideAll`)

Decisions are pure functions of (path, configuration): no I/O, no shared
mutable state, safe to call from any number of build workers concurrently.
Malformed input never aborts a build; the worst case is a route being kept
that a broken pattern meant to exclude.

For build pipelines that substitute excluded routes at module resolution
time, `Hook` offers a reversible Install/Uninstall pair around a
caller-owned resolver, and `Standin` renders the replacement module source
carrying the greppable `ExcludedMarker`.
*/
package buildfilter
