// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import "errors"

// Sentinel errors for buildfilter operations.
var (
	// ErrNilEngine indicates a hook was created without an engine.
	ErrNilEngine = errors.New("engine is nil")
	// ErrNilResolver indicates a nil resolver function or target.
	ErrNilResolver = errors.New("resolver is nil")
	// ErrHookInstalled indicates a second Install without Uninstall in between.
	ErrHookInstalled = errors.New("hook already installed")
)
