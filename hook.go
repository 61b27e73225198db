// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import "sync"

// ResolveFunc resolves a module request to the path of the module that will
// be compiled for it.
type ResolveFunc func(request string) (string, error)

// Hook wraps a caller-owned resolver so that requests resolving to excluded
// routes are redirected to a substitute module.
//
// Install and Uninstall form a reversible pair: the hook only ever touches
// the function pointer the caller hands it, never process-wide state, and
// Uninstall restores the exact previous resolver. This keeps parallel test
// runs and repeated builds isolated from each other.
type Hook struct {
	engine     *Engine
	substitute ResolveFunc

	// mu guards the installed target and previous resolver.
	mu        sync.Mutex
	target    *ResolveFunc
	prev      ResolveFunc
	installed bool
}

// NewHook creates a hook that redirects excluded routes through substitute.
func NewHook(engine *Engine, substitute ResolveFunc) (*Hook, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}

	if substitute == nil {
		return nil, ErrNilResolver
	}

	return &Hook{engine: engine, substitute: substitute}, nil
}

// Install swaps the caller's resolver for the filtering one.
//
// Returns ErrHookInstalled when already installed and ErrNilResolver when
// target or the resolver it points to is nil.
func (h *Hook) Install(target *ResolveFunc) error {
	if target == nil || *target == nil {
		return ErrNilResolver
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.installed {
		return ErrHookInstalled
	}

	prev := *target
	*target = func(request string) (string, error) {
		resolved, err := prev(request)
		if err != nil {
			return "", err
		}

		if h.engine.Decide(resolved).Excluded {
			return h.substitute(request)
		}

		return resolved, nil
	}

	h.target = target
	h.prev = prev
	h.installed = true
	return nil
}

// Uninstall restores the resolver that was active before Install.
// Calling it on a hook that is not installed is a no-op.
func (h *Hook) Uninstall() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.installed {
		return
	}

	*h.target = h.prev
	h.target = nil
	h.prev = nil
	h.installed = false
}
