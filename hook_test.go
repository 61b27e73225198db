// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHook(t *testing.T) *Hook {
	t.Helper()

	e := NewEngine(testConfig(Options{ExcludedPages: []string{"admin/**"}}))
	h, err := NewHook(e, func(request string) (string, error) {
		return "standin/" + request, nil
	})
	require.NoError(t, err)

	return h
}

func TestHookRedirectsExcludedRoutes(t *testing.T) {
	t.Parallel()

	h := newTestHook(t)

	resolve := ResolveFunc(func(request string) (string, error) {
		return "pages/" + request + ".js", nil
	})

	require.NoError(t, h.Install(&resolve))
	defer h.Uninstall()

	path, err := resolve("admin/users")
	require.NoError(t, err)
	assert.Equal(t, "standin/admin/users", path)

	path, err = resolve("about")
	require.NoError(t, err)
	assert.Equal(t, "pages/about.js", path)
}

func TestHookUninstallRestoresResolver(t *testing.T) {
	t.Parallel()

	h := newTestHook(t)

	original := ResolveFunc(func(request string) (string, error) {
		return "pages/" + request + ".js", nil
	})
	resolve := original

	require.NoError(t, h.Install(&resolve))
	h.Uninstall()

	path, err := resolve("admin/users")
	require.NoError(t, err)
	assert.Equal(t, "pages/admin/users.js", path, "uninstall must restore the previous resolver")

	// Uninstall twice is a no-op.
	h.Uninstall()

	// The pair is reusable after a full Install/Uninstall cycle.
	require.NoError(t, h.Install(&resolve))
	h.Uninstall()
}

func TestHookReentrantInstall(t *testing.T) {
	t.Parallel()

	h := newTestHook(t)

	resolve := ResolveFunc(func(request string) (string, error) {
		return request, nil
	})

	require.NoError(t, h.Install(&resolve))
	defer h.Uninstall()

	err := h.Install(&resolve)
	assert.True(t, errors.Is(err, ErrHookInstalled))
}

func TestHookValidation(t *testing.T) {
	t.Parallel()

	e := NewEngine(testConfig(Options{}))

	_, err := NewHook(nil, func(string) (string, error) { return "", nil })
	assert.True(t, errors.Is(err, ErrNilEngine))

	_, err = NewHook(e, nil)
	assert.True(t, errors.Is(err, ErrNilResolver))

	h, err := NewHook(e, func(string) (string, error) { return "", nil })
	require.NoError(t, err)

	assert.True(t, errors.Is(h.Install(nil), ErrNilResolver))

	var resolve ResolveFunc
	assert.True(t, errors.Is(h.Install(&resolve), ErrNilResolver))
}

func TestHookPropagatesResolveErrors(t *testing.T) {
	t.Parallel()

	h := newTestHook(t)

	resolveErr := errors.New("module not found")
	resolve := ResolveFunc(func(request string) (string, error) {
		return "", resolveErr
	})

	require.NoError(t, h.Install(&resolve))
	defer h.Uninstall()

	_, err := resolve("anything")
	assert.True(t, errors.Is(err, resolveErr))
}
