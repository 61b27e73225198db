// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Banyudu
// Source: github.com/banyudu/next-build-filter

package buildfilter

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. NEXT_BUILD_FILTER_VERBOSE.
const envPrefix = "NEXT_BUILD_FILTER"

// LoadConfig reads filter options from a config file merged with
// environment overrides and compiles them.
func LoadConfig(path string) (*Config, error) {
	return LoadConfigFs(afero.NewOsFs(), path)
}

// LoadConfigFs is LoadConfig over an injected filesystem, so loader tests
// run against an in-memory fs.
func LoadConfigFs(fs afero.Fs, path string) (*Config, error) {
	opts, err := loadOptions(fs, path)
	if err != nil {
		return nil, err
	}

	return NewConfig(opts), nil
}

// loadOptions merges file values over defaults and environment over both.
//
// Options are read through viper's typed getters rather than Unmarshal:
// AutomaticEnv only surfaces environment values through Unmarshal for keys
// viper already knows about, while Get/IsSet consult the environment for
// any key.
func loadOptions(fs afero.Fs, path string) (Options, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("flatDir", DefaultFlatDir)
	v.SetDefault("nestedDir", DefaultNestedDir)
	v.SetDefault("enableInDev", false)
	v.SetDefault("verbose", false)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Options{}, fmt.Errorf("read filter config: %w", err)
		}
	}

	return Options{
		Enabled:         triState(v, "enabled"),
		IncludedPages:   v.GetStringSlice("includedPages"),
		ExcludedPages:   v.GetStringSlice("excludedPages"),
		ExcludePatterns: v.GetStringSlice("excludePatterns"),
		FlatDir:         v.GetString("flatDir"),
		NestedDir:       v.GetString("nestedDir"),
		FlatEnabled:     triState(v, "flatEnabled"),
		NestedEnabled:   triState(v, "nestedEnabled"),
		EnableInDev:     v.GetBool("enableInDev"),
		Verbose:         v.GetBool("verbose"),
	}, nil
}

// triState resolves an optional boolean key, returning nil when it was set
// neither in the file nor in the environment so NewConfig applies its
// defaults.
func triState(v *viper.Viper, key string) *bool {
	if !v.IsSet(key) {
		return nil
	}

	b := v.GetBool(key)
	return &b
}
