// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder stacks partial configs in priority order. mergo fills only
// zero fields, so the first layer that sets a value keeps it.
type configBuilder struct {
	configs    []*StructuredConfig
	dotEnvPath string
	err        error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:    make([]*StructuredConfig, 0, 3),
		dotEnvPath: ".env",
	}
}

// add records one layer, or the error that prevented reading it. Errors are
// collected so build reports every broken source at once.
func (b *configBuilder) add(source string, layer *StructuredConfig, err error) *configBuilder {
	switch {
	case err != nil:
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
	case layer != nil:
		b.configs = append(b.configs, layer)
	}
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("config sources are broken: %w", b.err)
	}

	merged := &StructuredConfig{}
	for i, layer := range b.configs {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("merge config layer %d: %w", i, err)
		}
	}

	merged.applyDefaults()
	if err := merged.validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// withDotEnv exports the .env file into the process environment so that
// withEnv sees it. Variables already set win; a missing file is fine.
func (b *configBuilder) withDotEnv() *configBuilder {
	return b.add(".env", nil, loadDotEnv(b.dotEnvPath))
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := &StructuredConfig{}
	if err := parseEnv(layer); err != nil {
		return b.add("environment", nil, err)
	}
	return b.add("environment", layer, nil)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	layer, err := parseFlags(args)
	return b.add("flags", layer, err)
}

// withJSON reads the file named by the last layer that sets JSONFilePath.
// It must run after the layers that can name it.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.configs {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	layer, err := parseJSON(path)
	return b.add("json "+path, layer, err)
}
