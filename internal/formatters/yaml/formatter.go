// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"media-scan/internal/formatters"
	"media-scan/internal/media"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "YAML format output, 100% compatible with JSON structure"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

type document struct {
	Results []media.Result `yaml:"results"`
}

func (f *Formatter) Format(results []media.Result, options formatters.FormatterOptions) (string, error) {
	if len(results) == 0 {
		return "results: []\n", nil
	}
	data, err := yaml.Marshal(document{Results: results})
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}
