// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"media-scan/internal/formatters"
	"media-scan/internal/media"
)

// Formatter implements JSON output formatting
type Formatter struct{}

// NewFormatter creates a new JSON formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "json"
}

func (f *Formatter) Description() string {
	return "Structured JSON output for programmatic consumption"
}

func (f *Formatter) FileExtension() string {
	return ".json"
}

// Format renders the results as a JSON array. Absent metadata fields encode
// as explicit nulls so consumers can distinguish "absent" from "zero".
func (f *Formatter) Format(results []media.Result, options formatters.FormatterOptions) (string, error) {
	if len(results) == 0 {
		return "[]", nil
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal results: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}
