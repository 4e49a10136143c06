// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package monitoring wires process-level observability: structured logging
// for the routing layer and the CLI. Extraction itself stays log-free so
// that calls remain pure and side-effect-free beyond their file I/O.
package monitoring

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. Debug switches to the development
// config with human-readable output and debug-level events enabled.
func NewLogger(debug bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
