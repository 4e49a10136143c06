// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package extractors reads structured metadata out of media files: EXIF tag
// containers in still images and track tables in MP4 containers.
//
// Each call is a self-contained unit of work on one file handle with no
// shared state, so calls can run concurrently across independent files.
// Container input is untrusted; every call is bounded by a file-size cap
// and honors context cancellation at parse boundaries.
package extractors

import (
	"fmt"
	"os"
	"time"
)

const (
	// MaxFileSize caps how much untrusted container input one call accepts.
	MaxFileSize = 500 * 1024 * 1024 // 500MB

	// ProcessingTimeout bounds parse time for the convenience entry points
	// that do not take a caller context.
	ProcessingTimeout = 30 * time.Second
)

// openBounded stats and opens the file, enforcing the size cap. A maxSize
// of zero disables the cap.
func openBounded(filePath string, maxSize int64) (*os.File, *ExtractionError) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, NewExtractionError(filePath, ErrKindIO, "failed to access file", err)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return nil, NewExtractionError(filePath, ErrKindFileSize,
			fmt.Sprintf("file too large: %d bytes (max %d)", info.Size(), maxSize), nil)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, NewExtractionError(filePath, ErrKindIO, "failed to open file", err)
	}
	return f, nil
}
