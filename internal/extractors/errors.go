// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"errors"
	"fmt"
)

// Extraction error kinds. Field-level problems inside a container never
// produce an error at all; these cover the call-level failures only.
const (
	ErrKindIO                = "io"
	ErrKindUnsupportedFormat = "unsupported_format"
	ErrKindFileSize          = "file_size"
	ErrKindTimeout           = "timeout"
)

// ExtractionError represents a fatal failure of one extraction call.
type ExtractionError struct {
	FilePath string
	Kind     string
	Message  string
	Err      error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed for %s (%s): %s - %v",
			e.FilePath, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("extraction failed for %s (%s): %s",
		e.FilePath, e.Kind, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new extraction error.
func NewExtractionError(filePath, kind, message string, err error) *ExtractionError {
	return &ExtractionError{
		FilePath: filePath,
		Kind:     kind,
		Message:  message,
		Err:      err,
	}
}

// IsKind reports whether err is an ExtractionError of the given kind.
func IsKind(err error, kind string) bool {
	var xerr *ExtractionError
	return errors.As(err, &xerr) && xerr.Kind == kind
}
