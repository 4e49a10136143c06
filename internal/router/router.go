// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package router dispatches media items to the extractor matching their
// caller-declared type. It never sniffs file content to classify an item;
// trusting the caller's declaration is part of the contract.
package router

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"media-scan/internal/extractors"
	"media-scan/internal/media"
)

// Item is one unit of work handed over by the upload-handling collaborator:
// a stored file, the media item it belongs to, and the declared type.
type Item struct {
	ID   uuid.UUID
	Path string
	Type media.Type
}

// Router routes items to extractors with per-call resource bounds.
type Router struct {
	log         *zap.Logger
	maxFileSize int64
	timeout     time.Duration
}

// New creates a router. A zero maxFileSize or timeout disables that bound.
func New(log *zap.Logger, maxFileSize int64, timeout time.Duration) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{
		log:         log,
		maxFileSize: maxFileSize,
		timeout:     timeout,
	}
}

// Route runs the extraction for one item and wraps the outcome into a
// Result. Fatal extraction errors are carried in the Result rather than
// returned: one bad file must not interrupt a batch, and the caller decides
// whether an io failure is worth retrying.
func (r *Router) Route(ctx context.Context, item Item) media.Result {
	res := media.Result{File: item.Path, Type: item.Type}

	if !item.Type.Valid() {
		res.Error = fmt.Sprintf("unknown media type %q", item.Type)
		r.log.Warn("skipping item with unknown media type",
			zap.String("file", item.Path),
			zap.String("type", string(item.Type)),
		)
		return res
	}

	if r.maxFileSize > 0 {
		if info, err := os.Stat(item.Path); err == nil && info.Size() > r.maxFileSize {
			res.Error = fmt.Sprintf("file too large: %d bytes (max %d)", info.Size(), r.maxFileSize)
			r.log.Warn("skipping oversized file",
				zap.String("file", item.Path),
				zap.Int64("size", info.Size()),
				zap.Int64("max", r.maxFileSize),
			)
			return res
		}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	r.log.Debug("extracting metadata",
		zap.String("file", item.Path),
		zap.String("type", string(item.Type)),
		zap.String("media_item_id", item.ID.String()),
	)

	switch item.Type {
	case media.TypeImage:
		m, err := extractors.ExtractImageMetadataWithContext(ctx, item.ID, item.Path)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Image = m
		}
	case media.TypeVideo:
		m, err := extractors.ExtractVideoMetadataWithContext(ctx, item.ID, item.Path)
		if err != nil {
			res.Error = err.Error()
		} else {
			res.Video = m
		}
	}

	if res.Error != "" {
		r.log.Warn("extraction failed",
			zap.String("file", item.Path),
			zap.String("type", string(item.Type)),
			zap.String("error", res.Error),
		)
	} else {
		r.log.Debug("extraction completed",
			zap.String("file", item.Path),
			zap.Duration("duration", time.Since(start)),
		)
	}
	return res
}
