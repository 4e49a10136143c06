// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"context"

	"github.com/google/uuid"

	"media-scan/internal/media"
)

// ExtractVideoMetadata extracts MP4 track metadata from a video file with
// the default processing timeout.
func ExtractVideoMetadata(id uuid.UUID, filePath string) (*media.VideoMetadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), ProcessingTimeout)
	defer cancel()
	return ExtractVideoMetadataWithContext(ctx, id, filePath)
}

// ExtractVideoMetadataWithContext extracts MP4 track metadata from a video
// file.
//
// Failure to open the file is fatal. An unparseable container is not: the
// caller still gets a well-formed record carrying only the media item id,
// so one corrupt upload never fails the whole ingest step. When multiple
// tracks declare the same kind, the first one in container order wins;
// later same-kind tracks are skipped.
func ExtractVideoMetadataWithContext(ctx context.Context, id uuid.UUID, filePath string) (*media.VideoMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewExtractionError(filePath, ErrKindTimeout, "cancelled before extraction", err)
	}

	f, xerr := openBounded(filePath, MaxFileSize)
	if xerr != nil {
		return nil, xerr
	}
	defer f.Close()

	m := media.NewVideoMetadata(id)

	tracks, err := readTracks(f)
	if err != nil {
		return m, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, NewExtractionError(filePath, ErrKindTimeout, "cancelled during extraction", err)
	}

	var haveVideo, haveAudio bool
	for _, track := range tracks {
		switch track.Kind {
		case trackKindVideo:
			if haveVideo {
				continue
			}
			haveVideo = true
			m.Duration = track.Duration
			m.Width = track.Width
			m.Height = track.Height
			m.VideoCodec = track.Codec
		case trackKindAudio:
			if haveAudio {
				continue
			}
			haveAudio = true
			m.AudioTrackID = track.ID
			m.AudioCodec = track.Codec
		}
	}

	return m, nil
}
