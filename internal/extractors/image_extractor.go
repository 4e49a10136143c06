// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"context"

	"github.com/google/uuid"
	"github.com/rwcarlsen/goexif/exif"

	"media-scan/internal/media"
)

// ExtractImageMetadata extracts EXIF metadata from an image file with the
// default processing timeout.
func ExtractImageMetadata(id uuid.UUID, filePath string) (*media.ImageMetadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), ProcessingTimeout)
	defer cancel()
	return ExtractImageMetadataWithContext(ctx, id, filePath)
}

// ExtractImageMetadataWithContext extracts EXIF metadata from an image file.
//
// Failure to open the file or to locate a valid EXIF container is fatal and
// returns an ExtractionError; no partial record is produced on those paths.
// Once the container parses, every field resolves independently: a missing
// or malformed tag leaves that field nil and never aborts the call.
func ExtractImageMetadataWithContext(ctx context.Context, id uuid.UUID, filePath string) (*media.ImageMetadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewExtractionError(filePath, ErrKindTimeout, "cancelled before extraction", err)
	}

	f, xerr := openBounded(filePath, MaxFileSize)
	if xerr != nil {
		return nil, xerr
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, NewExtractionError(filePath, ErrKindUnsupportedFormat, "no EXIF container found", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, NewExtractionError(filePath, ErrKindTimeout, "cancelled during extraction", err)
	}

	m := media.NewImageMetadata(id)
	m.ExifVersion = ratFloat(x, exif.ExifVersion)
	m.PixelWidth = uintVal(x, exif.PixelXDimension)
	m.PixelHeight = uintVal(x, exif.PixelYDimension)
	m.XResolution = uintVal(x, exif.XResolution)
	m.YResolution = uintVal(x, exif.YResolution)
	m.CaptureTime = dateTimeVal(x, exif.DateTime)
	m.FlashFired = flashFired(x)
	m.Make = strVal(x, exif.Make)
	m.Model = strVal(x, exif.Model)
	m.ExposureTime = exposureTimeVal(x)
	m.FNumber = fNumberVal(x)
	m.ApertureValue = ratFloat(x, exif.ApertureValue)
	m.Location = geoLocation(x)
	m.Altitude = ratFloat(x, exif.GPSAltitude)
	m.Speed = ratFloat(x, exif.GPSSpeed)

	return m, nil
}
