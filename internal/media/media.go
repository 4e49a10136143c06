// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package media defines the metadata records produced by the extractors.
//
// A record is always scoped to exactly one media item, identified by a
// caller-supplied UUID. Every field other than the identifier is optional:
// a nil pointer means the source container did not carry the field (or
// carried it in an unusable shape), and encodes as an explicit null so that
// downstream consumers can tell "absent" from "zero".
package media

import (
	"time"

	"github.com/google/uuid"
)

// Type is the caller-declared media classification. The extractors never
// sniff file content to determine it.
type Type string

const (
	TypeImage Type = "image"
	TypeVideo Type = "video"
)

// Valid reports whether t names a supported media type.
func (t Type) Valid() bool {
	return t == TypeImage || t == TypeVideo
}

// GeoPoint is a geographic location in signed decimal degrees.
// X is longitude, Y is latitude. SRID is never set by extraction; it is
// left for downstream systems that assign a spatial reference.
type GeoPoint struct {
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	SRID *int32  `json:"srid" yaml:"srid"`
}

// NewGeoPoint builds a point from signed decimal-degree coordinates.
// It returns nil when either coordinate has zero magnitude: cameras that
// carry GPS tags with all-default values would otherwise report a spurious
// location on the equator or prime meridian.
func NewGeoPoint(lat, lon float64) *GeoPoint {
	if lat == 0.0 || lon == 0.0 {
		return nil
	}
	return &GeoPoint{X: lon, Y: lat}
}

// ImageMetadata holds the fields extracted from an image's EXIF container.
type ImageMetadata struct {
	MediaItemID   uuid.UUID  `json:"media_item_id" yaml:"media_item_id"`
	ExifVersion   *float64   `json:"exif_version" yaml:"exif_version"`
	PixelWidth    *uint32    `json:"pixel_width" yaml:"pixel_width"`
	PixelHeight   *uint32    `json:"pixel_height" yaml:"pixel_height"`
	XResolution   *uint32    `json:"x_resolution" yaml:"x_resolution"`
	YResolution   *uint32    `json:"y_resolution" yaml:"y_resolution"`
	CaptureTime   *time.Time `json:"capture_time" yaml:"capture_time"`
	FlashFired    *bool      `json:"flash_fired" yaml:"flash_fired"`
	Make          *string    `json:"make" yaml:"make"`
	Model         *string    `json:"model" yaml:"model"`
	ExposureTime  *string    `json:"exposure_time" yaml:"exposure_time"`
	FNumber       *string    `json:"f_number" yaml:"f_number"`
	ApertureValue *float64   `json:"aperture_value" yaml:"aperture_value"`
	Location      *GeoPoint  `json:"location" yaml:"location"`
	Altitude      *float64   `json:"altitude" yaml:"altitude"`
	Speed         *float64   `json:"speed" yaml:"speed"`
}

// NewImageMetadata returns the identifier-only skeleton record.
func NewImageMetadata(id uuid.UUID) *ImageMetadata {
	return &ImageMetadata{MediaItemID: id}
}

// VideoMetadata holds the fields extracted from an MP4 track table.
// Duration is expressed in the track's media timescale units.
type VideoMetadata struct {
	MediaItemID  uuid.UUID `json:"media_item_id" yaml:"media_item_id"`
	Duration     *uint64   `json:"duration" yaml:"duration"`
	Width        *uint32   `json:"width" yaml:"width"`
	Height       *uint32   `json:"height" yaml:"height"`
	VideoCodec   *string   `json:"video_codec" yaml:"video_codec"`
	AudioTrackID *uint32   `json:"audio_track_id" yaml:"audio_track_id"`
	AudioCodec   *string   `json:"audio_codec" yaml:"audio_codec"`
}

// NewVideoMetadata returns the identifier-only skeleton record. It is also
// the value handed back when a video container cannot be parsed at all.
func NewVideoMetadata(id uuid.UUID) *VideoMetadata {
	return &VideoMetadata{MediaItemID: id}
}

// Result is the collaborator-facing envelope for one processed file.
// Exactly one of Image/Video is set on success; Error carries the message
// of a fatal extraction failure.
type Result struct {
	File  string         `json:"file" yaml:"file"`
	Type  Type           `json:"type" yaml:"type"`
	Image *ImageMetadata `json:"image,omitempty" yaml:"image,omitempty"`
	Video *VideoMetadata `json:"video,omitempty" yaml:"video,omitempty"`
	Error string         `json:"error,omitempty" yaml:"error,omitempty"`
}
