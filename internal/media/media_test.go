// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package media

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewGeoPoint_MapsLonLatToXY(t *testing.T) {
	p := NewGeoPoint(40.5, -73.9)
	if p == nil {
		t.Fatal("expected a point")
	}
	if p.X != -73.9 {
		t.Errorf("expected X (longitude) -73.9, got %v", p.X)
	}
	if p.Y != 40.5 {
		t.Errorf("expected Y (latitude) 40.5, got %v", p.Y)
	}
	if p.SRID != nil {
		t.Errorf("expected SRID unset, got %v", *p.SRID)
	}
}

func TestNewGeoPoint_ZeroMagnitudeSuppressed(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
	}{
		{"both zero", 0, 0},
		{"zero latitude", 0, 12.5},
		{"zero longitude", 48.1, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if p := NewGeoPoint(tc.lat, tc.lon); p != nil {
				t.Errorf("expected nil point for (%v, %v), got %+v", tc.lat, tc.lon, p)
			}
		})
	}
}

func TestNewImageMetadata_Skeleton(t *testing.T) {
	id := uuid.New()
	m := NewImageMetadata(id)
	if m.MediaItemID != id {
		t.Errorf("expected media item id %s, got %s", id, m.MediaItemID)
	}
	if m.ExifVersion != nil || m.CaptureTime != nil || m.Location != nil || m.Make != nil {
		t.Error("expected all optional fields absent on the skeleton record")
	}
}

func TestNewVideoMetadata_Skeleton(t *testing.T) {
	id := uuid.New()
	m := NewVideoMetadata(id)
	if m.MediaItemID != id {
		t.Errorf("expected media item id %s, got %s", id, m.MediaItemID)
	}
	if m.Duration != nil || m.Width != nil || m.Height != nil || m.AudioTrackID != nil {
		t.Error("expected all optional fields absent on the skeleton record")
	}
}

func TestImageMetadata_AbsentFieldsEncodeAsNull(t *testing.T) {
	data, err := json.Marshal(NewImageMetadata(uuid.New()))
	if err != nil {
		t.Fatalf("unexpected marshal error: %v", err)
	}
	encoded := string(data)
	// Optional fields must be explicitly nullable, not omitted.
	for _, field := range []string{`"exif_version":null`, `"capture_time":null`, `"location":null`, `"flash_fired":null`} {
		if !strings.Contains(encoded, field) {
			t.Errorf("expected %s in encoding, got %s", field, encoded)
		}
	}
}

func TestType_Valid(t *testing.T) {
	if !TypeImage.Valid() || !TypeVideo.Valid() {
		t.Error("expected image and video to be valid types")
	}
	if Type("document").Valid() {
		t.Error("expected unknown type to be invalid")
	}
}
