// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDMSToDegrees_ConversionArithmetic(t *testing.T) {
	assert.InDelta(t, 40.5, dmsToDegrees(40, 30, 0), 1e-9)
	assert.InDelta(t, 1.0, dmsToDegrees(1, 0, 0), 1e-9)
	assert.InDelta(t, 0.5, dmsToDegrees(0, 30, 0), 1e-9)
	assert.InDelta(t, 10.004166666666666, dmsToDegrees(10, 0, 15), 1e-9)
}

func TestRefSign(t *testing.T) {
	cases := []struct {
		ref  string
		want float64
	}{
		{"N", 1.0},
		{"E", 1.0},
		{"S", -1.0},
		{"W", -1.0},
		{"", 1.0},
		{"X", 1.0}, // unrecognized references default to positive
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, refSign(tc.ref), "ref %q", tc.ref)
	}
}

func TestRenderFlash(t *testing.T) {
	assert.Equal(t, "did not fire", renderFlash(0x00))
	assert.Equal(t, "fired", renderFlash(0x01))
	assert.Equal(t, "fired, return not detected", renderFlash(0x05))
	assert.Equal(t, "fired, return detected", renderFlash(0x07))
	// Auto mode with red-eye reduction, fired.
	assert.Equal(t, "fired", renderFlash(0x19))
}

func TestParseCaptureTime(t *testing.T) {
	got := parseCaptureTime("2023-05-01 12:00:00")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC), *got)

	// Native EXIF spelling is accepted as well.
	got = parseCaptureTime("2023:05:01 12:00:00")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, parseCaptureTime("not-a-date"))
	assert.Nil(t, parseCaptureTime(""))
}

func TestRenderExposureTime(t *testing.T) {
	assert.Equal(t, "1/250", renderExposureTime(1, 250))
	assert.Equal(t, "2", renderExposureTime(2, 1))
}

func TestRenderFNumber(t *testing.T) {
	assert.Equal(t, "f/2.8", renderFNumber(2.8))
	assert.Equal(t, "f/11", renderFNumber(11))
}
