// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"media-scan/internal/media"
)

// EXIF datetimes come in two spellings: the native colon-separated form and
// the dash-separated form that most display tooling renders. Both are
// UTC-naive; no time zone is assumed.
const (
	displayTimeLayout = "2006-01-02 15:04:05"
	exifTimeLayout    = "2006:01:02 15:04:05"
)

// ratFloat reads the first entry of a rational value list as a float.
func ratFloat(x *exif.Exif, name exif.FieldName) *float64 {
	tag, err := x.Get(name)
	if err != nil || tag.Count == 0 {
		return nil
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return nil
	}
	v := float64(num) / float64(den)
	return &v
}

// uintVal reads the tag's value as an unsigned integer at index 0.
func uintVal(x *exif.Exif, name exif.FieldName) *uint32 {
	tag, err := x.Get(name)
	if err != nil {
		return nil
	}
	v, err := tag.Int(0)
	if err != nil || v < 0 {
		return nil
	}
	u := uint32(v)
	return &u
}

// strVal reads an ASCII tag, trimming the padding some cameras write.
func strVal(x *exif.Exif, name exif.FieldName) *string {
	tag, err := x.Get(name)
	if err != nil {
		return nil
	}
	s, err := tag.StringVal()
	if err != nil {
		return nil
	}
	s = strings.TrimSpace(strings.TrimRight(s, "\x00"))
	if s == "" {
		return nil
	}
	return &s
}

// exposureTimeVal renders the exposure time the way cameras display it,
// e.g. "1/250" or "2" for long exposures.
func exposureTimeVal(x *exif.Exif) *string {
	tag, err := x.Get(exif.ExposureTime)
	if err != nil {
		return nil
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return nil
	}
	s := renderExposureTime(num, den)
	return &s
}

func renderExposureTime(num, den int64) string {
	if den == 1 {
		return strconv.FormatInt(num, 10)
	}
	return fmt.Sprintf("%d/%d", num, den)
}

// fNumberVal renders the f-number in the conventional "f/2.8" form.
func fNumberVal(x *exif.Exif) *string {
	tag, err := x.Get(exif.FNumber)
	if err != nil {
		return nil
	}
	num, den, err := tag.Rat2(0)
	if err != nil || den == 0 {
		return nil
	}
	s := renderFNumber(float64(num) / float64(den))
	return &s
}

func renderFNumber(v float64) string {
	return fmt.Sprintf("f/%g", v)
}

// dateTimeVal parses the date/time tag's rendered text. Absence and parse
// failure both degrade to nil, never to an error.
func dateTimeVal(x *exif.Exif, name exif.FieldName) *time.Time {
	tag, err := x.Get(name)
	if err != nil {
		return nil
	}
	s, err := tag.StringVal()
	if err != nil {
		return nil
	}
	return parseCaptureTime(strings.TrimSpace(strings.TrimRight(s, "\x00")))
}

func parseCaptureTime(s string) *time.Time {
	for _, layout := range []string{displayTimeLayout, exifTimeLayout} {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}

// flashFired reads the flash tag and reports whether the flash fired,
// matching on the rendered description's "fired" prefix.
func flashFired(x *exif.Exif) *bool {
	tag, err := x.Get(exif.Flash)
	if err != nil {
		return nil
	}
	v, err := tag.Int(0)
	if err != nil || v < 0 {
		return nil
	}
	fired := strings.HasPrefix(renderFlash(uint16(v)), "fired")
	return &fired
}

// renderFlash describes the EXIF flash bit field: bit 0 is the fired flag,
// bits 1-2 the strobe return light status.
func renderFlash(v uint16) string {
	if v&0x01 == 0 {
		return "did not fire"
	}
	switch (v >> 1) & 0x03 {
	case 2:
		return "fired, return not detected"
	case 3:
		return "fired, return detected"
	default:
		return "fired"
	}
}

// geoLocation reconstructs the capture location from the four GPS tags.
// The result is nil unless both coordinates resolve to non-zero magnitude.
func geoLocation(x *exif.Exif) *media.GeoPoint {
	lat := coordinate(x, exif.GPSLatitude, exif.GPSLatitudeRef)
	lon := coordinate(x, exif.GPSLongitude, exif.GPSLongitudeRef)
	return media.NewGeoPoint(lat, lon)
}

// coordinate turns a degrees/minutes/seconds tag plus its hemisphere
// reference into a signed decimal-degree value. Any missing or malformed
// piece resolves the whole coordinate to 0.0.
func coordinate(x *exif.Exif, dms, ref exif.FieldName) float64 {
	tag, err := x.Get(dms)
	if err != nil || tag.Count < 3 {
		return 0.0
	}
	deg, ok := ratAt(tag, 0)
	if !ok {
		return 0.0
	}
	min, ok := ratAt(tag, 1)
	if !ok {
		return 0.0
	}
	sec, ok := ratAt(tag, 2)
	if !ok {
		return 0.0
	}
	return dmsToDegrees(deg, min, sec) * refFactor(x, ref)
}

func ratAt(tag *tiff.Tag, i int) (float64, bool) {
	num, den, err := tag.Rat2(i)
	if err != nil || den == 0 {
		return 0, false
	}
	return float64(num) / float64(den), true
}

func dmsToDegrees(deg, min, sec float64) float64 {
	return deg + (min / 60.0) + (sec / 3600.0)
}

// refFactor maps the hemisphere letter to a sign factor. Unrecognized and
// absent references default to +1.0.
func refFactor(x *exif.Exif, name exif.FieldName) float64 {
	tag, err := x.Get(name)
	if err != nil {
		return 1.0
	}
	s, err := tag.StringVal()
	if err != nil {
		return 1.0
	}
	return refSign(strings.TrimSpace(strings.TrimRight(s, "\x00")))
}

func refSign(ref string) float64 {
	switch ref {
	case "S", "W":
		return -1.0
	default:
		return 1.0
	}
}
