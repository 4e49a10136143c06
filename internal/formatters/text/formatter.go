// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"media-scan/internal/formatters"
	"media-scan/internal/media"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

func (f *Formatter) Format(results []media.Result, options formatters.FormatterOptions) (string, error) {
	// Disable colors if requested
	if options.NoColor {
		color.NoColor = true
	}

	if len(results) == 0 {
		return "No files processed.", nil
	}

	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		f.writeResult(&b, res, options)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func (f *Formatter) writeResult(b *strings.Builder, res media.Result, options formatters.FormatterOptions) {
	fmt.Fprintf(b, "%s (%s)\n", f.colors["white"].Sprint(res.File), res.Type)

	if res.Error != "" {
		fmt.Fprintf(b, "  %s %s\n", f.colors["red"].Sprint("ERROR:"), res.Error)
		return
	}

	switch {
	case res.Image != nil:
		f.writeImage(b, res.Image, options)
	case res.Video != nil:
		f.writeVideo(b, res.Video, options)
	}
}

func (f *Formatter) writeImage(b *strings.Builder, m *media.ImageMetadata, options formatters.FormatterOptions) {
	f.field(b, options, "Media Item", m.MediaItemID.String())
	f.optField(b, options, "Make", strField(m.Make))
	f.optField(b, options, "Model", strField(m.Model))
	f.optField(b, options, "Captured", timeField(m.CaptureTime))
	f.optField(b, options, "Dimensions", dimensionsField(m.PixelWidth, m.PixelHeight))
	f.optField(b, options, "Exposure", strField(m.ExposureTime))
	f.optField(b, options, "F-Number", strField(m.FNumber))
	f.optField(b, options, "Aperture", floatField(m.ApertureValue))
	f.optField(b, options, "Flash", boolField(m.FlashFired, "fired", "did not fire"))
	f.optField(b, options, "Location", locationField(m.Location))
	f.optField(b, options, "Altitude", floatField(m.Altitude))
	f.optField(b, options, "Speed", floatField(m.Speed))
}

func (f *Formatter) writeVideo(b *strings.Builder, m *media.VideoMetadata, options formatters.FormatterOptions) {
	f.field(b, options, "Media Item", m.MediaItemID.String())
	f.optField(b, options, "Duration", uint64Field(m.Duration))
	f.optField(b, options, "Dimensions", dimensionsField(m.Width, m.Height))
	f.optField(b, options, "Video Codec", strField(m.VideoCodec))
	f.optField(b, options, "Audio Track", uint32Field(m.AudioTrackID))
	f.optField(b, options, "Audio Codec", strField(m.AudioCodec))
}

func (f *Formatter) field(b *strings.Builder, options formatters.FormatterOptions, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", f.colors["cyan"].Sprintf("%s:", label), value)
}

// optField prints a metadata field, skipping absent values unless verbose
// output is requested.
func (f *Formatter) optField(b *strings.Builder, options formatters.FormatterOptions, label, value string) {
	if value == "" {
		if !options.Verbose {
			return
		}
		value = f.colors["yellow"].Sprint("-")
	}
	f.field(b, options, label, value)
}

func strField(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func floatField(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g", *v)
}

func uint32Field(v *uint32) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func uint64Field(v *uint64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func timeField(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02 15:04:05")
}

func boolField(v *bool, yes, no string) string {
	if v == nil {
		return ""
	}
	if *v {
		return yes
	}
	return no
}

func dimensionsField(w, h *uint32) string {
	if w == nil || h == nil {
		return ""
	}
	return fmt.Sprintf("%dx%d", *w, *h)
}

func locationField(p *media.GeoPoint) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.6f, %.6f", p.Y, p.X)
}

func init() {
	formatters.Register(NewFormatter())
}
