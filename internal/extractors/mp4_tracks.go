// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package extractors

import (
	"io"

	mp4 "github.com/abema/go-mp4"
)

// Track kinds declared by a container's handler boxes. Anything that is not
// video or audio (metadata tracks, hint tracks) is ignored downstream.
const (
	trackKindVideo = "video"
	trackKindAudio = "audio"
	trackKindOther = "other"
)

// trackInfo is the per-track slice of an MP4 track table that the video
// extractor consumes. Every field that a malformed container can omit is a
// pointer; lookups degrade to nil instead of aborting.
type trackInfo struct {
	Kind     string
	ID       *uint32
	Duration *uint64
	Width    *uint32
	Height   *uint32
	Codec    *string
}

// readTracks walks the container's track table in declaration order.
func readTracks(r io.ReadSeeker) ([]trackInfo, error) {
	traks, err := mp4.ExtractBox(r, nil, mp4.BoxPath{mp4.BoxTypeMoov(), mp4.BoxTypeTrak()})
	if err != nil {
		return nil, err
	}
	tracks := make([]trackInfo, 0, len(traks))
	for _, trak := range traks {
		tracks = append(tracks, readTrack(r, trak))
	}
	return tracks, nil
}

func readTrack(r io.ReadSeeker, trak *mp4.BoxInfo) trackInfo {
	t := trackInfo{Kind: trackKindOther}

	if hdlr, ok := extractPayload(r, trak, mp4.BoxPath{mp4.BoxTypeMdia(), mp4.BoxTypeHdlr()}).(*mp4.Hdlr); ok {
		switch string(hdlr.HandlerType[:]) {
		case "vide":
			t.Kind = trackKindVideo
		case "soun":
			t.Kind = trackKindAudio
		}
	}

	if tkhd, ok := extractPayload(r, trak, mp4.BoxPath{mp4.BoxTypeTkhd()}).(*mp4.Tkhd); ok {
		id := tkhd.TrackID
		t.ID = &id
		// Track header dimensions are 16.16 fixed point.
		w := tkhd.Width >> 16
		h := tkhd.Height >> 16
		t.Width = &w
		t.Height = &h
	}

	if mdhd, ok := extractPayload(r, trak, mp4.BoxPath{mp4.BoxTypeMdia(), mp4.BoxTypeMdhd()}).(*mp4.Mdhd); ok {
		var d uint64
		if mdhd.Version == 0 {
			d = uint64(mdhd.DurationV0)
		} else {
			d = mdhd.DurationV1
		}
		t.Duration = &d
	}

	// The codec identifier is the box type of the track's first sample
	// description entry, e.g. "avc1" or "mp4a".
	entries, err := mp4.ExtractBox(r, trak, mp4.BoxPath{
		mp4.BoxTypeMdia(), mp4.BoxTypeMinf(), mp4.BoxTypeStbl(), mp4.BoxTypeStsd(), mp4.BoxTypeAny(),
	})
	if err == nil && len(entries) > 0 {
		codec := entries[0].Type.String()
		t.Codec = &codec
	}

	return t
}

func extractPayload(r io.ReadSeeker, parent *mp4.BoxInfo, path mp4.BoxPath) mp4.IBox {
	boxes, err := mp4.ExtractBoxWithPayload(r, parent, path)
	if err != nil || len(boxes) == 0 {
		return nil
	}
	return boxes[0].Payload
}
