// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package formatters

import (
	"strings"
	"testing"

	"media-scan/internal/media"
)

type stubFormatter struct{ name string }

func (s *stubFormatter) Format(results []media.Result, options FormatterOptions) (string, error) {
	return s.name, nil
}
func (s *stubFormatter) Name() string          { return s.name }
func (s *stubFormatter) Description() string   { return "stub" }
func (s *stubFormatter) FileExtension() string { return ".stub" }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubFormatter{name: "stub"})

	if _, ok := r.Get("stub"); !ok {
		t.Error("expected registered formatter to be retrievable")
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("expected unregistered formatter lookup to fail")
	}
}

func TestRegistry_ListIsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubFormatter{name: "zeta"})
	r.Register(&stubFormatter{name: "alpha"})

	names := r.List()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("expected sorted names, got %v", names)
	}
}

func TestExport_UnsupportedFormat(t *testing.T) {
	_, err := Export("no-such-format", nil, FormatterOptions{})
	if err == nil {
		t.Fatal("expected an error for an unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("expected unsupported-format message, got %v", err)
	}
}
