// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#F00", color.NRGBA{255, 0, 0, 255}},
		{"#0f08", color.NRGBA{0, 255, 0, 0x88}},
		{"#336699", color.NRGBA{0x33, 0x66, 0x99, 255}},
		{"#33669980", color.NRGBA{0x33, 0x66, 0x99, 0x80}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"CornFlowerBlue", color.NRGBA{100, 149, 237, 255}},
		{"  navy ", color.NRGBA{0, 0, 128, 255}},
		{"transparent", color.NRGBA{}},
		{"rgb(10, 20, 30)", color.NRGBA{10, 20, 30, 255}},
		{"RGBA(10,20,30,0.5)", color.NRGBA{10, 20, 30, 128}},
		{"rgb(100% 0% 50% / 25%)", color.NRGBA{255, 0, 128, 64}},
		{"rgb(300, -5, 0)", color.NRGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "#", "#12", "#12345", "#gggggg", "notacolor", "rgb(1,2)", "rgb(a,b,c)", "rgb(1,2,3", "rgb(nan, 0, 0)", "rgba(0, 0, 0, NaN)", "rgb(nan%, 0, 0)"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseColor(in)
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
			}
		})
	}
}

func TestMustParseColorPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseColor should panic on invalid input")
		}
	}()
	MustParseColor("nope")
}

func TestFormatColor(t *testing.T) {
	tests := []struct {
		in   color.Color
		want string
	}{
		{color.NRGBA{255, 0, 0, 255}, "#ff0000"},
		{color.Black, "#000000"},
		{color.NRGBA{10, 20, 30, 0}, "rgba(10, 20, 30, 0)"},
		{color.NRGBA{10, 20, 30, 51}, "rgba(10, 20, 30, 0.2)"},
		{color.NRGBA{10, 20, 30, 128}, "rgba(10, 20, 30, 0.502)"},
	}
	for _, tt := range tests {
		if got := FormatColor(tt.in); got != tt.want {
			t.Errorf("FormatColor(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	c := color.NRGBA{0x12, 0x34, 0x56, 0xff}
	got, err := ParseColor(FormatColor(c))
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}
