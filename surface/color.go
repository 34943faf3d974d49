// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// ErrInvalidColor is returned by ParseColor for strings that are not CSS
// colours.
var ErrInvalidColor = errors.New("surface: invalid color")

// ParseColor parses a CSS colour string. Supported forms:
//
//	#rgb  #rgba  #rrggbb  #rrggbbaa
//	rgb(255, 0, 0)  rgba(255, 0, 0, 0.5)  rgb(100% 0% 0% / 50%)
//	red  CornFlowerBlue  transparent
//
// Keywords are matched case-insensitively. The result is a color.NRGBA.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}
	if s[0] == '#' {
		return parseHexColor(s)
	}

	folded := cases.Fold().String(s)
	switch {
	case strings.HasPrefix(folded, "rgba(") || strings.HasPrefix(folded, "rgb("):
		return parseRGBFunc(folded)
	case folded == "transparent":
		return color.NRGBA{}, nil
	}
	if c, ok := colornames.Map[folded]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// MustParseColor is like ParseColor but panics on error. Intended for
// package-level colour literals.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHexColor(s string) (color.Color, error) {
	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		// #rgb(a): each digit is doubled.
		var expanded strings.Builder
		for i := 0; i < len(hex); i++ {
			expanded.WriteByte(hex[i])
			expanded.WriteByte(hex[i])
		}
		hex = expanded.String()
	case 6, 8:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// parseRGBFunc parses rgb()/rgba() in both the comma and the space/slash
// syntax.
func parseRGBFunc(s string) (color.Color, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	body := s[open+1 : len(s)-1]
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := parseChannel(fields[i], 255)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		rgb[i] = uint8(v + 0.5)
	}
	alpha := 1.0
	if len(fields) == 4 {
		a, err := parseChannel(fields[3], 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = a
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: uint8(alpha*255 + 0.5)}, nil
}

// parseChannel parses a number or percentage and clamps it to [0, limit].
func parseChannel(f string, limit float64) (float64, error) {
	scale := 1.0
	if strings.HasSuffix(f, "%") {
		f = strings.TrimSuffix(f, "%")
		scale = limit / 100
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) {
		return 0, ErrInvalidColor
	}
	v *= scale
	if v < 0 {
		v = 0
	}
	if v > limit {
		v = limit
	}
	return v, nil
}

// FormatColor renders c as a CSS colour string: "#rrggbb" when opaque,
// "rgba(r, g, b, a)" otherwise.
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	a := strconv.FormatFloat(float64(n.A)/255, 'f', -1, 64)
	if len(a) > 5 {
		a = strconv.FormatFloat(float64(n.A)/255, 'f', 3, 64)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, a)
}
