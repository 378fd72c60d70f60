// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/plotgrid/plotgrid/base/errors"
)

var (
	fontOnce    sync.Once
	defaultFont *truetype.Font
)

// DefaultFace returns a font.Face for the embedded Go Regular font
// at the given size in pixels. Both backends use it: the raster
// backend for glyph rendering, the SVG backend for text measurement,
// so text layout agrees between the two.
func DefaultFace(size float64) font.Face {
	fontOnce.Do(func() {
		defaultFont = errors.Log1(truetype.Parse(goregular.TTF))
	})
	if defaultFont == nil {
		return nil
	}
	return truetype.NewFace(defaultFont, &truetype.Options{
		Size: size,
		DPI:  72,
	})
}

// MeasureText returns the width and height in pixels of the string
// rendered with the given face.
func MeasureText(face font.Face, s string) (w, h float64) {
	if face == nil {
		return 0, 0
	}
	adv := font.MeasureString(face, s)
	m := face.Metrics()
	return float64(adv) / 64, float64(m.Ascent+m.Descent) / 64
}
