// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"image/color"
)

// ReferenceLine is a horizontal or vertical marker line at a fixed
// data value, with an optional label. An empty label is auto-generated
// from the value with trailing zeros trimmed.
type ReferenceLine struct {

	// Vertical draws the line at a fixed x value; otherwise at a fixed y.
	Vertical bool

	// Value is the data-space position of the line.
	Value float64

	// Label is the legend / annotation text. Empty means auto-generate.
	Label string

	// Line is the stroke style; defaults to a dashed gray line.
	Line LineStyle
}

func (rl *ReferenceLine) Defaults() {
	rl.Line.Color = color.RGBA{90, 90, 90, 255}
	rl.Line.Width = 1
	rl.Line.Dashes = []float64{6, 4}
}

// DisplayLabel returns the label to render: the explicit label, or the
// formatted value prefixed by the axis letter.
func (rl *ReferenceLine) DisplayLabel() string {
	if rl.Label != "" {
		return rl.Label
	}
	if rl.Vertical {
		return "x = " + formatValue(rl.Value)
	}
	return "y = " + formatValue(rl.Value)
}
