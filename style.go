// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"image/color"

	"github.com/plotgrid/plotgrid/paint"
)

// Style contains the styling properties for one plot element
// (a series, a histogram, a reference line).
type Style struct {

	// Line has style properties for drawing lines and bar outlines.
	Line LineStyle

	// Point has style properties for drawing points.
	Point PointStyle

	// Width has bar width properties for histogram elements.
	Width WidthStyle
}

// NewStyle returns a new Style object with defaults applied.
func NewStyle() *Style {
	st := &Style{}
	st.Defaults()
	return st
}

func (st *Style) Defaults() {
	st.Line.Defaults()
	st.Point.Defaults()
	st.Width.Defaults()
}

// SetColor sets the primary color on both the line and point styles.
func (st *Style) SetColor(c color.Color) *Style {
	st.Line.Color = c
	st.Point.Color = c
	return st
}

// LineStyle has style properties for line drawing.
type LineStyle struct {

	// Color is the stroke color. Use nil to disable line drawing.
	Color color.Color

	// Width is the line width in pixels. Use zero to disable line drawing.
	Width float64

	// Dashes are the dash pattern lengths in pixels. Empty is a solid line.
	Dashes []float64

	// Fill is the fill color for the area below a line or inside a bar.
	// Use nil to derive it from Color, or [NoFill] to disable filling.
	Fill color.Color
}

func (ls *LineStyle) Defaults() {
	ls.Color = color.RGBA{A: 255}
	ls.Width = 1
}

// SetStroke sets the stroke style on the painter, scaled by the given
// placement scale. It returns false, and configures nothing, if the
// line is effectively off (no color or zero width).
func (ls *LineStyle) SetStroke(p paint.Painter, scale float64) bool {
	if ls.Color == nil || ls.Width <= 0 {
		return false
	}
	p.SetColor(ls.Color)
	p.SetLineWidth(ls.Width * scale)
	if len(ls.Dashes) > 0 {
		ds := make([]float64, len(ls.Dashes))
		for i, d := range ls.Dashes {
			ds[i] = d * scale
		}
		p.SetDash(ds...)
	} else {
		p.SetDash()
	}
	return true
}

// NoFill is a sentinel fill color indicating that filling is disabled.
var NoFill = color.RGBA{}

// PointStyle has style properties for point drawing.
type PointStyle struct {

	// Color is the point color. Use nil to disable point drawing.
	Color color.Color

	// Radius is the point radius in pixels. Use zero to disable points.
	Radius float64

	// Shape is the marker shape drawn at each point.
	Shape Shapes
}

func (ps *PointStyle) Defaults() {
	ps.Color = color.RGBA{A: 255}
	ps.Radius = 3
	ps.Shape = Circle
}

// WidthStyle has histogram bar width properties.
type WidthStyle struct {

	// Width is the bar width as a fraction of the category stride,
	// < 1 so adjacent bars do not touch. Defaults to 0.8.
	Width float64
}

func (ws *WidthStyle) Defaults() {
	ws.Width = 0.8
}
