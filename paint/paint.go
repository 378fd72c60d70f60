// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paint provides the rendering backends for plots.
// The plot engine issues an ordered stream of primitive drawing
// calls through the [Painter] interface, and never reads state back;
// backends only have to execute the stream and encode the result.
package paint

import (
	"image"
	"image/color"
)

// Painter is the rendering interface used by the plot engine.
// Coordinates are pixels with the origin at the top-left corner
// and Y increasing downward.
type Painter interface {

	// Size returns the size of the drawing surface in pixels.
	Size() image.Point

	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// SetColor sets the color used for subsequent stroke and fill
	// operations, including text.
	SetColor(c color.Color)

	// SetLineWidth sets the stroke width in pixels.
	SetLineWidth(w float64)

	// SetDash sets the stroke dash pattern. Calling with no arguments
	// restores a solid stroke.
	SetDash(pattern ...float64)

	// MoveTo starts a new path segment at the given point.
	MoveTo(x, y float64)

	// LineTo adds a line from the current point to the given point.
	LineTo(x, y float64)

	// ClosePath closes the current path segment.
	ClosePath()

	// Stroke strokes the accumulated path and clears it.
	Stroke()

	// Fill fills the accumulated path and clears it.
	Fill()

	// DrawRectangle adds a rectangle to the current path.
	DrawRectangle(x, y, w, h float64)

	// DrawCircle adds a circle to the current path.
	DrawCircle(x, y, r float64)

	// SetFontSize sets the size in pixels for subsequent text calls.
	SetFontSize(size float64)

	// DrawText draws the string with its left baseline point at (x, y),
	// rotated by rot degrees around that point.
	DrawText(s string, x, y, rot float64)

	// TextSize returns the rendered width and height of the string
	// at the current font size.
	TextSize(s string) (w, h float64)
}
