// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"github.com/plotgrid/plotgrid/paint"
)

// Shapes has the options for point marker shapes.
type Shapes int32

const (
	// Circle is a filled circle.
	Circle Shapes = iota

	// Cross is a diagonal X stroke, used for cluster outliers.
	Cross

	// Square is a filled square.
	Square
)

// DrawShape draws the given marker shape centered at (x, y) with the
// given radius, using the painter's current color. Circle and Square
// fill; Cross strokes with a width proportional to the radius.
func DrawShape(p paint.Painter, shape Shapes, x, y, r float64) {
	switch shape {
	case Circle:
		p.DrawCircle(x, y, r)
		p.Fill()
	case Cross:
		p.SetLineWidth(r * 0.5)
		p.SetDash()
		p.MoveTo(x-r, y-r)
		p.LineTo(x+r, y+r)
		p.MoveTo(x-r, y+r)
		p.LineTo(x+r, y-r)
		p.Stroke()
	case Square:
		p.DrawRectangle(x-r, y-r, 2*r, 2*r)
		p.Fill()
	}
}
