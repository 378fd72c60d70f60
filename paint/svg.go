// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"
	"golang.org/x/image/font"
)

// SVG is a [Painter] that emits SVG elements to an io.Writer using
// ajstarks/svgo. Paths are accumulated from MoveTo / LineTo calls
// and emitted as a single path element on Stroke or Fill, mirroring
// the raster backend's path semantics.
type SVG struct {
	svg      *svgo.SVG
	size     image.Point
	path     strings.Builder
	color    color.Color
	width    float64
	dash     []float64
	fontSize float64
	face     font.Face
}

// NewSVG returns a new SVG painter writing to w, and emits the
// opening svg element with the given pixel size. Callers must call
// [SVG.End] when drawing is complete to close the document.
func NewSVG(w io.Writer, width, height int) *SVG {
	sv := &SVG{
		svg:   svgo.New(w),
		size:  image.Pt(width, height),
		color: color.RGBA{0, 0, 0, 255},
		width: 1,
	}
	sv.svg.Start(width, height)
	sv.SetFontSize(12)
	return sv
}

// End closes the svg element. No further drawing is allowed.
func (sv *SVG) End() {
	sv.svg.End()
}

func (sv *SVG) Size() image.Point {
	return sv.size
}

func (sv *SVG) Clear(c color.Color) {
	sv.svg.Rect(0, 0, sv.size.X, sv.size.Y, fillStyle(c))
}

func (sv *SVG) SetColor(c color.Color) {
	sv.color = c
}

func (sv *SVG) SetLineWidth(w float64) {
	sv.width = w
}

func (sv *SVG) SetDash(pattern ...float64) {
	sv.dash = pattern
}

func (sv *SVG) MoveTo(x, y float64) {
	fmt.Fprintf(&sv.path, "M%.2f %.2f", x, y)
}

func (sv *SVG) LineTo(x, y float64) {
	fmt.Fprintf(&sv.path, "L%.2f %.2f", x, y)
}

func (sv *SVG) ClosePath() {
	sv.path.WriteString("Z")
}

func (sv *SVG) Stroke() {
	if sv.path.Len() > 0 {
		sv.svg.Path(sv.path.String(), sv.strokeStyle())
	}
	sv.path.Reset()
}

func (sv *SVG) Fill() {
	if sv.path.Len() > 0 {
		sv.svg.Path(sv.path.String(), fillStyle(sv.color))
	}
	sv.path.Reset()
}

func (sv *SVG) DrawRectangle(x, y, w, h float64) {
	sv.MoveTo(x, y)
	sv.LineTo(x+w, y)
	sv.LineTo(x+w, y+h)
	sv.LineTo(x, y+h)
	sv.ClosePath()
}

func (sv *SVG) DrawCircle(x, y, r float64) {
	// two half-circle arcs: path form keeps Stroke / Fill uniform
	fmt.Fprintf(&sv.path, "M%.2f %.2fA%.2f %.2f 0 1 0 %.2f %.2fA%.2f %.2f 0 1 0 %.2f %.2fZ",
		x-r, y, r, r, x+r, y, r, r, x-r, y)
}

func (sv *SVG) SetFontSize(size float64) {
	sv.fontSize = size
	sv.face = DefaultFace(size)
}

func (sv *SVG) DrawText(s string, x, y, rot float64) {
	style := fmt.Sprintf("font-family:sans-serif;font-size:%.1fpx;%s", sv.fontSize, fillStyle(sv.color))
	if rot != 0 {
		sv.svg.Gtransform(fmt.Sprintf("rotate(%.2f,%.2f,%.2f)", rot, x, y))
		sv.svg.Text(int(x+0.5), int(y+0.5), s, style)
		sv.svg.Gend()
		return
	}
	sv.svg.Text(int(x+0.5), int(y+0.5), s, style)
}

func (sv *SVG) TextSize(s string) (w, h float64) {
	return MeasureText(sv.face, s)
}

func (sv *SVG) strokeStyle() string {
	hex, op := svgColor(sv.color)
	st := fmt.Sprintf("stroke:%s;stroke-opacity:%.3f;stroke-width:%.2fpx;fill:none", hex, op, sv.width)
	if len(sv.dash) > 0 {
		ds := make([]string, len(sv.dash))
		for i, d := range sv.dash {
			ds[i] = fmt.Sprintf("%.2f", d)
		}
		st += ";stroke-dasharray:" + strings.Join(ds, ",")
	}
	return st
}

func fillStyle(c color.Color) string {
	hex, op := svgColor(c)
	return fmt.Sprintf("fill:%s;fill-opacity:%.3f;stroke:none", hex, op)
}

// svgColor returns the hex form and opacity of a color.
func svgColor(c color.Color) (hex string, opacity float64) {
	if c == nil {
		return "none", 0
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "none", 0
	}
	// un-premultiply
	r = r * 0xffff / a
	g = g * 0xffff / a
	b = b * 0xffff / a
	hex = fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
	return hex, float64(a) / 0xffff
}
