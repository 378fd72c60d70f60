// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Raster is a [Painter] that renders into an in-memory RGBA image
// using fogleman/gg, and encodes the result as PNG.
type Raster struct {
	ctx  *gg.Context
	size image.Point
	face font.Face
}

// NewRaster returns a new raster painter with the given pixel size.
func NewRaster(width, height int) *Raster {
	rs := &Raster{
		ctx:  gg.NewContext(width, height),
		size: image.Pt(width, height),
	}
	rs.SetFontSize(12)
	return rs
}

func (rs *Raster) Size() image.Point {
	return rs.size
}

func (rs *Raster) Clear(c color.Color) {
	rs.ctx.SetColor(c)
	rs.ctx.Clear()
}

func (rs *Raster) SetColor(c color.Color) {
	rs.ctx.SetColor(c)
}

func (rs *Raster) SetLineWidth(w float64) {
	rs.ctx.SetLineWidth(w)
}

func (rs *Raster) SetDash(pattern ...float64) {
	rs.ctx.SetDash(pattern...)
}

func (rs *Raster) MoveTo(x, y float64) {
	rs.ctx.MoveTo(x, y)
}

func (rs *Raster) LineTo(x, y float64) {
	rs.ctx.LineTo(x, y)
}

func (rs *Raster) ClosePath() {
	rs.ctx.ClosePath()
}

func (rs *Raster) Stroke() {
	rs.ctx.Stroke()
}

func (rs *Raster) Fill() {
	rs.ctx.Fill()
}

func (rs *Raster) DrawRectangle(x, y, w, h float64) {
	rs.ctx.DrawRectangle(x, y, w, h)
}

func (rs *Raster) DrawCircle(x, y, r float64) {
	rs.ctx.DrawCircle(x, y, r)
}

func (rs *Raster) SetFontSize(size float64) {
	rs.face = DefaultFace(size)
	if rs.face != nil {
		rs.ctx.SetFontFace(rs.face)
	}
}

func (rs *Raster) DrawText(s string, x, y, rot float64) {
	if rot != 0 {
		rs.ctx.Push()
		rs.ctx.RotateAbout(gg.Radians(rot), x, y)
		rs.ctx.DrawString(s, x, y)
		rs.ctx.Pop()
		return
	}
	rs.ctx.DrawString(s, x, y)
}

func (rs *Raster) TextSize(s string) (w, h float64) {
	return MeasureText(rs.face, s)
}

// Image returns the rendered image.
func (rs *Raster) Image() image.Image {
	return rs.ctx.Image()
}

// EncodePNG writes the rendered image as PNG to the given writer.
func (rs *Raster) EncodePNG(w io.Writer) error {
	return rs.ctx.EncodePNG(w)
}

// SavePNG writes the rendered image as PNG to the given file.
func (rs *Raster) SavePNG(filename string) error {
	return rs.ctx.SavePNG(filename)
}
