// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/plotgrid/plotgrid/paint"
)

const (
	gridTitleFontSize = 20
	gridTitlePad      = 10
)

// SubplotGrid positions rows x cols independently-owned Plots inside
// one canvas. Cell plots are created lazily on first access and are
// owned by the grid; each keeps its native resolution and is placed
// with a uniform aspect-preserving scale, centered in its cell, with
// the whole title + grid block centered in the canvas.
type SubplotGrid struct {

	// Rows and Cols are the grid dimensions.
	Rows, Cols int

	// Size is the canvas size in pixels.
	Size image.Point

	// Spacing is the gap between cells and canvas edges, as a fraction
	// of the canvas dimension on each axis. Defaults to 0.05.
	Spacing float64

	// Title is the optional main title above the grid.
	Title string

	// Background fills the canvas. Nil means white.
	Background color.Color

	// Palette is handed to every cell plot the grid creates.
	Palette Palette

	cells []*Plot
}

// NewSubplotGrid returns a rows x cols grid on a canvas of the given
// pixel size, with default spacing and palette.
func NewSubplotGrid(rows, cols, width, height int) *SubplotGrid {
	sg := &SubplotGrid{
		Rows:    rows,
		Cols:    cols,
		Size:    image.Pt(width, height),
		Spacing: 0.05,
		Palette: DefaultPalette(),
		cells:   make([]*Plot, rows*cols),
	}
	return sg
}

// At returns the Plot at (row, col), creating it with the given chart
// kind on first access. Out-of-range indices are an error, never
// clamped. A second call with a different kind returns the existing
// cell unchanged.
func (sg *SubplotGrid) At(row, col int, kind ChartKind) (*Plot, error) {
	if row < 0 || row >= sg.Rows || col < 0 || col >= sg.Cols {
		return nil, fmt.Errorf("plotgrid: subplot (%d, %d) outside %d x %d grid: %w", row, col, sg.Rows, sg.Cols, ErrOutOfRange)
	}
	i := row*sg.Cols + col
	if sg.cells[i] == nil {
		pl := NewPlot(kind)
		pl.Palette = sg.Palette
		sg.cells[i] = pl
	}
	return sg.cells[i], nil
}

// GridLayout is the computed pixel geometry of a grid render.
type GridLayout struct {

	// HSpace and VSpace are the spacing gaps in pixels.
	HSpace, VSpace float64

	// TitleH is the title block height: measured text height plus a
	// fixed pad, zero when there is no title.
	TitleH float64

	// CellW and CellH are the per-cell pixel dimensions.
	CellW, CellH float64

	// OffX and OffY center the whole title + grid block in the canvas.
	OffX, OffY float64
}

// Layout computes the grid geometry for the given painter (used only
// to measure the title text).
func (sg *SubplotGrid) Layout(p paint.Painter) GridLayout {
	w := float64(sg.Size.X)
	h := float64(sg.Size.Y)
	gl := GridLayout{
		HSpace: sg.Spacing * w,
		VSpace: sg.Spacing * h,
	}
	if sg.Title != "" {
		p.SetFontSize(gridTitleFontSize)
		_, th := p.TextSize(sg.Title)
		gl.TitleH = th + gridTitlePad
	}
	availW := w - gl.HSpace*float64(sg.Cols+1)
	availH := h - gl.VSpace*float64(sg.Rows+1) - gl.TitleH
	gl.CellW = availW / float64(sg.Cols)
	gl.CellH = availH / float64(sg.Rows)

	contentW := gl.HSpace*float64(sg.Cols+1) + gl.CellW*float64(sg.Cols)
	contentH := gl.TitleH + gl.VSpace*float64(sg.Rows+1) + gl.CellH*float64(sg.Rows)
	gl.OffX = (w - contentW) / 2
	gl.OffY = (h - contentH) / 2
	return gl
}

// CellPlacement returns the placement for a plot of the given native
// size in cell (row, col): one uniform scale, never per-axis stretch,
// with the scaled rectangle centered in the cell.
func (gl GridLayout) CellPlacement(row, col int, native image.Point) Placement {
	cellX := gl.OffX + gl.HSpace + float64(col)*(gl.CellW+gl.HSpace)
	cellY := gl.OffY + gl.TitleH + gl.VSpace + float64(row)*(gl.CellH+gl.VSpace)
	scale := gl.CellW / float64(native.X)
	if vs := gl.CellH / float64(native.Y); vs < scale {
		scale = vs
	}
	return Placement{
		OffsetX: cellX + (gl.CellW-scale*float64(native.X))/2,
		OffsetY: cellY + (gl.CellH-scale*float64(native.Y))/2,
		Scale:   scale,
	}
}

// Render draws the main title and every cell plot, row-major.
// Empty cells are left blank.
func (sg *SubplotGrid) Render(p paint.Painter) {
	bg := sg.Background
	if bg == nil {
		bg = color.White
	}
	p.Clear(bg)

	gl := sg.Layout(p)
	if sg.Title != "" {
		p.SetFontSize(gridTitleFontSize)
		p.SetColor(textColor)
		tw, th := p.TextSize(sg.Title)
		p.DrawText(sg.Title, float64(sg.Size.X)/2-tw/2, gl.OffY+th, 0)
	}
	for row := 0; row < sg.Rows; row++ {
		for col := 0; col < sg.Cols; col++ {
			pl := sg.cells[row*sg.Cols+col]
			if pl == nil {
				continue
			}
			pl.Place = gl.CellPlacement(row, col, pl.Size)
			pl.Render(p)
		}
	}
}

// SavePNG renders the grid and writes it to the given PNG file.
func (sg *SubplotGrid) SavePNG(filename string) error {
	rs := paint.NewRaster(sg.Size.X, sg.Size.Y)
	sg.Render(rs)
	return rs.SavePNG(filename)
}

// SaveSVG renders the grid to the given SVG file.
func (sg *SubplotGrid) SaveSVG(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	sv := paint.NewSVG(bw, sg.Size.X, sg.Size.Y)
	sg.Render(sv)
	sv.End()
	return bw.Flush()
}

// SVGString returns an SVG representation of the grid as a string.
func (sg *SubplotGrid) SVGString() string {
	b := &bytes.Buffer{}
	sv := paint.NewSVG(b, sg.Size.X, sg.Size.Y)
	sg.Render(sv)
	sv.End()
	return b.String()
}
