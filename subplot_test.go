// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"image"
	"testing"

	"github.com/plotgrid/plotgrid/paint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubplotGridLayout(t *testing.T) {
	sg := NewSubplotGrid(2, 2, 1200, 900)
	gl := sg.Layout(paint.NewRaster(1, 1))

	assert.InDelta(t, 60, gl.HSpace, 1e-9)  // 0.05 * 1200
	assert.InDelta(t, 45, gl.VSpace, 1e-9)  // 0.05 * 900
	assert.Equal(t, 0.0, gl.TitleH)
	assert.InDelta(t, (1200-3*60)/2.0, gl.CellW, 1e-9)
	assert.InDelta(t, (900-3*45)/2.0, gl.CellH, 1e-9)

	// no title, exact fit: nothing left over to center
	assert.InDelta(t, 0, gl.OffX, 1e-9)
	assert.InDelta(t, 0, gl.OffY, 1e-9)
}

func TestSubplotGridLayoutWithTitle(t *testing.T) {
	sg := NewSubplotGrid(1, 2, 1000, 500)
	sg.Title = "Overview"
	gl := sg.Layout(paint.NewRaster(1, 1))
	assert.Greater(t, gl.TitleH, float64(gridTitlePad))
	assert.InDelta(t, 0, gl.OffY, 1e-9) // title height is taken from the cells, not the centering
}

func TestSubplotCellPlacement(t *testing.T) {
	sg := NewSubplotGrid(2, 2, 1200, 900)
	gl := sg.Layout(paint.NewRaster(1, 1))
	native := image.Pt(800, 600)

	pm := gl.CellPlacement(0, 0, native)
	assert.Greater(t, pm.Scale, 0.0)
	assert.LessOrEqual(t, pm.Scale*800, gl.CellW+1e-9)
	assert.LessOrEqual(t, pm.Scale*600, gl.CellH+1e-9)

	// uniform scale: at least one dimension fits exactly
	wSlack := gl.CellW - pm.Scale*800
	hSlack := gl.CellH - pm.Scale*600
	assert.True(t, wSlack < 1e-9 || hSlack < 1e-9)

	// centered: placement leaves equal slack on both sides
	cellX := gl.OffX + gl.HSpace
	assert.InDelta(t, cellX+wSlack/2, pm.OffsetX, 1e-9)

	// adjacent cells are one cell plus one gap apart
	pm2 := gl.CellPlacement(0, 1, native)
	assert.InDelta(t, pm.OffsetX+gl.CellW+gl.HSpace, pm2.OffsetX, 1e-9)
	assert.Equal(t, pm.OffsetY, pm2.OffsetY)
}

func TestSubplotAt(t *testing.T) {
	sg := NewSubplotGrid(2, 3, 900, 600)

	pl, err := sg.At(1, 2, Line)
	require.NoError(t, err)
	require.NotNil(t, pl)
	assert.Equal(t, Line, pl.Kind)

	// second access returns the same cell, kind argument ignored
	again, err := sg.At(1, 2, Histogram)
	require.NoError(t, err)
	assert.Same(t, pl, again)
	assert.Equal(t, Line, again.Kind)

	_, err = sg.At(2, 0, Scatter)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = sg.At(0, 3, Scatter)
	require.Error(t, err)
	_, err = sg.At(-1, 0, Scatter)
	require.Error(t, err)
}

func TestSubplotRenderSparse(t *testing.T) {
	sg := NewSubplotGrid(2, 2, 600, 400)
	sg.Title = "Sparse"
	pl, err := sg.At(0, 1, Scatter)
	require.NoError(t, err)
	_, err = pl.AddXY("a", []float64{0, 1, 2}, []float64{2, 0, 1})
	require.NoError(t, err)

	// empty cells are skipped, not an error
	rs := paint.NewRaster(600, 400)
	sg.Render(rs)
	assert.NotEqual(t, Identity(), pl.Place)

	svg := sg.SVGString()
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "</svg>")
	assert.Contains(t, svg, "Sparse")
}
