// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsPoints(t *testing.T) {
	pl := New()
	_, err := pl.AddXY("a", []float64{0, 10}, []float64{0, 10})
	require.NoError(t, err)

	b := pl.Bounds()
	assert.InDelta(t, -0.5, b.MinX, 1e-9)
	assert.InDelta(t, 10.5, b.MaxX, 1e-9)
	assert.InDelta(t, -0.5, b.MinY, 1e-9)
	assert.InDelta(t, 10.5, b.MaxY, 1e-9)
}

func TestBoundsZeroRange(t *testing.T) {
	pl := New()
	_, err := pl.AddXY("a", []float64{3, 3, 3}, []float64{7, 7, 7})
	require.NoError(t, err)

	b := pl.Bounds()
	// unit range substituted, then 5% padded
	assert.InDelta(t, 2.5-0.05, b.MinX, 1e-9)
	assert.InDelta(t, 3.5+0.05, b.MaxX, 1e-9)
	assert.InDelta(t, 6.5-0.05, b.MinY, 1e-9)
	assert.InDelta(t, 7.5+0.05, b.MaxY, 1e-9)
}

func TestBoundsHistogram(t *testing.T) {
	pl := NewPlot(Histogram)
	hs, err := pl.AddHistogram("h", []float64{1, 2, 3, 4, 5, 6, 7, 8}, 4)
	require.NoError(t, err)
	require.NotNil(t, hs)

	b := pl.Bounds()
	lo, hi := hs.Edges[0], hs.Edges[len(hs.Edges)-1]
	pad := (hi - lo) * histXPad
	assert.InDelta(t, lo-pad, b.MinX, 1e-6)
	assert.InDelta(t, hi+pad, b.MaxX, 1e-6)

	var maxc float64
	for _, c := range hs.Counts {
		if c > maxc {
			maxc = c
		}
	}
	assert.Equal(t, 0.0, b.MinY)
	assert.InDelta(t, maxc*1.05, b.MaxY, 1e-9)
}

func TestBoundsDiscreteHistogram(t *testing.T) {
	pl := NewPlot(Histogram)
	_, err := pl.AddBars("b", []string{"a", "b", "c"}, []float64{2, 5, 3})
	require.NoError(t, err)

	b := pl.Bounds()
	pad := 3.0 * histXPad // index range is [-0.5, 2.5]
	assert.InDelta(t, -0.5-pad, b.MinX, 1e-9)
	assert.InDelta(t, 2.5+pad, b.MaxX, 1e-9)
	assert.Equal(t, 0.0, b.MinY)
	assert.InDelta(t, 5*1.05, b.MaxY, 1e-9)
}

func TestBoundsManual(t *testing.T) {
	pl := New()
	_, err := pl.AddXY("a", []float64{0, 100}, []float64{0, 100})
	require.NoError(t, err)
	pl.SetBounds(-1, 1, -2, 2)

	b := pl.Bounds()
	assert.Equal(t, Bounds{MinX: -1, MaxX: 1, MinY: -2, MaxY: 2}, b)

	// manual bounds survive further data additions
	_, err = pl.AddXY("b", []float64{500}, []float64{500})
	require.NoError(t, err)
	assert.Equal(t, b, pl.Bounds())
}

func TestBoundsEmpty(t *testing.T) {
	pl := New()
	b := pl.Bounds()
	assert.Equal(t, Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}, b)
}

func TestBoundsRecomputeOnChange(t *testing.T) {
	pl := New()
	_, err := pl.AddXY("a", []float64{0, 10}, []float64{0, 10})
	require.NoError(t, err)
	first := pl.Bounds()

	_, err = pl.AddXY("b", []float64{-10, 20}, []float64{0, 10})
	require.NoError(t, err)
	second := pl.Bounds()
	assert.Less(t, second.MinX, first.MinX)
	assert.Greater(t, second.MaxX, first.MaxX)

	pl.Clear()
	assert.Equal(t, Bounds{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}, pl.Bounds())
}

func TestBoundsIgnoresReferenceLines(t *testing.T) {
	pl := New()
	_, err := pl.AddXY("a", []float64{0, 10}, []float64{0, 10})
	require.NoError(t, err)
	before := pl.Bounds()

	_, err = pl.AddVertLine(1000)
	require.NoError(t, err)
	assert.Equal(t, before, pl.Bounds())
}
