// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemNames(items []LegendItem) []string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

func newLegendPlot(t *testing.T) *Plot {
	t.Helper()
	pl := New()
	_, err := pl.AddXY("A", []float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	_, err = pl.AddClusterXY("cl",
		[]float64{0, 1, 2}, []float64{0, 1, 2}, []int{2, -1, 0})
	require.NoError(t, err)
	_, err = pl.AddHorizLine(5)
	require.NoError(t, err)
	return pl
}

func TestLegendOrder(t *testing.T) {
	pl := newLegendPlot(t)
	assert.Equal(t,
		[]string{"A", "Outliers", "Cluster 1", "Cluster 3", "y = 5"},
		itemNames(pl.LegendItems()))
}

func TestLegendGlyphs(t *testing.T) {
	pl := newLegendPlot(t)
	items := pl.LegendItems()
	require.Len(t, items, 5)
	assert.Equal(t, GlyphPoint, items[0].Glyph)
	assert.Equal(t, GlyphCross, items[1].Glyph) // outliers
	assert.Equal(t, GlyphPoint, items[2].Glyph)
	assert.Equal(t, GlyphLine, items[4].Glyph)
}

func TestLegendHide(t *testing.T) {
	pl := newLegendPlot(t)
	pl.HideLegendItem("Cluster 1")
	assert.Equal(t,
		[]string{"A", "Outliers", "Cluster 3", "y = 5"},
		itemNames(pl.LegendItems()))

	pl.ShowLegendItem("Cluster 1")
	assert.Len(t, pl.LegendItems(), 5)
}

func TestLegendHideAll(t *testing.T) {
	pl := newLegendPlot(t)
	for _, it := range pl.LegendItems() {
		pl.HideLegendItem(it.Name)
	}
	items := pl.LegendItems()
	assert.Empty(t, items)
	assert.Equal(t, 0.0, pl.Legend.PanelHeight(len(items)))
}

func TestLegendPanelHeight(t *testing.T) {
	var lg Legend
	lg.Defaults()
	assert.Equal(t, 0.0, lg.PanelHeight(0))
	assert.Equal(t, 3*lg.RowHeight+lg.Pad, lg.PanelHeight(3))
}

func TestLegendUnnamedSeriesSkipped(t *testing.T) {
	pl := New()
	pl.AddPoints("", XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.Empty(t, pl.LegendItems())
}

func TestLegendLineKindGlyph(t *testing.T) {
	pl := NewPlot(Line)
	_, err := pl.AddXY("trend", []float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	items := pl.LegendItems()
	require.Len(t, items, 1)
	assert.Equal(t, GlyphLine, items[0].Glyph)
}

func TestLegendShowToggle(t *testing.T) {
	pl := New()
	_, err := pl.AddXY("alpha", []float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)

	assert.Contains(t, pl.SVGString(), "alpha</text>")

	pl.Legend.Show = false
	assert.NotEmpty(t, pl.LegendItems()) // items survive, only drawing is off
	assert.NotContains(t, pl.SVGString(), "alpha</text>")
}

func TestLegendDiscreteCategories(t *testing.T) {
	pl := NewPlot(Histogram)
	hs, err := pl.AddBars("dist", []string{"low", "mid", "high"}, []float64{1, 2, 3})
	require.NoError(t, err)

	// without per-category styles the series gets one entry
	assert.Equal(t, []string{"dist"}, itemNames(pl.LegendItems()))

	hs.CatStyles = make([]Style, 3)
	for i := range hs.CatStyles {
		hs.CatStyles[i].Defaults()
		hs.CatStyles[i].SetColor(pl.Palette.Color(i))
	}
	assert.Equal(t, []string{"low", "mid", "high"}, itemNames(pl.LegendItems()))
}
