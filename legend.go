// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"image/color"
)

// Glyph is the marker drawn next to a legend entry, matching the way
// the entry's data is drawn.
type Glyph int32

const (
	// GlyphPoint is a filled circle, for point and cluster entries.
	GlyphPoint Glyph = iota

	// GlyphCross is an X marker, for cluster outlier entries.
	GlyphCross

	// GlyphLine is a short dashed segment, for reference lines.
	GlyphLine

	// GlyphBar is a filled rectangle, for histogram entries.
	GlyphBar
)

// LegendItem is one visible named entry in the legend panel.
type LegendItem struct {
	Name  string
	Glyph Glyph
	Color color.Color
}

// Legend is the legend panel state: the global visibility toggle,
// the per-name hide set, and the fixed panel geometry.
type Legend struct {

	// Show toggles the whole panel; when false nothing is drawn
	// regardless of per-item state.
	Show bool

	// Width is the fixed panel width in native pixels.
	Width float64

	// RowHeight is the fixed per-entry row height in native pixels.
	RowHeight float64

	// Pad is the fixed padding added to the panel height.
	Pad float64

	hidden map[string]bool
}

func (lg *Legend) Defaults() {
	lg.Show = true
	lg.Width = 120
	lg.RowHeight = 18
	lg.Pad = 8
}

// Hide drops the entry with the given resolved name from the panel.
func (lg *Legend) Hide(name string) {
	if lg.hidden == nil {
		lg.hidden = map[string]bool{}
	}
	lg.hidden[name] = true
}

// Unhide restores a previously hidden entry.
func (lg *Legend) Unhide(name string) {
	delete(lg.hidden, name)
}

// IsHidden reports whether the named entry is hidden.
func (lg *Legend) IsHidden(name string) bool {
	return lg.hidden[name]
}

// PanelHeight returns the panel height for the given number of
// entries: rows times the row height plus the fixed padding,
// or zero for an empty panel.
func (lg *Legend) PanelHeight(rows int) float64 {
	if rows == 0 {
		return 0
	}
	return float64(rows)*lg.RowHeight + lg.Pad
}

// HideLegendItem hides the legend entry with the given resolved name.
func (pl *Plot) HideLegendItem(name string) {
	pl.Legend.Hide(name)
}

// ShowLegendItem restores a hidden legend entry.
func (pl *Plot) ShowLegendItem(name string) {
	pl.Legend.Unhide(name)
}

// LegendItems collects the visible legend entries in fixed order:
// named regular series, then cluster groups (outliers first, clusters
// by ascending label), then histogram series / categories, then
// reference lines. Entries in the hide set are dropped before layout.
func (pl *Plot) LegendItems() []LegendItem {
	var items []LegendItem

	// a single unnamed default series gets no legend entry
	for _, sr := range pl.Series {
		if sr.Name == "" {
			continue
		}
		glyph := GlyphPoint
		if pl.Kind == Line {
			glyph = GlyphLine
		}
		items = append(items, LegendItem{Name: sr.Name, Glyph: glyph, Color: sr.Style.Point.Color})
	}

	for _, cs := range pl.Clusters {
		for _, label := range cs.LabelSet() {
			glyph := GlyphPoint
			if label < 0 {
				glyph = GlyphCross
			}
			items = append(items, LegendItem{
				Name:  cs.LabelName(label),
				Glyph: glyph,
				Color: cs.LabelColor(label, pl.Palette),
			})
		}
	}

	for _, hs := range pl.Hists {
		if hs.Kind == HistDiscrete && len(hs.CatStyles) > 0 {
			for i, cat := range hs.Categories {
				items = append(items, LegendItem{Name: cat, Glyph: GlyphBar, Color: hs.CatStyle(i).Line.Color})
			}
			continue
		}
		if hs.Name == "" {
			continue
		}
		items = append(items, LegendItem{Name: hs.Name, Glyph: GlyphBar, Color: hs.Style.Line.Color})
	}

	for _, rl := range pl.RefLines {
		items = append(items, LegendItem{Name: rl.DisplayLabel(), Glyph: GlyphLine, Color: rl.Line.Color})
	}

	visible := items[:0]
	for _, it := range items {
		if !pl.Legend.IsHidden(it.Name) {
			visible = append(visible, it)
		}
	}
	return visible
}
