// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"image/color"

	"github.com/plotgrid/plotgrid/paint"
)

// fixed rendering parameters in native pixels
const (
	titleFontSize  = 16
	labelFontSize  = 13
	tickFontSize   = 11
	legendFontSize = 11
	tickLength     = 5
)

var (
	axisColor = color.RGBA{60, 60, 60, 255}
	gridColor = color.RGBA{229, 229, 229, 255}
	textColor = color.RGBA{20, 20, 20, 255}
)

// Render draws the whole plot through the painter: background, grid
// lines, axes with ticks, title, data, reference lines and legend.
// Bounds are recomputed first if data changed since the last render.
func (pl *Plot) Render(p paint.Painter) {
	pl.transition(rangeClean)

	bg := pl.Background
	if bg == nil {
		bg = color.White
	}
	if pl.Place == Identity() {
		p.Clear(bg)
	} else {
		p.SetColor(bg)
		p.DrawRectangle(pl.Place.X(0), pl.Place.Y(0),
			pl.Place.Scale*float64(pl.Size.X), pl.Place.Scale*float64(pl.Size.Y))
		p.Fill()
	}

	pl.drawGrid(p)
	pl.drawAxes(p)
	pl.drawTitle(p)
	pl.drawData(p)
	pl.drawRefLines(p)
	pl.drawLegend(p)
}

// area returns the data area edges in canvas pixels.
func (pl *Plot) area() (left, right, top, bottom float64) {
	left = pl.Place.X(pl.Margins.Left)
	right = pl.Place.X(float64(pl.Size.X) - pl.Margins.Right)
	top = pl.Place.Y(pl.Margins.Top)
	bottom = pl.Place.Y(float64(pl.Size.Y) - pl.Margins.Bottom)
	return
}

// xTicks returns the x axis ticks: category names at index positions
// for discrete histograms, nice numeric ticks otherwise. Grid lines
// use the same values, so the two always align.
func (pl *Plot) xTicks() []Tick {
	if pl.HistKind == HistDiscrete && len(pl.Hists) > 0 {
		hs := pl.Hists[0]
		ticks := make([]Tick, len(hs.Categories))
		for i, cat := range hs.Categories {
			ticks[i] = Tick{Value: float64(i), Label: cat}
		}
		return ticks
	}
	return TickList(pl.X.Min, pl.X.Max, pl.XTicks)
}

func (pl *Plot) yTicks() []Tick {
	return TickList(pl.Y.Min, pl.Y.Max, pl.YTicks)
}

func (pl *Plot) drawGrid(p paint.Painter) {
	sc := pl.Place.Scale
	left, right, top, bottom := pl.area()
	p.SetColor(gridColor)
	p.SetLineWidth(1 * sc)
	p.SetDash()
	for _, t := range pl.xTicks() {
		if !pl.X.InRange(t.Value) {
			continue
		}
		x := pl.PX(t.Value)
		p.MoveTo(x, top)
		p.LineTo(x, bottom)
	}
	for _, t := range pl.yTicks() {
		if !pl.Y.InRange(t.Value) {
			continue
		}
		y := pl.PY(t.Value)
		p.MoveTo(left, y)
		p.LineTo(right, y)
	}
	p.Stroke()
}

func (pl *Plot) drawAxes(p paint.Painter) {
	sc := pl.Place.Scale
	left, right, top, bottom := pl.area()

	p.SetColor(axisColor)
	p.SetLineWidth(1.5 * sc)
	p.SetDash()
	p.MoveTo(left, top)
	p.LineTo(left, bottom)
	p.LineTo(right, bottom)
	p.Stroke()

	p.SetFontSize(tickFontSize * sc)
	p.SetLineWidth(1 * sc)

	for _, t := range pl.xTicks() {
		if !pl.X.InRange(t.Value) {
			continue
		}
		x := pl.PX(t.Value)
		p.SetColor(axisColor)
		p.MoveTo(x, bottom)
		p.LineTo(x, bottom+tickLength*sc)
		p.Stroke()
		tw, th := p.TextSize(t.Label)
		p.SetColor(textColor)
		p.DrawText(t.Label, x-tw/2, bottom+(tickLength+3)*sc+th, 0)
	}

	for _, t := range pl.yTicks() {
		if !pl.Y.InRange(t.Value) {
			continue
		}
		y := pl.PY(t.Value)
		p.SetColor(axisColor)
		p.MoveTo(left-tickLength*sc, y)
		p.LineTo(left, y)
		p.Stroke()
		tw, th := p.TextSize(t.Label)
		p.SetColor(textColor)
		p.DrawText(t.Label, left-(tickLength+4)*sc-tw, y+th*0.35, 0)
	}

	p.SetFontSize(labelFontSize * sc)
	p.SetColor(textColor)
	if pl.XLabel != "" {
		tw, _ := p.TextSize(pl.XLabel)
		p.DrawText(pl.XLabel, (left+right)/2-tw/2, pl.Place.Y(float64(pl.Size.Y)-10), 0)
	}
	if pl.YLabel != "" {
		tw, th := p.TextSize(pl.YLabel)
		p.DrawText(pl.YLabel, pl.Place.X(12)+th, (top+bottom)/2+tw/2, -90)
	}
}

func (pl *Plot) drawTitle(p paint.Painter) {
	if pl.Title == "" {
		return
	}
	sc := pl.Place.Scale
	p.SetFontSize(titleFontSize * sc)
	p.SetColor(textColor)
	tw, th := p.TextSize(pl.Title)
	x := pl.Place.X(float64(pl.Size.X)/2) - tw/2
	p.DrawText(pl.Title, x, pl.Place.Y(8)+th, 0)
}

// drawData dispatches on the chart kind. Cluster series are drawn as
// points for every kind; histograms only for Histogram plots.
func (pl *Plot) drawData(p paint.Painter) {
	switch pl.Kind {
	case Scatter:
		for _, sr := range pl.Series {
			pl.drawPoints(p, sr.Points, &sr.Style.Point)
		}
	case Line:
		for _, sr := range pl.Series {
			pl.drawLine(p, sr)
		}
	case Histogram:
		for _, hs := range pl.Hists {
			pl.drawHistogram(p, hs)
		}
	}
	for _, cs := range pl.Clusters {
		pl.drawClusters(p, cs)
	}
}

func (pl *Plot) drawPoints(p paint.Painter, pts XYs, ps *PointStyle) {
	if ps.Color == nil || ps.Radius <= 0 {
		return
	}
	sc := pl.Place.Scale
	p.SetColor(ps.Color)
	for _, pt := range pts {
		if !pl.X.InRange(pt.X) || !pl.Y.InRange(pt.Y) {
			continue
		}
		DrawShape(p, ps.Shape, pl.PX(pt.X), pl.PY(pt.Y), ps.Radius*sc)
	}
}

func (pl *Plot) drawLine(p paint.Painter, sr *Series) {
	pts := sr.Points
	if len(pts) == 0 {
		return
	}
	sc := pl.Place.Scale

	if fill := sr.Style.Line.Fill; fill != nil && fill != NoFill {
		y0 := pl.PY(pl.Y.Min)
		p.SetColor(fill)
		p.MoveTo(pl.PX(pts[0].X), y0)
		for _, pt := range pts {
			p.LineTo(pl.PX(pt.X), pl.PY(pt.Y))
		}
		p.LineTo(pl.PX(pts[len(pts)-1].X), y0)
		p.ClosePath()
		p.Fill()
	}

	if sr.Style.Line.SetStroke(p, sc) {
		p.MoveTo(pl.PX(pts[0].X), pl.PY(pts[0].Y))
		for _, pt := range pts[1:] {
			p.LineTo(pl.PX(pt.X), pl.PY(pt.Y))
		}
		p.Stroke()
	}

	if sr.Style.Point.Radius > 0 && sr.Style.Point.Color != nil {
		pl.drawPoints(p, pts, &sr.Style.Point)
	}
}

func (pl *Plot) drawClusters(p paint.Painter, cs *ClusterSeries) {
	sc := pl.Place.Scale
	for i, pt := range cs.Points {
		if !pl.X.InRange(pt.X) || !pl.Y.InRange(pt.Y) {
			continue
		}
		label := cs.Labels[i]
		p.SetColor(cs.LabelColor(label, pl.Palette))
		shape := Circle
		if label < 0 {
			shape = Cross
		}
		DrawShape(p, shape, pl.PX(pt.X), pl.PY(pt.Y), cs.Point.Radius*sc)
	}
}

func (pl *Plot) drawHistogram(p paint.Painter, hs *HistogramSeries) {
	counts := hs.RenderCounts()
	y0 := pl.PY(0)
	switch hs.Kind {
	case HistContinuous:
		for i, c := range counts {
			x0 := pl.PX(hs.Edges[i])
			x1 := pl.PX(hs.Edges[i+1])
			pl.drawBar(p, &hs.Style, x0, x1, pl.PY(c), y0)
		}
	case HistDiscrete:
		for i, c := range counts {
			st := hs.CatStyle(i)
			hw := st.Width.Width / 2
			x0 := pl.PX(float64(i) - hw)
			x1 := pl.PX(float64(i) + hw)
			pl.drawBar(p, st, x0, x1, pl.PY(c), y0)
		}
	}
}

func (pl *Plot) drawBar(p paint.Painter, st *Style, x0, x1, yTop, yBot float64) {
	fill := st.Line.Fill
	if fill == nil {
		fill = Lighten(st.Line.Color, 0.45)
	}
	if fill != NoFill {
		p.SetColor(fill)
		p.DrawRectangle(x0, yTop, x1-x0, yBot-yTop)
		p.Fill()
	}
	if st.Line.SetStroke(p, pl.Place.Scale) {
		p.DrawRectangle(x0, yTop, x1-x0, yBot-yTop)
		p.Stroke()
	}
}

func (pl *Plot) drawRefLines(p paint.Painter) {
	sc := pl.Place.Scale
	left, right, top, bottom := pl.area()
	for _, rl := range pl.RefLines {
		if !rl.Line.SetStroke(p, sc) {
			continue
		}
		if rl.Vertical {
			x := pl.PX(rl.Value)
			p.MoveTo(x, top)
			p.LineTo(x, bottom)
		} else {
			y := pl.PY(rl.Value)
			p.MoveTo(left, y)
			p.LineTo(right, y)
		}
		p.Stroke()
	}
}

func (pl *Plot) drawLegend(p paint.Painter) {
	if !pl.Legend.Show {
		return
	}
	items := pl.LegendItems()
	if len(items) == 0 {
		return
	}
	sc := pl.Place.Scale
	_, right, top, _ := pl.area()

	w := pl.Legend.Width * sc
	rowH := pl.Legend.RowHeight * sc
	h := pl.Legend.PanelHeight(len(items)) * sc
	x := right - w - 10*sc
	y := top + 10*sc

	p.SetColor(color.RGBA{255, 255, 255, 235})
	p.DrawRectangle(x, y, w, h)
	p.Fill()
	p.SetColor(axisColor)
	p.SetLineWidth(1 * sc)
	p.SetDash()
	p.DrawRectangle(x, y, w, h)
	p.Stroke()

	p.SetFontSize(legendFontSize * sc)
	for i, it := range items {
		cy := y + pl.Legend.Pad*sc/2 + (float64(i)+0.5)*rowH
		gx := x + 12*sc
		p.SetColor(it.Color)
		switch it.Glyph {
		case GlyphPoint:
			DrawShape(p, Circle, gx, cy, 4*sc)
		case GlyphCross:
			DrawShape(p, Cross, gx, cy, 4*sc)
		case GlyphLine:
			p.SetLineWidth(1.5 * sc)
			p.SetDash(4*sc, 3*sc)
			p.MoveTo(gx-6*sc, cy)
			p.LineTo(gx+6*sc, cy)
			p.Stroke()
			p.SetDash()
		case GlyphBar:
			p.DrawRectangle(gx-5*sc, cy-4*sc, 10*sc, 8*sc)
			p.Fill()
		}
		_, th := p.TextSize(it.Name)
		p.SetColor(textColor)
		p.DrawText(it.Name, x+24*sc, cy+th*0.35, 0)
	}
}
