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
	"log/slog"
	"os"

	"github.com/plotgrid/plotgrid/base/errors"
	"github.com/plotgrid/plotgrid/minmax"
	"github.com/plotgrid/plotgrid/paint"
)

// ChartKind selects how a Plot draws its data. There is one Plot type;
// the kind-specific drawing step dispatches on this tag.
type ChartKind int32

const (
	// Scatter draws regular series as point markers.
	Scatter ChartKind = iota

	// Line draws regular series as connected lines.
	Line

	// Histogram draws the histogram collection as bars.
	Histogram
)

func (ck ChartKind) String() string {
	switch ck {
	case Scatter:
		return "scatter"
	case Line:
		return "line"
	case Histogram:
		return "histogram"
	}
	return "unknown"
}

// rangeState is the bounds recomputation state of a Plot.
// Every data mutation transitions to rangeDirty; every render or
// bounds query transitions rangeDirty -> rangeClean via recomputation.
type rangeState int32

const (
	rangeClean rangeState = iota
	rangeDirty
)

// Margins are the pixel margins between the canvas edges and the
// data area, in native plot coordinates.
type Margins struct {
	Left, Right, Top, Bottom float64
}

func (mg *Margins) Defaults() {
	mg.Left = 60
	mg.Right = 25
	mg.Top = 45
	mg.Bottom = 55
}

// Placement is the transform applied to a plot's native pixels when it
// is hosted inside a [SubplotGrid]: a canvas offset plus one uniform
// scale, preserving the plot's native aspect ratio. A standalone plot
// uses the identity placement.
type Placement struct {
	OffsetX, OffsetY float64
	Scale            float64
}

// Identity returns the identity placement.
func Identity() Placement {
	return Placement{Scale: 1}
}

// X maps a native pixel x to the canvas.
func (pm Placement) X(v float64) float64 { return pm.OffsetX + pm.Scale*v }

// Y maps a native pixel y to the canvas.
func (pm Placement) Y(v float64) float64 { return pm.OffsetY + pm.Scale*v }

// Plot is one chart: data collections, labels, legend state, axis
// bounds, and the placement used when hosted in a grid. All mutating
// calls must be serialized with rendering by the caller.
type Plot struct {

	// Kind selects the data drawing style.
	Kind ChartKind

	// Title is drawn centered above the data area.
	Title string

	// XLabel and YLabel are the axis labels.
	XLabel string
	YLabel string

	// Size is the native resolution of the plot in pixels.
	// Defaults to 800 x 600.
	Size image.Point

	// Margins are the native pixel margins around the data area.
	Margins Margins

	// Background fills the canvas before drawing. Nil means white.
	Background color.Color

	// Palette is this plot's own color cycle for auto-styled
	// series and clusters.
	Palette Palette

	// XTicks and YTicks are the target tick counts per axis.
	XTicks, YTicks int

	// Series are the regular point series.
	Series []*Series

	// Clusters are the labeled cluster series.
	Clusters []*ClusterSeries

	// Hists is the histogram collection, all of one kind.
	Hists []*HistogramSeries

	// HistKind records which histogram kind the collection holds.
	HistKind HistKind

	// RefLines are the reference lines.
	RefLines []*ReferenceLine

	// Legend is the legend visibility state and geometry.
	Legend Legend

	// X and Y are the current data-space bounds per axis.
	X, Y minmax.F64

	// Place is the grid placement transform; identity when standalone.
	Place Placement

	manual *Bounds
	rng    rangeState
}

// New returns a new scatter Plot with default styling.
func New() *Plot {
	return NewPlot(Scatter)
}

// NewPlot returns a new Plot of the given kind with default size,
// margins, palette and legend settings.
func NewPlot(kind ChartKind) *Plot {
	pl := &Plot{Kind: kind}
	pl.Defaults()
	return pl
}

func (pl *Plot) Defaults() {
	pl.Size = image.Pt(800, 600)
	pl.Margins.Defaults()
	pl.Palette = DefaultPalette()
	pl.XTicks = 5
	pl.YTicks = 5
	pl.Legend.Defaults()
	pl.Place = Identity()
	pl.rng = rangeDirty
}

// transition is the single place where the bounds state changes.
// Moving to rangeClean from rangeDirty recomputes the bounds.
func (pl *Plot) transition(to rangeState) {
	if to == rangeClean && pl.rng == rangeDirty {
		pl.updateRange()
	}
	pl.rng = to
}

// AddPoints adds a named point series and returns it for styling.
// The series gets the next automatic palette color.
func (pl *Plot) AddPoints(name string, pts XYs) *Series {
	if len(pts) == 0 {
		slog.Warn("plotgrid: empty point series skipped", "name", name)
		return nil
	}
	sr := newSeries(name, pts)
	sr.Style.SetColor(pl.Palette.Color(len(pl.Series)))
	pl.Series = append(pl.Series, sr)
	pl.transition(rangeDirty)
	return sr
}

// AddXY adds a named point series from parallel x / y slices.
// Slices of different lengths are a configuration error and leave the
// plot unchanged.
func (pl *Plot) AddXY(name string, xs, ys []float64) (*Series, error) {
	pts, err := XYFromSlices(xs, ys)
	if err != nil {
		return nil, err
	}
	return pl.AddPoints(name, pts), nil
}

// AddClusterXY adds a cluster series from parallel x / y / label
// slices. Length mismatches are configuration errors and leave the
// plot unchanged.
func (pl *Plot) AddClusterXY(name string, xs, ys []float64, labels []int) (*ClusterSeries, error) {
	if len(xs) == 0 {
		slog.Warn("plotgrid: empty cluster series skipped", "name", name)
		return nil, nil
	}
	cs, err := newClusterSeries(name, xs, ys, labels)
	if err != nil {
		return nil, err
	}
	pl.Clusters = append(pl.Clusters, cs)
	pl.transition(rangeDirty)
	return cs, nil
}

// AddHistogram adds a continuous histogram series from raw samples.
// bins <= 0 selects the bin count by Sturges' rule. Adding continuous
// data to a plot holding discrete histogram data is a configuration
// error and leaves the plot unchanged.
func (pl *Plot) AddHistogram(name string, samples []float64, bins int) (*HistogramSeries, error) {
	if err := pl.checkHistKind(HistContinuous); err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		slog.Warn("plotgrid: empty histogram series skipped", "name", name)
		return nil, nil
	}
	if err := CheckFloats(samples...); err != nil {
		return nil, errors.Wrapf(err, "histogram series %q", name)
	}
	hs := &HistogramSeries{Name: name, Kind: HistContinuous, Samples: samples}
	hs.Style.Defaults()
	hs.Style.SetColor(pl.Palette.Color(len(pl.Hists)))
	hs.Bin(bins)
	pl.Hists = append(pl.Hists, hs)
	pl.HistKind = HistContinuous
	pl.transition(rangeDirty)
	return hs, nil
}

// AddBars adds a discrete histogram series from pre-aggregated counts
// and category names. Mismatched lengths, mixing with continuous
// histogram data, and an existing vertical reference line are all
// configuration errors and leave the plot unchanged.
func (pl *Plot) AddBars(name string, categories []string, counts []float64) (*HistogramSeries, error) {
	if err := pl.checkHistKind(HistDiscrete); err != nil {
		return nil, err
	}
	if len(categories) != len(counts) {
		return nil, fmt.Errorf("plotgrid: bar series %q: %d categories but %d counts: %w", name, len(categories), len(counts), ErrLengths)
	}
	if len(counts) == 0 {
		slog.Warn("plotgrid: empty bar series skipped", "name", name)
		return nil, nil
	}
	hs := &HistogramSeries{Name: name, Kind: HistDiscrete, Categories: categories, Counts: counts}
	hs.Style.Defaults()
	hs.Style.SetColor(pl.Palette.Color(len(pl.Hists)))
	pl.Hists = append(pl.Hists, hs)
	pl.HistKind = HistDiscrete
	pl.transition(rangeDirty)
	return hs, nil
}

// checkHistKind rejects mixing continuous and discrete histogram data
// in one plot, naming both kinds. Discrete data is also rejected when a
// vertical reference line is already present, so the
// no-vertical-line-on-categorical-axis rule holds in either call order.
func (pl *Plot) checkHistKind(kind HistKind) error {
	if pl.HistKind != HistNone && pl.HistKind != kind {
		return fmt.Errorf("plotgrid: cannot add %s histogram data to a plot holding %s histogram data", kind, pl.HistKind)
	}
	if kind == HistDiscrete {
		for _, rl := range pl.RefLines {
			if rl.Vertical {
				return fmt.Errorf("plotgrid: cannot add discrete histogram data to a plot holding a vertical reference line at %g: categorical axes have no data-space positions", rl.Value)
			}
		}
	}
	return nil
}

// AddRefLine adds a reference line at the given data value and returns
// it for styling. A vertical line on a discrete-histogram plot is a
// configuration error: the categorical x axis has no meaningful
// data-space values.
func (pl *Plot) AddRefLine(vertical bool, value float64) (*ReferenceLine, error) {
	if vertical && pl.HistKind == HistDiscrete {
		return nil, fmt.Errorf("plotgrid: vertical reference line at %g is meaningless on a discrete histogram's categorical axis", value)
	}
	rl := &ReferenceLine{Vertical: vertical, Value: value}
	rl.Defaults()
	pl.RefLines = append(pl.RefLines, rl)
	pl.transition(rangeDirty)
	return rl, nil
}

// AddVertLine adds a vertical reference line at the given x value.
func (pl *Plot) AddVertLine(x float64) (*ReferenceLine, error) {
	return pl.AddRefLine(true, x)
}

// AddHorizLine adds a horizontal reference line at the given y value.
func (pl *Plot) AddHorizLine(y float64) (*ReferenceLine, error) {
	return pl.AddRefLine(false, y)
}

// SetBounds sets manual data bounds, bypassing automatic bounds
// computation entirely; they are never overwritten by data changes.
func (pl *Plot) SetBounds(minX, maxX, minY, maxY float64) {
	pl.manual = &Bounds{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
	pl.transition(rangeDirty)
}

// Clear removes all data, reference lines and manual bounds,
// keeping labels and styling.
func (pl *Plot) Clear() {
	pl.Series = nil
	pl.Clusters = nil
	pl.Hists = nil
	pl.HistKind = HistNone
	pl.RefLines = nil
	pl.manual = nil
	pl.transition(rangeDirty)
}

// Bounds returns the current data bounds, recomputing them first if
// data has changed since the last query or render.
func (pl *Plot) Bounds() Bounds {
	pl.transition(rangeClean)
	return Bounds{MinX: pl.X.Min, MaxX: pl.X.Max, MinY: pl.Y.Min, MaxY: pl.Y.Max}
}

// PX maps a data x value to a canvas pixel x, including the grid
// placement. Computed fresh on every call; never cached.
func (pl *Plot) PX(x float64) float64 {
	pw := float64(pl.Size.X) - pl.Margins.Left - pl.Margins.Right
	return pl.Place.X(pl.Margins.Left + pl.X.NormValue(x)*pw)
}

// PY maps a data y value to a canvas pixel y, inverting the axis so
// larger data values are higher on the canvas.
func (pl *Plot) PY(y float64) float64 {
	ph := float64(pl.Size.Y) - pl.Margins.Top - pl.Margins.Bottom
	return pl.Place.Y(float64(pl.Size.Y) - pl.Margins.Bottom - pl.Y.NormValue(y)*ph)
}

// SavePNG renders the plot at its native size and writes it to the
// given PNG file. The error is the backend write result; no retry.
func (pl *Plot) SavePNG(filename string) error {
	rs := paint.NewRaster(pl.Size.X, pl.Size.Y)
	pl.Render(rs)
	return rs.SavePNG(filename)
}

// SaveSVG renders the plot at its native size to the given SVG file.
func (pl *Plot) SaveSVG(filename string) error {
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	sv := paint.NewSVG(bw, pl.Size.X, pl.Size.Y)
	pl.Render(sv)
	sv.End()
	return bw.Flush()
}

// SVGString returns an SVG representation of the plot as a string.
func (pl *Plot) SVGString() string {
	b := &bytes.Buffer{}
	sv := paint.NewSVG(b, pl.Size.X, pl.Size.Y)
	pl.Render(sv)
	sv.End()
	return b.String()
}
