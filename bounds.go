// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"github.com/plotgrid/plotgrid/minmax"
)

// Bounds is the rectangular data-space extent used to scale a chart.
type Bounds struct {
	MinX, MaxX, MinY, MaxY float64
}

// padding fractions applied after extrema computation.
const (
	pointPad = 0.05 // scatter / line / cluster data, every side
	histXPad = 0.02 // histogram x, bars should look flush
	histYPad = 0.05 // histogram y, above only; floor stays at 0
)

// updateRange recomputes the X / Y bounds from the attached data.
// Manual bounds bypass the computation entirely. Called only from
// the rangeDirty -> rangeClean transition.
func (pl *Plot) updateRange() {
	if pl.manual != nil {
		pl.X.Set(pl.manual.MinX, pl.manual.MaxX)
		pl.Y.Set(pl.manual.MinY, pl.manual.MaxY)
		return
	}

	var xr, yr minmax.F64
	xr.SetInfinity()
	yr.SetInfinity()

	hasPoints := false
	for _, sr := range pl.Series {
		if len(sr.Points) > 0 {
			hasPoints = true
		}
		sr.Points.Range(&xr, &yr)
	}
	for _, cs := range pl.Clusters {
		if len(cs.Points) > 0 {
			hasPoints = true
		}
		cs.Points.Range(&xr, &yr)
	}

	if hasPoints {
		unitIfZero(&xr)
		unitIfZero(&yr)
		padBoth(&xr, pointPad)
		padBoth(&yr, pointPad)
		pl.X, pl.Y = xr, yr
		return
	}

	if len(pl.Hists) > 0 {
		for _, hs := range pl.Hists {
			switch hs.Kind {
			case HistContinuous:
				if len(hs.Edges) > 0 {
					xr.FitValInRange(hs.Edges[0])
					xr.FitValInRange(hs.Edges[len(hs.Edges)-1])
				}
			case HistDiscrete:
				// category index range, padded so edge bars fit
				xr.FitValInRange(-0.5)
				xr.FitValInRange(float64(len(hs.Counts)-1) + 0.5)
			}
			for _, c := range hs.RenderCounts() {
				yr.FitValInRange(c)
			}
		}
		if !xr.IsValid() {
			xr.Set(0, 1)
		}
		unitIfZero(&xr)
		padBoth(&xr, histXPad)
		ymax := yr.Max
		if !yr.IsValid() || ymax <= 0 {
			ymax = 1
		}
		yr.Set(0, ymax*(1+histYPad))
		pl.X, pl.Y = xr, yr
		return
	}

	// no data at all: unit bounds keep the transform well-defined
	pl.X.Set(0, 1)
	pl.Y.Set(0, 1)
}

// unitIfZero substitutes a unit range around a degenerate axis so
// later padding and the pixel transform never divide by zero.
func unitIfZero(rng *minmax.F64) {
	if rng.Range() == 0 {
		rng.Set(rng.Min-0.5, rng.Max+0.5)
	}
}

// padBoth expands the range by the given fraction of it on both sides.
func padBoth(rng *minmax.F64, frac float64) {
	pad := rng.Range() * frac
	rng.Set(rng.Min-pad, rng.Max+pad)
}
