// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"math"

	"github.com/plotgrid/plotgrid/base/errors"
	"github.com/plotgrid/plotgrid/minmax"
)

var (
	ErrInfinity   = errors.New("plotgrid: infinite data point")
	ErrNoData     = errors.New("plotgrid: no data points")
	ErrLengths    = errors.New("plotgrid: input slices have different lengths")
	ErrOutOfRange = errors.New("plotgrid: index out of range")
)

// Point is an immutable data-space coordinate.
type Point struct {
	X, Y float64
}

// XYs is an ordered sequence of data points.
type XYs []Point

// XYFromSlices returns an XYs from parallel x / y slices:
// [ErrLengths] if their lengths differ, [ErrInfinity] if any value is
// infinite. NaN values pass through and are skipped by range scans.
func XYFromSlices(xs, ys []float64) (XYs, error) {
	if len(xs) != len(ys) {
		return nil, errors.Wrapf(ErrLengths, "x has %d values, y has %d", len(xs), len(ys))
	}
	pts := make(XYs, len(xs))
	for i := range xs {
		if math.IsInf(xs[i], 0) || math.IsInf(ys[i], 0) {
			return nil, errors.Wrapf(ErrInfinity, "point %d is (%g, %g)", i, xs[i], ys[i])
		}
		pts[i] = Point{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}

// Range updates the given x and y ranges to fit all finite points.
func (xy XYs) Range(xr, yr *minmax.F64) {
	for _, pt := range xy {
		if checkNaNs(pt.X, pt.Y) {
			continue
		}
		xr.FitValInRange(pt.X)
		yr.FitValInRange(pt.Y)
	}
}

// CheckFloats returns an error if any of the arguments are Infinity,
// or if there are no non-NaN data points available for plotting.
func CheckFloats(fs ...float64) error {
	n := 0
	for _, f := range fs {
		switch {
		case math.IsNaN(f):
		case math.IsInf(f, 0):
			return ErrInfinity
		default:
			n++
		}
	}
	if n == 0 {
		return ErrNoData
	}
	return nil
}

// checkNaNs returns true if any of the floats are NaN
func checkNaNs(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) {
			return true
		}
	}
	return false
}

// Values provides a minimal float64 slice data holder with range support.
type Values []float64

// Range updates the given range to fit all finite values.
func (vs Values) Range(rng *minmax.F64) {
	for _, v := range vs {
		if math.IsNaN(v) {
			continue
		}
		rng.FitValInRange(v)
	}
}
