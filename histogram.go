// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"math"

	"github.com/plotgrid/plotgrid/minmax"
)

// DefaultBinCap caps the automatic (Sturges) bin count so huge sample
// sets do not produce absurd numbers of bins.
const DefaultBinCap = 50

// HistKind is the kind of histogram data a Plot holds. A Plot's
// histogram collection is entirely continuous or entirely discrete;
// mixing the two is rejected at add-time.
type HistKind int32

const (
	// HistNone means no histogram data has been added yet.
	HistNone HistKind = iota

	// HistContinuous is raw samples binned into computed edges.
	HistContinuous

	// HistDiscrete is pre-aggregated counts with category names.
	HistDiscrete
)

func (hk HistKind) String() string {
	switch hk {
	case HistContinuous:
		return "continuous"
	case HistDiscrete:
		return "discrete"
	}
	return "none"
}

// HistogramSeries is one histogram data set: either continuous
// (raw samples with computed bin edges and counts) or discrete
// (supplied counts with category names and optional per-category styles).
type HistogramSeries struct {

	// Name is the legend name for this series.
	Name string

	// Kind is continuous or discrete.
	Kind HistKind

	// Samples are the raw continuous samples.
	Samples Values

	// Edges are the continuous bin edges, one more than Counts.
	Edges []float64

	// Counts are the per-bin (or per-category) frequencies.
	Counts Values

	// Cumulative replaces Counts with their prefix sums at render time.
	Cumulative bool

	// Categories are the discrete category names; the category position
	// on the x axis is the array index.
	Categories []string

	// CatStyles are optional per-category styles for discrete bars.
	// Empty means every bar uses Style.
	CatStyles []Style

	// Style has the drawing properties for the bars.
	Style Style
}

// NumBins returns the bin count to use for n samples: the requested
// count when positive, otherwise Sturges' rule ceil(log2(n)+1)
// clamped to [1, DefaultBinCap].
func NumBins(n, requested int) int {
	if requested > 0 {
		return requested
	}
	if n <= 1 {
		return 1
	}
	nb := int(math.Ceil(math.Log2(float64(n)) + 1))
	if nb < 1 {
		nb = 1
	}
	if nb > DefaultBinCap {
		nb = DefaultBinCap
	}
	return nb
}

// BinEdges returns nbins+1 equally spaced edges covering [min, max].
// The last edge is nudged up by a small epsilon so the maximum sample
// falls inside the final half-open bin. A zero-width range substitutes
// a unit range.
func BinEdges(min, max float64, nbins int) []float64 {
	if nbins < 1 {
		nbins = 1
	}
	if max == min {
		max = min + 1
	}
	edges := make([]float64, nbins+1)
	w := (max - min) / float64(nbins)
	for i := range edges {
		edges[i] = min + float64(i)*w
	}
	edges[nbins] += (max - min) * 1e-9
	return edges
}

// BinCounts counts samples into the half-open bins [edges[i], edges[i+1]).
// Each sample lands in the first matching bin; samples outside the
// edges are ignored.
func BinCounts(samples []float64, edges []float64) Values {
	nb := len(edges) - 1
	if nb < 1 {
		return nil
	}
	counts := make(Values, nb)
	for _, s := range samples {
		if math.IsNaN(s) {
			continue
		}
		for i := 0; i < nb; i++ {
			if s >= edges[i] && s < edges[i+1] {
				counts[i]++
				break
			}
		}
	}
	return counts
}

// CumulativeCounts returns the prefix sums of counts.
func CumulativeCounts(counts Values) Values {
	cum := make(Values, len(counts))
	sum := 0.0
	for i, c := range counts {
		sum += c
		cum[i] = sum
	}
	return cum
}

// Bin computes the edges and counts for a continuous series from its
// samples, using NumBins(len(samples), requested).
func (hs *HistogramSeries) Bin(requested int) {
	var rng minmax.F64
	rng.SetInfinity()
	hs.Samples.Range(&rng)
	if !rng.IsValid() {
		rng.Set(0, 1)
	}
	nb := NumBins(len(hs.Samples), requested)
	hs.Edges = BinEdges(rng.Min, rng.Max, nb)
	hs.Counts = BinCounts(hs.Samples, hs.Edges)
}

// RenderCounts returns the counts to draw: the plain counts, or their
// prefix sums when Cumulative is set.
func (hs *HistogramSeries) RenderCounts() Values {
	if hs.Cumulative {
		return CumulativeCounts(hs.Counts)
	}
	return hs.Counts
}

// CatStyle returns the style for the i-th discrete category,
// falling back to the series style when no per-category style is set.
func (hs *HistogramSeries) CatStyle(i int) *Style {
	if i >= 0 && i < len(hs.CatStyles) {
		return &hs.CatStyles[i]
	}
	return &hs.Style
}
