// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/plotgrid/plotgrid/base/errors"
)

// OutlierLabel is the sentinel cluster label for outlier points.
const OutlierLabel = -1

// ClusterSeries is an ordered sequence of points with integer cluster
// labels. Label -1 marks outliers; labels >= 0 are cluster ids.
// Naming and coloring are automatic (palette cycling by label,
// "Outliers" / "Cluster N" names) unless explicit override maps are
// set; overrides are all-or-nothing per series.
type ClusterSeries struct {

	// Name is the series name, used as a legend group prefix.
	Name string

	// Points are the data points.
	Points XYs

	// Labels are the per-point cluster labels, same length as Points.
	Labels []int

	// Point has the marker style shared by all clusters in the series.
	Point PointStyle

	names  map[int]string
	colors map[int]color.RGBA
}

// SetNames sets explicit display names per label, replacing the
// automatic policy for the whole series. The map must cover every
// label present in the series; a partial map is rejected so naming
// never silently falls back per-point.
func (cs *ClusterSeries) SetNames(names map[int]string) error {
	for _, l := range cs.LabelSet() {
		if _, ok := names[l]; !ok {
			return fmt.Errorf("plotgrid: cluster name overrides for series %q must cover every label present: missing %d", cs.Name, l)
		}
	}
	cs.names = names
	return nil
}

// SetColors sets explicit colors per label, replacing the automatic
// palette for the whole series. The map must cover every label present.
func (cs *ClusterSeries) SetColors(colors map[int]color.RGBA) error {
	for _, l := range cs.LabelSet() {
		if _, ok := colors[l]; !ok {
			return fmt.Errorf("plotgrid: cluster color overrides for series %q must cover every label present: missing %d", cs.Name, l)
		}
	}
	cs.colors = colors
	return nil
}

// LabelSet returns the distinct labels present in the series, with the
// outlier label first and cluster labels in ascending order.
func (cs *ClusterSeries) LabelSet() []int {
	seen := map[int]bool{}
	var labels []int
	for _, l := range cs.Labels {
		if !seen[l] {
			seen[l] = true
			labels = append(labels, l)
		}
	}
	sort.Ints(labels)
	return labels
}

// LabelName returns the display name for a label: the override if the
// series has one, otherwise "Outliers" for -1 and "Cluster N" with
// N = label+1 for clusters.
func (cs *ClusterSeries) LabelName(label int) string {
	if cs.names != nil {
		return cs.names[label]
	}
	if label < 0 {
		return "Outliers"
	}
	return fmt.Sprintf("Cluster %d", label+1)
}

// LabelColor returns the color for a label: the override if the series
// has one, otherwise the palette's cluster color (fixed outlier color
// for -1, palette cycling by raw label for clusters). The result is
// deterministic across renders for unchanged override maps.
func (cs *ClusterSeries) LabelColor(label int, pal Palette) color.RGBA {
	if cs.colors != nil {
		return cs.colors[label]
	}
	return pal.ClusterColor(label)
}

// newClusterSeries builds a ClusterSeries from parallel slices,
// checking lengths.
func newClusterSeries(name string, xs, ys []float64, labels []int) (*ClusterSeries, error) {
	pts, err := XYFromSlices(xs, ys)
	if err != nil {
		return nil, err
	}
	if len(labels) != len(pts) {
		return nil, errors.Wrapf(ErrLengths, "cluster series %q: %d points, %d labels", name, len(pts), len(labels))
	}
	cs := &ClusterSeries{Name: name, Points: pts, Labels: labels}
	cs.Point.Defaults()
	return cs, nil
}
