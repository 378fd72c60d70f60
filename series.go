// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

// Series is a named ordered sequence of points with a drawing style.
// A Series is owned exclusively by the Plot that created it; its
// lifetime ends when the Plot is cleared or destroyed.
type Series struct {

	// Name is the legend name. Empty names are omitted from the legend.
	Name string

	// Points are the data points, drawn in order.
	Points XYs

	// Style has the line and point drawing properties.
	Style Style
}

func newSeries(name string, pts XYs) *Series {
	sr := &Series{Name: name, Points: pts}
	sr.Style.Defaults()
	return sr
}
