// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotgrid renders structured numeric data (point series,
// categorical counts, cluster labels) onto a 2D canvas as scatter,
// line, and histogram charts, optionally arranged in a grid of
// independently-styled sub-charts.
//
// The engine computes data bounds, data-to-pixel transforms, nice
// axis ticks, histogram bins, cluster colors, and legend layout, and
// hands an ordered stream of drawing primitives to a [paint.Painter]
// backend (raster PNG or SVG). All computation is synchronous and
// in-memory; callers must serialize access to a Plot.
package plotgrid
