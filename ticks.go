// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"math"
	"strconv"
	"strings"
)

// Tick is a single axis tick, a data-space value with a display label.
type Tick struct {
	Value float64
	Label string
}

// NiceTicks returns an ascending sequence of human-friendly tick values
// covering [min, max], spaced by a step of 1, 2, 5 or 10 times a power
// of ten, chosen so the tick count is close to target. The degenerate
// range min == max yields a single tick at that value.
//
// The function is pure: tick marks and grid lines both call it and are
// guaranteed to land on identical positions.
func NiceTicks(min, max float64, target int) []float64 {
	if target < 1 {
		target = 1
	}
	if min == max {
		return []float64{min}
	}
	if min > max {
		min, max = max, min
	}
	step := niceStep((max - min) / float64(target))
	first := math.Ceil(min/step) * step
	var ticks []float64
	// epsilon guards float rounding at the upper boundary
	for t := first; t <= max+step*0.001; t += step {
		ticks = append(ticks, t)
	}
	return ticks
}

// niceStep rounds a raw step up to the nearest 1, 2, 5 or 10
// times a power of ten.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm <= 1:
		return mag
	case norm <= 2:
		return 2 * mag
	case norm <= 5:
		return 5 * mag
	}
	return 10 * mag
}

// TickList returns nice ticks for [min, max] with formatted labels.
func TickList(min, max float64, target int) []Tick {
	vals := NiceTicks(min, max, target)
	ticks := make([]Tick, len(vals))
	for i, v := range vals {
		ticks[i] = Tick{Value: v, Label: formatValue(v)}
	}
	return ticks
}

// formatValue formats a data value for tick and reference line labels,
// trimming trailing zeros.
func formatValue(v float64) string {
	av := math.Abs(v)
	if av != 0 && (av >= 1e6 || av < 1e-4) {
		return strconv.FormatFloat(v, 'g', 4, 64)
	}
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
