// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is an immutable ordered set of qualitative colors used for
// automatic series and cluster coloring, plus the fixed color reserved
// for cluster outliers. Each Plot and SubplotGrid owns its own Palette
// value, so independent plots never share coloring state.
type Palette struct {

	// Colors are cycled by index (or cluster label) modulo their count.
	// The outlier color is never part of this cycle.
	Colors []color.RGBA

	// Outlier is the fixed color for the cluster outlier label -1.
	Outlier color.RGBA
}

// DefaultPalette returns the standard qualitative palette:
// blue, orange, green, red, violet, brown, pink, cyan.
func DefaultPalette() Palette {
	return Palette{
		Colors: []color.RGBA{
			{31, 119, 180, 255},
			{255, 127, 14, 255},
			{44, 160, 44, 255},
			{214, 39, 40, 255},
			{148, 103, 189, 255},
			{140, 86, 75, 255},
			{227, 119, 194, 255},
			{23, 190, 207, 255},
		},
		Outlier: color.RGBA{127, 127, 127, 255},
	}
}

// Color returns the palette color for the given index, cycling
// modulo the palette size.
func (pal Palette) Color(i int) color.RGBA {
	if len(pal.Colors) == 0 {
		return color.RGBA{A: 255}
	}
	if i < 0 {
		i = -i
	}
	return pal.Colors[i%len(pal.Colors)]
}

// ClusterColor returns the color for the given cluster label:
// the fixed outlier color for label -1, otherwise the palette
// color cycled by the label.
func (pal Palette) ClusterColor(label int) color.RGBA {
	if label < 0 {
		return pal.Outlier
	}
	return pal.Color(label)
}

// Lighten returns the color blended toward white by the given amount
// in [0, 1], in the Lab color space so perceived hue is preserved.
// Used to derive bar and area fills from a series base color.
func Lighten(c color.Color, amount float64) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return color.RGBA{}
	}
	white := colorful.Color{R: 1, G: 1, B: 1}
	r, g, b := cf.BlendLab(white, amount).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
