// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paint

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGColor(t *testing.T) {
	hex, op := svgColor(color.RGBA{255, 0, 0, 255})
	assert.Equal(t, "#ff0000", hex)
	assert.InDelta(t, 1, op, 1e-3)

	hex, op = svgColor(color.RGBA{0, 0, 0, 0})
	assert.Equal(t, "none", hex)
	assert.Equal(t, 0.0, op)

	hex, op = svgColor(nil)
	assert.Equal(t, "none", hex)
	assert.Equal(t, 0.0, op)

	// premultiplied half-alpha white un-premultiplies back to white
	hex, op = svgColor(color.RGBA{128, 128, 128, 128})
	assert.Equal(t, "#ffffff", hex)
	assert.InDelta(t, 0.5, op, 0.01)
}

func TestSVGEmitsElements(t *testing.T) {
	b := &bytes.Buffer{}
	sv := NewSVG(b, 200, 100)
	sv.Clear(color.White)
	sv.SetColor(color.RGBA{31, 119, 180, 255})
	sv.MoveTo(10, 10)
	sv.LineTo(190, 90)
	sv.Stroke()
	sv.DrawRectangle(20, 20, 40, 30)
	sv.Fill()
	sv.DrawText("hello", 50, 50, 0)
	sv.DrawText("side", 10, 80, -90)
	sv.End()

	out := b.String()
	assert.Contains(t, out, `width="200"`)
	assert.Contains(t, out, `height="100"`)
	assert.Contains(t, out, "<path")
	assert.Contains(t, out, "#1f77b4")
	assert.Contains(t, out, "hello</text>")
	assert.Contains(t, out, "rotate(-90.00")
	assert.Contains(t, out, "</svg>")

	// the path buffer resets after each stroke or fill
	assert.Equal(t, 2, strings.Count(out, "<path"))
}

func TestSVGSize(t *testing.T) {
	sv := NewSVG(&bytes.Buffer{}, 300, 150)
	assert.Equal(t, image.Pt(300, 150), sv.Size())
}

func TestRasterClear(t *testing.T) {
	rs := NewRaster(50, 40)
	assert.Equal(t, image.Pt(50, 40), rs.Size())
	rs.Clear(color.RGBA{255, 0, 0, 255})

	img := rs.Image()
	r, _, _, _ := img.At(25, 20).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestRasterEncodePNG(t *testing.T) {
	rs := NewRaster(10, 10)
	rs.Clear(color.White)
	b := &bytes.Buffer{}
	require.NoError(t, rs.EncodePNG(b))
	assert.Equal(t, "\x89PNG", b.String()[:4])
}

func TestMeasureText(t *testing.T) {
	face := DefaultFace(12)
	require.NotNil(t, face)

	w1, h := MeasureText(face, "a")
	w2, _ := MeasureText(face, "aaaa")
	assert.Greater(t, w1, 0.0)
	assert.Greater(t, w2, w1)
	assert.Greater(t, h, 0.0)

	// larger sizes measure wider and taller
	big := DefaultFace(24)
	bw, bh := MeasureText(big, "a")
	assert.Greater(t, bw, w1)
	assert.Greater(t, bh, h)
}
