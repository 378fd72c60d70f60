// Copyright (c) 2026, The Plotgrid Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotgrid

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClusters(t *testing.T) *ClusterSeries {
	t.Helper()
	cs, err := newClusterSeries("cl",
		[]float64{0, 1, 2, 3, 4, 5},
		[]float64{0, 1, 2, 3, 4, 5},
		[]int{2, -1, 0, 0, 2, -1})
	require.NoError(t, err)
	return cs
}

func TestClusterLabelSet(t *testing.T) {
	cs := newTestClusters(t)
	assert.Equal(t, []int{-1, 0, 2}, cs.LabelSet())
}

func TestClusterLabelNames(t *testing.T) {
	cs := newTestClusters(t)
	assert.Equal(t, "Outliers", cs.LabelName(-1))
	assert.Equal(t, "Cluster 1", cs.LabelName(0))
	assert.Equal(t, "Cluster 3", cs.LabelName(2))
}

func TestClusterColors(t *testing.T) {
	cs := newTestClusters(t)
	pal := DefaultPalette()

	assert.Equal(t, pal.Outlier, cs.LabelColor(-1, pal))
	assert.Equal(t, pal.Color(0), cs.LabelColor(0, pal))
	assert.Equal(t, pal.Color(2), cs.LabelColor(2, pal))
	assert.NotEqual(t, cs.LabelColor(0, pal), cs.LabelColor(2, pal))

	// cycling wraps past the palette length but never hits the
	// outlier color
	n := len(pal.Colors)
	assert.Equal(t, pal.Color(0), pal.ClusterColor(n))
	assert.NotEqual(t, pal.Outlier, pal.ClusterColor(n))
}

func TestClusterNameOverrides(t *testing.T) {
	cs := newTestClusters(t)

	err := cs.SetNames(map[int]string{0: "core"})
	require.Error(t, err)
	assert.Equal(t, "Cluster 1", cs.LabelName(0)) // rejected, policy unchanged

	err = cs.SetNames(map[int]string{-1: "noise", 0: "core", 2: "halo"})
	require.NoError(t, err)
	assert.Equal(t, "noise", cs.LabelName(-1))
	assert.Equal(t, "halo", cs.LabelName(2))
}

func TestClusterColorOverrides(t *testing.T) {
	cs := newTestClusters(t)
	pal := DefaultPalette()
	red := color.RGBA{255, 0, 0, 255}

	err := cs.SetColors(map[int]color.RGBA{0: red})
	require.Error(t, err)
	assert.Equal(t, pal.Color(0), cs.LabelColor(0, pal))

	err = cs.SetColors(map[int]color.RGBA{-1: red, 0: red, 2: red})
	require.NoError(t, err)
	assert.Equal(t, red, cs.LabelColor(-1, pal))
}

func TestClusterLengthMismatch(t *testing.T) {
	_, err := newClusterSeries("cl", []float64{1, 2}, []float64{1, 2}, []int{0})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengths)

	_, err = newClusterSeries("cl", []float64{1, 2}, []float64{1}, []int{0, 0})
	require.Error(t, err)
}
