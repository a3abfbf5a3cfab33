// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package clustering

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jcodagnone/hclust/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(id int, x, y float32) spatial.Point {
	return spatial.Point{ID: id, X: x, Y: y}
}

func clusterOf(points ...spatial.Point) *Cluster {
	c := NewCluster(0)
	for _, p := range points {
		c.Append(p)
	}

	return c
}

func ids(c *Cluster) []int {
	ret := make([]int, 0, c.Len())
	for _, p := range c.Points() {
		ret = append(ret, p.ID)
	}

	return ret
}

func TestNewCluster(t *testing.T) {
	c := NewCluster(0)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Cap())
	assert.Nil(t, c.points)

	c = NewCluster(5)
	assert.Equal(t, 0, c.Len())
	assert.GreaterOrEqual(t, c.Cap(), 5)

	assert.Panics(t, func() { NewCluster(-1) })
}

func TestGrowNeverShrinks(t *testing.T) {
	c := NewCluster(8)
	before := c.Cap()

	c.Grow(2)
	assert.Equal(t, before, c.Cap())

	c.Grow(20)
	assert.GreaterOrEqual(t, c.Cap(), 20)
}

func TestAppend(t *testing.T) {
	c := NewCluster(0)
	for i := range 10 {
		c.Append(pt(i, float32(i), 0))
		require.Equal(t, i+1, c.Len())
		require.LessOrEqual(t, c.Len(), c.Cap())
	}

	assert.Equal(t, pt(3, 3, 0), c.At(3))
	assert.Panics(t, func() { c.At(10) })
	assert.Panics(t, func() { c.At(-1) })
}

func TestClear(t *testing.T) {
	c := clusterOf(pt(1, 0, 0), pt(2, 1, 1))
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Cap())
}

func TestSort(t *testing.T) {
	c := clusterOf(pt(5, 0, 0), pt(-1, 1, 1), pt(3, 2, 2), pt(0, 3, 3))
	c.Sort()

	assert.Equal(t, []int{-1, 0, 3, 5}, ids(c))
}

func TestPointsIsACopy(t *testing.T) {
	c := clusterOf(pt(1, 0, 0))
	points := c.Points()
	points[0].ID = 100

	assert.Equal(t, 1, c.At(0).ID)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b *Cluster
		want []spatial.Point
	}{
		{
			name: "singletons",
			a:    clusterOf(pt(2, 1, 0)),
			b:    clusterOf(pt(1, 0, 0)),
			want: []spatial.Point{pt(1, 0, 0), pt(2, 1, 0)},
		},
		{
			name: "interleaved ids",
			a:    clusterOf(pt(1, 0, 0), pt(4, 0, 4)),
			b:    clusterOf(pt(3, 0, 3), pt(2, 0, 2), pt(5, 0, 5)),
			want: []spatial.Point{pt(1, 0, 0), pt(2, 0, 2), pt(3, 0, 3), pt(4, 0, 4), pt(5, 0, 5)},
		},
		{
			name: "into empty",
			a:    NewCluster(0),
			b:    clusterOf(pt(9, 1, 1), pt(8, 2, 2)),
			want: []spatial.Point{pt(8, 2, 2), pt(9, 1, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizeB := tt.b.Len()
			before := tt.b.Points()

			tt.a.Merge(tt.b)

			if diff := cmp.Diff(tt.want, tt.a.Points()); diff != "" {
				t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
			}

			assert.Equal(t, sizeB, tt.b.Len())
			assert.Equal(t, before, tt.b.Points(), "merge must not modify its argument")
		})
	}
}

func TestClusterString(t *testing.T) {
	assert.Equal(t, "", NewCluster(0).String())
	assert.Equal(t, "1[0,0] 2[1.5,0] 3[0,1]", clusterOf(pt(1, 0, 0), pt(2, 1.5, 0), pt(3, 0, 1)).String())
}

func TestDistance(t *testing.T) {
	a := clusterOf(pt(1, 0, 0), pt(2, 1, 0))
	b := clusterOf(pt(3, 4, 0), pt(4, 0, 3))

	// complete linkage takes the farthest pair: (0,0)-(4,0) and (1,0)-(0,3)
	// give 4 and ~3.16, the maximum is 4
	assert.Equal(t, float32(4), Distance(a, b))
	assert.Equal(t, Distance(a, b), Distance(b, a))

	assert.Equal(t, float32(5), Distance(clusterOf(pt(1, 0, 0)), clusterOf(pt(2, 3, 4))))
	assert.Equal(t, float32(1), Distance(a, a))
}

func TestDistanceSymmetric(t *testing.T) {
	clusters := []*Cluster{
		clusterOf(pt(1, 0, 0)),
		clusterOf(pt(2, 10, 3), pt(3, -2, 7)),
		clusterOf(pt(4, 0.5, 0.25), pt(5, 100, 200), pt(6, -30, 4)),
	}

	for _, a := range clusters {
		for _, b := range clusters {
			assert.Equal(t, Distance(a, b), Distance(b, a))
		}
	}
}

func TestDistanceEmptyPanics(t *testing.T) {
	assert.Panics(t, func() { Distance(NewCluster(0), clusterOf(pt(1, 0, 0))) })
	assert.Panics(t, func() { Distance(clusterOf(pt(1, 0, 0)), NewCluster(3)) })
}
