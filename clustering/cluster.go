// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package clustering

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jcodagnone/hclust/spatial"
)

// Cluster is an ordered group of points. It owns its storage.
type Cluster struct {
	points []spatial.Point
}

// NewCluster returns an empty cluster with room for capacity points. A zero
// capacity allocates nothing.
func NewCluster(capacity int) *Cluster {
	c := &Cluster{}
	c.Grow(capacity)

	return c
}

// Singleton returns a cluster holding only p.
func Singleton(p spatial.Point) *Cluster {
	c := NewCluster(1)
	c.Append(p)

	return c
}

// Len returns the number of points in the cluster.
func (c *Cluster) Len() int {
	return len(c.points)
}

// Cap returns the number of points the cluster can hold without growing.
func (c *Cluster) Cap() int {
	return cap(c.points)
}

// At returns the i-th point.
func (c *Cluster) At(i int) spatial.Point {
	if i < 0 || i >= len(c.points) {
		panic(fmt.Sprintf("clustering: point index %d out of range [0,%d)", i, len(c.points)))
	}

	return c.points[i]
}

// Points returns a copy of the members, in cluster order.
func (c *Cluster) Points() []spatial.Point {
	return slices.Clone(c.points)
}

// Grow makes sure the cluster can hold at least capacity points. It never
// shrinks the storage.
func (c *Cluster) Grow(capacity int) {
	if capacity < 0 {
		panic(fmt.Sprintf("clustering: negative capacity %d", capacity))
	}

	if cap(c.points) >= capacity {
		return
	}

	c.points = slices.Grow(c.points, capacity-len(c.points))
}

// Append adds p at the end of the cluster.
func (c *Cluster) Append(p spatial.Point) {
	c.points = append(c.points, p)
}

// Clear releases the storage of the cluster.
func (c *Cluster) Clear() {
	c.points = nil
}

// Sort orders the members by ID. The relative order of equal IDs is
// unspecified.
func (c *Cluster) Sort() {
	slices.SortFunc(c.points, func(a, b spatial.Point) int {
		return cmp.Compare(a.ID, b.ID)
	})
}

// Merge appends every member of other to c and sorts the result by ID. other
// is left untouched; callers are expected to discard it.
func (c *Cluster) Merge(other *Cluster) {
	c.Grow(len(c.points) + len(other.points))

	for _, p := range other.points {
		c.Append(p)
	}

	c.Sort()
}

// String renders the members as space separated id[x,y] items.
func (c *Cluster) String() string {
	var b []byte

	for i, p := range c.points {
		if i > 0 {
			b = append(b, ' ')
		}

		b = append(b, p.String()...)
	}

	return string(b)
}

// Distance returns the complete-linkage distance between two clusters: the
// largest distance between a member of a and a member of b.
func Distance(a, b *Cluster) float32 {
	if a.Len() == 0 || b.Len() == 0 {
		panic("clustering: distance between empty clusters")
	}

	var biggest float32

	for _, p := range a.points {
		for _, q := range b.points {
			if d := p.Distance(q); d > biggest {
				biggest = d
			}
		}
	}

	return biggest
}
