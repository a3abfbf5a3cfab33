// Copyright 2025 The HClust Authors
// SPDX-License-Identifier: Apache-2.0

package clustering

import (
	"errors"
	"fmt"

	"github.com/jcodagnone/hclust/spatial"
)

// ErrInvalidTarget is returned when a target cluster count is not an integer
// of at least one.
var ErrInvalidTarget = errors.New("invalid target cluster count")

// Registry is the working set of clusters. Clusters are addressed by index;
// the order only matters when the result is displayed.
type Registry struct {
	clusters []*Cluster
}

// NewRegistry builds a registry with one singleton cluster per point, in the
// given order.
func NewRegistry(points []spatial.Point) *Registry {
	r := &Registry{clusters: make([]*Cluster, 0, len(points))}

	for _, p := range points {
		r.clusters = append(r.clusters, Singleton(p))
	}

	return r
}

// Len returns the number of clusters.
func (r *Registry) Len() int {
	return len(r.clusters)
}

// At returns the cluster stored at idx.
func (r *Registry) At(idx int) *Cluster {
	r.checkIndex(idx)

	return r.clusters[idx]
}

// Each calls fn for every cluster in index order.
func (r *Registry) Each(fn func(idx int, c *Cluster) error) error {
	for i, c := range r.clusters {
		if err := fn(i, c); err != nil {
			return err
		}
	}

	return nil
}

// Remove releases the cluster at idx and fills the hole with the last
// cluster. It returns the new number of clusters.
func (r *Registry) Remove(idx int) int {
	r.checkIndex(idx)

	last := len(r.clusters) - 1

	r.clusters[idx].Clear()
	r.clusters[idx] = r.clusters[last]
	r.clusters[last] = nil
	r.clusters = r.clusters[:last]

	return len(r.clusters)
}

// Clear releases every cluster and empties the registry.
func (r *Registry) Clear() {
	for i, c := range r.clusters {
		c.Clear()
		r.clusters[i] = nil
	}

	r.clusters = nil
}

// FindNearest returns the indices of the two clusters with the smallest
// complete-linkage distance, along with that distance. Pairs are scanned in
// (i, j) order with i < j and only a strictly smaller distance replaces the
// current best, so the first pair found wins ties.
func (r *Registry) FindNearest() (first, second int, dist float32) {
	n := len(r.clusters)
	if n < 2 {
		panic(fmt.Sprintf("clustering: nearest pair needs at least 2 clusters, have %d", n))
	}

	found := false

	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			d := Distance(r.clusters[i], r.clusters[j])
			if !found || d < dist {
				first, second, dist = i, j, d
				found = true
			}
		}
	}

	return first, second, dist
}

// Step describes a single merge performed by Reduce.
type Step struct {
	N        int     // 1-based merge number
	First    int     // index of the cluster that absorbed the other
	Second   int     // index of the cluster that was removed
	Distance float32 // complete-linkage distance between them
}

// Reduce merges the nearest clusters until only target clusters remain. When
// observe is not nil it is called after each merge. It returns the number of
// merges performed; a target at or above the current count leaves the
// registry untouched.
func (r *Registry) Reduce(target int, observe func(Step)) (int, error) {
	if target < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}

	var n int

	for len(r.clusters) > target {
		first, second, dist := r.FindNearest()
		r.clusters[first].Merge(r.clusters[second])
		r.Remove(second)
		n++

		if observe != nil {
			observe(Step{N: n, First: first, Second: second, Distance: dist})
		}
	}

	return n, nil
}

func (r *Registry) checkIndex(idx int) {
	if idx < 0 || idx >= len(r.clusters) {
		panic(fmt.Sprintf("clustering: cluster index %d out of range [0,%d)", idx, len(r.clusters)))
	}
}
