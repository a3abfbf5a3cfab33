// Copyright 2025 The HClust Authors
//
// SPDX-License-Identifier: Apache-2.0
package spatial

import (
	"math"
	"strconv"
)

// Point represents a labelled point on the plane.
type Point struct {
	ID int     `json:"id"`
	X  float32 `json:"x"`
	Y  float32 `json:"y"`
}

// String returns the point as id[x,y], with coordinates formatted like C's %g.
func (p Point) String() string {
	return strconv.Itoa(p.ID) + "[" + FormatCoord(p.X) + "," + FormatCoord(p.Y) + "]"
}

// FormatCoord formats a coordinate with six significant digits and trailing
// zeros removed.
func FormatCoord(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 64)
}

// Distance calculates the Euclidean distance between two points in single
// precision.
func (p Point) Distance(other Point) float32 {
	dx := other.X - p.X
	dy := other.Y - p.Y

	// explicit conversions keep the compiler from fusing into an FMA
	sum := float32(dx*dx) + float32(dy*dy)

	return float32(math.Sqrt(float64(sum)))
}
