// seehuhn.de/go/stipple - weighted point distributions for stippling
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package kdtree builds 2-d trees over stipple points.  The trees are used
// to draw the partition of the canvas, and to pair up the points of two
// stipples of equal size so that one can be morphed into the other.
package kdtree

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/stipple/raster"
)

// ErrSizeMismatch is returned by Match if the two point sets differ in size.
var ErrSizeMismatch = errors.New("kdtree: point sets differ in size")

// Axis selects the coordinate a node splits on.
type Axis int

const (
	X Axis = iota
	Y
)

// Node is a node of a 2-d tree.  Points with a smaller coordinate along
// Axis are stored in Left, the others in Right.
type Node struct {
	Point       vec.Vec2
	Axis        Axis
	Left, Right *Node
}

// compareAxis orders points along the given axis, breaking ties with the
// other coordinate.
func compareAxis(a Axis) func(p, q vec.Vec2) int {
	if a == X {
		return func(p, q vec.Vec2) int {
			return cmp.Or(cmp.Compare(p.X, q.X), cmp.Compare(p.Y, q.Y))
		}
	}
	return func(p, q vec.Vec2) int {
		return cmp.Or(cmp.Compare(p.Y, q.Y), cmp.Compare(p.X, q.X))
	}
}

// Build returns a balanced tree over points, splitting at the median and
// alternating between the x and y axis, starting with x.
// The points slice is reordered.
func Build(points []vec.Vec2) *Node {
	return build(points, 0)
}

func build(points []vec.Vec2, depth int) *Node {
	if len(points) == 0 {
		return nil
	}
	axis := Axis(depth % 2)
	slices.SortFunc(points, compareAxis(axis))
	mid := len(points) / 2
	return &Node{
		Point: points[mid],
		Axis:  axis,
		Left:  build(points[:mid], depth+1),
		Right: build(points[mid+1:], depth+1),
	}
}

// Len returns the number of points stored in the tree.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Len() + n.Right.Len()
}

// Partitions returns the splitting lines of the tree, clipped to the
// cells they divide.  The root line spans all of bounds.
func (n *Node) Partitions(bounds rect.Rect) []raster.Segment {
	var segs []raster.Segment
	n.partitions(bounds, &segs)
	return segs
}

func (n *Node) partitions(b rect.Rect, segs *[]raster.Segment) {
	if n == nil {
		return
	}
	lo, hi := b, b
	if n.Axis == X {
		x := n.Point.X
		*segs = append(*segs, raster.Segment{A: vec.Vec2{X: x, Y: b.LLy}, B: vec.Vec2{X: x, Y: b.URy}})
		lo.URx, hi.LLx = x, x
	} else {
		y := n.Point.Y
		*segs = append(*segs, raster.Segment{A: vec.Vec2{X: b.LLx, Y: y}, B: vec.Vec2{X: b.URx, Y: y}})
		lo.URy, hi.LLy = y, y
	}
	n.Left.partitions(lo, segs)
	n.Right.partitions(hi, segs)
}

// Pair associates a point of the first set with a point of the second.
type Pair struct {
	From, To vec.Vec2
}

// Match pairs the points of from and to by building the same tree shape
// over both sets: at every level both sets are sorted along the same axis
// and their medians are paired.  Points that are in a similar position
// relative to the rest of their set end up paired, which keeps the paths
// of a morph short and mostly free of crossings.
//
// The input slices are not modified.
func Match(from, to []vec.Vec2) ([]Pair, error) {
	if len(from) != len(to) {
		return nil, fmt.Errorf("%w: %d != %d", ErrSizeMismatch, len(from), len(to))
	}
	a := slices.Clone(from)
	b := slices.Clone(to)
	pairs := make([]Pair, 0, len(a))
	match(a, b, 0, &pairs)
	return pairs, nil
}

func match(a, b []vec.Vec2, depth int, pairs *[]Pair) {
	if len(a) == 0 {
		return
	}
	c := compareAxis(Axis(depth % 2))
	slices.SortFunc(a, c)
	slices.SortFunc(b, c)
	mid := len(a) / 2
	*pairs = append(*pairs, Pair{From: a[mid], To: b[mid]})
	match(a[:mid], b[:mid], depth+1, pairs)
	match(a[mid+1:], b[mid+1:], depth+1, pairs)
}
