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
package kdtree

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func randomPoints(seed uint64, n int) []vec.Vec2 {
	rng := rand.New(rand.NewPCG(seed, 0))
	pts := make([]vec.Vec2, n)
	for i := range pts {
		pts[i] = vec.Vec2{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return pts
}

// checkTree verifies the ordering invariant of every node.
func checkTree(t *testing.T, n *Node, depth int) {
	t.Helper()
	if n == nil {
		return
	}
	if want := Axis(depth % 2); n.Axis != want {
		t.Errorf("node %v at depth %d splits on axis %d", n.Point, depth, n.Axis)
	}
	c := compareAxis(n.Axis)
	var walk func(m *Node, left bool)
	walk = func(m *Node, left bool) {
		if m == nil {
			return
		}
		if left && c(m.Point, n.Point) > 0 {
			t.Errorf("%v in the left subtree of %v", m.Point, n.Point)
		}
		if !left && c(m.Point, n.Point) < 0 {
			t.Errorf("%v in the right subtree of %v", m.Point, n.Point)
		}
		walk(m.Left, left)
		walk(m.Right, left)
	}
	walk(n.Left, true)
	walk(n.Right, false)
	checkTree(t, n.Left, depth+1)
	checkTree(t, n.Right, depth+1)
}

func TestBuild(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 100} {
		pts := randomPoints(uint64(n), n)
		tree := Build(slices.Clone(pts))
		if got := tree.Len(); got != n {
			t.Errorf("tree over %d points has %d nodes", n, got)
		}
		checkTree(t, tree, 0)
	}
}

func TestBuildBalanced(t *testing.T) {
	var height func(n *Node) int
	height = func(n *Node) int {
		if n == nil {
			return 0
		}
		return 1 + max(height(n.Left), height(n.Right))
	}
	tree := Build(randomPoints(1, 1000))
	if h := height(tree); h > 10 {
		t.Errorf("tree over 1000 points has height %d", h)
	}
}

func TestPartitions(t *testing.T) {
	pts := []vec.Vec2{{X: 5, Y: 5}, {X: 2, Y: 8}, {X: 8, Y: 2}}
	tree := Build(pts)
	bounds := rect.Rect{URx: 10, URy: 10}
	segs := tree.Partitions(bounds)

	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	// the root splits on x and spans the full height
	root := segs[0]
	if root.A != (vec.Vec2{X: 5, Y: 0}) || root.B != (vec.Vec2{X: 5, Y: 10}) {
		t.Errorf("root segment %v", root)
	}
	// the children split on y, within their half
	left, right := segs[1], segs[2]
	if left.A != (vec.Vec2{X: 0, Y: 8}) || left.B != (vec.Vec2{X: 5, Y: 8}) {
		t.Errorf("left segment %v", left)
	}
	if right.A != (vec.Vec2{X: 5, Y: 2}) || right.B != (vec.Vec2{X: 10, Y: 2}) {
		t.Errorf("right segment %v", right)
	}
}

func TestMatch(t *testing.T) {
	from := randomPoints(2, 50)
	to := randomPoints(3, 50)
	fromOrig := slices.Clone(from)

	pairs, err := Match(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(from, fromOrig) {
		t.Error("input was modified")
	}
	if len(pairs) != 50 {
		t.Fatalf("got %d pairs, want 50", len(pairs))
	}

	// every point is used exactly once on each side
	var gotFrom, gotTo []vec.Vec2
	for _, p := range pairs {
		gotFrom = append(gotFrom, p.From)
		gotTo = append(gotTo, p.To)
	}
	cmpVec := compareAxis(X)
	for _, s := range [][]vec.Vec2{gotFrom, gotTo, to} {
		slices.SortFunc(s, cmpVec)
	}
	if !slices.Equal(gotFrom, slices.SortedFunc(slices.Values(fromOrig), cmpVec)) {
		t.Error("origin points are not a permutation of the input")
	}
	if !slices.Equal(gotTo, to) {
		t.Error("target points are not a permutation of the input")
	}
}

// TestMatchShift checks that a translated copy of a point set is matched
// point by point.
func TestMatchShift(t *testing.T) {
	from := randomPoints(4, 64)
	shift := vec.Vec2{X: 3, Y: -2}
	to := make([]vec.Vec2, len(from))
	for i, p := range from {
		to[i] = p.Add(shift)
	}

	pairs, err := Match(from, to)
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range pairs {
		d := p.To.Sub(p.From).Sub(shift)
		if math.Abs(d.X) > 1e-9 || math.Abs(d.Y) > 1e-9 {
			t.Errorf("%v paired with %v", p.From, p.To)
		}
	}
}

func TestMatchSizeMismatch(t *testing.T) {
	_, err := Match(randomPoints(1, 3), randomPoints(2, 4))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("got error %v, want ErrSizeMismatch", err)
	}
}
