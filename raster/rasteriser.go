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

package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts filled vector paths to anti-aliased pixel coverage.
// The caller creates one instance and reuses it for many paths; internal
// buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	// Must be > 0.
	Flatness float64

	cover  []float32 // cover change per pixel; reused as output
	area   []float32 // area within pixel
	edges  []edge
	active []int // indices into edges

	bboxEmpty                  bool
	devXMin, devXMax           float64
	devYMin, devYMax           float64
	current, subpath           vec.Vec2
	haveCurrent, subpathIsOpen bool
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with the
// identity CTM and the default flatness.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Reset restores the initial state for a new clip rectangle, keeping the
// capacity of the internal buffers.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness

	r.cover = r.cover[:0]
	r.area = r.area[:0]
	r.edges = r.edges[:0]
	r.active = r.active[:0]
}

// FillNonZero fills the path using the nonzero winding rule.  The emit
// callback receives coverage values in [0, 1] row by row; its slice
// argument is valid only during the call.
//
// Open subpaths are closed implicitly.
func (r *Rasteriser) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
// See FillNonZero for the meaning of emit.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, integrateEvenOdd, emit)
}

func (r *Rasteriser) fill(p *path.Data, integrate func(cover, area []float32), emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < yBot {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)

		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.yMax() <= yTop {
				last := len(r.active) - 1
				r.active[i] = r.active[last]
				r.active = r.active[:last]
				continue
			}
			if r.accumulateEdge(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrate(r.cover, r.area)
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// collectEdges walks the path, flattens curves, transforms to device space
// and builds the edge list.  The returned bounding box is clamped to the
// clip rectangle.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
	r.haveCurrent = false
	r.subpathIsOpen = false

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.closeSubpath()
			r.current = p.Coords[k]
			r.subpath = r.current
			r.haveCurrent = true
			k++

		case path.CmdLineTo:
			r.addEdge(r.current, p.Coords[k])
			r.current = p.Coords[k]
			r.subpathIsOpen = true
			k++

		case path.CmdQuadTo:
			r.flattenQuadratic(r.current, p.Coords[k], p.Coords[k+1], r.addEdge)
			r.current = p.Coords[k+1]
			r.subpathIsOpen = true
			k += 2

		case path.CmdCubeTo:
			r.flattenCubic(r.current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			r.current = p.Coords[k+2]
			r.subpathIsOpen = true
			k += 3

		case path.CmdClose:
			r.closeSubpath()
		}
	}
	r.closeSubpath()

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// closeSubpath adds the closing edge of the current subpath, if needed.
func (r *Rasteriser) closeSubpath() {
	if r.haveCurrent && r.subpathIsOpen && r.current != r.subpath {
		r.addEdge(r.current, r.subpath)
	}
	r.current = r.subpath
	r.subpathIsOpen = false
}

// addEdge adds an edge given in user space.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	dx0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	dy0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	dx1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	dy1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := dy1 - dy0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: dx0, y0: dy0,
		x1: dx1, y1: dy1,
		dxdy: (dx1 - dx0) / dy,
	})

	if r.bboxEmpty {
		r.devXMin, r.devXMax = min(dx0, dx1), max(dx0, dx1)
		r.devYMin, r.devYMax = min(dy0, dy1), max(dy0, dy1)
		r.bboxEmpty = false
		return
	}
	r.devXMin = min(r.devXMin, dx0, dx1)
	r.devXMax = max(r.devXMax, dx0, dx1)
	r.devYMin = min(r.devYMin, dy0, dy1)
	r.devYMax = max(r.devYMax, dy0, dy1)
}

// transformLinear applies the 2×2 linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
// The number of segments is chosen so that the deviation in device space
// stays below Flatness.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if d := e.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments,
// using Wang's formula for the segment count.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coverage accumulation:
//
// For each pixel of the current scanline two values are collected,
//
//	cover: signed vertical extent of the edges crossing the pixel
//	area:  cover weighted by the uncovered fraction left of the crossing
//
// and integrated from left to right:
//
//	coverage[i] = accumulated + area[i]
//	accumulated += cover[i]
//
// This gives the signed area of the path inside each pixel.

// accumulateEdge adds the contribution of e within scanline y to the cover
// and area buffers, which are indexed by x - xMin.  Contributions left of
// the buffer are collected in the first pixel.  The return value reports
// whether anything was added.
func (r *Rasteriser) accumulateEdge(e *edge, y, xMin, xMax int) bool {
	yTop := max(float64(y), e.yMin())
	yBot := min(float64(y+1), e.yMax())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixRight < xMin:
		c := sign * float32(yBot-yTop)
		r.cover[0] += c
		r.area[0] += c
		return true
	case pixLeft >= xMax:
		return false
	case pixLeft == pixRight:
		yMid := (yTop + yBot) / 2
		r.deposit(pixLeft, sign*float32(yBot-yTop), e.x0+e.dxdy*(yMid-e.y0), xMin, xMax)
		return true
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight && pix < xMax; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), yTop)
		hi := min(max(ya, yb), yBot)
		if hi <= lo {
			continue
		}
		yMid := (lo + hi) / 2
		r.deposit(pix, sign*float32(hi-lo), e.x0+e.dxdy*(yMid-e.y0), xMin, xMax)
	}
	return true
}

// deposit records a crossing of vertical extent c at horizontal position
// xMid inside pixel column pix.
func (r *Rasteriser) deposit(pix int, c float32, xMid float64, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrateNonZero converts cover/area to coverage using the nonzero
// winding rule.  The result is stored in cover.
func integrateNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd converts cover/area to coverage using the even-odd
// rule.  The result is stored in cover.
func integrateEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := abs32(accum + area[i])
		accum += cover[i]
		mod := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-mod)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset,
// or nil if all values are zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.  0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage.
	horizontalEdgeThreshold = 1e-10
)
