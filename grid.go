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

package stipple

import "math"

// pointGrid buckets accepted points into square cells with side length at
// least the minimum distance.  Two points closer than the minimum distance
// are then always in the same or in adjacent cells, so a candidate only
// needs to be compared against the points in its 3×3 cell neighbourhood.
//
// The grid answers exactly the same question as comparing the candidate
// against every accepted point: conflicts(c) is true iff some point q
// has |q - c|² < minDist².
type pointGrid struct {
	cell     float64
	minDist2 float64
	cols     int
	rows     int
	buckets  [][]Point
}

// newPointGrid returns an empty grid covering a width×height raster.
// Points outside the raster are stored in the nearest border cell.
func newPointGrid(width, height int, minDist float64) *pointGrid {
	cell := max(minDist, 1)
	cols := max(int(math.Ceil(float64(width)/cell)), 1)
	rows := max(int(math.Ceil(float64(height)/cell)), 1)
	return &pointGrid{
		cell:     cell,
		minDist2: minDist * minDist,
		cols:     cols,
		rows:     rows,
		buckets:  make([][]Point, cols*rows),
	}
}

func (g *pointGrid) cellOf(p Point) (cx, cy int) {
	cx = int(math.Floor(float64(p.X) / g.cell))
	cy = int(math.Floor(float64(p.Y) / g.cell))
	cx = min(max(cx, 0), g.cols-1)
	cy = min(max(cy, 0), g.rows-1)
	return cx, cy
}

func (g *pointGrid) insert(p Point) {
	cx, cy := g.cellOf(p)
	idx := cy*g.cols + cx
	g.buckets[idx] = append(g.buckets[idx], p)
}

// conflicts reports whether c is strictly closer than the minimum distance
// to any point in the grid.  A point at exactly the minimum distance does
// not conflict.
func (g *pointGrid) conflicts(c Point) bool {
	cx, cy := g.cellOf(c)
	for y := max(cy-1, 0); y <= min(cy+1, g.rows-1); y++ {
		for x := max(cx-1, 0); x <= min(cx+1, g.cols-1); x++ {
			for _, q := range g.buckets[y*g.cols+x] {
				if float64(q.dist2(c)) < g.minDist2 {
					return true
				}
			}
		}
	}
	return false
}
