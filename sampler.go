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

import (
	"math"
	"math/rand/v2"
)

// DefaultAttemptFactor is the number of draws allowed per requested point
// when Sampler.AttemptFactor is zero.
const DefaultAttemptFactor = 200

// Sampler draws points from a weight map by rejection sampling.
// Candidates are drawn independently from the map; a candidate is rejected
// if it lies strictly closer than MinDistance to a point that was already
// accepted or excluded.
type Sampler struct {
	// Rand is the only source of randomness.  Every attempt consumes
	// exactly one call to Rand.Float64.
	Rand *rand.Rand

	// MinDistance is the minimum distance between two points, in pixels.
	// Must be positive.  Points at exactly this distance are accepted.
	MinDistance float64

	// AttemptFactor bounds the number of draws to AttemptFactor times the
	// requested number of points.  Zero means DefaultAttemptFactor.
	AttemptFactor int
}

// Phase is the outcome of one call to Sampler.Sample.
type Phase struct {
	// Points lists the accepted points in acceptance order.
	Points PointSet

	// Requested is the number of points asked for.
	Requested int

	// Attempts is the number of draws used.
	Attempts int
}

// Shortfall returns how many of the requested points could not be placed
// within the attempt budget.
func (p *Phase) Shortfall() int {
	return p.Requested - len(p.Points)
}

// Sample draws up to count points from wm.  Candidates must keep the
// minimum distance from the points in exclude as well as from each other.
//
// Running out of attempts is not an error: the points accepted so far are
// returned and the Phase reports the shortfall.  A count of zero returns an
// empty phase without consuming any random numbers.
func (s *Sampler) Sample(wm *WeightMap, count int, exclude PointSet) (*Phase, error) {
	if err := s.check(count); err != nil {
		return nil, err
	}
	if wm == nil {
		return nil, &ConfigError{Param: "weight map", Value: nil, Reason: "weight map is nil"}
	}

	factor := s.AttemptFactor
	if factor == 0 {
		factor = DefaultAttemptFactor
	}
	maxAttempts := count * factor

	grid := newPointGrid(wm.width, wm.height, s.MinDistance)
	for _, p := range exclude {
		grid.insert(p)
	}

	points := make(PointSet, 0, count)
	attempts := 0
	for len(points) < count && attempts < maxAttempts {
		attempts++
		c := wm.At(wm.Index(s.Rand.Float64()))
		if grid.conflicts(c) {
			continue
		}
		grid.insert(c)
		points = append(points, c)
	}

	phase := &Phase{
		Points:    points,
		Requested: count,
		Attempts:  attempts,
	}
	if phase.Shortfall() > 0 {
		Logger().Warn("reached max attempts",
			"got", len(points),
			"requested", count,
			"attempts", attempts,
			"minDistance", s.MinDistance)
	}
	return phase, nil
}

func (s *Sampler) check(count int) error {
	if s.Rand == nil {
		return &ConfigError{Param: "random source", Value: nil, Reason: "Rand is nil"}
	}
	if !(s.MinDistance > 0) || math.IsInf(s.MinDistance, 0) {
		return &ConfigError{Param: "minimum distance", Value: s.MinDistance, Reason: "must be positive and finite"}
	}
	if s.AttemptFactor < 0 {
		return &ConfigError{Param: "attempt factor", Value: s.AttemptFactor, Reason: "must not be negative"}
	}
	if count < 0 {
		return &ConfigError{Param: "point count", Value: count, Reason: "must not be negative"}
	}
	return nil
}
