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
	"fmt"
	"image"
	"math"
	"math/rand/v2"
)

// Params controls a call to Distribute.
type Params struct {
	// Points is the total number of points requested.  Must be positive.
	Points int

	// MinDistance is the minimum spacing between any two points, in pixels.
	// Must be positive.
	MinDistance float64

	// EdgeBias is the fraction of Points placed according to edge strength
	// before the remaining points are placed according to darkness.
	// Must be in [0, 1].  Zero gives a single darkness-weighted phase.
	EdgeBias float64

	// AttemptFactor is passed on to the Sampler of each phase.
	// Zero means DefaultAttemptFactor.
	AttemptFactor int
}

// DefaultParams returns the parameters used by the command line tool
// when no flags are given.
func DefaultParams() Params {
	return Params{
		Points:      100,
		MinDistance: 7,
		EdgeBias:    0.4,
	}
}

// Validate checks that p describes a meaningful request.
func (p Params) Validate() error {
	if p.Points <= 0 {
		return &ConfigError{Param: "point count", Value: p.Points, Reason: "must be positive"}
	}
	if !(p.MinDistance > 0) || math.IsInf(p.MinDistance, 0) {
		return &ConfigError{Param: "minimum distance", Value: p.MinDistance, Reason: "must be positive and finite"}
	}
	if !(p.EdgeBias >= 0 && p.EdgeBias <= 1) {
		return &ConfigError{Param: "edge bias", Value: p.EdgeBias, Reason: "must be in [0, 1]"}
	}
	if p.AttemptFactor < 0 {
		return &ConfigError{Param: "attempt factor", Value: p.AttemptFactor, Reason: "must not be negative"}
	}
	return nil
}

// Split returns how many points are requested from the edge phase and
// from the density phase.  The edge count is floor(Points·EdgeBias) and
// the two counts always add up to Points.
func (p Params) Split() (edge, density int) {
	edge = int(math.Floor(float64(p.Points) * p.EdgeBias))
	edge = min(max(edge, 0), p.Points)
	return edge, p.Points - edge
}

// Result is the point set produced by Distribute.
type Result struct {
	// Points holds the edge-phase points followed by the density-phase
	// points, each in acceptance order.
	Points PointSet

	Edge    *Phase
	Density *Phase

	// Width and Height give the size of the raster the points were
	// placed on.
	Width, Height int
}

// EdgePoints returns the points placed by the edge phase.
func (r *Result) EdgePoints() PointSet {
	return r.Points[:len(r.Edge.Points)]
}

// DensityPoints returns the points placed by the density phase.
func (r *Result) DensityPoints() PointSet {
	return r.Points[len(r.Edge.Points):]
}

// Shortfall returns the total number of requested points which could not
// be placed.
func (r *Result) Shortfall() int {
	return r.Edge.Shortfall() + r.Density.Shortfall()
}

// Distribute places p.Points points on img.
//
// The edge phase runs first and places floor(Points·EdgeBias) points,
// weighted by the Sobel edge strength of img.  The density phase then
// places the remaining points, weighted by darkness, keeping the minimum
// distance to the edge points as well as to each other.  Edge points are
// chosen without knowledge of the density points.
//
// If EdgeBias is zero, no edge map is built, no random numbers are spent on
// the edge phase, and the result is identical to a single Sampler.Sample
// call on the density weights.
func Distribute(img *image.Gray, p Params, rng *rand.Rand) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	width, height, err := rasterSize(img)
	if err != nil {
		return nil, err
	}

	s := &Sampler{
		Rand:          rng,
		MinDistance:   p.MinDistance,
		AttemptFactor: p.AttemptFactor,
	}
	edgeCount, densityCount := p.Split()
	log := Logger()

	edge := &Phase{}
	if edgeCount > 0 {
		edgeMap, err := BuildEdgeWeights(img)
		if err != nil {
			return nil, fmt.Errorf("edge weights: %w", err)
		}
		log.Debug("edge phase", "points", edgeCount)
		edge, err = s.Sample(edgeMap, edgeCount, nil)
		if err != nil {
			return nil, fmt.Errorf("edge phase: %w", err)
		}
	}

	densityMap, err := BuildDensityWeights(img)
	if err != nil {
		return nil, fmt.Errorf("density weights: %w", err)
	}
	log.Debug("density phase", "points", densityCount, "excluded", len(edge.Points))
	density, err := s.Sample(densityMap, densityCount, edge.Points)
	if err != nil {
		return nil, fmt.Errorf("density phase: %w", err)
	}

	points := make(PointSet, 0, len(edge.Points)+len(density.Points))
	points = append(points, edge.Points...)
	points = append(points, density.Points...)

	log.Debug("distribution done",
		"points", len(points),
		"requested", p.Points,
		"attempts", edge.Attempts+density.Attempts)

	return &Result{
		Points:  points,
		Edge:    edge,
		Density: density,
		Width:   width,
		Height:  height,
	}, nil
}
