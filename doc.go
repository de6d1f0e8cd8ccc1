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

// Package stipple places a scatter of points on a grayscale raster, so
// that the points visually reproduce the image.
//
// A [WeightMap] turns the raster into a probability distribution over
// pixels: [BuildDensityWeights] favours dark pixels, [BuildEdgeWeights]
// favours pixels with a strong Sobel gradient.  A [Sampler] draws points
// from a weight map and rejects every candidate that lies strictly closer
// than a minimum distance to a point already placed.  [Distribute] runs an
// edge-weighted phase followed by a darkness-weighted phase, so that
// outlines stay recognisable even with few points.
//
// All randomness comes from the *rand.Rand passed in by the caller; with
// a fixed seed the output is reproducible.
package stipple

//go:generate go run ./testcases/gallery
