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
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"seehuhn.de/go/geom/vec"
)

// Morph returns frames+1 point sets which move every pair from its From
// to its To position.  Frame 0 is the start and the last frame the end
// configuration; intermediate frames follow the easing function fn, with
// nil meaning ease.InOutCubic.
func Morph(pairs []Pair, frames int, fn ease.TweenFunc) [][]vec.Vec2 {
	if frames < 1 {
		frames = 1
	}
	if fn == nil {
		fn = ease.InOutCubic
	}

	// The tweens run over a duration of `frames` time units, so that each
	// Update(1) advances by one frame.
	const nCoord = 2
	tweens := make([]*gween.Tween, nCoord*len(pairs))
	for i, p := range pairs {
		tweens[nCoord*i] = gween.New(float32(p.From.X), float32(p.To.X), float32(frames), fn)
		tweens[nCoord*i+1] = gween.New(float32(p.From.Y), float32(p.To.Y), float32(frames), fn)
	}

	res := make([][]vec.Vec2, 0, frames+1)
	first := make([]vec.Vec2, len(pairs))
	for i, p := range pairs {
		first[i] = p.From
	}
	res = append(res, first)

	for f := 1; f <= frames; f++ {
		frame := make([]vec.Vec2, len(pairs))
		for i, p := range pairs {
			x, _ := tweens[nCoord*i].Update(1)
			y, _ := tweens[nCoord*i+1].Update(1)
			frame[i] = vec.Vec2{X: float64(x), Y: float64(y)}
			if f == frames {
				// avoid float32 round-off in the final configuration
				frame[i] = p.To
			}
		}
		res = append(res, frame)
	}
	return res
}
