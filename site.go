// seehuhn.de/go/raster - a 2D rendering library
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

package contour

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Point kinds for emitted vertices, carried alongside (x, y) on pass 2 and
// consumed by the reorder stage. Numeric values match the host's
// matplotlib-compatible convention (§4.6, §6).
type pointKind int

const (
	kindChunkZone  pointKind = 101
	kindEdgeCorner pointKind = 102
	kindEdgeCut2   pointKind = 103
	kindSlitUp     pointKind = 104
	kindSlitDown   pointKind = 105

	kindSlitStartOffset pointKind = 16 // added to mark "start of slit segment"
)

// site is the mutable cursor shared by the three traversers and the curve
// driver. left selects both edge kind (|left| == 1 is an i-edge, |left| ==
// imax is a j-edge) and interior side (sign(left)).
type site struct {
	imax int

	edge int // point index naming the directed edge's anchor
	left int // one of {+1, -1, +imax, -imax}

	n     int // output points emitted so far on the current curve
	count int // remaining candidate start markers (pass 1 only)

	edge0, left0 int // where the current curve started
	edge00       int // anchor of the very first curve in this trace
	level0       int // contour level the current curve began at (0 or 2)

	zlevel [2]float64  // {z0, z1}
	ctm    matrix.Matrix // optional output transform; zero value means identity

	// pass 2 output cursors
	pts   []vec.Vec2
	kinds []pointKind
}

// forward returns FORWARD(left): the offset that advances one step in the
// direction the traverser is currently walking, derived from left by
// rotating 90 degrees.
func forward(left, imax int) int {
	switch left {
	case 1:
		return imax
	case -1:
		return -imax
	case imax:
		return -1
	case -imax:
		return 1
	}
	panic(invariantPanic{msg: "forward: invalid left"})
}

// isJEdge reports whether left selects a j-constant edge (magnitude imax).
func isJEdge(left, imax int) bool {
	return left == imax || left == -imax
}

// point0, point1 return the two endpoints of the directed edge named by
// (edge, left), ordered by the sign of fwd = forward(left, imax): point0
// is always the "low" endpoint along fwd, point1 the "high" one.
func point0(edge, left, imax int) int {
	fwd := forward(left, imax)
	if fwd > 0 {
		return edge
	}
	return edge + fwd
}

func point1(edge, left, imax int) int {
	fwd := forward(left, imax)
	if fwd > 0 {
		return edge + fwd
	}
	return edge
}

// startMark returns the state bit marking a potential start on the edge
// kind/side selected by left.
func startMark(left, imax int) uint16 {
	switch left {
	case 1:
		return i1Start
	case -1:
		return i0Start
	case imax:
		return j1Start
	case -imax:
		return j0Start
	}
	panic(invariantPanic{msg: "startMark: invalid left"})
}

// emit appends a pass-2 point and advances n. When pts is nil (pass 1)
// it only advances n.
func (s *site) emit(x, y float64, kind pointKind) {
	if s.pts == nil {
		s.n++
		return
	}
	s.pts = append(s.pts, vec.Vec2{X: x, Y: y})
	s.kinds = append(s.kinds, kind)
	s.n++
}

// markSlitStart flags the most recently emitted point as the start of a
// slit segment, for the reorder stage's segmentation (§4.6).
func (s *site) markSlitStart() {
	if len(s.kinds) == 0 {
		return
	}
	s.kinds[len(s.kinds)-1] += kindSlitStartOffset
}
