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

// codeResume signals the curve driver to hand control back to crossZone:
// the edge-walker reached a cut edge that still lies on a boundary, so
// the zone-crosser must resume emitting interpolated points from here.
const codeResume = 7

// walkEdge is the edge-walker of §4.3, filled mode only. It is entered
// immediately after crossZone returns codeBoundary: site.edge/left name a
// boundary edge with the existing region on the left, but that edge is
// not itself cut (or has already been handled by the caller). It walks
// the region's boundary, corner by corner, emitting EDGE_CORNER points on
// pass 2, until it meets a cut edge (hand back to the zone-crosser) or
// returns to the curve's own start (closed).
func walkEdge(s *site, g *grid, mesh *Mesh, levelClass int) int {
	imax := s.imax

	for {
		p1 := point1(s.edge, s.left, imax)

		next, ok := nextBoundaryEdge(g, p1, s.left, imax)
		if !ok {
			panic(invariantPanic{msg: "walkEdge: no boundary continuation found"})
		}
		s.edge, s.left = p1, next

		if s.pts != nil {
			x, y := applyCTM(s.ctm, mesh.X[p1], mesh.Y[p1])
			s.emit(x, y, kindEdgeCorner)
		} else {
			s.n++
		}

		if s.edge == s.edge0 && s.left == s.left0 {
			return codeClosed
		}

		p0, p1n := point0(s.edge, s.left, imax), point1(s.edge, s.left, imax)
		if zValue(g.data[p0]) != zValue(g.data[p1n]) {
			return codeResume
		}
	}
}

// nextBoundaryEdge finds the next boundary edge continuing a walk that
// arrived at pivot with direction left, keeping the existing region
// consistently on the left. Candidates are tried in priority order
// (sharpest right bend, straight ahead, sharpest left bend, reverse) —
// exactly one normally qualifies for a well-formed region boundary.
func nextBoundaryEdge(g *grid, pivot, left, imax int) (int, bool) {
	candidates := [4]int{predecessor(left, imax), left, forward(left, imax), -left}
	for _, cand := range candidates {
		if !boundaryFlag(g, pivot, cand) {
			continue
		}
		if zoneExistsLeft(g, pivot, cand, imax) {
			return cand, true
		}
	}
	return 0, false
}

// zoneExistsLeft reports whether the zone on the left of (edge, left)
// exists, per the anchor convention of zoneAnchor.
func zoneExistsLeft(g *grid, edge, left, imax int) bool {
	anchor := zoneAnchor(edge, left, imax)
	return g.data[anchor]&zoneEx != 0
}
