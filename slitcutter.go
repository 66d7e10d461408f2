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

// cutSlit is the slit-cutter of §4.4. Filled mode only. It is entered
// when crossZone reports that the edge it just stepped onto is the top
// (down-stroke, codeSlitDown) or bottom (up-stroke, codeSlitUp) of a
// zero-width bridge connecting an outer boundary to an inner hole, the
// device that turns a multiply-connected region into a single simply
// connected path. It walks the bridge column one point at a time,
// emitting a corner at each step, marks SLIT_DN along the way (the
// down-stroke only; the up-stroke reads the bridge back out but writes
// nothing new) and SLIT_UP at the far end, and hands back to the
// zone-crosser once the bridge reaches the far side's own cut edge, so
// the hole's boundary and the splice back out are traced as part of the
// very same curve.
func cutSlit(s *site, g *grid, mesh *Mesh, code int) int {
	imax := s.imax
	n := imax * g.jmax

	step := imax
	kind := kindSlitUp
	downstroke := code == codeSlitDown
	if downstroke {
		step = -imax
		kind = kindSlitDown
	}

	for {
		p := s.edge
		if s.pts != nil {
			x, y := applyCTM(s.ctm, mesh.X[p], mesh.Y[p])
			s.emit(x, y, kind)
		} else {
			s.n++
		}
		if downstroke {
			g.data[p] |= slitDn
		}

		if boundaryFlag(g, p, step) {
			s.markSlitStart()
			s.left = -step
			if s.zlevel[0] == s.zlevel[1] {
				return codeLineBndy
			}
			return codeBoundary
		}

		next := p + step
		if next < 0 || next >= n || zValue(g.data[next]) != 1 {
			// Reached the far side of the bridge: the hole's (or the
			// outer boundary's) own cut edge. Mark the segment break
			// here so reorder can split the flattened path at this
			// point, then hand back to the zone-crosser to resume
			// emitting the actual contour from there.
			if downstroke && next >= 0 && next < n {
				g.data[next] |= slitUp
			}
			s.markSlitStart()
			s.edge = next
			s.left = step
			return codeResume
		}
		s.edge = next
	}
}
