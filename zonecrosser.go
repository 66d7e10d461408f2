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

// Termination codes returned by crossZone, walkEdge, and cutSlit. The
// curve driver stops tracing a curve when a callee returns codeClosed or
// codeLineBndy; every other code hands control to another traverser.
const (
	codeBoundary  = 2 // hit a mesh/chunk boundary, filled mode
	codeClosed    = 3 // curve closed on its own start
	codeLineBndy  = 4 // line-mode boundary / open end
	codeSlitDown  = 5 // hand off to slit-cutter, down-stroke
	codeSlitUp    = 6 // hand off to slit-cutter, up-stroke
)

// predecessor is the inverse of forward: the unique direction u such that
// forward(u, imax) == v. Used by the zone-crosser's left turn, which spans
// the same physical step as the entry edge's own "left" vector.
func predecessor(v, imax int) int {
	switch v {
	case imax:
		return 1
	case -1:
		return imax
	case -imax:
		return -1
	case 1:
		return -imax
	}
	panic(invariantPanic{msg: "predecessor: invalid direction"})
}

// zoneAnchor returns the lower-left corner of the zone currently being
// crossed by the directed edge (edge, left): point0 when left selects the
// "positive" side, point0+left otherwise.
func zoneAnchor(edge, left, imax int) int {
	p0 := point0(edge, left, imax)
	if left > 0 {
		return p0
	}
	return p0 + left
}

// classInside reports whether class (a Z_VALUE 0/1/2) lies on the
// interior side of the level currently being traced: levelClass 0 (the
// z0 contour, or the only level in line mode) treats class != 0 as
// inside; levelClass 2 (the z1 contour) treats only class == 2 as
// inside.
func classInside(class, levelClass int) bool {
	if levelClass == 2 {
		return class == 2
	}
	return class != 0
}

// clearStart clears the start-marker bit for (edge, left) if set,
// decrementing the site's pass-1 count. No-op on pass 2 (pts != nil).
func clearStart(s *site, g *grid, edge, left int) {
	if s.pts != nil {
		return
	}
	bit := startMark(left, s.imax)
	if g.data[edge]&bit != 0 {
		g.data[edge] &^= bit
		s.count--
	}
}

// crossZone is the zone-crosser of §4.2. On entry, site is sitting on a
// cut edge with the zone to be crossed on its left. It emits the current
// cut point, then repeatedly steps across zones until the curve closes,
// hits a boundary, or hands off to the slit-cutter.
func crossZone(s *site, g *grid, mesh *Mesh, levelClass int) int {
	for {
		imax := s.imax
		p0 := point0(s.edge, s.left, imax)
		p1 := point1(s.edge, s.left, imax)

		if s.pts != nil {
			emitLerp(s, mesh, p0, p1, levelClass, kindChunkZone)
		}

		if s.n != 0 && !isJEdge(s.left, imax) {
			if s.pts == nil && s.zlevel[0] == s.zlevel[1] && g.data[s.edge]&openEnd != 0 {
				return codeLineBndy
			}
			if s.edge == s.edge0 && s.left == s.left0 {
				if s.zlevel[0] != s.zlevel[1] && s.left < 0 {
					return codeSlitDown
				}
				return codeClosed
			}
			clearStart(s, g, s.edge, s.left)
			if s.zlevel[0] == s.zlevel[1] {
				clearStart(s, g, s.edge, -s.left)
			}
		}
		s.n++

		insideAt := func(p int) bool { return classInside(zValue(g.data[p]), levelClass) }
		cutA := insideAt(p0) != insideAt(p0+s.left)
		cutB := insideAt(p1) != insideAt(p1+s.left)

		var newEdge, newLeft int
		switch {
		case cutA && cutB:
			if saddleTurnRight(s, g, mesh, p0, p1, levelClass) {
				newEdge, newLeft = p1, forward(s.left, imax)
			} else {
				newEdge, newLeft = p0, predecessor(s.left, imax)
			}
		case cutA:
			newEdge, newLeft = p0, predecessor(s.left, imax)
		case cutB:
			newEdge, newLeft = p1, forward(s.left, imax)
		default:
			newEdge, newLeft = s.edge+s.left, s.left
		}
		s.edge, s.left = newEdge, newLeft

		// Slit arrival: stepping onto a bridge edge hands off to the
		// slit-cutter regardless of pass. Pass 1 needs this too — once
		// it follows a down-stroke into a hole, only this check (not
		// the ordinary edge0/left0 closure test) ever brings it back
		// out, since the hole's own boundary never revisits edge0.
		if g.data[s.edge]&slitUp != 0 && s.left > 0 {
			return codeSlitUp
		}
		if g.data[s.edge]&slitDn != 0 && s.left < 0 {
			return codeSlitDown
		}

		if boundaryFlag(g, s.edge, s.left) {
			if s.pts == nil {
				clearStart(s, g, s.edge, s.left)
			}
			// Flip to stay CCW around the existing (not-yet-crossed) zone.
			s.left = -s.left
			if s.zlevel[0] == s.zlevel[1] {
				return codeLineBndy
			}
			return codeBoundary
		}
	}
}

// boundaryFlag reports whether the physical edge named by (edge, left)
// carries I_BNDY or J_BNDY, per the anchor convention established in
// init.go (both directed variants of a physical edge share one point0).
func boundaryFlag(g *grid, edge, left int) bool {
	p0 := point0(edge, left, g.imax)
	if isJEdge(left, g.imax) {
		return g.data[p0]&jBndy != 0
	}
	return g.data[p0]&iBndy != 0
}

// emitLerp computes the interpolated crossing point on the cut edge
// (p0, p1) at the given level and emits it.
func emitLerp(s *site, mesh *Mesh, p0, p1, levelClass int, kind pointKind) {
	level := s.zlevel[0]
	if levelClass == 2 {
		level = s.zlevel[1]
	}
	z0, z1 := mesh.Z[p0], mesh.Z[p1]
	assert(z0 != z1, "emitLerp: degenerate interpolation divisor")
	t := (level - z0) / (z1 - z0)
	x := mesh.X[p0] + t*(mesh.X[p1]-mesh.X[p0])
	y := mesh.Y[p0] + t*(mesh.Y[p1]-mesh.Y[p0])
	x, y = applyCTM(s.ctm, x, y)
	s.emit(x, y, kind)
}

// saddleTurnRight resolves a saddle zone using the lazily-populated
// per-zone cache. The centre value (arithmetic mean of the four corners)
// decides which diagonal is connected; the cache is written at most once
// per zone per trace (writes are idempotent, per the Design Notes).
func saddleTurnRight(s *site, g *grid, mesh *Mesh, p0, p1, levelClass int) bool {
	anchor := zoneAnchor(s.edge, s.left, s.imax)
	sc := g.saddle[anchor]
	if sc&saddleSet == 0 {
		centre := (mesh.Z[p0] + mesh.Z[p1] + mesh.Z[p0+s.left] + mesh.Z[p1+s.left]) / 4
		sc = saddleSet
		if centre > s.zlevel[0] {
			sc |= saddleGT0
		}
		if centre > s.zlevel[1] {
			sc |= saddleGT1
		}
		g.saddle[anchor] = sc
	}
	var gt bool
	if levelClass == 2 {
		gt = sc&saddleGT1 != 0
	} else {
		gt = sc&saddleGT0 != 0
	}
	parity := s.left < 0
	return gt != parity
}
