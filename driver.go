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

// startPriority fixes the order in which multiple start markers piled up
// on the same point are drained. The choice only affects curve
// enumeration order, never the traced geometry.
var startPriority = [4]uint16{i1Start, i0Start, j1Start, j0Start}

// startLeft returns the left value a start-marker bit launches a curve
// with.
func startLeft(bit uint16, imax int) int {
	switch bit {
	case i1Start:
		return 1
	case i0Start:
		return -1
	case j1Start:
		return imax
	case j0Start:
		return -imax
	}
	panic(invariantPanic{msg: "startLeft: invalid bit"})
}

// edgeLevelClass inspects the two classes straddling an edge and reports
// which contour level (0 or 2) it belongs to: an edge with a class-0
// endpoint ({0,1} or {0,2}) maps to the z0 level, any other edge ({1,2},
// or an uncut edge of class 1 or 2) to the z1 level.
func edgeLevelClass(g *grid, p0, p1 int) int {
	if zValue(g.data[p0]) == 0 || zValue(g.data[p1]) == 0 {
		return 0
	}
	return 2
}

// runCurves drives the full curve enumeration of §4.5 once over every
// start marker left in g, walking g.startRows in order and draining the
// start-marker bits at each point (priority order startPriority). When
// collect is true this is pass 2: each curve's interpolated coordinates
// are gathered into its own entry of allPts/allKinds, one part per
// top-level curve (§4.6's np[nparts]), rather than one shared flat
// stream — a slit's down-stroke and up-stroke are both traced as part
// of the single curve that discovers them, so no cross-curve stitching
// is needed here. When collect is false this is pass 1 (topology only —
// counts and open-end bookkeeping, no emission).
func runCurves(g *grid, mesh *Mesh, twoLevels bool, zlevel [2]float64, ctm matrix.Matrix, collect bool) (curves int, allPts [][]vec.Vec2, allKinds [][]pointKind) {
	imax := g.imax

	for _, row := range g.startRows {
		for i := 0; i < imax; i++ {
			p := i + row*imax
			for _, bit := range startPriority {
				if g.data[p]&bit == 0 {
					continue
				}
				g.data[p] &^= bit
				g.count--

				pts, kinds := traceOneCurve(g, mesh, twoLevels, p, bit, zlevel, ctm, collect)
				curves++
				if collect {
					allPts = append(allPts, pts)
					allKinds = append(allKinds, kinds)
				}
			}
		}
	}
	return curves, allPts, allKinds
}

// traceOneCurve launches and fully traces a single curve starting at
// point p with the given start-marker bit, dispatching between the
// zone-crosser, edge-walker, and slit-cutter as each hands control back,
// until the curve terminates (closed, or an open end in line mode).
func traceOneCurve(g *grid, mesh *Mesh, twoLevels bool, p int, bit uint16, zlevel [2]float64, ctm matrix.Matrix, collect bool) ([]vec.Vec2, []pointKind) {
	imax := g.imax
	left := startLeft(bit, imax)

	p0, p1 := point0(p, left, imax), point1(p, left, imax)
	levelClass := 0
	if twoLevels {
		levelClass = edgeLevelClass(g, p0, p1)
	}
	isCut := zValue(g.data[p0]) != zValue(g.data[p1])

	s := &site{
		imax: imax, edge: p, left: left,
		edge0: p, left0: left, level0: levelClass,
		zlevel: zlevel, ctm: ctm,
	}
	if collect {
		s.pts = []vec.Vec2{}
		s.kinds = []pointKind{}
	}

	var code int
	if isCut {
		code = crossZone(s, g, mesh, levelClass)
	} else {
		// Uncut start on a chunk boundary (filled mode): begin by
		// walking the existing boundary directly.
		code = walkEdge(s, g, mesh, levelClass)
	}
loop:
	for {
		switch code {
		case codeClosed, codeLineBndy:
			break loop
		case codeBoundary:
			code = walkEdge(s, g, mesh, levelClass)
		case codeSlitDown, codeSlitUp:
			code = cutSlit(s, g, mesh, code)
		case codeResume:
			code = crossZone(s, g, mesh, levelClass)
		default:
			panic(invariantPanic{msg: "traceOneCurve: unknown termination code"})
		}
	}

	if s.pts == nil && !twoLevels && code == codeLineBndy {
		g.data[s.edge] |= openEnd
	}

	return s.pts, s.kinds
}
