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

// Packed per-point state bits. The bit positions are part of the contract
// between the initializer and the traversers (zonecrosser, edgewalker,
// slitcutter) and must not change.
const (
	zValueMask uint16 = 0x0003 // class 0/1/2: below z0 / between / above z1

	zoneEx  uint16 = 0x0004 // zone anchored at this point exists
	iBndy   uint16 = 0x0008 // the i-edge leaving this point is a boundary
	jBndy   uint16 = 0x0010 // the j-edge leaving this point is a boundary
	i0Start uint16 = 0x0020 // start on i-edge, zone to the left  (dir -1)
	i1Start uint16 = 0x0040 // start on i-edge, zone to the right (dir +1)
	j0Start uint16 = 0x0080 // start on j-edge, zone below (dir -imax)
	j1Start uint16 = 0x0100 // start on j-edge, zone above (dir +imax)
	startRow uint16 = 0x0200 // acceleration hint: next unexamined start row
	slitUp   uint16 = 0x0400 // i-edge is the top of a slit
	slitDn   uint16 = 0x0800 // i-edge is the bottom of a slit
	openEnd  uint16 = 0x1000 // line-mode: this start is a boundary open end
	allDone  uint16 = 0x2000 // sentinel: final start point (pass 2 stop)

	// slitDnVisited matches the governing state-word table's bit layout
	// but is not load-bearing here: cutSlit hands a down-stroke and its
	// up-stroke back to crossZone within one continuous curve trace
	// instead of terminating and waiting for a second visit, so nothing
	// needs a "have I seen this down-stroke before" flag.
	slitDnVisited uint16 = 0x4000

	startMarkBits = i0Start | i1Start | j0Start | j1Start
)

// zValue extracts the Z_VALUE class (0, 1, or 2) from a packed word.
func zValue(w uint16) int { return int(w & zValueMask) }

// saddle cache bits, one byte per zone.
const (
	saddleSet byte = 0x01
	saddleGT0 byte = 0x02 // centre value > z0
	saddleGT1 byte = 0x04 // centre value > z1
)

// grid is the dense, bit-packed per-point state array plus the lazily
// populated per-zone saddle cache. Length is imax*(jmax+1)+1: one guard
// row beyond jmax-1, plus one guard word past the end (data[0] doubles as
// the ALL_DONE sentinel location per the Design Notes).
type grid struct {
	imax, jmax int
	data       []uint16
	saddle     []byte

	count int // start markers counted by the initializer; runCurves decrements it per curve launched

	// startRows holds, in ascending order, every row index containing at
	// least one start marker. See the Design Notes on START_ROW: this
	// auxiliary list stands in for the bit-chain, as explicitly permitted.
	startRows []int
}

func newGrid(imax, jmax int) *grid {
	return &grid{
		imax:   imax,
		jmax:   jmax,
		data:   make([]uint16, imax*(jmax+1)+1),
		saddle: make([]byte, imax*jmax),
	}
}

// reset clears the state grid and saddle cache in place, for session reuse
// across traces (re-initialization is always full, per §3 Lifecycle).
func (g *grid) reset() {
	clear(g.data)
	clear(g.saddle)
	g.count = 0
	g.startRows = g.startRows[:0]
}

// The saddle cache is indexed directly by zone-anchor point index: a zone
// anchored at point ij (with i < imax-1, j < jmax-1) satisfies
// ij = i + j*imax < imax*jmax, which is exactly len(saddle).
