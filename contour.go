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

// Package contour implements a two-pass, edge-based contour tracer over
// structured quadrilateral meshes, producing either open iso-lines (line
// mode, a single level) or closed, simply-connected filled-region
// polygons (filled mode, between two levels).
package contour

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// TraceOptions configures a single Trace call.
type TraceOptions struct {
	// Z0 is the single contour level in line mode, or the lower level in
	// filled mode.
	Z0 float64
	// Z1 is the upper level in filled mode. Unused unless Filled is set,
	// but it must still be finite.
	Z1 float64
	// Filled selects filled-region mode (between Z0 and Z1) instead of
	// line mode (a single iso-line at Z0).
	Filled bool
	// CTM, if non-zero, is applied to every emitted vertex.
	CTM matrix.Matrix
}

// Result is the output of a Trace call: one entry per traced subpath,
// each a closed polygon (filled mode) or an open or closed polyline
// (line mode).
type Result struct {
	Vertices [][]vec.Vec2
	Codes    [][]byte
	// Curves is the number of independent curves the driver enumerated
	// before reordering combined or split any of them into subpaths.
	Curves int
}

// Session holds the reusable state grid for repeated traces against
// meshes of the same shape, avoiding a fresh allocation on every call.
type Session struct {
	g     *grid
	stats Stats
}

// Stats reports cumulative counts across every Trace call made through a
// Session, for diagnostics.
type Stats struct {
	Traces     int
	Curves     int
	Points     int
	Invariants int // recovered invariant-violation panics
}

// New returns a Session sized for an imax x jmax mesh. The same Session
// may be reused for multiple Trace calls, including against meshes of
// different shape (the grid is reallocated on demand).
func New(imax, jmax int) (*Session, error) {
	if imax < 2 || jmax < 2 {
		return nil, fmt.Errorf("contour: New: %w (imax=%d jmax=%d)", ErrDegenerateMesh, imax, jmax)
	}
	return &Session{g: newGrid(imax, jmax)}, nil
}

// Stats returns a snapshot of the session's cumulative counters.
func (s *Session) Stats() Stats { return s.stats }

// Close releases the session's buffers. A closed Session must not be
// used again.
func (s *Session) Close() {
	s.g = nil
}

// Trace runs the tracer over mesh per opts, returning one subpath group
// per LineType-independent internal representation (callers needing a
// specific LineType layout should post-process Result via Regroup).
func (s *Session) Trace(mesh *Mesh, opts TraceOptions) (result *Result, err error) {
	if s.g == nil {
		return nil, fmt.Errorf("contour: Trace: %w (session closed)", ErrBadShape)
	}
	if !finite(opts.Z0, opts.Z1) {
		return nil, fmt.Errorf("contour: Trace: %w", ErrBadLevels)
	}
	if opts.Filled && opts.Z0 > opts.Z1 {
		return nil, fmt.Errorf("contour: Trace: %w (z0=%g z1=%g)", ErrBadLevels, opts.Z0, opts.Z1)
	}
	if mesh.Imax != s.g.imax || mesh.Jmax != s.g.jmax {
		s.g = newGrid(mesh.Imax, mesh.Jmax)
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(invariantPanic); ok {
				s.stats.Invariants++
				err = fmt.Errorf("contour: Trace: %w", ErrInvariant)
				return
			}
			panic(r)
		}
	}()

	twoLevels := opts.Filled
	z1 := opts.Z1
	if !twoLevels {
		z1 = opts.Z0
	}

	g := s.g
	g.reset()
	reg := region(mesh.Imax, mesh.Jmax, mesh.Mask)
	initState(g, mesh, reg, opts.Z0, z1, twoLevels)

	zlevel := [2]float64{opts.Z0, z1}

	// Pass 1: topology only, establishes curve count and open-end
	// bookkeeping without emitting coordinates.
	runCurves(g, mesh, twoLevels, zlevel, opts.CTM, false)

	// Re-run the initializer for pass 2: pass 1 drained every start
	// marker it touched.
	g.reset()
	reg = region(mesh.Imax, mesh.Jmax, mesh.Mask)
	initState(g, mesh, reg, opts.Z0, z1, twoLevels)

	curves, allPts, allKinds := runCurves(g, mesh, twoLevels, zlevel, opts.CTM, true)

	// §4.6: reorder each curve independently. A slit's down-stroke and
	// up-stroke are both traced within the single curve that discovers
	// them, so curves never need to be stitched back together here.
	// Keeping them separate is what stops unrelated curves (a saddle's
	// two arms, a mask's several pieces) from being fused into one
	// self-intersecting subpath.
	var verts [][]vec.Vec2
	var codes [][]byte
	totalPts := 0
	for i := range allPts {
		vs, cs, rerr := reorder(allPts[i], allKinds[i], twoLevels)
		if rerr != nil {
			return nil, rerr
		}
		verts = append(verts, vs...)
		codes = append(codes, cs...)
		totalPts += len(allPts[i])
	}

	s.stats.Traces++
	s.stats.Curves += curves
	s.stats.Points += totalPts

	return &Result{Vertices: verts, Codes: codes, Curves: curves}, nil
}

// Trace is a convenience wrapper for a single one-shot trace: it builds a
// Session sized for mesh, runs Trace once, and releases the session.
func Trace(mesh *Mesh, opts TraceOptions) (*Result, error) {
	s, err := New(mesh.Imax, mesh.Jmax)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Trace(mesh, opts)
}
