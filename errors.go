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

import "errors"

// Sentinel errors for session construction and tracing. All errors
// returned from this package wrap one of these with fmt.Errorf so callers
// can use errors.Is.
var (
	// ErrBadShape indicates a mesh array length or dimension is invalid,
	// or that Trace was called on a closed Session.
	ErrBadShape = errors.New("contour: imax/jmax or array length mismatch")
	// ErrBadLevels indicates z0 > z1, or a non-finite level.
	ErrBadLevels = errors.New("contour: levels must be finite with z0 <= z1")
	// ErrDegenerateMesh indicates imax or jmax is smaller than 2.
	ErrDegenerateMesh = errors.New("contour: imax and jmax must each be >= 2")
	// ErrInvariant indicates an internal consistency check failed during
	// tracing (for example a zero interpolation divisor, or a boundary
	// walk with no continuation). This is always a bug in this package,
	// not in caller input.
	ErrInvariant = errors.New("contour: internal invariant violated")
	// ErrReorderOverflow indicates the reorder stage needed more merge
	// rounds (output subpaths) for one curve than the bound np/2+1 allows.
	ErrReorderOverflow = errors.New("contour: reorder segment count exceeds bound")
)

// assert panics with an invariantPanic, which Session.Trace converts to
// ErrInvariant, if cond is false. Used at the few points
// where the state machine's own invariants (not caller input) are being
// checked — e.g. a cut edge's interpolation divisor must be nonzero.
func assert(cond bool, msg string) {
	if !cond {
		panic(invariantPanic{msg: msg})
	}
}

// invariantPanic carries an assertion failure across the pass 1/pass 2
// recursion back to Trace, where it is recovered and converted to
// ErrInvariant.
type invariantPanic struct {
	msg string
}
