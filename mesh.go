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
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Mesh holds the immutable inputs to a trace session: a regular imax x
// jmax logical grid with per-point coordinates and scalar values, and an
// optional per-point mask. The i direction varies fastest: point (i, j)
// has flat index i + j*imax.
//
// This mirrors a host array of shape (jmax, imax) — z[j][i] in that
// convention is z[i+j*imax] here, matching §6's indexing convention.
type Mesh struct {
	Imax, Jmax int
	X, Y, Z    []float64
	Mask       []bool // optional; nil means no masking

	// IChunkSize, JChunkSize bound output polygon size in filled mode.
	// Values <= 0 or >= dimension-1 mean "unchunked" (replaced by
	// dimension-1 at initialization time).
	IChunkSize, JChunkSize int
}

// NewMesh validates and returns a Mesh. x, y, z must each have length
// imax*jmax; mask, if non-nil, must also have that length.
func NewMesh(imax, jmax int, x, y, z []float64, mask []bool, iChunk, jChunk int) (*Mesh, error) {
	if imax < 2 || jmax < 2 {
		return nil, fmt.Errorf("contour: NewMesh: %w (imax=%d jmax=%d)", ErrDegenerateMesh, imax, jmax)
	}
	n := imax * jmax
	if len(x) != n || len(y) != n || len(z) != n {
		return nil, fmt.Errorf("contour: NewMesh: %w (want len %d, got x=%d y=%d z=%d)",
			ErrBadShape, n, len(x), len(y), len(z))
	}
	if mask != nil && len(mask) != n {
		return nil, fmt.Errorf("contour: NewMesh: %w (mask len %d, want %d)", ErrBadShape, len(mask), n)
	}
	return &Mesh{
		Imax: imax, Jmax: jmax,
		X: x, Y: y, Z: z,
		Mask:       mask,
		IChunkSize: iChunk,
		JChunkSize: jChunk,
	}, nil
}

// Bounds returns the logical bounding box of the mesh's (x, y)
// coordinates. The tracer itself does not call it; the tests use it as a
// sanity bound on emitted vertices.
func (m *Mesh) Bounds() rect.Rect {
	xMin, xMax := m.X[0], m.X[0]
	yMin, yMax := m.Y[0], m.Y[0]
	for _, v := range m.X {
		xMin = min(xMin, v)
		xMax = max(xMax, v)
	}
	for _, v := range m.Y {
		yMin = min(yMin, v)
		yMax = max(yMax, v)
	}
	return rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
}

// effectiveChunk resolves a chunk size against a dimension: values <= 0 or
// >= dim-1 mean "unchunked".
func effectiveChunk(size, dim int) int {
	if size <= 0 || size >= dim-1 {
		return dim - 1
	}
	return size
}

// region computes the §3 "Region" byte array (length imax*(jmax+1)+1) from
// an optional mask. A nonzero entry at ij means the zone anchored at ij
// exists. Without a mask, every zone with 1 <= i < imax-1 && 1 <= j < jmax-1
// exists.
//
// region clears reg[ij] for i == 0 || j == 0 unconditionally — those
// points are never valid zone anchors in this index scheme, mask or no
// mask (see Design Notes "Open behavioral questions").
func region(imax, jmax int, mask []bool) []byte {
	reg := make([]byte, imax*(jmax+1)+1)
	for j := 0; j < jmax-1; j++ {
		for i := 0; i < imax-1; i++ {
			reg[i+j*imax] = 1
		}
	}
	if mask != nil {
		maskZones(reg, imax, jmax, mask)
	}
	for i := 0; i < imax; i++ {
		reg[i] = 0 // j == 0 row
	}
	for j := 0; j < jmax+1; j++ {
		reg[j*imax] = 0 // i == 0 column
	}
	return reg
}

// maskZones clears reg for every zone touching a masked point: the four
// zones anchored at (i-1,j-1), (i,j-1), (i-1,j), (i,j), whichever exist.
func maskZones(reg []byte, imax, jmax int, mask []bool) {
	for j := 0; j < jmax; j++ {
		for i := 0; i < imax; i++ {
			if !mask[i+j*imax] {
				continue
			}
			for _, dj := range [2]int{-1, 0} {
				zj := j + dj
				if zj < 0 || zj >= jmax-1 {
					continue
				}
				for _, di := range [2]int{-1, 0} {
					zi := i + di
					if zi < 0 || zi >= imax-1 {
						continue
					}
					reg[zi+zj*imax] = 0
				}
			}
		}
	}
}

// applyCTM applies an optional affine transform to a point. The zero
// matrix.Matrix is not a valid transform, so a zero CTM is treated as "no
// transform" (identity) — mirroring how most callers never set it.
func applyCTM(m matrix.Matrix, x, y float64) (float64, float64) {
	if m == (matrix.Matrix{}) {
		return x, y
	}
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// finite reports whether every value in zs is a finite float64, used to
// validate levels per §7 "Precondition failure".
func finite(zs ...float64) bool {
	for _, z := range zs {
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return false
		}
	}
	return true
}
