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

// Package fixtures builds small, hand-checkable meshes for the
// end-to-end scenarios used across this module's tests.
package fixtures

import (
	"math"

	"github.com/go-contour/mpltrace"
)

// Ramp3x3 returns the 3x3 linear ramp mesh: x[i]=i, y[j]=j, z[i,j]=i+j.
func Ramp3x3() *mpltrace.Mesh {
	return grid(3, 3, func(i, j int) float64 { return float64(i + j) })
}

// Saddle2x2 returns the 2x2 checkerboard saddle mesh z = [[1,0],[0,1]]
// (row j=0 is the first argument row in the usual (j, i) reading order).
func Saddle2x2() *mpltrace.Mesh {
	z := []float64{1, 0, 0, 1} // (i,j): (0,0)=1 (1,0)=0 (0,1)=0 (1,1)=1
	return flat(2, 2, z)
}

// HoleAnnulus5x5 returns a 5x5 mesh whose value is smallest at the
// centre and grows outward (concentric), so that a between-level band
// around the centre forms an annulus (a hole) requiring a slit.
func HoleAnnulus5x5() *mpltrace.Mesh {
	cx, cy := 2.0, 2.0
	return grid(5, 5, func(i, j int) float64 {
		dx, dy := float64(i)-cx, float64(j)-cy
		return math.Hypot(dx, dy)
	})
}

// Mask4x4 returns a 4x4 ramp mesh plus a mask flagging one interior
// point, along with that point's flat index for assertions.
func Mask4x4() (mesh *mpltrace.Mesh, maskedIndex int) {
	imax, jmax := 4, 4
	m := grid(imax, jmax, func(i, j int) float64 { return float64(i + j) })
	mask := make([]bool, imax*jmax)
	idx := 2 + 2*imax // an interior point (2,2)
	mask[idx] = true
	m.Mask = mask
	return m, idx
}

// Chunked5x5 returns a 5x5 ramp mesh configured with a 2x2 chunk size,
// for comparing chunked output against an unchunked trace of the same
// data.
func Chunked5x5() (chunked, unchunked *mpltrace.Mesh) {
	build := func(iChunk, jChunk int) *mpltrace.Mesh {
		imax, jmax := 5, 5
		n := imax * jmax
		x := make([]float64, n)
		y := make([]float64, n)
		z := make([]float64, n)
		for j := 0; j < jmax; j++ {
			for i := 0; i < imax; i++ {
				ij := i + j*imax
				x[ij], y[ij] = float64(i), float64(j)
				z[ij] = float64(i + j)
			}
		}
		mesh, err := mpltrace.NewMesh(imax, jmax, x, y, z, nil, iChunk, jChunk)
		if err != nil {
			panic(err)
		}
		return mesh
	}
	return build(2, 2), build(0, 0)
}

// grid builds an imax x jmax mesh with x[i]=i, y[j]=j, and z computed
// from a per-point callback.
func grid(imax, jmax int, z func(i, j int) float64) *mpltrace.Mesh {
	n := imax * jmax
	x := make([]float64, n)
	y := make([]float64, n)
	zv := make([]float64, n)
	for j := 0; j < jmax; j++ {
		for i := 0; i < imax; i++ {
			ij := i + j*imax
			x[ij], y[ij] = float64(i), float64(j)
			zv[ij] = z(i, j)
		}
	}
	mesh, err := mpltrace.NewMesh(imax, jmax, x, y, zv, nil, 0, 0)
	if err != nil {
		panic(err)
	}
	return mesh
}

// flat builds an imax x jmax mesh with x[i]=i, y[j]=j, and a pre-flattened
// z array (i varies fastest, matching the module's indexing convention).
func flat(imax, jmax int, z []float64) *mpltrace.Mesh {
	n := imax * jmax
	x := make([]float64, n)
	y := make([]float64, n)
	for j := 0; j < jmax; j++ {
		for i := 0; i < imax; i++ {
			ij := i + j*imax
			x[ij], y[ij] = float64(i), float64(j)
		}
	}
	mesh, err := mpltrace.NewMesh(imax, jmax, x, y, z, nil, 0, 0)
	if err != nil {
		panic(err)
	}
	return mesh
}
