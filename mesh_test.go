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
	"errors"
	"testing"
)

func ramp(imax, jmax int) ([]float64, []float64, []float64) {
	n := imax * jmax
	x, y, z := make([]float64, n), make([]float64, n), make([]float64, n)
	for j := 0; j < jmax; j++ {
		for i := 0; i < imax; i++ {
			ij := i + j*imax
			x[ij], y[ij] = float64(i), float64(j)
			z[ij] = float64(i + j)
		}
	}
	return x, y, z
}

func TestNewMeshRejectsDegenerateDims(t *testing.T) {
	x, y, z := ramp(1, 3)
	if _, err := NewMesh(1, 3, x, y, z, nil, 0, 0); !errors.Is(err, ErrDegenerateMesh) {
		t.Fatalf("want ErrDegenerateMesh, got %v", err)
	}
}

func TestNewMeshRejectsLengthMismatch(t *testing.T) {
	x, y, z := ramp(3, 3)
	if _, err := NewMesh(3, 3, x[:len(x)-1], y, z, nil, 0, 0); !errors.Is(err, ErrBadShape) {
		t.Fatalf("want ErrBadShape, got %v", err)
	}
}

func TestNewMeshAccepts(t *testing.T) {
	x, y, z := ramp(3, 3)
	m, err := NewMesh(3, 3, x, y, z, nil, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Imax != 3 || m.Jmax != 3 {
		t.Fatalf("dims not stored: %+v", m)
	}
}

func TestRegionWithoutMaskExcludesFirstRowAndColumn(t *testing.T) {
	imax, jmax := 4, 4
	reg := region(imax, jmax, nil)
	for i := 0; i < imax; i++ {
		if reg[i] != 0 {
			t.Errorf("row j=0 should never be a valid zone anchor, got reg[%d]=%d", i, reg[i])
		}
	}
	for j := 0; j < jmax; j++ {
		if reg[j*imax] != 0 {
			t.Errorf("column i=0 should never be a valid zone anchor, got reg[%d]=%d", j*imax, reg[j*imax])
		}
	}
	// An interior zone anchor should exist.
	if reg[1+1*imax] == 0 {
		t.Errorf("expected interior zone (1,1) to exist")
	}
	// The top-right-most valid zone anchor is (imax-2, jmax-2).
	if reg[(imax-2)+(jmax-2)*imax] == 0 {
		t.Errorf("expected zone (%d,%d) to exist", imax-2, jmax-2)
	}
	if reg[(imax-1)+(jmax-1)*imax] != 0 {
		t.Errorf("zone (imax-1,jmax-1) must never exist")
	}
}

func TestMaskZonesClearsFourSurroundingZones(t *testing.T) {
	imax, jmax := 5, 5
	mask := make([]bool, imax*jmax)
	mask[2+2*imax] = true
	reg := region(imax, jmax, mask)
	for _, d := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		if reg[d[0]+d[1]*imax] != 0 {
			t.Errorf("zone (%d,%d) touching the masked point should not exist", d[0], d[1])
		}
	}
	// A zone far from the masked point should be untouched.
	if reg[3+3*imax] == 0 {
		t.Errorf("zone (3,3) far from the masked point should still exist")
	}
}

func TestEffectiveChunk(t *testing.T) {
	if got := effectiveChunk(0, 10); got != 9 {
		t.Errorf("effectiveChunk(0,10) = %d, want 9", got)
	}
	if got := effectiveChunk(3, 10); got != 3 {
		t.Errorf("effectiveChunk(3,10) = %d, want 3", got)
	}
	if got := effectiveChunk(100, 10); got != 9 {
		t.Errorf("effectiveChunk(100,10) = %d, want 9", got)
	}
}

func TestFinite(t *testing.T) {
	if !finite(1.0, 2.0, -3.5) {
		t.Errorf("finite values reported non-finite")
	}
	if finite(1.0, 1.0/zero()) {
		t.Errorf("+Inf should be non-finite")
	}
}

func zero() float64 { return 0 }
