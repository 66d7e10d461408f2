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

	"seehuhn.de/go/geom/vec"
)

func v(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }

func TestSplitSegmentsNoSlit(t *testing.T) {
	pts := []vec.Vec2{v(0, 0), v(1, 0), v(1, 1)}
	kinds := []pointKind{kindChunkZone, kindChunkZone, kindChunkZone}
	segs := splitSegments(pts, kinds)
	if len(segs) != 1 || len(segs[0].pts) != 3 {
		t.Fatalf("expected a single unsplit segment, got %+v", segs)
	}
}

func TestSplitSegmentsAtSlitStart(t *testing.T) {
	pts := []vec.Vec2{v(0, 0), v(1, 0), v(1, 1), v(2, 1)}
	kinds := []pointKind{kindChunkZone, kindChunkZone, kindSlitDown + kindSlitStartOffset, kindChunkZone}
	segs := splitSegments(pts, kinds)
	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segs))
	}
	if len(segs[0].pts) != 3 || len(segs[1].pts) != 2 {
		t.Fatalf("unexpected segment split sizes: %d, %d", len(segs[0].pts), len(segs[1].pts))
	}
	// The slit-start point is shared between both segments (zero-width
	// bridge: its two endpoints coincide).
	if segs[0].pts[len(segs[0].pts)-1] != segs[1].pts[0] {
		t.Fatalf("expected shared bridge point between segments")
	}
}

func TestJoinSegmentsMergesSharedEndpoints(t *testing.T) {
	segs := []segment{
		{pts: []vec.Vec2{v(0, 0), v(1, 0)}},
		{pts: []vec.Vec2{v(1, 0), v(1, 1)}},
	}
	subpaths, err := joinSegments(segs, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subpaths) != 1 {
		t.Fatalf("expected 1 merged subpath, got %d", len(subpaths))
	}
	want := []vec.Vec2{v(0, 0), v(1, 0), v(1, 1)}
	if len(subpaths[0]) != len(want) {
		t.Fatalf("merged subpath length = %d, want %d", len(subpaths[0]), len(want))
	}
	for i, p := range want {
		if subpaths[0][i] != p {
			t.Errorf("subpath[%d] = %v, want %v", i, subpaths[0][i], p)
		}
	}
}

func TestJoinSegmentsClosesLoop(t *testing.T) {
	segs := []segment{
		{pts: []vec.Vec2{v(0, 0), v(1, 0)}},
		{pts: []vec.Vec2{v(1, 0), v(1, 1)}},
		{pts: []vec.Vec2{v(1, 1), v(0, 0)}},
	}
	subpaths, err := joinSegments(segs, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subpaths) != 1 {
		t.Fatalf("expected a single closed subpath, got %d", len(subpaths))
	}
	sub := subpaths[0]
	if sub[0] != sub[len(sub)-1] {
		t.Fatalf("expected closed loop: first=%v last=%v", sub[0], sub[len(sub)-1])
	}
}

func TestEmitPathClosesWhenEndpointsCoincide(t *testing.T) {
	sub := []vec.Vec2{v(0, 0), v(1, 0), v(1, 1), v(0, 0)}
	verts, codes := emitPath(sub, false)
	if len(verts) != len(sub)+1 || len(codes) != len(sub)+1 {
		t.Fatalf("expected an extra CLOSEPOLY vertex/code, got %d/%d", len(verts), len(codes))
	}
	if codes[0] != PathMoveTo {
		t.Errorf("first code = %d, want PathMoveTo", codes[0])
	}
	if codes[len(codes)-1] != PathClosePoly {
		t.Errorf("last code = %d, want PathClosePoly", codes[len(codes)-1])
	}
	for _, c := range codes[1 : len(codes)-1] {
		if c != PathLineTo {
			t.Errorf("interior code = %d, want PathLineTo", c)
		}
	}
}

func TestEmitPathOpenLeavesNoClose(t *testing.T) {
	sub := []vec.Vec2{v(0, 0), v(1, 0), v(2, 1)}
	verts, codes := emitPath(sub, false)
	if len(verts) != len(sub) || len(codes) != len(sub) {
		t.Fatalf("open path should not gain a CLOSEPOLY vertex, got %d/%d", len(verts), len(codes))
	}
	if codes[len(codes)-1] != PathLineTo {
		t.Errorf("last code of open path = %d, want PathLineTo", codes[len(codes)-1])
	}
}

func TestEmitPathFilledAlwaysCloses(t *testing.T) {
	// Endpoints do not bitwise-coincide, but filled mode (nlevels == 2)
	// closes unconditionally per §4.6 step 4.
	sub := []vec.Vec2{v(0, 0), v(1, 0), v(1, 1)}
	verts, codes := emitPath(sub, true)
	if len(verts) != len(sub)+1 || len(codes) != len(sub)+1 {
		t.Fatalf("expected an extra CLOSEPOLY vertex/code, got %d/%d", len(verts), len(codes))
	}
	if codes[len(codes)-1] != PathClosePoly {
		t.Errorf("last code = %d, want PathClosePoly", codes[len(codes)-1])
	}
	if verts[len(verts)-1] != sub[0] {
		t.Errorf("CLOSEPOLY vertex = %v, want %v (subpath start)", verts[len(verts)-1], sub[0])
	}
}

func TestRegroupLayouts(t *testing.T) {
	res := &Result{
		Vertices: [][]vec.Vec2{
			{v(0, 0), v(1, 0)},
			{v(5, 5), v(6, 5), v(5, 5)},
		},
		Codes: [][]byte{
			{PathMoveTo, PathLineTo},
			{PathMoveTo, PathLineTo, PathClosePoly},
		},
	}

	sep := res.Regroup(LineTypeSeparate)
	if len(sep.Vertices) != 2 || sep.Codes != nil {
		t.Fatalf("LineTypeSeparate: got %+v", sep)
	}

	sc := res.Regroup(LineTypeSeparateCode)
	if len(sc.Vertices) != 2 || len(sc.Codes) != 2 {
		t.Fatalf("LineTypeSeparateCode: got %+v", sc)
	}

	cc := res.Regroup(LineTypeChunkCombinedCode)
	if len(cc.Vertices) != 1 || len(cc.Vertices[0]) != 5 || len(cc.Codes) != 1 || len(cc.Codes[0]) != 5 {
		t.Fatalf("LineTypeChunkCombinedCode: got %+v", cc)
	}

	co := res.Regroup(LineTypeChunkCombinedOffset)
	if len(co.Vertices) != 1 || len(co.Vertices[0]) != 5 || co.Codes != nil {
		t.Fatalf("LineTypeChunkCombinedOffset: got %+v", co)
	}
	if len(co.Offsets) != 2 || co.Offsets[0] != 0 || co.Offsets[1] != 2 {
		t.Fatalf("LineTypeChunkCombinedOffset offsets = %v, want [0 2]", co.Offsets)
	}
}

func TestJoinSegmentsOverflow(t *testing.T) {
	// Fully disjoint segments (no shared endpoints) never merge, which
	// forces one round per segment; np/2+1 with np=2 gives a limit of 2
	// that the third segment's round exceeds.
	segs := []segment{
		{pts: []vec.Vec2{v(0, 0), v(1, 0)}},
		{pts: []vec.Vec2{v(5, 5), v(6, 5)}},
		{pts: []vec.Vec2{v(9, 9), v(10, 9)}},
	}
	_, err := joinSegments(segs, 2)
	if !errors.Is(err, ErrReorderOverflow) {
		t.Fatalf("want ErrReorderOverflow, got %v", err)
	}
}
