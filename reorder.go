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

	"seehuhn.de/go/geom/vec"
)

// Path vertex codes, matching the host's matplotlib-compatible Path
// protocol (§4.6, §6): MOVETO starts a new subpath, LINETO continues it,
// CLOSEPOLY repeats the subpath's first vertex and closes it.
const (
	PathMoveTo    = 1
	PathLineTo    = 2
	PathClosePoly = 79
)

// LineType selects the external layout of a traced result (§6).
type LineType int

const (
	// LineTypeSeparate returns one independent polyline/polygon per
	// subpath, as plain (x, y) coordinate slices with no codes.
	LineTypeSeparate LineType = 101
	// LineTypeSeparateCode is like LineTypeSeparate but pairs each
	// subpath with its own Path-code slice.
	LineTypeSeparateCode LineType = 102
	// LineTypeChunkCombinedCode concatenates every subpath from a single
	// chunk into one (vertices, codes) pair.
	LineTypeChunkCombinedCode LineType = 103
	// LineTypeChunkCombinedOffset is like LineTypeChunkCombinedCode but
	// reports, in place of codes, the vertex offset at which each
	// subpath starts.
	LineTypeChunkCombinedOffset LineType = 104
)

// segment is a maximal run of points with no slit-start cut inside it.
type segment struct {
	pts []vec.Vec2
}

func isSlitStart(k pointKind) bool { return k >= kindSlitStartOffset+kindChunkZone }

// splitSegments cuts a curve's flat point stream at every slit-start
// marker (§4.6 step 1): the point carrying the marker ends one segment
// and begins the next, since a slit has zero width and both its
// endpoints coincide.
func splitSegments(pts []vec.Vec2, kinds []pointKind) []segment {
	var segs []segment
	start := 0
	for i, k := range kinds {
		if isSlitStart(k) && i > start {
			segs = append(segs, segment{pts: pts[start : i+1]})
			start = i
		}
	}
	if start < len(pts) {
		segs = append(segs, segment{pts: pts[start:]})
	}
	return segs
}

// joinSegments repeatedly merges segments whose endpoints coincide
// (§4.6 step 2), producing one subpath per maximal chain. The bound
// np/2+1 (np = total input points) caps how many merge rounds are
// attempted; exceeding it means the segment graph is malformed
// (dangling or branching endpoints) rather than a clean chain of
// arcs, which is an invariant violation rather than a normal outcome.
func joinSegments(segs []segment, np int) ([][]vec.Vec2, error) {
	type key struct{ x, y float64 }
	endKey := func(p vec.Vec2) key { return key{p.X, p.Y} }

	remaining := make([]segment, len(segs))
	copy(remaining, segs)

	var subpaths [][]vec.Vec2
	limit := np/2 + 1
	rounds := 0

	for len(remaining) > 0 {
		rounds++
		if rounds > limit {
			return nil, fmt.Errorf("contour: reorder: %w (rounds=%d limit=%d)", ErrReorderOverflow, rounds, limit)
		}

		cur := remaining[0].pts
		remaining = remaining[1:]

		for {
			tail := endKey(cur[len(cur)-1])
			head := endKey(cur[0])
			merged := false
			for i, s := range remaining {
				if len(s.pts) == 0 {
					continue
				}
				sHead, sTail := endKey(s.pts[0]), endKey(s.pts[len(s.pts)-1])
				switch {
				case sHead == tail:
					cur = append(cur, s.pts[1:]...)
				case sTail == head:
					cur = append(append([]vec.Vec2{}, s.pts[:len(s.pts)-1]...), cur...)
				default:
					continue
				}
				remaining = append(remaining[:i], remaining[i+1:]...)
				merged = true
				break
			}
			if !merged {
				break
			}
		}
		subpaths = append(subpaths, cur)
	}
	return subpaths, nil
}

// emitPath converts one subpath into parallel vertex/code slices. A
// filled-mode subpath (§4.6 step 4, nlevels == 2) always closes with
// CLOSEPOLY; a line-mode subpath only closes when its first and last
// points happen to coincide.
func emitPath(sub []vec.Vec2, filled bool) ([]vec.Vec2, []byte) {
	verts := make([]vec.Vec2, 0, len(sub)+1)
	codes := make([]byte, 0, len(sub)+1)
	verts = append(verts, sub[0])
	codes = append(codes, PathMoveTo)
	for _, p := range sub[1:] {
		verts = append(verts, p)
		codes = append(codes, PathLineTo)
	}
	if filled || (len(sub) > 1 && sub[0] == sub[len(sub)-1]) {
		verts = append(verts, sub[0])
		codes = append(codes, PathClosePoly)
	}
	return verts, codes
}

// Regrouped is the output of Result.Regroup: the same traced geometry
// laid out per one of the four LineType conventions (§6).
type Regrouped struct {
	// Vertices holds one entry per subpath for LineTypeSeparate and
	// LineTypeSeparateCode; for the two ChunkCombined layouts it holds a
	// single entry, the concatenation of every subpath.
	Vertices [][]vec.Vec2
	// Codes is parallel to Vertices for the two "Code" layouts; nil for
	// LineTypeSeparate and LineTypeChunkCombinedOffset.
	Codes [][]byte
	// Offsets holds, for LineTypeChunkCombinedOffset only, the index
	// into the single concatenated Vertices[0] slice where each
	// original subpath begins.
	Offsets []int
}

// Regroup re-lays out r's already-traced geometry under lt, without
// re-tracing. Any LineType other than the four named constants falls
// back to LineTypeSeparateCode, the Result's own native layout.
func (r *Result) Regroup(lt LineType) Regrouped {
	switch lt {
	case LineTypeSeparate:
		return Regrouped{Vertices: r.Vertices}
	case LineTypeChunkCombinedCode:
		verts, codes := combineChunk(r.Vertices, r.Codes)
		return Regrouped{Vertices: [][]vec.Vec2{verts}, Codes: [][]byte{codes}}
	case LineTypeChunkCombinedOffset:
		verts, offsets := combineChunkOffsets(r.Vertices)
		return Regrouped{Vertices: [][]vec.Vec2{verts}, Offsets: offsets}
	default:
		return Regrouped{Vertices: r.Vertices, Codes: r.Codes}
	}
}

// combineChunk concatenates every subpath's vertices and codes into one
// flat pair, for LineTypeChunkCombinedCode.
func combineChunk(vertsIn [][]vec.Vec2, codesIn [][]byte) ([]vec.Vec2, []byte) {
	var verts []vec.Vec2
	var codes []byte
	for i := range vertsIn {
		verts = append(verts, vertsIn[i]...)
		codes = append(codes, codesIn[i]...)
	}
	return verts, codes
}

// combineChunkOffsets concatenates every subpath's vertices into one flat
// slice and records where each one started, for LineTypeChunkCombinedOffset.
func combineChunkOffsets(vertsIn [][]vec.Vec2) ([]vec.Vec2, []int) {
	var verts []vec.Vec2
	offsets := make([]int, 0, len(vertsIn))
	for i := range vertsIn {
		offsets = append(offsets, len(verts))
		verts = append(verts, vertsIn[i]...)
	}
	return verts, offsets
}

// reorder runs the full §4.6 pipeline over one curve's pass-2 output and
// returns its finished subpaths as parallel vertex/code slices. filled
// selects nlevels == 2 closure semantics (see emitPath).
func reorder(pts []vec.Vec2, kinds []pointKind, filled bool) ([][]vec.Vec2, [][]byte, error) {
	if len(pts) == 0 {
		return nil, nil, nil
	}
	segs := splitSegments(pts, kinds)
	subpaths, err := joinSegments(segs, len(pts))
	if err != nil {
		return nil, nil, err
	}
	verts := make([][]vec.Vec2, len(subpaths))
	codes := make([][]byte, len(subpaths))
	for i, sub := range subpaths {
		verts[i], codes[i] = emitPath(sub, filled)
	}
	return verts, codes, nil
}
