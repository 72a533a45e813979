// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package tess

// faceInside reports whether f is a live face marked inside. NoFace is
// outside.
func (m *Mesh) faceInside(f FaceID) bool {
	if f == NoFace {
		return false
	}
	return m.faces[f].inside
}

// TessellateMonoRegion triangulates a monotone face by connecting the
// upper and lower chains, always adding a triangle on the chain whose
// next vertex is leftmost.
//
// The face must have at least three edges. Monotonicity is only
// approximate: the two chains may cross slightly, so a triangle is only
// added once its orientation is CCW or the edge to be skipped goes the
// wrong way.
func (m *Mesh) TessellateMonoRegion(f FaceID) error {
	up := m.faces[f].anEdge
	assert(m.Lnext(up) != up && m.Lnext(m.Lnext(up)) != up, "monotone region with fewer than three edges")

	goesLeft := func(e EdgeID) bool { return vertLeq(m.pt(m.Dst(e)), m.pt(m.Org(e))) }
	goesRight := func(e EdgeID) bool { return vertLeq(m.pt(m.Org(e)), m.pt(m.Dst(e))) }
	sign := func(u, v, w VertexID) float64 { return edgeSign(m.pt(u), m.pt(v), m.pt(w)) }

	// Find the rightmost vertex: up.Dst is it, and up goes right to it.
	for goesLeft(up) {
		up = m.Lprev(up)
	}
	for goesRight(up) {
		up = m.Lnext(up)
	}
	lo := m.Lprev(up)

	for m.Lnext(up) != lo {
		if vertLeq(m.pt(m.Dst(up)), m.pt(m.Org(lo))) {
			// up.Dst is on the left. Make triangles fanning out of lo.Org
			// as long as they are CCW.
			for m.Lnext(lo) != up && (goesLeft(m.Lnext(lo)) ||
				sign(m.Org(lo), m.Dst(lo), m.Dst(m.Lnext(lo))) <= 0) {
				e, err := m.Connect(m.Lnext(lo), lo)
				if err != nil {
					return err
				}
				lo = e.Sym()
			}
			lo = m.Lprev(lo)
		} else {
			// lo.Org is on the left.
			for m.Lnext(lo) != up && (goesRight(m.Lprev(up)) ||
				sign(m.Dst(up), m.Org(up), m.Org(m.Lprev(up))) >= 0) {
				e, err := m.Connect(up, m.Lprev(up))
				if err != nil {
					return err
				}
				up = e.Sym()
			}
			up = m.Lnext(up)
		}
	}

	// The left-most vertex is reached; fan out of lo.Org for the rest.
	assert(m.Lnext(lo) != up, "monotone region collapsed")
	for m.Lnext(m.Lnext(lo)) != up {
		e, err := m.Connect(m.Lnext(lo), lo)
		if err != nil {
			return err
		}
		lo = e.Sym()
	}
	return nil
}

// TessellateInterior triangulates every face marked inside. Each of them
// must be monotone.
func (m *Mesh) TessellateInterior() error {
	var next FaceID
	for f := m.faces[fHead].next; f != fHead; f = next {
		// New faces are inserted before f, so they are not visited.
		next = m.faces[f].next
		if !m.faces[f].inside {
			continue
		}
		if err := m.TessellateMonoRegion(f); err != nil {
			return err
		}
	}
	return nil
}

// DiscardExterior zaps every face not marked inside. Afterwards the
// exterior is NoFace.
func (m *Mesh) DiscardExterior() {
	var next FaceID
	for f := m.faces[fHead].next; f != fHead; f = next {
		next = m.faces[f].next
		if !m.faces[f].inside {
			m.ZapFace(f)
		}
	}
}

// SetWindingNumber resets the winding of every edge separating an inside
// face from an outside one to value, signed so that the inside is on the
// left. Other edges get winding zero, or are deleted if keepOnlyBoundary
// is true.
func (m *Mesh) SetWindingNumber(value int, keepOnlyBoundary bool) error {
	var eNext EdgeID
	for e := m.edges[eHead].next; e != eHead; e = eNext {
		eNext = m.edges[e].next
		lin := m.faceInside(m.Lface(e))
		rin := m.faceInside(m.Rface(e))
		switch {
		case lin != rin:
			w := value
			if !lin {
				w = -value
			}
			m.edges[e].winding = w
			m.edges[e.Sym()].winding = -w
		case !keepOnlyBoundary:
			m.edges[e].winding = 0
			m.edges[e.Sym()].winding = 0
		default:
			if err := m.Delete(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// MergeConvexFaces merges neighbouring inside faces as long as the result
// stays convex and has at most maxVertsPerFace vertices.
func (m *Mesh) MergeConvexFaces(maxVertsPerFace int) error {
	for f := m.faces[fHead].next; f != fHead; f = m.faces[f].next {
		// Skip faces which are outside the result.
		if !m.faces[f].inside {
			continue
		}

		eCur := m.faces[f].anEdge
		vStart := m.Org(eCur)

		for {
			eNext := m.Lnext(eCur)
			eSym := eCur.Sym()
			merged := false

			// Try to merge if the neighbour face is valid.
			if m.faceInside(m.Lface(eSym)) {
				curNv := m.CountFaceVerts(f)
				symNv := m.CountFaceVerts(m.Lface(eSym))
				if curNv+symNv-2 <= maxVertsPerFace {
					// Merge if the resulting poly is convex.
					if vertCCW(m.pt(m.Org(m.Lprev(eCur))), m.pt(m.Org(eCur)), m.pt(m.Org(m.Lnext(m.Lnext(eSym))))) &&
						vertCCW(m.pt(m.Org(m.Lprev(eSym))), m.pt(m.Org(eSym)), m.pt(m.Org(m.Lnext(m.Lnext(eCur))))) {
						eNext = m.Lnext(eSym)
						if err := m.Delete(eSym); err != nil {
							return err
						}
						merged = true
					}
				}
			}

			if !merged && m.Org(m.Lnext(eCur)) == vStart {
				break
			}

			// Continue to next edge.
			eCur = eNext
		}
	}
	return nil
}
