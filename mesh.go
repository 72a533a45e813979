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

import (
	"fmt"
)

// VertexID, EdgeID and FaceID address records in a Mesh. They stay valid
// until the record is deleted; deleted slots are never reused within a run.
type (
	VertexID int32
	EdgeID   int32
	FaceID   int32
)

const (
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
	NoFace   FaceID   = -1
)

// List heads. Half-edges come in pairs, so the edge head occupies 0 and 1.
const (
	vHead    VertexID = 0
	fHead    FaceID   = 0
	eHead    EdgeID   = 0
	eHeadSym EdgeID   = 1
)

// Sym returns the half-edge with the same undirected edge and the opposite
// direction. Pairs are allocated at 2k and 2k+1.
func (e EdgeID) Sym() EdgeID {
	return e ^ 1
}

type point struct {
	s, t float64
}

type vertex struct {
	point
	next, prev VertexID
	anEdge     EdgeID
	client     ClientID
	pqHandle   pqHandle
	dead       bool
}

type halfEdge struct {
	// next links the global edge list. The previous pointer of e is stored
	// in e.Sym().next.
	next    EdgeID
	onext   EdgeID
	lnext   EdgeID
	org     VertexID
	lface   FaceID
	winding int
	region  *activeRegion
	dead    bool
}

type face struct {
	next, prev FaceID
	anEdge     EdgeID
	winding    int
	inside     bool
	dead       bool
}

// Mesh is a half-edge (doubly connected edge list) representation of a
// planar subdivision.
type Mesh struct {
	verts []vertex
	edges []halfEdge
	faces []face

	maxVertices int
	maxEdges    int
	numVertices int
	numEdges    int
}

// NewMesh creates a new mesh with no edges, no vertices, and no faces.
// maxVertices and maxEdges bound the number of live vertices and edge pairs;
// zero means unbounded.
func NewMesh(maxVertices, maxEdges int) *Mesh {
	m := &Mesh{
		maxVertices: maxVertices,
		maxEdges:    maxEdges,
	}
	m.verts = append(m.verts, vertex{
		next:     vHead,
		prev:     vHead,
		anEdge:   NoEdge,
		client:   NoClient,
		pqHandle: invalidHandle,
	})
	m.faces = append(m.faces, face{
		next:   fHead,
		prev:   fHead,
		anEdge: NoEdge,
	})
	m.edges = append(m.edges,
		halfEdge{next: eHead, onext: NoEdge, lnext: NoEdge, org: NoVertex, lface: NoFace},
		halfEdge{next: eHeadSym, onext: NoEdge, lnext: NoEdge, org: NoVertex, lface: NoFace},
	)
	return m
}

// Org returns the origin vertex of e.
func (m *Mesh) Org(e EdgeID) VertexID { return m.edges[e].org }

// Dst returns the destination vertex of e.
func (m *Mesh) Dst(e EdgeID) VertexID { return m.edges[e.Sym()].org }

// Onext returns the next edge CCW around the origin of e.
func (m *Mesh) Onext(e EdgeID) EdgeID { return m.edges[e].onext }

// Oprev returns the next edge CW around the origin of e.
func (m *Mesh) Oprev(e EdgeID) EdgeID { return m.edges[e.Sym()].lnext }

// Lnext returns the next edge CCW around the left face of e.
func (m *Mesh) Lnext(e EdgeID) EdgeID { return m.edges[e].lnext }

// Lprev returns the previous edge around the left face of e.
func (m *Mesh) Lprev(e EdgeID) EdgeID { return m.edges[e].onext.Sym() }

// Rprev returns the previous edge around the right face of e.
func (m *Mesh) Rprev(e EdgeID) EdgeID { return m.edges[e.Sym()].onext }

// Dnext returns the next edge CCW around the destination of e.
func (m *Mesh) Dnext(e EdgeID) EdgeID { return m.Rprev(e).Sym() }

// Lface returns the face to the left of e.
func (m *Mesh) Lface(e EdgeID) FaceID { return m.edges[e].lface }

// Rface returns the face to the right of e.
func (m *Mesh) Rface(e EdgeID) FaceID { return m.edges[e.Sym()].lface }

// Winding returns the winding contribution of e.
func (m *Mesh) Winding(e EdgeID) int { return m.edges[e].winding }

// VertexEdge returns one half-edge whose origin is v.
func (m *Mesh) VertexEdge(v VertexID) EdgeID { return m.verts[v].anEdge }

// Coords returns the coordinates of v.
func (m *Mesh) Coords(v VertexID) (s, t float64) { return m.verts[v].s, m.verts[v].t }

// Client returns the client identifier attached to v.
func (m *Mesh) Client(v VertexID) ClientID { return m.verts[v].client }

// FaceEdge returns one half-edge on the boundary of f.
func (m *Mesh) FaceEdge(f FaceID) EdgeID { return m.faces[f].anEdge }

// FaceWinding returns the winding number assigned to f by the sweep.
func (m *Mesh) FaceWinding(f FaceID) int { return m.faces[f].winding }

// FaceInside reports whether f was classified as inside.
func (m *Mesh) FaceInside(f FaceID) bool { return m.faces[f].inside }

// Vertices returns all live vertices in list order.
func (m *Mesh) Vertices() []VertexID {
	var vs []VertexID
	for v := m.verts[vHead].next; v != vHead; v = m.verts[v].next {
		vs = append(vs, v)
	}
	return vs
}

// Edges returns one half-edge of every live edge pair.
func (m *Mesh) Edges() []EdgeID {
	var es []EdgeID
	for e := m.edges[eHead].next; e != eHead; e = m.edges[e].next {
		es = append(es, e)
	}
	return es
}

// Faces returns all live faces in list order.
func (m *Mesh) Faces() []FaceID {
	var fs []FaceID
	for f := m.faces[fHead].next; f != fHead; f = m.faces[f].next {
		fs = append(fs, f)
	}
	return fs
}

func (m *Mesh) setCoords(v VertexID, p point) {
	m.verts[v].point = p
}

func (m *Mesh) pt(v VertexID) point {
	return m.verts[v].point
}

func (m *Mesh) setDst(e EdgeID, v VertexID) {
	m.edges[e.Sym()].org = v
}

func (m *Mesh) setRface(e EdgeID, f FaceID) {
	m.edges[e.Sym()].lface = f
}

// addWinding accumulates the winding of eSrc into eDst when two edges are
// merged into one.
func (m *Mesh) addWinding(eDst, eSrc EdgeID) {
	m.edges[eDst].winding += m.edges[eSrc].winding
	m.edges[eDst.Sym()].winding += m.edges[eSrc.Sym()].winding
}

// reserve fails if creating the given number of vertices and edge pairs
// would exceed the mesh limits. Faces are bounded by the edge count.
func (m *Mesh) reserve(verts, edges int) error {
	if m.maxVertices > 0 && m.numVertices+verts > m.maxVertices {
		return fmt.Errorf("tess: vertex limit %d reached: %w", m.maxVertices, ErrResourceExhausted)
	}
	if m.maxEdges > 0 && m.numEdges+edges > m.maxEdges {
		return fmt.Errorf("tess: edge limit %d reached: %w", m.maxEdges, ErrResourceExhausted)
	}
	return nil
}

// makeEdge creates a new pair of half-edges which form their own loop.
// No vertex or face is attached; the caller must assign them before the
// current operation completes.
func (m *Mesh) makeEdge(eNext EdgeID) EdgeID {
	e := EdgeID(len(m.edges))
	eSym := e.Sym()
	m.edges = append(m.edges,
		halfEdge{onext: e, lnext: eSym, org: NoVertex, lface: NoFace},
		halfEdge{onext: eSym, lnext: e, org: NoVertex, lface: NoFace},
	)
	m.numEdges++

	// The global list holds the even half of each pair.
	if eNext&1 != 0 {
		eNext = eNext.Sym()
	}

	// Insert in the circular doubly linked list before eNext.
	ePrev := m.edges[eNext.Sym()].next
	m.edges[eSym].next = ePrev
	m.edges[ePrev.Sym()].next = e
	m.edges[e].next = eNext
	m.edges[eNext.Sym()].next = eSym
	return e
}

// splice exchanges a.Onext and b.Onext (Guibas/Stolfi).
func (m *Mesh) splice(a, b EdgeID) {
	aOnext := m.edges[a].onext
	bOnext := m.edges[b].onext

	m.edges[aOnext.Sym()].lnext = b
	m.edges[bOnext.Sym()].lnext = a
	m.edges[a].onext = bOnext
	m.edges[b].onext = aOnext
}

// makeVertex attaches a new vertex as the origin of every edge in the
// origin ring of eOrig. It is inserted before vNext in the global list so
// that walks over the list do not see it.
func (m *Mesh) makeVertex(eOrig EdgeID, vNext VertexID) VertexID {
	vNew := VertexID(len(m.verts))
	m.verts = append(m.verts, vertex{
		anEdge:   eOrig,
		client:   NoClient,
		pqHandle: invalidHandle,
	})
	m.numVertices++

	vPrev := m.verts[vNext].prev
	m.verts[vNew].prev = vPrev
	m.verts[vPrev].next = vNew
	m.verts[vNew].next = vNext
	m.verts[vNext].prev = vNew

	e := eOrig
	for {
		m.edges[e].org = vNew
		e = m.edges[e].onext
		if e == eOrig {
			break
		}
	}
	return vNew
}

// makeFace attaches a new face as the left face of every edge in the loop
// of eOrig, inserted before fNext. The new face inherits the classification
// of fNext, which is the common case of a face split in two.
func (m *Mesh) makeFace(eOrig EdgeID, fNext FaceID) FaceID {
	fNew := FaceID(len(m.faces))
	m.faces = append(m.faces, face{
		anEdge:  eOrig,
		inside:  m.faces[fNext].inside,
		winding: m.faces[fNext].winding,
	})

	fPrev := m.faces[fNext].prev
	m.faces[fNew].prev = fPrev
	m.faces[fPrev].next = fNew
	m.faces[fNew].next = fNext
	m.faces[fNext].prev = fNew

	e := eOrig
	for {
		m.edges[e].lface = fNew
		e = m.edges[e].lnext
		if e == eOrig {
			break
		}
	}
	return fNew
}

// killEdge removes the pair of eDel from the global edge list.
func (m *Mesh) killEdge(eDel EdgeID) {
	if eDel&1 != 0 {
		eDel = eDel.Sym()
	}
	eNext := m.edges[eDel].next
	ePrev := m.edges[eDel.Sym()].next
	m.edges[eNext.Sym()].next = ePrev
	m.edges[ePrev.Sym()].next = eNext

	m.edges[eDel].dead = true
	m.edges[eDel.Sym()].dead = true
	m.edges[eDel].region = nil
	m.edges[eDel.Sym()].region = nil
	m.numEdges--
}

// killVertex removes vDel from the global list and makes newOrg the origin
// of its former ring.
func (m *Mesh) killVertex(vDel, newOrg VertexID) {
	eStart := m.verts[vDel].anEdge
	e := eStart
	for {
		m.edges[e].org = newOrg
		e = m.edges[e].onext
		if e == eStart {
			break
		}
	}

	vPrev := m.verts[vDel].prev
	vNext := m.verts[vDel].next
	m.verts[vNext].prev = vPrev
	m.verts[vPrev].next = vNext
	m.verts[vDel].dead = true
	m.numVertices--
}

// killFace removes fDel from the global list and makes newLface the left
// face of its former loop.
func (m *Mesh) killFace(fDel, newLface FaceID) {
	eStart := m.faces[fDel].anEdge
	e := eStart
	for {
		m.edges[e].lface = newLface
		e = m.edges[e].lnext
		if e == eStart {
			break
		}
	}

	fPrev := m.faces[fDel].prev
	fNext := m.faces[fDel].next
	m.faces[fNext].prev = fPrev
	m.faces[fPrev].next = fNext
	m.faces[fDel].dead = true
}

// MakeEdge creates one edge, two vertices, and a loop (face) made of the
// two new half-edges.
func (m *Mesh) MakeEdge() (EdgeID, error) {
	if err := m.reserve(2, 1); err != nil {
		return NoEdge, err
	}
	e := m.makeEdge(eHead)
	m.makeVertex(e, vHead)
	m.makeVertex(e.Sym(), vHead)
	m.makeFace(e, fHead)
	return e, nil
}

// Splice is the basic operation for changing mesh connectivity and
// topology. It exchanges eOrg.Onext and eDst.Onext.
//
// If eOrg.Org != eDst.Org the two vertices are merged, otherwise the
// origin is split in two. Independently, if eOrg.Lface == eDst.Lface one
// loop is split in two, otherwise two loops are joined. In every case
// eDst.Org and eDst.Lface change while eOrg.Org and eOrg.Lface do not.
//
// Splice(e, e) has no effect.
func (m *Mesh) Splice(eOrg, eDst EdgeID) error {
	if eOrg == eDst {
		return nil
	}

	joiningVertices := m.edges[eDst].org != m.edges[eOrg].org
	joiningLoops := m.edges[eDst].lface != m.edges[eOrg].lface
	if !joiningVertices {
		if err := m.reserve(1, 0); err != nil {
			return err
		}
	}

	if joiningVertices {
		// Destroy eDst.Org.
		m.killVertex(m.edges[eDst].org, m.edges[eOrg].org)
	}
	if joiningLoops {
		// Destroy eDst.Lface.
		m.killFace(m.edges[eDst].lface, m.edges[eOrg].lface)
	}

	m.splice(eDst, eOrg)

	if !joiningVertices {
		// The new vertex is eDst.Org.
		m.makeVertex(eDst, m.edges[eOrg].org)
		m.verts[m.edges[eOrg].org].anEdge = eOrg
	}
	if !joiningLoops {
		// The new loop is eDst.Lface.
		m.makeFace(eDst, m.edges[eOrg].lface)
		m.faces[m.edges[eOrg].lface].anEdge = eOrg
	}
	return nil
}

// Delete removes the edge eDel. If eDel.Lface != eDel.Rface the two loops
// are joined and eDel.Lface is deleted. Otherwise one loop is split in two
// and the new loop contains eDel.Dst. Vertices left isolated are deleted.
func (m *Mesh) Delete(eDel EdgeID) error {
	eDelSym := eDel.Sym()
	joiningLoops := m.Lface(eDel) != m.Rface(eDel)

	// Delete never creates vertices or edges; the face it may create is
	// bounded by the edge limit.
	if joiningLoops {
		m.killFace(m.Lface(eDel), m.Rface(eDel))
	}

	if m.Onext(eDel) == eDel {
		m.killVertex(m.Org(eDel), NoVertex)
	} else {
		m.faces[m.Rface(eDel)].anEdge = m.Oprev(eDel)
		m.verts[m.Org(eDel)].anEdge = m.Onext(eDel)

		m.splice(eDel, m.Oprev(eDel))
		if !joiningLoops {
			m.makeFace(eDel, m.Lface(eDel))
		}
	}

	// The mesh is consistent again except that eDel.Org may be gone.
	if m.Onext(eDelSym) == eDelSym {
		m.killVertex(m.Org(eDelSym), NoVertex)
		m.killFace(m.Lface(eDelSym), NoFace)
	} else {
		m.faces[m.Lface(eDel)].anEdge = m.Oprev(eDelSym)
		m.verts[m.Org(eDelSym)].anEdge = m.Onext(eDelSym)
		m.splice(eDelSym, m.Oprev(eDelSym))
	}

	m.killEdge(eDel)
	return nil
}

// AddEdgeVertex creates a new edge eNew such that eNew == eOrg.Lnext and
// eNew.Dst is a new vertex. eOrg and eNew share the same left face.
func (m *Mesh) AddEdgeVertex(eOrg EdgeID) (EdgeID, error) {
	if err := m.reserve(1, 1); err != nil {
		return NoEdge, err
	}
	return m.addEdgeVertex(eOrg), nil
}

func (m *Mesh) addEdgeVertex(eOrg EdgeID) EdgeID {
	eNew := m.makeEdge(eOrg)
	eNewSym := eNew.Sym()

	m.splice(eNew, m.Lnext(eOrg))

	m.edges[eNew].org = m.Dst(eOrg)
	m.makeVertex(eNewSym, m.Org(eNew))
	m.edges[eNew].lface = m.Lface(eOrg)
	m.edges[eNewSym].lface = m.Lface(eOrg)
	return eNew
}

// SplitEdge splits eOrg into eOrg and eNew such that eNew == eOrg.Lnext.
// The new vertex is eOrg.Dst == eNew.Org, and both edges keep the winding
// of eOrg.
func (m *Mesh) SplitEdge(eOrg EdgeID) (EdgeID, error) {
	if err := m.reserve(1, 1); err != nil {
		return NoEdge, err
	}
	eNew := m.addEdgeVertex(eOrg).Sym()

	// Disconnect eOrg from eOrg.Dst and connect it to eNew.Org.
	m.splice(eOrg.Sym(), m.Oprev(eOrg.Sym()))
	m.splice(eOrg.Sym(), eNew)

	m.setDst(eOrg, m.Org(eNew))
	m.verts[m.Dst(eNew)].anEdge = eNew.Sym() // may have pointed to eOrg.Sym()
	m.setRface(eNew, m.Rface(eOrg))
	m.edges[eNew].winding = m.edges[eOrg].winding
	m.edges[eNew.Sym()].winding = m.edges[eOrg.Sym()].winding
	return eNew, nil
}

// Connect creates a new edge from eOrg.Dst to eDst.Org and returns it.
// If eOrg.Lface == eDst.Lface one loop is split in two and the new loop is
// eNew.Lface. Otherwise two loops are merged and eDst.Lface is deleted.
func (m *Mesh) Connect(eOrg, eDst EdgeID) (EdgeID, error) {
	if err := m.reserve(0, 1); err != nil {
		return NoEdge, err
	}

	joiningLoops := false
	eNew := m.makeEdge(eOrg)
	eNewSym := eNew.Sym()

	if m.Lface(eDst) != m.Lface(eOrg) {
		joiningLoops = true
		m.killFace(m.Lface(eDst), m.Lface(eOrg))
	}

	m.splice(eNew, m.Lnext(eOrg))
	m.splice(eNewSym, eDst)

	m.edges[eNew].org = m.Dst(eOrg)
	m.edges[eNewSym].org = m.Org(eDst)
	m.edges[eNew].lface = m.Lface(eOrg)
	m.edges[eNewSym].lface = m.Lface(eOrg)

	m.faces[m.Lface(eOrg)].anEdge = eNewSym

	if !joiningLoops {
		m.makeFace(eNew, m.Lface(eOrg))
	}
	return eNew, nil
}

// ZapFace deletes fZap. Its edges get NoFace as their left face, and edges
// whose right face is also NoFace are deleted together with any vertices
// left isolated. Zapped faces cannot be used in further mesh operations.
func (m *Mesh) ZapFace(fZap FaceID) {
	eStart := m.faces[fZap].anEdge

	eNext := m.Lnext(eStart)
	for {
		e := eNext
		eNext = m.Lnext(e)

		m.edges[e].lface = NoFace
		if m.Rface(e) == NoFace {
			if m.Onext(e) == e {
				m.killVertex(m.Org(e), NoVertex)
			} else {
				m.verts[m.Org(e)].anEdge = m.Onext(e)
				m.splice(e, m.Oprev(e))
			}
			eSym := e.Sym()
			if m.Onext(eSym) == eSym {
				m.killVertex(m.Org(eSym), NoVertex)
			} else {
				m.verts[m.Org(eSym)].anEdge = m.Onext(eSym)
				m.splice(eSym, m.Oprev(eSym))
			}
			m.killEdge(e)
		}
		if e == eStart {
			break
		}
	}

	fPrev := m.faces[fZap].prev
	fNext := m.faces[fZap].next
	m.faces[fNext].prev = fPrev
	m.faces[fPrev].next = fNext
	m.faces[fZap].dead = true
}

// CountFaceVerts returns the number of edges on the boundary of f.
func (m *Mesh) CountFaceVerts(f FaceID) int {
	eStart := m.faces[f].anEdge
	eCur := eStart
	n := 0
	for {
		n++
		eCur = m.Lnext(eCur)
		if eCur == eStart {
			break
		}
	}
	return n
}

// Check verifies the mesh for self-consistency and returns the first
// violation found.
func (m *Mesh) Check() error {
	checkEdge := func(e EdgeID) error {
		switch {
		case e.Sym() == e || e.Sym().Sym() != e:
			return fmt.Errorf("tess: edge %d: bad Sym", e)
		case m.edges[e].dead:
			return fmt.Errorf("tess: edge %d: reachable after deletion", e)
		case m.Onext(m.Lnext(e)).Sym() != e:
			return fmt.Errorf("tess: edge %d: Lnext.Onext.Sym != e", e)
		case m.Lnext(m.Onext(e).Sym()) != e:
			return fmt.Errorf("tess: edge %d: Onext.Sym.Lnext != e", e)
		}
		return nil
	}

	fPrev := fHead
	for f := m.faces[fPrev].next; f != fHead; f = m.faces[f].next {
		if m.faces[f].prev != fPrev {
			return fmt.Errorf("tess: face %d: broken list", f)
		}
		if m.faces[f].dead {
			return fmt.Errorf("tess: face %d: reachable after deletion", f)
		}
		eStart := m.faces[f].anEdge
		e := eStart
		for {
			if err := checkEdge(e); err != nil {
				return err
			}
			if m.Lface(e) != f {
				return fmt.Errorf("tess: edge %d: Lface %d, want %d", e, m.Lface(e), f)
			}
			e = m.Lnext(e)
			if e == eStart {
				break
			}
		}
		fPrev = f
	}
	if m.faces[fHead].prev != fPrev || m.faces[fHead].anEdge != NoEdge {
		return fmt.Errorf("tess: face list head corrupted")
	}

	vPrev := vHead
	for v := m.verts[vPrev].next; v != vHead; v = m.verts[v].next {
		if m.verts[v].prev != vPrev {
			return fmt.Errorf("tess: vertex %d: broken list", v)
		}
		if m.verts[v].dead {
			return fmt.Errorf("tess: vertex %d: reachable after deletion", v)
		}
		eStart := m.verts[v].anEdge
		e := eStart
		for {
			if err := checkEdge(e); err != nil {
				return err
			}
			if m.Org(e) != v {
				return fmt.Errorf("tess: edge %d: Org %d, want %d", e, m.Org(e), v)
			}
			e = m.Onext(e)
			if e == eStart {
				break
			}
		}
		vPrev = v
	}
	if m.verts[vHead].prev != vPrev || m.verts[vHead].anEdge != NoEdge {
		return fmt.Errorf("tess: vertex list head corrupted")
	}

	ePrev := eHead
	for e := m.edges[ePrev].next; e != eHead; e = m.edges[e].next {
		if m.edges[e.Sym()].next != ePrev.Sym() {
			return fmt.Errorf("tess: edge %d: broken list", e)
		}
		if err := checkEdge(e); err != nil {
			return err
		}
		if m.Org(e) == NoVertex || m.Dst(e) == NoVertex {
			return fmt.Errorf("tess: edge %d: missing endpoint", e)
		}
		ePrev = e
	}
	if m.edges[eHeadSym].next != ePrev.Sym() {
		return fmt.Errorf("tess: edge list head corrupted")
	}
	if m.Org(eHead) != NoVertex || m.Dst(eHead) != NoVertex || m.Lface(eHead) != NoFace || m.Rface(eHead) != NoFace {
		return fmt.Errorf("tess: edge list head has topology")
	}
	return nil
}
