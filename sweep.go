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
	"context"
	"log/slog"
)

// Invariants for the edge dictionary:
//   - each pair of adjacent edges e2 = Succ(e1) satisfies edgeLeq(e1, e2)
//     at any valid location of the sweep event
//   - if edgeLeq(e2, e1) as well, then e1 and e2 share a common endpoint
//   - for each e, e.Dst has been processed but not e.Org
//   - each edge e satisfies vertLeq(e.Dst, event) && vertLeq(event, e.Org)
//   - no edge has zero length
//
// Invariants for the processed part of the mesh:
//   - it is a planar graph
//   - no processed edge has zero length
//   - no two processed vertices have identical coordinates
//   - each inside region is monotone (its two chains may cross very slightly)
//
// Invariants for the sweep:
//   - if no edge incident to the event vertex is in the dictionary, the
//     vertex has only right-going edges
//   - an edge marked fixUpperEdge is the only right-going edge of its
//     vertex

// MaxCoord bounds input coordinates. Larger values are clamped.
const MaxCoord = 1e150

// sentinelCoord keeps the sentinel edges beyond any real input feature.
const sentinelCoord = 4 * MaxCoord

// activeRegion is the part of the plane between two consecutive edges of
// the dictionary. Only the upper edge is stored; the lower one is the
// upper edge of the region below.
type activeRegion struct {
	eUp           EdgeID
	nodeUp        *dictNode
	windingNumber int
	inside        bool
	sentinel      bool
	dirty         bool
	// fixUpperEdge marks a temporary edge added by connectRightVertex.
	fixUpperEdge bool
}

func regionBelow(r *activeRegion) *activeRegion {
	return r.nodeUp.pred().key
}

func regionAbove(r *activeRegion) *activeRegion {
	return r.nodeUp.succ().key
}

type sweeper struct {
	mesh    *Mesh
	pq      *priorityQ
	dict    *dict
	event   VertexID
	rule    WindingRule
	combine CombineFunc
	log     *slog.Logger

	extraVertices int
}

func (s *sweeper) vertEq(u, v VertexID) bool {
	return vertEq(s.mesh.pt(u), s.mesh.pt(v))
}

func (s *sweeper) vertLeq(u, v VertexID) bool {
	return vertLeq(s.mesh.pt(u), s.mesh.pt(v))
}

func (s *sweeper) edgeSign(u, v, w VertexID) float64 {
	return edgeSign(s.mesh.pt(u), s.mesh.pt(v), s.mesh.pt(w))
}

func (s *sweeper) edgeEval(u, v, w VertexID) float64 {
	return edgeEval(s.mesh.pt(u), s.mesh.pt(v), s.mesh.pt(w))
}

func (s *sweeper) edgeGoesLeft(e EdgeID) bool {
	return s.vertLeq(s.mesh.Dst(e), s.mesh.Org(e))
}

func (s *sweeper) isInside(n int) bool {
	return s.rule(n)
}

// edgeLeq orders two regions by where their upper edges cross the sweep
// line at the current event. Both edges are directed right to left.
//
// If both destinations are the event, the edges are ordered by slope.
func (s *sweeper) edgeLeq(reg1, reg2 *activeRegion) bool {
	m := s.mesh
	ev := s.event
	e1 := reg1.eUp
	e2 := reg2.eUp

	if m.Dst(e1) == ev {
		if m.Dst(e2) == ev {
			if s.vertLeq(m.Org(e1), m.Org(e2)) {
				return s.edgeSign(m.Dst(e2), m.Org(e1), m.Org(e2)) <= 0
			}
			return s.edgeSign(m.Dst(e1), m.Org(e2), m.Org(e1)) >= 0
		}
		return s.edgeSign(m.Dst(e2), ev, m.Org(e2)) <= 0
	}
	if m.Dst(e2) == ev {
		return s.edgeSign(m.Dst(e1), ev, m.Org(e1)) >= 0
	}

	// General case: compare signed distances from e1 and e2 to the event.
	t1 := s.edgeEval(m.Dst(e1), ev, m.Org(e1))
	t2 := s.edgeEval(m.Dst(e2), ev, m.Org(e2))
	return t1 >= t2
}

func (s *sweeper) deleteRegion(reg *activeRegion) {
	if reg.fixUpperEdge {
		// Created with zero winding, so it must not have been merged with
		// a real edge.
		assert(s.mesh.Winding(reg.eUp) == 0, "fixable edge has winding")
	}
	s.mesh.edges[reg.eUp].region = nil
	s.dict.delete(reg.nodeUp)
}

// fixUpperEdge replaces a temporary upper edge with newEdge.
func (s *sweeper) fixUpperEdge(reg *activeRegion, newEdge EdgeID) error {
	assert(reg.fixUpperEdge, "fixUpperEdge on permanent edge")
	if err := s.mesh.Delete(reg.eUp); err != nil {
		return err
	}
	reg.fixUpperEdge = false
	reg.eUp = newEdge
	s.mesh.edges[newEdge].region = reg
	return nil
}

// topLeftRegion returns the region above the uppermost edge sharing the
// origin of reg.eUp, fixing it first if it is temporary.
func (s *sweeper) topLeftRegion(reg *activeRegion) (*activeRegion, error) {
	m := s.mesh
	org := m.Org(reg.eUp)

	for {
		reg = regionAbove(reg)
		if m.Org(reg.eUp) != org {
			break
		}
	}

	if reg.fixUpperEdge {
		e, err := m.Connect(regionBelow(reg).eUp.Sym(), m.Lnext(reg.eUp))
		if err != nil {
			return nil, err
		}
		if err := s.fixUpperEdge(reg, e); err != nil {
			return nil, err
		}
		reg = regionAbove(reg)
	}
	return reg, nil
}

// topRightRegion returns the region above the uppermost edge sharing the
// destination of reg.eUp.
func (s *sweeper) topRightRegion(reg *activeRegion) *activeRegion {
	dst := s.mesh.Dst(reg.eUp)
	for {
		reg = regionAbove(reg)
		if s.mesh.Dst(reg.eUp) != dst {
			break
		}
	}
	return reg
}

// addRegionBelow adds a region with upper edge eNewUp somewhere below
// regAbove, wherever the dictionary order puts it. Winding and inside are
// left for the caller.
func (s *sweeper) addRegionBelow(regAbove *activeRegion, eNewUp EdgeID) *activeRegion {
	reg := &activeRegion{
		eUp: eNewUp,
	}
	reg.nodeUp = s.dict.insertBefore(regAbove.nodeUp, reg)
	s.mesh.edges[eNewUp].region = reg
	return reg
}

func (s *sweeper) computeWinding(reg *activeRegion) {
	reg.windingNumber = regionAbove(reg).windingNumber + s.mesh.Winding(reg.eUp)
	reg.inside = s.isInside(reg.windingNumber)
}

// finishRegion removes a region whose upper and lower chains met at the
// event and copies its classification onto the face, which may not have
// existed before this point.
func (s *sweeper) finishRegion(reg *activeRegion) {
	e := reg.eUp
	f := s.mesh.Lface(e)

	s.mesh.faces[f].inside = reg.inside
	s.mesh.faces[f].winding = reg.windingNumber
	s.mesh.faces[f].anEdge = e
	s.deleteRegion(reg)
}

// finishLeftRegions walks down from regFirst finishing every region whose
// upper and lower edges share the event as origin, and stops at the region
// above regLast (or as far as possible if regLast is nil). Mesh edges
// around the event are relinked to follow dictionary order. It returns the
// lowest left-going edge.
func (s *sweeper) finishLeftRegions(regFirst, regLast *activeRegion) (EdgeID, error) {
	m := s.mesh
	regPrev := regFirst
	ePrev := regFirst.eUp

	for regPrev != regLast {
		regPrev.fixUpperEdge = false // placement was OK
		reg := regionBelow(regPrev)
		e := reg.eUp
		if m.Org(e) != m.Org(ePrev) {
			if !reg.fixUpperEdge {
				// There may be further left-going edges in the mesh even
				// though none are left in the dictionary, so finish rather
				// than just delete.
				s.finishRegion(regPrev)
				break
			}
			// The edge below is temporary; connect it properly now.
			var err error
			e, err = m.Connect(m.Lprev(ePrev), e.Sym())
			if err != nil {
				return NoEdge, err
			}
			if err := s.fixUpperEdge(reg, e); err != nil {
				return NoEdge, err
			}
		}

		// Relink edges so that ePrev.Onext == e.
		if m.Onext(ePrev) != e {
			if err := m.Splice(m.Oprev(e), e); err != nil {
				return NoEdge, err
			}
			if err := m.Splice(ePrev, e); err != nil {
				return NoEdge, err
			}
		}
		s.finishRegion(regPrev) // may change reg.eUp
		ePrev = reg.eUp
		regPrev = reg
	}
	return ePrev, nil
}

// addRightEdges inserts the right-going edges of one vertex into the
// dictionary below regUp, CCW from eFirst up to (not including) eLast.
// If the vertex already has processed left-going edges, eTopLeft is the
// edge such that an upward ray from the vertex lies between eTopLeft.Oprev
// and eTopLeft; otherwise it is NoEdge.
func (s *sweeper) addRightEdges(regUp *activeRegion, eFirst, eLast, eTopLeft EdgeID, cleanUp bool) error {
	m := s.mesh

	e := eFirst
	for {
		assert(s.vertLeq(m.Org(e), m.Dst(e)), "right edge goes left")
		s.addRegionBelow(regUp, e.Sym())
		e = m.Onext(e)
		if e == eLast {
			break
		}
	}

	// Walk all right-going edges of the vertex in dictionary order,
	// updating winding numbers and relinking the mesh to match.
	if eTopLeft == NoEdge {
		eTopLeft = m.Rprev(regionBelow(regUp).eUp)
	}
	regPrev := regUp
	ePrev := eTopLeft
	firstTime := true
	var reg *activeRegion
	for {
		reg = regionBelow(regPrev)
		e = reg.eUp.Sym()
		if m.Org(e) != m.Org(ePrev) {
			break
		}

		if m.Onext(e) != ePrev {
			// Unlink e and relink it below ePrev.
			if err := m.Splice(m.Oprev(e), e); err != nil {
				return err
			}
			if err := m.Splice(m.Oprev(ePrev), e); err != nil {
				return err
			}
		}
		reg.windingNumber = regPrev.windingNumber - m.Winding(e)
		reg.inside = s.isInside(reg.windingNumber)

		// Two outgoing edges with the same slope must be merged before
		// any intersection test.
		regPrev.dirty = true
		if !firstTime {
			spliced, err := s.checkForRightSplice(regPrev)
			if err != nil {
				return err
			}
			if spliced {
				m.addWinding(e, ePrev)
				s.deleteRegion(regPrev)
				if err := m.Delete(ePrev); err != nil {
					return err
				}
			}
		}
		firstTime = false
		regPrev = reg
		ePrev = e
	}
	regPrev.dirty = true
	assert(regPrev.windingNumber-m.Winding(e) == reg.windingNumber, "winding mismatch below right edges")

	if cleanUp {
		return s.walkDirtyRegions(regPrev)
	}
	return nil
}

// spliceMergeVertices merges two vertices with identical coordinates.
// e1.Org is kept together with its client id; e2.Org is discarded.
func (s *sweeper) spliceMergeVertices(e1, e2 EdgeID) error {
	if s.log.Enabled(context.Background(), slog.LevelDebug) {
		p := s.mesh.pt(s.mesh.Org(e1))
		s.log.Debug("tess: merging coincident vertices", "s", p.s, "t", p.t)
	}
	return s.mesh.Splice(e1, e2)
}

// vertexWeights splits half of the blend weight between org and dst by
// their relative L1 distance to isect.
func vertexWeights(isect, org, dst point) (float64, float64) {
	t1 := vertL1dist(org, isect)
	t2 := vertL1dist(dst, isect)
	if t1+t2 == 0 {
		return 0.25, 0.25
	}
	return 0.5 * t2 / (t1 + t2), 0.5 * t1 / (t1 + t2)
}

// getIntersectData asks the combine callback for the client id of a new
// intersection vertex. It is only asked when all four contributing
// vertices carry an id.
func (s *sweeper) getIntersectData(isect, orgUp, dstUp, orgLo, dstLo VertexID) {
	m := s.mesh
	data := [4]ClientID{m.Client(orgUp), m.Client(dstUp), m.Client(orgLo), m.Client(dstLo)}
	var weights [4]float64
	p := m.pt(isect)
	weights[0], weights[1] = vertexWeights(p, m.pt(orgUp), m.pt(dstUp))
	weights[2], weights[3] = vertexWeights(p, m.pt(orgLo), m.pt(dstLo))

	m.verts[isect].client = NoClient
	if s.combine == nil {
		return
	}
	for _, id := range data {
		if id == NoClient {
			return
		}
	}
	m.verts[isect].client = s.combine(p.s, p.t, data, weights)
}

// checkForRightSplice makes sure that eUp.Org is above eLo, or eLo.Org is
// below eUp, depending on which origin is leftmost.
//
// Its main job is splicing right-going edges with the same destination and
// slopes too close to tell apart. It also repairs numerical drift: after
// an edge is split, an origin that was barely above another edge may now
// test as on or below it. Where checkForIntersect cannot be used (it needs
// the event between eUp and eLo), the offending vertex is spliced into the
// other edge, which always restores the dictionary invariants.
func (s *sweeper) checkForRightSplice(regUp *activeRegion) (bool, error) {
	m := s.mesh
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp

	if s.vertLeq(m.Org(eUp), m.Org(eLo)) {
		if s.edgeSign(m.Dst(eLo), m.Org(eUp), m.Org(eLo)) > 0 {
			return false, nil
		}

		// eUp.Org appears to be below eLo.
		if !s.vertEq(m.Org(eUp), m.Org(eLo)) {
			// Splice eUp.Org into eLo.
			if _, err := m.SplitEdge(eLo.Sym()); err != nil {
				return false, err
			}
			if err := m.Splice(eUp, m.Oprev(eLo)); err != nil {
				return false, err
			}
			regUp.dirty = true
			regLo.dirty = true
		} else if m.Org(eUp) != m.Org(eLo) {
			// Merge the two vertices, discarding eUp.Org.
			s.pq.delete(m.verts[m.Org(eUp)].pqHandle)
			if err := s.spliceMergeVertices(m.Oprev(eLo), eUp); err != nil {
				return false, err
			}
		}
	} else {
		if s.edgeSign(m.Dst(eUp), m.Org(eLo), m.Org(eUp)) < 0 {
			return false, nil
		}

		// eLo.Org appears to be above eUp, so splice eLo.Org into eUp.
		regionAbove(regUp).dirty = true
		regUp.dirty = true
		if _, err := m.SplitEdge(eUp.Sym()); err != nil {
			return false, err
		}
		if err := m.Splice(m.Oprev(eLo), eUp); err != nil {
			return false, err
		}
	}
	return true, nil
}

// checkForLeftSplice makes sure that eUp.Dst is above eLo, or eLo.Dst is
// below eUp, depending on which destination is rightmost.
//
// This holds in exact arithmetic, but splitting an edge can change the
// outcome of earlier tests. The offending vertex is spliced into the other
// edge so that new edges are not inserted in the wrong place.
func (s *sweeper) checkForLeftSplice(regUp *activeRegion) (bool, error) {
	m := s.mesh
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp

	assert(!s.vertEq(m.Dst(eUp), m.Dst(eLo)), "left splice with equal destinations")

	if s.vertLeq(m.Dst(eUp), m.Dst(eLo)) {
		if s.edgeSign(m.Dst(eUp), m.Dst(eLo), m.Org(eUp)) < 0 {
			return false, nil
		}

		// eLo.Dst is above eUp, so splice eLo.Dst into eUp.
		regionAbove(regUp).dirty = true
		regUp.dirty = true
		e, err := m.SplitEdge(eUp)
		if err != nil {
			return false, err
		}
		if err := m.Splice(eLo.Sym(), e); err != nil {
			return false, err
		}
		m.faces[m.Lface(e)].inside = regUp.inside
	} else {
		if s.edgeSign(m.Dst(eLo), m.Dst(eUp), m.Org(eLo)) > 0 {
			return false, nil
		}

		// eUp.Dst is below eLo, so splice eUp.Dst into eLo.
		regUp.dirty = true
		regLo.dirty = true
		e, err := m.SplitEdge(eLo)
		if err != nil {
			return false, err
		}
		if err := m.Splice(m.Lnext(eUp), eLo.Sym()); err != nil {
			return false, err
		}
		m.faces[m.Rface(e)].inside = regUp.inside
	}
	return true, nil
}

// checkForIntersect tests the upper and lower edges of regUp for an
// intersection and, if there is one, adds it to the mesh and the queue.
//
// It returns true if handling the intersection recursively called
// addRightEdges; all dirty regions have then been checked and regUp may
// be gone.
func (s *sweeper) checkForIntersect(regUp *activeRegion) (bool, error) {
	m := s.mesh
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp
	orgUp := m.Org(eUp)
	orgLo := m.Org(eLo)
	dstUp := m.Dst(eUp)
	dstLo := m.Dst(eLo)

	assert(!s.vertEq(dstLo, dstUp), "intersect with equal destinations")
	assert(s.edgeSign(dstUp, s.event, orgUp) <= 0, "event above upper edge")
	assert(s.edgeSign(dstLo, s.event, orgLo) >= 0, "event below lower edge")
	assert(orgUp != s.event && orgLo != s.event, "edge starts at event")
	assert(!regUp.fixUpperEdge && !regLo.fixUpperEdge, "intersect on fixable edge")

	if orgUp == orgLo {
		// right endpoints are the same
		return false, nil
	}

	pOrgUp, pOrgLo := m.pt(orgUp), m.pt(orgLo)
	pDstUp, pDstLo := m.pt(dstUp), m.pt(dstLo)
	if min(pOrgUp.t, pDstUp.t) > max(pOrgLo.t, pDstLo.t) {
		// t ranges do not overlap
		return false, nil
	}

	if vertLeq(pOrgUp, pOrgLo) {
		if edgeSign(pDstLo, pOrgUp, pOrgLo) > 0 {
			return false, nil
		}
	} else {
		if edgeSign(pDstUp, pOrgLo, pOrgUp) < 0 {
			return false, nil
		}
	}

	// The edges intersect, at least marginally.
	isect := edgeIntersect(pDstUp, pOrgUp, pDstLo, pOrgLo)
	assert(min(pOrgUp.t, pDstUp.t) <= isect.t, "intersection above upper range")
	assert(isect.t <= max(pOrgLo.t, pDstLo.t), "intersection below lower range")
	assert(min(pDstLo.s, pDstUp.s) <= isect.s, "intersection left of destinations")
	assert(isect.s <= max(pOrgLo.s, pOrgUp.s), "intersection right of origins")

	ev := m.pt(s.event)
	if vertLeq(isect, ev) {
		// The intersection lies slightly left of the sweep line; move it
		// onto the event.
		isect = ev
	}
	// An intersection right of the rightmost origin makes degenerate inputs
	// extremely slow; clamp it to the origin.
	orgMin := pOrgLo
	if vertLeq(pOrgUp, pOrgLo) {
		orgMin = pOrgUp
	}
	if vertLeq(orgMin, isect) {
		isect = orgMin
	}

	if vertEq(isect, pOrgUp) || vertEq(isect, pOrgLo) {
		// Intersection at one of the right endpoints.
		if _, err := s.checkForRightSplice(regUp); err != nil {
			return false, err
		}
		return false, nil
	}

	if (!s.vertEq(dstUp, s.event) && edgeSign(pDstUp, ev, isect) >= 0) ||
		(!s.vertEq(dstLo, s.event) && edgeSign(pDstLo, ev, isect) <= 0) {
		// The new upper or lower edge would pass on the wrong side of the
		// event, or through it, because of rounding in the intersection.
		if dstLo == s.event {
			// Splice dstLo into eUp, and process the new region(s).
			if _, err := m.SplitEdge(eUp.Sym()); err != nil {
				return false, err
			}
			if err := m.Splice(eLo.Sym(), eUp); err != nil {
				return false, err
			}
			regUp, err := s.topLeftRegion(regUp)
			if err != nil {
				return false, err
			}
			eUp = regionBelow(regUp).eUp
			if _, err := s.finishLeftRegions(regionBelow(regUp), regLo); err != nil {
				return false, err
			}
			return true, s.addRightEdges(regUp, m.Oprev(eUp), eUp, eUp, true)
		}
		if dstUp == s.event {
			// Splice dstUp into eLo, and process the new region(s).
			if _, err := m.SplitEdge(eLo.Sym()); err != nil {
				return false, err
			}
			if err := m.Splice(m.Lnext(eUp), m.Oprev(eLo)); err != nil {
				return false, err
			}
			regLo = regUp
			regUp = s.topRightRegion(regUp)
			e := m.Rprev(regionBelow(regUp).eUp)
			regLo.eUp = m.Oprev(eLo)
			eLo, err := s.finishLeftRegions(regLo, nil)
			if err != nil {
				return false, err
			}
			return true, s.addRightEdges(regUp, m.Onext(eLo), m.Rprev(eUp), e, true)
		}
		// Called from connectRightVertex. Split whichever edge passes on
		// the wrong side of the event and leave the splicing to the caller.
		if edgeSign(pDstUp, ev, isect) >= 0 {
			regionAbove(regUp).dirty = true
			regUp.dirty = true
			if _, err := m.SplitEdge(eUp.Sym()); err != nil {
				return false, err
			}
			m.setCoords(m.Org(eUp), ev)
		}
		if edgeSign(pDstLo, ev, isect) <= 0 {
			regUp.dirty = true
			regLo.dirty = true
			if _, err := m.SplitEdge(eLo.Sym()); err != nil {
				return false, err
			}
			m.setCoords(m.Org(eLo), ev)
		}
		return false, nil
	}

	// General case: split both edges and splice them at the new vertex.
	// The argument order only matters for speed: the new face is walked,
	// and faces in the processed part (eUp.Lface) tend to be smaller.
	if _, err := m.SplitEdge(eUp.Sym()); err != nil {
		return false, err
	}
	if _, err := m.SplitEdge(eLo.Sym()); err != nil {
		return false, err
	}
	if err := m.Splice(m.Oprev(eLo), eUp); err != nil {
		return false, err
	}
	v := m.Org(eUp)
	m.setCoords(v, isect)
	h, err := s.pq.insert(v)
	if err != nil {
		return false, err
	}
	m.verts[v].pqHandle = h
	s.getIntersectData(v, orgUp, dstUp, orgLo, dstLo)
	s.log.Debug("tess: edge intersection", "s", isect.s, "t", isect.t)

	regionAbove(regUp).dirty = true
	regUp.dirty = true
	regLo.dirty = true
	return false, nil
}

// walkDirtyRegions restores the dictionary invariants for every region
// marked dirty, walking from the bottom up. Fixing one region may dirty
// others.
func (s *sweeper) walkDirtyRegions(regUp *activeRegion) error {
	m := s.mesh
	regLo := regionBelow(regUp)

	for {
		// Find the lowest dirty region.
		for regLo.dirty {
			regUp = regLo
			regLo = regionBelow(regLo)
		}
		if !regUp.dirty {
			regLo = regUp
			regUp = regionAbove(regUp)
			if regUp == nil || !regUp.dirty {
				return nil
			}
		}
		regUp.dirty = false
		eUp := regUp.eUp
		eLo := regLo.eUp

		if m.Dst(eUp) != m.Dst(eLo) {
			// Check the edge ordering at the destinations.
			spliced, err := s.checkForLeftSplice(regUp)
			if err != nil {
				return err
			}
			if spliced {
				// A temporary edge is no longer needed once the vertex has
				// a real right-going edge.
				if regLo.fixUpperEdge {
					s.deleteRegion(regLo)
					if err := m.Delete(eLo); err != nil {
						return err
					}
					regLo = regionBelow(regUp)
					eLo = regLo.eUp
				} else if regUp.fixUpperEdge {
					s.deleteRegion(regUp)
					if err := m.Delete(eUp); err != nil {
						return err
					}
					regUp = regionAbove(regLo)
					eUp = regUp.eUp
				}
			}
		}
		if m.Org(eUp) != m.Org(eLo) {
			if m.Dst(eUp) != m.Dst(eLo) &&
				!regUp.fixUpperEdge && !regLo.fixUpperEdge &&
				(m.Dst(eUp) == s.event || m.Dst(eLo) == s.event) {
				// checkForIntersect falls back to the event as the
				// intersection, so the event must lie between the edges
				// and neither edge may be fixable.
				done, err := s.checkForIntersect(regUp)
				if err != nil {
					return err
				}
				if done {
					return nil
				}
			} else {
				// The origins may still violate the ordering.
				if _, err := s.checkForRightSplice(regUp); err != nil {
					return err
				}
			}
		}
		if m.Org(eUp) == m.Org(eLo) && m.Dst(eUp) == m.Dst(eLo) {
			// A degenerate loop of two edges.
			m.addWinding(eLo, eUp)
			s.deleteRegion(regUp)
			if err := m.Delete(eUp); err != nil {
				return err
			}
			regUp = regionAbove(regLo)
		}
	}
}

// connectRightVertex connects a vertex whose edges all go left to the
// unprocessed part of the mesh. Without right-going edges, the regions
// above and below the event merge into one; regUp is the upper of the two.
//
// An edge is needed both to keep merged inside regions monotone and to
// leave a record of the vertex in the dictionary, so it can be merged with
// features not seen yet. The best target is the leftmost unprocessed vertex
// of the merged region, which is not known yet, so the vertex is connected
// to the closer origin of either chain and the edge is marked fixUpperEdge.
// It is replaced once the next vertex on that boundary is processed.
func (s *sweeper) connectRightVertex(regUp *activeRegion, eBottomLeft EdgeID) error {
	m := s.mesh
	eTopLeft := m.Onext(eBottomLeft)
	regLo := regionBelow(regUp)
	eUp := regUp.eUp
	eLo := regLo.eUp
	degenerate := false

	if m.Dst(eUp) != m.Dst(eLo) {
		if _, err := s.checkForIntersect(regUp); err != nil {
			return err
		}
	}

	// The upper or lower edge may now pass through the event, or coincide
	// with a new intersection vertex.
	if s.vertEq(m.Org(eUp), s.event) {
		if err := m.Splice(m.Oprev(eTopLeft), eUp); err != nil {
			return err
		}
		var err error
		regUp, err = s.topLeftRegion(regUp)
		if err != nil {
			return err
		}
		eTopLeft = regionBelow(regUp).eUp
		if _, err := s.finishLeftRegions(regionBelow(regUp), regLo); err != nil {
			return err
		}
		degenerate = true
	}
	if s.vertEq(m.Org(eLo), s.event) {
		if err := m.Splice(eBottomLeft, m.Oprev(eLo)); err != nil {
			return err
		}
		var err error
		eBottomLeft, err = s.finishLeftRegions(regLo, nil)
		if err != nil {
			return err
		}
		degenerate = true
	}
	if degenerate {
		return s.addRightEdges(regUp, m.Onext(eBottomLeft), eTopLeft, eTopLeft, true)
	}

	// Add a temporary, fixable edge to the closer of eLo.Org and eUp.Org.
	eNew := eUp
	if s.vertLeq(m.Org(eLo), m.Org(eUp)) {
		eNew = m.Oprev(eLo)
	}
	eNew, err := m.Connect(m.Lprev(eBottomLeft), eNew)
	if err != nil {
		return err
	}

	// No cleanup yet, or eNew might disappear before it is marked.
	if err := s.addRightEdges(regUp, eNew, m.Onext(eNew), m.Onext(eNew), false); err != nil {
		return err
	}
	m.edges[eNew.Sym()].region.fixUpperEdge = true
	return s.walkDirtyRegions(regUp)
}

// connectLeftDegenerate splices an event lying exactly on an already
// processed edge or vertex into the processed part of the mesh.
func (s *sweeper) connectLeftDegenerate(regUp *activeRegion, vEvent VertexID) error {
	m := s.mesh
	e := regUp.eUp

	if s.vertEq(m.Org(e), vEvent) {
		// e.Org is unprocessed; merge and wait for it to leave the queue.
		// Coincident vertices are merged in the main loop, so this only
		// happens with a merge tolerance.
		s.log.Debug("tess: event coincides with unprocessed origin")
		return s.spliceMergeVertices(e, m.VertexEdge(vEvent))
	}

	if !s.vertEq(m.Dst(e), vEvent) {
		// General case: splice vEvent into the edge passing through it.
		if _, err := m.SplitEdge(e.Sym()); err != nil {
			return err
		}
		if regUp.fixUpperEdge {
			// Drop the unused part of the fixable edge.
			if err := m.Delete(m.Onext(e)); err != nil {
				return err
			}
			regUp.fixUpperEdge = false
		}
		if err := m.Splice(m.VertexEdge(vEvent), e); err != nil {
			return err
		}
		return s.sweepEvent(vEvent)
	}

	// vEvent coincides with the processed e.Dst; splice in the additional
	// right-going edges. Only reachable with a merge tolerance.
	s.log.Debug("tess: event coincides with processed destination")
	regUp = s.topRightRegion(regUp)
	reg := regionBelow(regUp)
	eTopRight := reg.eUp.Sym()
	eTopLeft := m.Onext(eTopRight)
	eLast := eTopLeft
	if reg.fixUpperEdge {
		// The only right-going edge was fixable; real ones replace it.
		assert(eTopLeft != eTopRight, "fixable vertex without left edges")
		s.deleteRegion(reg)
		if err := m.Delete(eTopRight); err != nil {
			return err
		}
		eTopRight = m.Oprev(eTopLeft)
	}
	if err := m.Splice(m.VertexEdge(vEvent), eTopRight); err != nil {
		return err
	}
	if !s.edgeGoesLeft(eTopLeft) {
		eTopLeft = NoEdge
	}
	return s.addRightEdges(regUp, m.Onext(eTopRight), eLast, eTopLeft, true)
}

// connectLeftVertex connects a vertex whose edges all go right to the
// processed part of the mesh. Let R be the region containing the event
// and U, L its upper and lower chains. Normally R is split in two by
// connecting the event to the rightmost processed vertex of U or L. If the
// event lies on U it is merged into that chain instead.
func (s *sweeper) connectLeftVertex(vEvent VertexID) error {
	m := s.mesh

	probe := &activeRegion{eUp: m.VertexEdge(vEvent).Sym()}
	regUp := s.dict.search(probe).key
	regLo := regionBelow(regUp)
	if regLo == nil {
		return nil
	}
	eUp := regUp.eUp
	eLo := regLo.eUp

	if s.edgeSign(m.Dst(eUp), vEvent, m.Org(eUp)) == 0 {
		return s.connectLeftDegenerate(regUp, vEvent)
	}

	// The destination of reg.eUp is the vertex to connect to.
	reg := regLo
	if s.vertLeq(m.Dst(eLo), m.Dst(eUp)) {
		reg = regUp
	}

	if regUp.inside || reg.fixUpperEdge {
		var eNew EdgeID
		if reg == regUp {
			e, err := m.Connect(m.VertexEdge(vEvent).Sym(), m.Lnext(eUp))
			if err != nil {
				return err
			}
			eNew = e
		} else {
			e, err := m.Connect(m.Dnext(eLo), m.VertexEdge(vEvent))
			if err != nil {
				return err
			}
			eNew = e.Sym()
		}
		if reg.fixUpperEdge {
			if err := s.fixUpperEdge(reg, eNew); err != nil {
				return err
			}
		} else {
			s.computeWinding(s.addRegionBelow(regUp, eNew))
		}
		return s.sweepEvent(vEvent)
	}

	// The event is outside the polygon; no connection is needed.
	return s.addRightEdges(regUp, m.VertexEdge(vEvent), m.VertexEdge(vEvent), NoEdge, true)
}

// sweepEvent updates the mesh and the dictionary as the sweep line
// crosses vEvent.
func (s *sweeper) sweepEvent(vEvent VertexID) error {
	m := s.mesh
	s.event = vEvent

	// If the vertex ends an edge already in the dictionary there is no
	// need to search for the insertion point.
	e := m.VertexEdge(vEvent)
	for m.edges[e].region == nil {
		e = m.Onext(e)
		if e == m.VertexEdge(vEvent) {
			// All edges go right.
			return s.connectLeftVertex(vEvent)
		}
	}

	// Finish every region whose upper and lower edges end at the event,
	// classifying its face. This handles all left-going edges.
	regUp, err := s.topLeftRegion(m.edges[e].region)
	if err != nil {
		return err
	}
	reg := regionBelow(regUp)
	eTopLeft := reg.eUp
	eBottomLeft, err := s.finishLeftRegions(reg, nil)
	if err != nil {
		return err
	}

	// Then add the right-going edges and their regions.
	if m.Onext(eBottomLeft) == eTopLeft {
		// No right-going edges: add a temporary, fixable one.
		return s.connectRightVertex(regUp, eBottomLeft)
	}
	return s.addRightEdges(regUp, m.Onext(eBottomLeft), eTopLeft, eTopLeft, true)
}

// addSentinel adds an edge at height t spanning far beyond the input so
// the top and bottom of the dictionary need no special cases.
func (s *sweeper) addSentinel(t float64) error {
	m := s.mesh
	e, err := m.MakeEdge()
	if err != nil {
		return err
	}
	m.setCoords(m.Org(e), point{s: sentinelCoord, t: t})
	m.setCoords(m.Dst(e), point{s: -sentinelCoord, t: t})
	s.event = m.Dst(e)

	reg := &activeRegion{
		eUp:      e,
		sentinel: true,
	}
	reg.nodeUp = s.dict.insert(reg)
	return nil
}

func (s *sweeper) initEdgeDict() error {
	s.dict = newDict(s.edgeLeq)
	if err := s.addSentinel(-sentinelCoord); err != nil {
		return err
	}
	return s.addSentinel(sentinelCoord)
}

// doneEdgeDict empties the dictionary. Only the two sentinels and at most
// one fixable edge may remain; their edges are removed from the mesh so
// that no sentinel vertex survives.
func (s *sweeper) doneEdgeDict() error {
	var fixEdges, sentinelEdges []EdgeID
	fixed := 0
	for {
		reg := s.dict.min().key
		if reg == nil {
			break
		}
		if !reg.sentinel {
			assert(reg.fixUpperEdge, "leftover region is not fixable")
			fixed++
			assert(fixed == 1, "more than one leftover fixable region")
		}
		assert(reg.windingNumber == 0, "leftover region has winding")
		if reg.sentinel {
			sentinelEdges = append(sentinelEdges, reg.eUp)
		} else {
			fixEdges = append(fixEdges, reg.eUp)
		}
		s.deleteRegion(reg)
	}
	s.dict = nil

	for _, e := range fixEdges {
		if err := s.mesh.Delete(e); err != nil {
			return err
		}
	}
	for _, e := range sentinelEdges {
		if err := s.mesh.Delete(e); err != nil {
			return err
		}
	}
	return nil
}

// removeDegenerateEdges removes zero-length edges and contours with fewer
// than three vertices.
func (s *sweeper) removeDegenerateEdges() error {
	m := s.mesh
	var eNext EdgeID
	for e := m.edges[eHead].next; e != eHead; e = eNext {
		eNext = m.edges[e].next
		eLnext := m.Lnext(e)

		if s.vertEq(m.Org(e), m.Dst(e)) && m.Lnext(m.Lnext(e)) != e {
			// Zero-length edge on a contour of at least three edges.
			if err := s.spliceMergeVertices(eLnext, e); err != nil { // deletes e.Org
				return err
			}
			if err := m.Delete(e); err != nil { // e is a self-loop
				return err
			}
			e = eLnext
			eLnext = m.Lnext(e)
		}
		if m.Lnext(eLnext) == e {
			// Degenerate contour of one or two edges.
			if eLnext != e {
				if eLnext == eNext || eLnext == eNext.Sym() {
					eNext = m.edges[eNext].next
				}
				if err := m.Delete(eLnext); err != nil {
					return err
				}
			}
			if e == eNext || e == eNext.Sym() {
				eNext = m.edges[eNext].next
			}
			if err := m.Delete(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// initPriorityQ queues every vertex of the mesh.
func (s *sweeper) initPriorityQ() error {
	m := s.mesh
	capacity := 0
	if s.extraVertices > 0 {
		capacity = m.numVertices + max(8, s.extraVertices)
	}
	s.pq = newPriorityQ(m, capacity)
	for v := m.verts[vHead].next; v != vHead; v = m.verts[v].next {
		h, err := s.pq.insert(v)
		if err != nil {
			return err
		}
		m.verts[v].pqHandle = h
	}
	return nil
}

// removeDegenerateFaces deletes faces with only two edges. walkDirtyRegions
// catches almost all of them, but not those produced by splicing already
// processed edges in finishLeftRegions and checkForLeftSplice, where
// deleting at once would invalidate edges held further up the stack.
func (s *sweeper) removeDegenerateFaces() error {
	m := s.mesh
	var fNext FaceID
	for f := m.faces[fHead].next; f != fHead; f = fNext {
		fNext = m.faces[f].next
		e := m.faces[f].anEdge
		assert(m.Lnext(e) != e, "face with a single edge")

		if m.Lnext(m.Lnext(e)) == e {
			m.addWinding(m.Onext(e), e)
			if err := m.Delete(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// computeInterior computes the planar arrangement of the contours in the
// mesh and subdivides it into monotone regions, each marked inside or
// outside according to the winding rule.
//
// Events are processed in lexicographic order:
//
//	v1 < v2  iff  v1.s < v2.s || (v1.s == v2.s && v1.t < v2.t)
func (s *sweeper) computeInterior() error {
	if err := s.removeDegenerateEdges(); err != nil {
		return err
	}
	if err := s.initPriorityQ(); err != nil {
		return err
	}
	if err := s.initEdgeDict(); err != nil {
		return err
	}

	for v := s.pq.extractMin(); v != NoVertex; v = s.pq.extractMin() {
		for {
			vNext := s.pq.minimum()
			if vNext == NoVertex || !s.vertEq(vNext, v) {
				break
			}
			// Merge all vertices at exactly the same location before the
			// event. Otherwise two identical edges of different contours,
			// crossed by a third, could be split at slightly different
			// points and leave a gap between them.
			vNext = s.pq.extractMin()
			if err := s.spliceMergeVertices(s.mesh.VertexEdge(v), s.mesh.VertexEdge(vNext)); err != nil {
				return err
			}
		}
		if err := s.sweepEvent(v); err != nil {
			return err
		}
	}

	if err := s.doneEdgeDict(); err != nil {
		return err
	}
	s.pq = nil

	if err := s.removeDegenerateFaces(); err != nil {
		return err
	}
	if debugAssertions {
		if err := s.mesh.Check(); err != nil {
			panic(err)
		}
	}
	s.log.Debug("tess: sweep done",
		"vertices", s.mesh.numVertices,
		"edges", s.mesh.numEdges)
	return nil
}
