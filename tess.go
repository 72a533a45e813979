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

// Package tess tessellates planar polygons with a Bentley-Ottmann style
// sweep line. Contours may self-intersect and overlap; every crossing is
// resolved and each resulting face is classified by a winding rule.
package tess

import (
	"fmt"
	"log/slog"
	"math"
)

// Vertex is a point of an input contour or of the output.
type Vertex struct {
	X float64
	Y float64
}

// ClientID identifies an input vertex. AddContour numbers vertices
// sequentially from 0 across all contours.
type ClientID int32

// NoClient marks a vertex without a client id.
const NoClient ClientID = -1

// WindingRule reports whether a face with the given winding number is
// inside. A rule must classify 0 as outside.
type WindingRule func(winding int) bool

// WindingOdd classifies faces with an odd winding number as inside.
func WindingOdd(n int) bool { return n&1 != 0 }

// WindingNonZero classifies faces with a nonzero winding number as inside.
func WindingNonZero(n int) bool { return n != 0 }

// WindingPositive classifies faces with a positive winding number as inside.
func WindingPositive(n int) bool { return n > 0 }

// WindingNegative classifies faces with a negative winding number as inside.
func WindingNegative(n int) bool { return n < 0 }

// WindingAbsGeqTwo classifies faces with |winding| >= 2 as inside.
func WindingAbsGeqTwo(n int) bool { return n >= 2 || n <= -2 }

// CombineFunc returns the client id for a vertex created where two edges
// cross at (x, y). data holds the ids of the origin and destination of the
// upper edge followed by those of the lower edge, and weights their
// contribution to the new vertex; the weights sum to 1.
type CombineFunc func(x, y float64, data [4]ClientID, weights [4]float64) ClientID

// ElementType selects the output of Tesselate.
type ElementType int

const (
	// Polygons outputs convex polygons of at most polySize vertices. Each
	// polygon takes polySize elements, padded with -1.
	Polygons ElementType = iota

	// BoundaryContours outputs the boundaries between inside and outside
	// as (start, count) pairs into the vertex slice.
	BoundaryContours
)

func (t ElementType) String() string {
	switch t {
	case Polygons:
		return "Polygons"
	case BoundaryContours:
		return "BoundaryContours"
	}
	return fmt.Sprintf("ElementType(%d)", int(t))
}

// Tesselator collects contours and tessellates them once. It is not safe
// for concurrent use.
type Tesselator struct {
	opts       options
	mesh       *Mesh
	nextClient ClientID
	consumed   bool
	clients    []ClientID
}

// NewTesselator creates a Tesselator configured by opts.
func NewTesselator(opts ...Option) *Tesselator {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tesselator{
		opts: o,
	}
}

func clampCoord(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return max(-MaxCoord, min(x, MaxCoord))
}

// AddContour adds a closed contour. The last vertex connects back to the
// first. Contours with fewer than three distinct vertices are accepted and
// removed as degenerate during the sweep.
//
// If a mesh limit is hit, the partial input is dropped and the Tesselator
// cannot be used any more.
func (t *Tesselator) AddContour(contour []Vertex) error {
	if t.consumed {
		return ErrConsumed
	}
	if err := t.addContour(contour); err != nil {
		t.consumed = true
		t.mesh = nil
		return err
	}
	return nil
}

func (t *Tesselator) addContour(contour []Vertex) error {
	if t.mesh == nil {
		t.mesh = NewMesh(t.opts.maxVertices, t.opts.maxEdges)
	}
	m := t.mesh

	e := NoEdge
	for _, v := range contour {
		if e == NoEdge {
			// Make a self-loop (one vertex, one edge).
			var err error
			e, err = m.MakeEdge()
			if err != nil {
				return err
			}
			if err := m.Splice(e, e.Sym()); err != nil {
				return err
			}
		} else {
			// Create a new vertex and edge which immediately follow e in
			// the ordering around the left face.
			if _, err := m.SplitEdge(e); err != nil {
				return err
			}
			e = m.Lnext(e)
		}

		org := m.Org(e)
		m.setCoords(org, point{s: clampCoord(v.X), t: clampCoord(v.Y)})
		m.verts[org].client = t.nextClient
		t.nextClient++

		// The winding of an edge says how the winding number changes as
		// we cross from its right face to its left face. Contours are
		// oriented so that the left face is the interior.
		m.edges[e].winding = 1
		m.edges[e.Sym()].winding = -1
	}
	return nil
}

// ComputeInterior runs the sweep over all added contours and returns the
// resulting mesh. Every face is monotone and marked inside or outside by
// the winding rule; FaceWinding reports its winding number.
//
// The mesh is handed over to the caller and the Tesselator cannot be used
// afterwards. On error no mesh is returned.
func (t *Tesselator) ComputeInterior() (*Mesh, error) {
	if t.consumed {
		return nil, ErrConsumed
	}
	if t.mesh == nil {
		return nil, ErrNoContours
	}
	t.consumed = true
	m := t.mesh
	t.mesh = nil

	s := &sweeper{
		mesh:          m,
		rule:          t.opts.rule,
		combine:       t.opts.combine,
		log:           Logger(),
		extraVertices: t.opts.extraVertices,
	}
	if err := s.computeInterior(); err != nil {
		return nil, err
	}
	return m, nil
}

// Tesselate computes the interior and returns it in the configured
// element type. For Polygons, elements holds polySize vertex indices per
// polygon; for BoundaryContours it holds (start, count) pairs.
func (t *Tesselator) Tesselate() ([]int, []Vertex, error) {
	m, err := t.ComputeInterior()
	if err != nil {
		return nil, nil, err
	}

	if t.opts.elementType == BoundaryContours {
		// Throw away all edges except those separating the interior from
		// the exterior.
		if err := m.SetWindingNumber(1, true); err != nil {
			return nil, nil, err
		}
	} else {
		if err := m.TessellateInterior(); err != nil {
			return nil, nil, err
		}
		if t.opts.polySize > 3 {
			if err := m.MergeConvexFaces(t.opts.polySize); err != nil {
				return nil, nil, err
			}
		}
	}
	if debugAssertions {
		if err := m.Check(); err != nil {
			panic(err)
		}
	}

	var elements []int
	var vertices []Vertex
	if t.opts.elementType == BoundaryContours {
		elements, vertices, t.clients = outputContours(m)
	} else {
		elements, vertices, t.clients = outputPolygons(m, t.opts.polySize)
	}
	Logger().Debug("tess: tesselated",
		slog.String("type", t.opts.elementType.String()),
		slog.Int("vertices", len(vertices)),
		slog.Int("elements", len(elements)))
	return elements, vertices, nil
}

// VertexClients returns, for each vertex output by the last Tesselate
// call, its client id, or NoClient for vertices created at intersections
// without a combine callback.
func (t *Tesselator) VertexClients() []ClientID {
	return t.clients
}

func outputPolygons(m *Mesh, polySize int) ([]int, []Vertex, []ClientID) {
	index := make(map[VertexID]int)
	var vertices []Vertex
	var clients []ClientID
	var elements []int

	for f := m.faces[fHead].next; f != fHead; f = m.faces[f].next {
		if !m.faces[f].inside {
			continue
		}
		n := 0
		eStart := m.faces[f].anEdge
		e := eStart
		for {
			v := m.Org(e)
			i, ok := index[v]
			if !ok {
				i = len(vertices)
				index[v] = i
				x, y := m.Coords(v)
				vertices = append(vertices, Vertex{X: x, Y: y})
				clients = append(clients, m.Client(v))
			}
			elements = append(elements, i)
			n++
			e = m.Lnext(e)
			if e == eStart {
				break
			}
		}
		assert(n <= polySize, "polygon larger than polySize")
		for ; n < polySize; n++ {
			elements = append(elements, -1)
		}
	}
	return elements, vertices, clients
}

func outputContours(m *Mesh) ([]int, []Vertex, []ClientID) {
	var vertices []Vertex
	var clients []ClientID
	var elements []int

	for f := m.faces[fHead].next; f != fHead; f = m.faces[f].next {
		if !m.faces[f].inside {
			continue
		}
		start := len(vertices)
		eStart := m.faces[f].anEdge
		e := eStart
		for {
			v := m.Org(e)
			x, y := m.Coords(v)
			vertices = append(vertices, Vertex{X: x, Y: y})
			clients = append(clients, m.Client(v))
			e = m.Lnext(e)
			if e == eStart {
				break
			}
		}
		elements = append(elements, start, len(vertices)-start)
	}
	return elements, vertices, clients
}
