package tess

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestComputeInteriorSquare(t *testing.T) {
	m := computeInterior(t, WindingNonZero, square(0, 0, 1))

	diff(t, 4, len(m.Vertices()))
	diff(t, 4, len(m.Edges()))
	fs := insideFaces(m)
	if len(fs) != 1 {
		t.Fatalf("got %d inside faces, want 1", len(fs))
	}
	diff(t, 1, m.FaceWinding(fs[0]))
	diff(t, square(0, 0, 1), faceBoundary(m, fs[0]))

	for _, f := range m.Faces() {
		if f != fs[0] {
			diff(t, 0, m.FaceWinding(f))
		}
	}
}

func TestComputeInteriorClockwise(t *testing.T) {
	cw := square(0, 0, 1)
	slices.Reverse(cw)

	m := computeInterior(t, WindingNegative, cw)
	fs := insideFaces(m)
	if len(fs) != 1 {
		t.Fatalf("got %d inside faces, want 1", len(fs))
	}
	diff(t, -1, m.FaceWinding(fs[0]))

	m = computeInterior(t, WindingPositive, cw)
	diff(t, 0, len(insideFaces(m)))
}

func TestComputeInteriorDuplicateContour(t *testing.T) {
	m := computeInterior(t, WindingNonZero, square(0, 0, 1), square(0, 0, 1))

	diff(t, 4, len(m.Vertices()))
	fs := insideFaces(m)
	if len(fs) != 1 {
		t.Fatalf("got %d inside faces, want 1", len(fs))
	}
	diff(t, 2, m.FaceWinding(fs[0]))
	diff(t, 4, m.CountFaceVerts(fs[0]))

	m = computeInterior(t, WindingOdd, square(0, 0, 1), square(0, 0, 1))
	diff(t, 0, len(insideFaces(m)))

	m = computeInterior(t, WindingAbsGeqTwo, square(0, 0, 1), square(0, 0, 1))
	diff(t, 1, len(insideFaces(m)))
}

func TestComputeInteriorSharedEdge(t *testing.T) {
	m := computeInterior(t, WindingNonZero, square(0, 0, 1), square(1, 0, 1))

	diff(t, 6, len(m.Vertices()))
	shared := 0
	for _, e := range m.Edges() {
		x0, _ := m.Coords(m.Org(e))
		x1, _ := m.Coords(m.Dst(e))
		if x0 == 1 && x1 == 1 {
			shared++
			diff(t, 0, m.Winding(e))
			diff(t, 0, m.Winding(e.Sym()))
		}
	}
	diff(t, 1, shared)

	fs := insideFaces(m)
	diff(t, 2, len(fs))
	for _, f := range fs {
		diff(t, 1, m.FaceWinding(f))
	}
}

func TestComputeInteriorBowtie(t *testing.T) {
	bowtie := []Vertex{{0, 0}, {2, 2}, {2, 0}, {0, 2}}

	type call struct {
		x, y    float64
		data    [4]ClientID
		weights [4]float64
	}
	var calls []call
	combine := func(x, y float64, data [4]ClientID, weights [4]float64) ClientID {
		calls = append(calls, call{x, y, data, weights})
		return 100
	}

	tr := NewTesselator(WithWindingRule(WindingNonZero), WithCombine(combine))
	if err := tr.AddContour(bowtie); err != nil {
		t.Fatal(err)
	}
	m, err := tr.ComputeInterior()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}

	diff(t, 5, len(m.Vertices()))
	if len(calls) != 1 {
		t.Fatalf("combine called %d times, want 1", len(calls))
	}
	c := calls[0]
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, [2]float64{1, 1}, [2]float64{c.x, c.y}, approx)
	ids := c.data[:]
	slices.Sort(ids)
	diff(t, []ClientID{0, 1, 2, 3}, ids)
	diff(t, [4]float64{0.25, 0.25, 0.25, 0.25}, c.weights, approx)

	var windings []int
	for _, f := range insideFaces(m) {
		windings = append(windings, m.FaceWinding(f))
		diff(t, 3, m.CountFaceVerts(f))
	}
	slices.Sort(windings)
	diff(t, []int{-1, 1}, windings)

	found := false
	for _, v := range m.Vertices() {
		if m.Client(v) == 100 {
			found = true
			x, y := m.Coords(v)
			diff(t, [2]float64{1, 1}, [2]float64{x, y}, approx)
		}
	}
	if !found {
		t.Error("intersection vertex does not carry the combined id")
	}
}

func TestComputeInteriorBowtieWithoutCombine(t *testing.T) {
	m := computeInterior(t, WindingPositive, []Vertex{{0, 0}, {2, 2}, {2, 0}, {0, 2}})
	diff(t, 1, len(insideFaces(m)))

	n := 0
	for _, v := range m.Vertices() {
		if m.Client(v) == NoClient {
			n++
		}
	}
	diff(t, 1, n)
}

func TestComputeInteriorIdempotent(t *testing.T) {
	m := computeInterior(t, WindingNonZero, []Vertex{{0, 0}, {3, -1}, {5, 1}, {2, 4}})
	fs := insideFaces(m)
	if len(fs) != 1 {
		t.Fatalf("got %d inside faces, want 1", len(fs))
	}
	first := faceBoundary(m, fs[0])

	m = computeInterior(t, WindingNonZero, first)
	diff(t, len(first), len(m.Vertices()))
	fs = insideFaces(m)
	if len(fs) != 1 {
		t.Fatalf("got %d inside faces, want 1", len(fs))
	}
	diff(t, first, faceBoundary(m, fs[0]))
}

func TestComputeInteriorDegenerate(t *testing.T) {
	// Two-point contours and zero-length edges disappear.
	m := computeInterior(t, WindingNonZero,
		[]Vertex{{0, 0}, {1, 1}},
		[]Vertex{{5, 5}},
		[]Vertex{{0, 0}, {1, 0}, {1, 0}, {1, 1}, {0, 1}},
	)
	diff(t, 4, len(m.Vertices()))
	fs := insideFaces(m)
	if len(fs) != 1 {
		t.Fatalf("got %d inside faces, want 1", len(fs))
	}
	diff(t, square(0, 0, 1), faceBoundary(m, fs[0]))
}

func TestComputeInteriorNoSentinels(t *testing.T) {
	m := computeInterior(t, WindingNonZero, square(0, 0, 1))
	for _, v := range m.Vertices() {
		x, y := m.Coords(v)
		if x > MaxCoord || x < -MaxCoord || y > MaxCoord || y < -MaxCoord {
			t.Errorf("sentinel vertex (%g, %g) left in the mesh", x, y)
		}
	}
}

func vertexDegree(m *Mesh, v VertexID) int {
	n := 0
	eStart := m.VertexEdge(v)
	e := eStart
	for {
		n++
		e = m.Onext(e)
		if e == eStart {
			break
		}
	}
	return n
}

func TestComputeInteriorVertexOnEdge(t *testing.T) {
	// The left vertex of the triangle lies on the bottom edge of the square.
	tri := []Vertex{{X: 1, Y: 0}, {X: 3, Y: -1}, {X: 3, Y: -0.5}}
	m := computeInterior(t, WindingNonZero, square(0, 0, 2), tri)

	diff(t, 7, len(m.Vertices()))

	// The vertex is merged into the edge: it keeps its two triangle edges and
	// gains the two halves of the split edge, nothing else.
	var tip VertexID = NoVertex
	for _, v := range m.Vertices() {
		if x, y := m.Coords(v); x == 1 && y == 0 {
			tip = v
		}
	}
	if tip == NoVertex {
		t.Fatal("vertex (1, 0) not found")
	}
	diff(t, 4, vertexDegree(m, tip))

	fs := insideFaces(m)
	if len(fs) != 2 {
		t.Fatalf("got %d inside faces, want 2", len(fs))
	}
	var got [][]Vertex
	for _, f := range fs {
		diff(t, 1, m.FaceWinding(f))
		got = append(got, faceBoundary(m, f))
	}
	slices.SortFunc(got, func(a, b []Vertex) int { return len(a) - len(b) })
	want := [][]Vertex{
		tri,
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}},
	}
	diff(t, want, got)
}

// randomContours returns up to three contours of three to six vertices. On
// a grid, vertices often coincide and edges overlap or touch.
func randomContours(r *rand.Rand, grid bool) [][]Vertex {
	coord := func() float64 {
		if grid {
			return float64(r.IntN(5))
		}
		return r.Float64() * 4
	}
	cs := make([][]Vertex, 1+r.IntN(3))
	for i := range cs {
		c := make([]Vertex, 3+r.IntN(4))
		for j := range c {
			c[j] = Vertex{X: coord(), Y: coord()}
		}
		cs[i] = c
	}
	return cs
}

func TestComputeInteriorRandomWindings(t *testing.T) {
	rules := []WindingRule{WindingOdd, WindingNonZero, WindingPositive, WindingNegative, WindingAbsGeqTwo}
	for seed := range uint64(400) {
		r := rand.New(rand.NewPCG(seed, 1))
		rule := rules[seed%uint64(len(rules))]
		cs := randomContours(r, seed%2 == 0)
		m := computeInterior(t, rule, cs...)

		// Crossing an edge from right to left changes the winding number by
		// the winding of the edge, whatever path is taken.
		for _, e := range m.Edges() {
			lw, rw := m.FaceWinding(m.Lface(e)), m.FaceWinding(m.Rface(e))
			if lw != rw+m.Winding(e) {
				t.Errorf("seed %d: edge %d: left winding %d, right winding %d, edge winding %d: %v", seed, e, lw, rw, m.Winding(e), cs)
			}
		}
		for _, f := range m.Faces() {
			if m.FaceInside(f) != rule(m.FaceWinding(f)) {
				t.Errorf("seed %d: face %d: inside %v with winding %d: %v", seed, f, m.FaceInside(f), m.FaceWinding(f), cs)
			}
			if n := m.CountFaceVerts(f); n < 3 {
				t.Errorf("seed %d: face %d has %d vertices: %v", seed, f, n, cs)
			}
		}
	}
}

func TestComputeInteriorResourceLimit(t *testing.T) {
	// The sentinels need four vertices of their own.
	tr := NewTesselator(WithMaxVertices(4))
	if err := tr.AddContour(square(0, 0, 1)); err != nil {
		t.Fatal(err)
	}
	m, err := tr.ComputeInterior()
	if !errors.Is(err, ErrResourceExhausted) {
		t.Errorf("got %v, want %v", err, ErrResourceExhausted)
	}
	if m != nil {
		t.Error("got a mesh after failure")
	}

	tr = NewTesselator(WithMaxEdges(3))
	if err := tr.AddContour(square(0, 0, 1)); !errors.Is(err, ErrResourceExhausted) {
		t.Errorf("got %v, want %v", err, ErrResourceExhausted)
	}
}

func TestSweepDebugLog(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	computeInterior(t, WindingNonZero, []Vertex{{0, 0}, {2, 2}, {2, 0}, {0, 2}})
	out := buf.String()
	for _, msg := range []string{"tess: edge intersection", "tess: sweep done"} {
		if !strings.Contains(out, msg) {
			t.Errorf("log does not contain %q:\n%s", msg, out)
		}
	}
}
