package tess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cmpPoint lets cmp look inside the unexported point type.
var cmpPoint = cmp.AllowUnexported(point{})

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func square(x, y, size float64) []Vertex {
	return []Vertex{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	}
}

// computeInterior tessellates contours and fails the test on error.
func computeInterior(t *testing.T, rule WindingRule, contours ...[]Vertex) *Mesh {
	t.Helper()
	tr := NewTesselator(WithWindingRule(rule))
	for _, c := range contours {
		if err := tr.AddContour(c); err != nil {
			t.Fatal(err)
		}
	}
	m, err := tr.ComputeInterior()
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	return m
}

func insideFaces(m *Mesh) []FaceID {
	var fs []FaceID
	for _, f := range m.Faces() {
		if m.FaceInside(f) {
			fs = append(fs, f)
		}
	}
	return fs
}

// faceBoundary returns the vertices of f in Lnext order, starting from the
// smallest one in sweep order.
func faceBoundary(m *Mesh, f FaceID) []Vertex {
	var vs []Vertex
	start := 0
	eStart := m.FaceEdge(f)
	e := eStart
	for {
		x, y := m.Coords(m.Org(e))
		vs = append(vs, Vertex{X: x, Y: y})
		if last := vs[len(vs)-1]; last.X < vs[start].X || (last.X == vs[start].X && last.Y < vs[start].Y) {
			start = len(vs) - 1
		}
		e = m.Lnext(e)
		if e == eStart {
			break
		}
	}
	return append(vs[start:], vs[:start]...)
}

// polygonArea returns the signed shoelace area of vs.
func polygonArea(vs []Vertex) float64 {
	var a float64
	for i := range vs {
		j := (i + 1) % len(vs)
		a += vs[i].X*vs[j].Y - vs[j].X*vs[i].Y
	}
	return a / 2
}

// elementsArea sums the signed areas of Polygons output.
func elementsArea(elements []int, vertices []Vertex, polySize int) float64 {
	var a float64
	for i := 0; i+polySize <= len(elements); i += polySize {
		var poly []Vertex
		for _, idx := range elements[i : i+polySize] {
			if idx < 0 {
				break
			}
			poly = append(poly, vertices[idx])
		}
		a += polygonArea(poly)
	}
	return a
}
