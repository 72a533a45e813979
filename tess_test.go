package tess_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/hajimehoshi/go-tess"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func area(elements []int, vertices []tess.Vertex, polySize int) float64 {
	var a float64
	for i := 0; i+polySize <= len(elements); i += polySize {
		var poly []tess.Vertex
		for _, idx := range elements[i : i+polySize] {
			if idx < 0 {
				break
			}
			poly = append(poly, vertices[idx])
		}
		for j := range poly {
			k := (j + 1) % len(poly)
			a += (poly[j].X*poly[k].Y - poly[k].X*poly[j].Y) / 2
		}
	}
	return a
}

func ExampleTesselator_Tesselate() {
	contour := []tess.Vertex{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 2},
	}
	t := tess.NewTesselator()
	if err := t.AddContour(contour); err != nil {
		panic(err)
	}
	e, v, err := t.Tesselate()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d triangles, %d vertices, area %.1f\n", len(e)/3, len(v), area(e, v, 3))
	// Output:
	// 2 triangles, 4 vertices, area 4.0
}

func ExampleWithElementType() {
	t := tess.NewTesselator(
		tess.WithWindingRule(tess.WindingNonZero),
		tess.WithElementType(tess.BoundaryContours),
	)
	// Two overlapping squares.
	for _, c := range [][]tess.Vertex{
		{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}},
		{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}},
	} {
		if err := t.AddContour(c); err != nil {
			panic(err)
		}
	}
	e, _, err := t.Tesselate()
	if err != nil {
		panic(err)
	}
	for i := 0; i < len(e); i += 2 {
		fmt.Printf("contour of %d vertices\n", e[i+1])
	}
	// Output:
	// contour of 8 vertices
}

func TestWindingRules(t *testing.T) {
	tests := []struct {
		name string
		rule tess.WindingRule
		want []bool // for -2..2
	}{
		{"odd", tess.WindingOdd, []bool{false, true, false, true, false}},
		{"nonzero", tess.WindingNonZero, []bool{true, true, false, true, true}},
		{"positive", tess.WindingPositive, []bool{false, false, false, true, true}},
		{"negative", tess.WindingNegative, []bool{true, true, false, false, false}},
		{"abs_geq_two", tess.WindingAbsGeqTwo, []bool{true, false, false, false, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []bool
			for n := -2; n <= 2; n++ {
				got = append(got, tt.rule(n))
			}
			diff(t, tt.want, got)
		})
	}
}

func TestTesselatePolygons(t *testing.T) {
	hexagon := make([]tess.Vertex, 6)
	for i := range hexagon {
		a := float64(i) * math.Pi / 3
		hexagon[i] = tess.Vertex{X: math.Cos(a), Y: math.Sin(a)}
	}
	want := 3 * math.Sqrt(3) / 2
	approx := cmpopts.EquateApprox(0, 1e-9)

	tr := tess.NewTesselator()
	if err := tr.AddContour(hexagon); err != nil {
		t.Fatal(err)
	}
	e, v, err := tr.Tesselate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 4*3, len(e))
	diff(t, 6, len(v))
	diff(t, want, area(e, v, 3), approx)

	// A large enough polySize merges everything back into one polygon.
	tr = tess.NewTesselator(tess.WithPolySize(8))
	if err := tr.AddContour(hexagon); err != nil {
		t.Fatal(err)
	}
	e, v, err = tr.Tesselate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 8, len(e))
	diff(t, []int{-1, -1}, e[6:])
	diff(t, want, area(e, v, 8), approx)
}

func TestTesselateVertexClients(t *testing.T) {
	tr := tess.NewTesselator()
	if err := tr.AddContour([]tess.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}); err != nil {
		t.Fatal(err)
	}
	if err := tr.AddContour([]tess.Vertex{{X: 5, Y: 0}, {X: 6, Y: 0}, {X: 5, Y: 1}}); err != nil {
		t.Fatal(err)
	}
	_, v, err := tr.Tesselate()
	if err != nil {
		t.Fatal(err)
	}
	ids := tr.VertexClients()
	diff(t, len(v), len(ids))

	byID := map[tess.ClientID]tess.Vertex{}
	for i, id := range ids {
		byID[id] = v[i]
	}
	want := map[tess.ClientID]tess.Vertex{
		0: {X: 0, Y: 0}, 1: {X: 1, Y: 0}, 2: {X: 0, Y: 1},
		3: {X: 5, Y: 0}, 4: {X: 6, Y: 0}, 5: {X: 5, Y: 1},
	}
	diff(t, want, byID)
}

func TestTesselateBoundaryContours(t *testing.T) {
	tr := tess.NewTesselator(tess.WithElementType(tess.BoundaryContours))
	if err := tr.AddContour([]tess.Vertex{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}); err != nil {
		t.Fatal(err)
	}
	// A hole, wound the other way.
	if err := tr.AddContour([]tess.Vertex{{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 1}}); err != nil {
		t.Fatal(err)
	}
	e, v, err := tr.Tesselate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 8, len(v))
	diff(t, 4, len(e))

	var total float64
	for i := 0; i < len(e); i += 2 {
		diff(t, 4, e[i+1])
		total += area([]int{0, 1, 2, 3}, v[e[i]:e[i]+e[i+1]], 4)
	}
	// The outer contour and the hole, both with the interior on the left.
	diff(t, 16.0-4.0, total)
}

func TestTesselateClamp(t *testing.T) {
	tr := tess.NewTesselator()
	if err := tr.AddContour([]tess.Vertex{{X: 0, Y: 0}, {X: 1e200, Y: 0}, {X: 0, Y: 1}}); err != nil {
		t.Fatal(err)
	}
	_, v, err := tr.Tesselate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 3, len(v))
	maxX := 0.0
	for _, p := range v {
		maxX = max(maxX, p.X)
	}
	diff(t, tess.MaxCoord, maxX)
}

func TestTesselateErrors(t *testing.T) {
	tr := tess.NewTesselator()
	if _, _, err := tr.Tesselate(); !errors.Is(err, tess.ErrNoContours) {
		t.Errorf("got %v, want %v", err, tess.ErrNoContours)
	}

	if err := tr.AddContour([]tess.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := tr.Tesselate(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := tr.Tesselate(); !errors.Is(err, tess.ErrConsumed) {
		t.Errorf("got %v, want %v", err, tess.ErrConsumed)
	}
	if err := tr.AddContour([]tess.Vertex{{X: 0, Y: 0}}); !errors.Is(err, tess.ErrConsumed) {
		t.Errorf("got %v, want %v", err, tess.ErrConsumed)
	}
}

func TestAddContourResourceLimit(t *testing.T) {
	// The first square takes four vertices; the second one needs two more
	// to start its loop.
	tr := tess.NewTesselator(tess.WithMaxVertices(5))
	square := []tess.Vertex{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	if err := tr.AddContour(square); err != nil {
		t.Fatal(err)
	}
	if err := tr.AddContour(square); !errors.Is(err, tess.ErrResourceExhausted) {
		t.Fatalf("got %v, want %v", err, tess.ErrResourceExhausted)
	}

	// A truncated input must not be tessellated.
	if _, _, err := tr.Tesselate(); !errors.Is(err, tess.ErrConsumed) {
		t.Errorf("got %v, want %v", err, tess.ErrConsumed)
	}
	if err := tr.AddContour(square); !errors.Is(err, tess.ErrConsumed) {
		t.Errorf("got %v, want %v", err, tess.ErrConsumed)
	}
}

func TestTesselateOnlyDegenerate(t *testing.T) {
	tr := tess.NewTesselator()
	if err := tr.AddContour([]tess.Vertex{{X: 0, Y: 0}, {X: 1, Y: 1}}); err != nil {
		t.Fatal(err)
	}
	e, v, err := tr.Tesselate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, 0, len(e))
	diff(t, 0, len(v))
}

func TestElementTypeString(t *testing.T) {
	diff(t, "Polygons", tess.Polygons.String())
	diff(t, "BoundaryContours", tess.BoundaryContours.String())
	diff(t, "ElementType(7)", tess.ElementType(7).String())
}
