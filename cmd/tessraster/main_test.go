package main

import (
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hajimehoshi/go-tess"
)

func TestParseRule(t *testing.T) {
	for name := range rules {
		if _, err := parseRule(name); err != nil {
			t.Errorf("parseRule(%q): %v", name, err)
		}
	}
	if _, err := parseRule("even"); err == nil {
		t.Error("parseRule accepted an unknown rule")
	}
}

func TestReadContours(t *testing.T) {
	got, err := readContours(strings.NewReader(`[[[0,0],[1,0],[0,1]], [[5,5],[6,5.5]]]`))
	if err != nil {
		t.Fatal(err)
	}
	want := [][]tess.Vertex{
		{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		{{X: 5, Y: 5}, {X: 6, Y: 5.5}},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	if _, err := readContours(strings.NewReader(`{"not": "contours"}`)); err == nil {
		t.Error("readContours accepted an object")
	}
}

func TestRender(t *testing.T) {
	tr := tess.NewTesselator()
	if err := tr.AddContour([]tess.Vertex{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}); err != nil {
		t.Fatal(err)
	}
	elements, vertices, err := tr.Tesselate()
	if err != nil {
		t.Fatal(err)
	}

	img := render(elements, vertices, 3, 64, 64)
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	if c := img.RGBAAt(2, 2); c != white {
		t.Errorf("margin pixel = %v, want white", c)
	}
	// Away from the diagonal, every pixel inside the square is covered by
	// exactly one triangle.
	for _, p := range [][2]int{{16, 48}, {48, 16}} {
		c := img.RGBAAt(p[0], p[1])
		if c == white {
			t.Errorf("pixel %v not filled", p)
		}
	}
}
