//go:build example

package main

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hajimehoshi/go-tess"
)

const (
	screenWidth  = 640
	screenHeight = 480
	scale        = 120
)

var star = []tess.Vertex{
	{X: 0.0, Y: 3.0},
	{X: -1.0, Y: 0.0},
	{X: 1.6, Y: 1.9},
	{X: -1.6, Y: 1.9},
	{X: 1.0, Y: 0.0},
}

var rules = []struct {
	name string
	rule tess.WindingRule
}{
	{"odd", tess.WindingOdd},
	{"nonzero", tess.WindingNonZero},
	{"positive", tess.WindingPositive},
	{"abs_geq_two", tess.WindingAbsGeqTwo},
}

var whiteImage *ebiten.Image

func init() {
	whiteImage = ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)
}

type Game struct {
	rule     int
	vertices []ebiten.Vertex
	indices  []uint32
}

func (g *Game) tesselate() error {
	t := tess.NewTesselator(tess.WithWindingRule(rules[g.rule].rule))
	if err := t.AddContour(star); err != nil {
		return err
	}
	e, v, err := t.Tesselate()
	if err != nil {
		return err
	}

	g.vertices = g.vertices[:0]
	g.indices = g.indices[:0]
	// Unshared vertices so that every triangle gets its own color.
	for i := 0; i+3 <= len(e); i += 3 {
		r, gr, b := triangleColor(i / 3)
		for _, idx := range e[i : i+3] {
			g.indices = append(g.indices, uint32(len(g.vertices)))
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX:   float32(screenWidth/2 + v[idx].X*scale),
				DstY:   float32(screenHeight - 60 - v[idx].Y*scale),
				SrcX:   1,
				SrcY:   1,
				ColorR: r,
				ColorG: gr,
				ColorB: b,
				ColorA: 1,
			})
		}
	}
	return nil
}

func triangleColor(i int) (float32, float32, float32) {
	cs := [][3]float32{
		{0.90, 0.29, 0.10},
		{0.26, 0.63, 0.28},
		{0.12, 0.53, 0.90},
		{0.99, 0.85, 0.21},
		{0.56, 0.14, 0.67},
	}
	c := cs[i%len(cs)]
	return c[0], c[1], c[2]
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.rule = (g.rule + 1) % len(rules)
		if err := g.tesselate(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	src := whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	screen.DrawTriangles32(g.vertices, g.indices, src, &ebiten.DrawTrianglesOptions{})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("rule: %s (space to change)\ntriangles: %d",
		rules[g.rule].name, len(g.indices)/3))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	g := &Game{}
	if err := g.tesselate(); err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tess")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
