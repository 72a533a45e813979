// Command tessraster tessellates polygon contours and renders the result to
// a PNG, one color per output polygon.
//
// The input is JSON, a list of contours each being a list of [x, y] pairs:
//
//	[[[0,0],[4,0],[4,4],[0,4]], [[1,1],[1,3],[3,3],[3,1]]]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/hajimehoshi/go-tess"
)

var rules = map[string]tess.WindingRule{
	"odd":         tess.WindingOdd,
	"nonzero":     tess.WindingNonZero,
	"positive":    tess.WindingPositive,
	"negative":    tess.WindingNegative,
	"abs_geq_two": tess.WindingAbsGeqTwo,
}

var palette = []color.RGBA{
	{0xe6, 0x4a, 0x19, 0xff},
	{0x43, 0xa0, 0x47, 0xff},
	{0x1e, 0x88, 0xe5, 0xff},
	{0xfd, 0xd8, 0x35, 0xff},
	{0x8e, 0x24, 0xaa, 0xff},
	{0x00, 0xac, 0xc1, 0xff},
}

func main() {
	var (
		in       = flag.String("in", "", "input JSON file (default stdin)")
		out      = flag.String("out", "out.png", "output PNG file")
		rule     = flag.String("rule", "odd", "winding rule: odd, nonzero, positive, negative, abs_geq_two")
		width    = flag.Int("width", 512, "image width")
		height   = flag.Int("height", 512, "image height")
		polySize = flag.Int("polysize", 3, "maximum vertices per output polygon")
		verbose  = flag.Bool("v", false, "log sweep diagnostics")
	)
	flag.Parse()

	if *verbose {
		tess.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	r, err := parseRule(*rule)
	if err != nil {
		log.Fatal(err)
	}

	src := io.Reader(os.Stdin)
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		src = f
	}
	contours, err := readContours(src)
	if err != nil {
		log.Fatalf("Failed to read contours: %v", err)
	}

	t := tess.NewTesselator(tess.WithWindingRule(r), tess.WithPolySize(*polySize))
	for _, c := range contours {
		if err := t.AddContour(c); err != nil {
			log.Fatal(err)
		}
	}
	elements, vertices, err := t.Tesselate()
	if err != nil {
		log.Fatalf("Failed to tesselate: %v", err)
	}

	img := render(elements, vertices, *polySize, *width, *height)

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		log.Fatalf("Failed to encode: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	log.Printf("%d contours, %d polygons, %d vertices saved to %s (%dx%d)\n",
		len(contours), len(elements)/max(*polySize, 3), len(vertices), *out, *width, *height)
}

func parseRule(name string) (tess.WindingRule, error) {
	r, ok := rules[name]
	if !ok {
		return nil, fmt.Errorf("tessraster: unknown winding rule %q", name)
	}
	return r, nil
}

func readContours(r io.Reader) ([][]tess.Vertex, error) {
	var raw [][][2]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, err
	}
	contours := make([][]tess.Vertex, 0, len(raw))
	for _, c := range raw {
		vs := make([]tess.Vertex, len(c))
		for i, p := range c {
			vs[i] = tess.Vertex{X: p[0], Y: p[1]}
		}
		contours = append(contours, vs)
	}
	return contours, nil
}

// transform maps tessellation coordinates into an image of size w x h,
// keeping the aspect ratio and flipping y so that it points up.
type transform struct {
	scale  float64
	dx, dy float64
	height float64
}

func fit(vertices []tess.Vertex, w, h int) transform {
	const margin = 8

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range vertices {
		minX = min(minX, v.X)
		minY = min(minY, v.Y)
		maxX = max(maxX, v.X)
		maxY = max(maxY, v.Y)
	}
	if len(vertices) == 0 || maxX == minX || maxY == minY {
		return transform{scale: 1, height: float64(h)}
	}
	sx := (float64(w) - 2*margin) / (maxX - minX)
	sy := (float64(h) - 2*margin) / (maxY - minY)
	s := min(sx, sy)
	return transform{
		scale:  s,
		dx:     margin - minX*s,
		dy:     margin - minY*s,
		height: float64(h),
	}
}

func (t transform) apply(v tess.Vertex) (float32, float32) {
	x := v.X*t.scale + t.dx
	y := t.height - (v.Y*t.scale + t.dy)
	return float32(x), float32(y)
}

// render fills each output polygon in its own color over a white
// background.
func render(elements []int, vertices []tess.Vertex, polySize, w, h int) *image.RGBA {
	polySize = max(polySize, 3)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)

	tr := fit(vertices, w, h)
	ras := vector.NewRasterizer(w, h)
	for i := 0; i+polySize <= len(elements); i += polySize {
		ras.Reset(w, h)
		for j, idx := range elements[i : i+polySize] {
			if idx < 0 {
				break
			}
			x, y := tr.apply(vertices[idx])
			if j == 0 {
				ras.MoveTo(x, y)
			} else {
				ras.LineTo(x, y)
			}
		}
		ras.ClosePath()
		c := palette[(i/polySize)%len(palette)]
		ras.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
	}
	return dst
}
