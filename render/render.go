package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/paraxial/optics"
	"github.com/katalvlaran/paraxial/scene"
	"github.com/katalvlaran/paraxial/tracer"
)

// ErrBadSize indicates non-positive image dimensions.
var ErrBadSize = errors.New("render: image width and height must be > 0")

// Palette is the ray color cycle.
var Palette = []color.RGBA{
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff}, // red
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff}, // green
	{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff}, // cyan
	{R: 0xc0, G: 0x3c, B: 0xc0, A: 0xff}, // magenta
}

var (
	axisColor    = color.RGBA{A: 0xff}
	lensColor    = color.RGBA{B: 0xff, A: 0xff}
	mirrorColor  = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	genericColor = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
)

// Options controls the diagram geometry.
type Options struct {
	Width, Height int

	// Radius is the half-height of element symbols, in scene units.
	Radius float64

	// Margin is the fraction of the data span added on each side.
	Margin float64
}

// DefaultOptions returns a 1200×600 image, 20-unit symbols and 5% margins.
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 600, Radius: 20, Margin: 0.05}
}

// Render draws s and its traced paths onto a new RGBA image.
// Returns ErrBadSize if opts.Width or opts.Height is not positive.
func Render(s *scene.Scene, paths []tracer.Path, opts Options) (*image.RGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("Render(%dx%d): %w", opts.Width, opts.Height, ErrBadSize)
	}
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	var elems []scene.ElementEntry
	if s != nil {
		elems = s.Elements()
	}
	v := fit(elems, paths, opts)

	// optical axis, dashed
	y0 := v.py(0)
	for x := 0; x < opts.Width; x++ {
		if (x/8)%2 == 0 {
			img.Set(x, y0, axisColor)
		}
	}

	for _, e := range elems {
		x := v.px(e.Position)
		switch e.Element.Kind() {
		case optics.KindThinLens:
			top, bot := v.py(opts.Radius), v.py(-opts.Radius)
			thickLine(img, x, top, x, bot, lensColor)
			arrowHead(img, x, top, 1, lensColor)
			arrowHead(img, x, bot, -1, lensColor)
		case optics.KindFlatMirror:
			top, bot := v.py(opts.Radius), v.py(-opts.Radius)
			for dx := -2; dx <= 2; dx++ {
				line(img, x+dx, top, x+dx, bot, mirrorColor)
			}
		case optics.KindGeneric:
			line(img, x, v.py(opts.Radius/2), x, v.py(-opts.Radius/2), genericColor)
		case optics.KindFreeSpace:
		}
	}

	for i, p := range paths {
		c := Palette[i%len(Palette)]
		pts := p.Points()
		for j := 1; j < len(pts); j++ {
			if !finite(pts[j-1]) || !finite(pts[j]) {
				continue
			}
			thickLine(img,
				v.px(pts[j-1][0]), v.py(pts[j-1][1]),
				v.px(pts[j][0]), v.py(pts[j][1]), c)
		}
	}

	return img, nil
}

// WritePNG encodes img to w.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SaveFile renders s and writes the PNG to path.
func SaveFile(path string, s *scene.Scene, paths []tracer.Path, opts Options) error {
	img, err := Render(s, paths, opts)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err = WritePNG(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("SaveFile: %w", err)
	}

	return f.Close()
}

// viewport maps scene coordinates to pixels.
type viewport struct {
	xmin, xmax, ymin, ymax float64
	w, h                   int
}

func (v viewport) px(z float64) int {
	return int(math.Round((z - v.xmin) / (v.xmax - v.xmin) * float64(v.w-1)))
}

func (v viewport) py(y float64) int {
	return int(math.Round((v.ymax - y) / (v.ymax - v.ymin) * float64(v.h-1)))
}

// fit computes the data bounds of elements and paths, padded by Margin.
// Non-finite samples are skipped.
func fit(elems []scene.ElementEntry, paths []tracer.Path, opts Options) viewport {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := 0.0, 0.0
	grow := func(x, y float64) {
		if !finite([2]float64{x, y}) {
			return
		}
		xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
	}
	for _, e := range elems {
		r := 0.0
		if e.Element.Kind() != optics.KindFreeSpace {
			r = opts.Radius
		}
		grow(e.Position, r)
		grow(e.Position, -r)
		grow(e.Position+e.Element.Advance(), 0)
	}
	for _, p := range paths {
		for _, pt := range p.Points() {
			grow(pt[0], pt[1])
		}
	}
	if math.IsInf(xmin, 1) {
		xmin, xmax = 0, 1
	}
	if xmax == xmin {
		xmin, xmax = xmin-0.5, xmax+0.5
	}
	if ymax == ymin {
		ymin, ymax = ymin-0.5, ymax+0.5
	}
	dx, dy := (xmax-xmin)*opts.Margin, (ymax-ymin)*opts.Margin

	return viewport{
		xmin: xmin - dx, xmax: xmax + dx,
		ymin: ymin - dy, ymax: ymax + dy,
		w: opts.Width, h: opts.Height,
	}
}

func finite(pt [2]float64) bool {
	for _, v := range pt {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
