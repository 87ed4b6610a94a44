package render

import (
	"image"
	"image/color"
)

// line draws a one-pixel Bresenham line; pixels outside img are clipped by Set.
func line(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// thickLine draws a three-pixel wide line.
func thickLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for d := -1; d <= 1; d++ {
		if abs(x1-x0) >= abs(y1-y0) {
			line(img, x0, y0+d, x1, y1+d, c)
		} else {
			line(img, x0+d, y0, x1+d, y1, c)
		}
	}
}

// arrowHead draws a filled triangle with its tip at (x, y), pointing up
// (dir = 1) or down (dir = -1).
func arrowHead(img *image.RGBA, x, y, dir int, c color.RGBA) {
	const size = 12
	for i := 0; i <= size; i++ {
		row := y + dir*i
		for dx := -i / 2; dx <= i/2; dx++ {
			img.SetRGBA(x+dx, row, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
