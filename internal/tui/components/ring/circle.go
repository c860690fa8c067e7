package ring

import (
	drawille "github.com/exrook/drawille-go"
)

// drawCircle draws a ring of the given thickness (in dots) inward from
// radius, one midpoint circle per dot of thickness.
// see: https://en.wikipedia.org/wiki/Midpoint_circle_algorithm
func drawCircle(canvas *drawille.Canvas, cx, cy, radius, thickness int) {
	for t := range thickness {
		r := radius - t
		if r <= 0 {
			continue
		}
		midpointCircle(canvas, cx, cy, r)
	}
}

func midpointCircle(canvas *drawille.Canvas, cx, cy, radius int) {
	x := radius
	y := 0
	d := 1 - radius

	for x >= y {
		plotOctants(canvas, cx, cy, x, y)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func plotOctants(canvas *drawille.Canvas, cx, cy, x, y int) {
	canvas.Set(cx+x, cy-y)
	canvas.Set(cx+y, cy-x)
	canvas.Set(cx-y, cy-x)
	canvas.Set(cx-x, cy-y)
	canvas.Set(cx-x, cy+y)
	canvas.Set(cx-y, cy+x)
	canvas.Set(cx+y, cy+x)
	canvas.Set(cx+x, cy+y)
}
