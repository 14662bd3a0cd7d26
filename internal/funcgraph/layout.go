// Package funcgraph renders the functional graph of an endofunction as a
// chart: nodes on a circle, one directed edge per mapping.
//
// Geometry is done in the complex plane — node positions are roots of unity
// scaled to the layout radius, and node sizing projects a point onto the
// chord between its neighbors to stay clear of adjacent edges.
package funcgraph

import (
	"math"
	"math/cmplx"
)

// defaultSafetyMargin keeps node circles from touching adjacent chords.
const defaultSafetyMargin = 1.5

// CirclePoints returns n points evenly spaced on the circle of radius r
// centered at the origin, starting at r+0i and walking counterclockwise.
func CirclePoints(n int, r float64) []complex128 {
	if n <= 0 {
		return nil
	}

	w := cmplx.Exp(complex(0, 2*math.Pi/float64(n)))
	points := make([]complex128, n)

	p := complex(r, 0)
	for i := range points {
		points[i] = p
		p *= w
	}

	return points
}

// NodeRadius returns a radius for a node at p that keeps it clear of the
// chord through p1 and p2 and of p1 itself: the smaller of the two
// distances, shrunk by the safety margin.
func NodeRadius(p, p1, p2 complex128, safetyMargin float64) float64 {
	if safetyMargin <= 0 {
		safetyMargin = defaultSafetyMargin
	}

	side := distanceToLine(p, p1, p2)
	vertical := cmplx.Abs(p1 - p)

	return math.Min(side, vertical) / safetyMargin
}

// distanceToLine returns the distance from p to the line through a and b.
func distanceToLine(p, a, b complex128) float64 {
	d := b - a
	dd := real(d)*real(d) + imag(d)*imag(d)

	if dd == 0 {
		return cmplx.Abs(p - a)
	}

	v := p - a
	t := (real(v)*real(d) + imag(v)*imag(d)) / dd
	proj := a + complex(t, 0)*d

	return cmplx.Abs(proj - p)
}

// layoutRadius returns the node radius for a circular layout of n points on
// the unit circle.
func layoutRadius(points []complex128) float64 {
	if len(points) < 3 {
		return defaultLoneNodeRadius
	}

	return NodeRadius(points[1], points[0], points[2], defaultSafetyMargin)
}

// defaultLoneNodeRadius sizes nodes when the layout is too small for the
// chord construction.
const defaultLoneNodeRadius = 0.25
