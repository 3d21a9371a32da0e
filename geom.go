package poly1d

import (
	"fmt"
	"math"
)

// Point is a point in the plane.
type Point struct {
	X, Y float64
}

// Nearest is the result of NearestPoint.
type Nearest struct {
	// Point is (T, f(T)), the closest point on the curve.
	Point Point
	// T is the curve parameter of Point.
	T float64
	// Distance is the Euclidean distance from the query point to Point.
	Distance float64
}

// NearestPoint returns the point on the curve y = p(t) closest to pt.
//
// The squared distance D(t) = (pt.X - t)^2 + (pt.Y - p(t))^2 is built as a
// polynomial; the real roots of D'(t) are the candidates and the one with
// the smallest D wins.
//
// A repeated root of D'(t) comes back from the eigenvalue solver as a
// cluster of nearby values, some with small imaginary parts. T is then
// only accurate to roughly the cube root of machine precision (about 1e-5
// for a triple root). Distance is still accurate because D is flat there.
func (p *Poly) NearestPoint(pt Point) (Nearest, error) {
	t := X().WithVariable(p.variable)
	dx := ScalarSub(pt.X, t)
	dy := ScalarSub(pt.Y, p)
	dist := dx.Mul(dx).Add(dy.Mul(dy))

	slope, err := dist.Deriv(1)
	if err != nil {
		return Nearest{}, err
	}
	candidates, err := slope.RealRoots(Epsilon)
	if err != nil {
		return Nearest{}, err
	}
	if len(candidates) == 0 {
		return Nearest{}, fmt.Errorf("%w: distance derivative %s", ErrNoCriticalPoint, slope)
	}

	best, bestD := candidates[0], dist.Eval(candidates[0])
	for _, c := range candidates[1:] {
		if d := dist.Eval(c); d < bestD {
			best, bestD = c, d
		}
	}
	return Nearest{
		Point:    Point{X: best, Y: p.Eval(best)},
		T:        best,
		Distance: math.Sqrt(math.Max(bestD, 0)),
	}, nil
}
