package poly1d

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// ============================================================
// Solvers
// ============================================================

// Roots returns all complex roots of p, with multiplicity, ordered by
// real part and then imaginary part. The zero polynomial and non-zero
// constants have no roots.
func (p *Poly) Roots() ([]complex128, error) {
	a := p.ascending()
	var roots []complex128
	switch p.Degree() {
	case 0:
		return nil, nil
	case 1:
		roots = []complex128{complex(-a[0]/a[1], 0)}
	case 2:
		roots = solveQuadratic(a[2], a[1], a[0])
	default:
		var err error
		roots, err = companionRoots(a)
		if err != nil {
			return nil, err
		}
	}
	slices.SortFunc(roots, func(x, y complex128) int {
		if c := cmp.Compare(real(x), real(y)); c != 0 {
			return c
		}
		return cmp.Compare(imag(x), imag(y))
	})
	return roots, nil
}

// solveQuadratic returns both roots of a*x^2 + b*x + c with a != 0.
func solveQuadratic(a, b, c float64) []complex128 {
	disc := b*b - 4*a*c
	if disc < 0 {
		re := -b / (2 * a)
		im := math.Sqrt(-disc) / (2 * a)
		return []complex128{complex(re, -im), complex(re, im)}
	}
	// Avoid cancellation between -b and sqrt(disc).
	q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
	if q == 0 {
		return []complex128{0, 0}
	}
	return []complex128{complex(q/a, 0), complex(c/q, 0)}
}

// companionRoots returns the eigenvalues of the companion matrix of the
// polynomial with coefficients a, lowest degree first.
func companionRoots(a []float64) ([]complex128, error) {
	n := len(a) - 1
	lead := a[n]
	c := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		if i > 0 {
			c.Set(i, i-1, 1)
		}
		c.Set(i, n-1, -a[i]/lead)
	}
	var eig mat.Eigen
	if !eig.Factorize(c, mat.EigenNone) {
		return nil, fmt.Errorf("%w: degree %d", ErrNoConvergence, n)
	}
	return eig.Values(nil), nil
}

// RealRoots returns the real parts of the roots whose imaginary part is
// smaller than eps in magnitude, in ascending order. eps <= 0 selects
// Epsilon.
func (p *Poly) RealRoots(eps float64) ([]float64, error) {
	if eps <= 0 {
		eps = Epsilon
	}
	roots, err := p.Roots()
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, r := range roots {
		if math.Abs(imag(r)) < eps {
			out = append(out, real(r))
		}
	}
	slices.Sort(out)
	return out, nil
}
