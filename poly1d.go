// Package poly1d provides a single-variable polynomial value type for Go.
//
// Design goals:
//   - Immutable values: every operation returns a new *Poly
//   - Coefficients stored highest degree first, like numpy.poly1d
//   - Near-zero leading coefficients are trimmed on construction
//   - Calculus, long division, and root finding on float64 coefficients
//   - AI/LLM friendly: JSON and MCP-ready APIs
package poly1d

import (
	"fmt"
	"math"
	"strings"
)

// Epsilon is the magnitude below which a coefficient is treated as zero.
const Epsilon = 1e-7

// DefaultVariable is the display symbol used when none is given.
const DefaultVariable = "x"

func isZero(v float64) bool { return math.Abs(v) < Epsilon }

// ============================================================
// Poly — polynomial value
// ============================================================

// Poly is a polynomial in one variable. The zero value is not usable;
// build one with New, Const or FromRoots.
type Poly struct {
	coeffs   []float64
	variable string
}

// New returns the polynomial with the given coefficients, highest degree
// first. Leading near-zero coefficients are dropped, keeping at least one.
// An empty slice gives the zero polynomial.
func New(coeffs []float64) *Poly {
	return newVar(coeffs, DefaultVariable)
}

func newVar(coeffs []float64, variable string) *Poly {
	start := 0
	for start < len(coeffs)-1 && isZero(coeffs[start]) {
		start++
	}
	c := make([]float64, 0, len(coeffs)-start+1)
	c = append(c, coeffs[start:]...)
	if len(c) == 0 {
		c = append(c, 0)
	}
	for i := range c {
		if c[i] == 0 {
			c[i] = 0 // drop the sign of -0
		}
	}
	if variable == "" {
		variable = DefaultVariable
	}
	return &Poly{coeffs: c, variable: variable}
}

// Const returns the degree-0 polynomial v.
func Const(v float64) *Poly { return New([]float64{v}) }

// X returns the identity polynomial x.
func X() *Poly { return New([]float64{1, 0}) }

// FromRoots returns the monic polynomial (x - r0)(x - r1)... .
// With no roots it returns x itself, not the constant 1.
func FromRoots(roots ...float64) *Poly {
	if len(roots) == 0 {
		return X()
	}
	p := Const(1)
	for _, r := range roots {
		p = p.Mul(New([]float64{1, -r}))
	}
	return p
}

// WithVariable returns a copy of p rendered with the given symbol.
func (p *Poly) WithVariable(name string) *Poly { return newVar(p.coeffs, name) }

func (p *Poly) Variable() string { return p.variable }

// Coeffs returns a copy of the coefficients, highest degree first.
func (p *Poly) Coeffs() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Degree returns the highest exponent with a non-negligible coefficient.
func (p *Poly) Degree() int { return len(p.coeffs) - 1 }

// Coeff returns the coefficient of x^n. Any n outside [0, Degree()] gives 0.
func (p *Poly) Coeff(n int) float64 {
	i := len(p.coeffs) - 1 - n
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// IsZero reports whether p is the zero polynomial.
func (p *Poly) IsZero() bool { return len(p.coeffs) == 1 && isZero(p.coeffs[0]) }

// Eval evaluates p at x using Horner's rule.
func (p *Poly) Eval(x float64) float64 {
	v := 0.0
	for _, c := range p.coeffs {
		v = v*x + c
	}
	return v
}

// Equal reports whether p and q have the same degree and every pair of
// coefficients differs by at most tol.
func (p *Poly) Equal(q *Poly, tol float64) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if math.Abs(p.coeffs[i]-q.coeffs[i]) > tol {
			return false
		}
	}
	return true
}

// ascending returns the coefficients lowest degree first.
func (p *Poly) ascending() []float64 {
	n := len(p.coeffs)
	out := make([]float64, n)
	for i, c := range p.coeffs {
		out[n-1-i] = c
	}
	return out
}

// ============================================================
// Formatting
// ============================================================

func (p *Poly) String() string {
	return p.format(func(n int) string {
		switch n {
		case 0:
			return ""
		case 1:
			return p.variable
		}
		return fmt.Sprintf("%s^%d", p.variable, n)
	})
}

func (p *Poly) LaTeX() string {
	return p.format(func(n int) string {
		switch n {
		case 0:
			return ""
		case 1:
			return p.variable
		}
		return fmt.Sprintf("%s^{%d}", p.variable, n)
	})
}

func (p *Poly) format(power func(n int) string) string {
	if p.Degree() == 0 {
		return fmt.Sprintf("%g", p.coeffs[0])
	}
	var sb strings.Builder
	for i, c := range p.coeffs {
		if isZero(c) {
			continue
		}
		n := p.Degree() - i
		if sb.Len() == 0 {
			fmt.Fprintf(&sb, "%g%s", c, power(n))
			continue
		}
		sign := " + "
		if c < 0 {
			sign = " - "
		}
		fmt.Fprintf(&sb, "%s%g%s", sign, math.Abs(c), power(n))
	}
	return sb.String()
}
