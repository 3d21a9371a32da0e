package poly1d

import "fmt"

// ============================================================
// Calculus
// ============================================================

// Deriv returns the m-th derivative of p. m must be non-negative.
func (p *Poly) Deriv(m int) (*Poly, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w: derivative order %d", ErrInvalidArgument, m)
	}
	out := p
	for i := 0; i < m && !out.IsZero(); i++ {
		out = out.derivOnce()
	}
	if out == p {
		out = newVar(p.coeffs, p.variable)
	}
	return out, nil
}

func (p *Poly) derivOnce() *Poly {
	deg := p.Degree()
	if deg == 0 {
		return newVar([]float64{0}, p.variable)
	}
	out := make([]float64, 0, deg)
	for n := deg; n >= 1; n-- {
		out = append(out, p.Coeff(n)*float64(n))
	}
	return newVar(out, p.variable)
}

// Integ returns the m-th indefinite integral of p, using k as the
// integration constant at every step.
func (p *Poly) Integ(m int, k float64) (*Poly, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w: integral order %d", ErrInvalidArgument, m)
	}
	ks := make([]float64, m)
	for i := range ks {
		ks[i] = k
	}
	return p.IntegConsts(m, ks)
}

// IntegConsts returns the m-th indefinite integral of p. Step i uses ks[i]
// as its integration constant; ks must hold at least m values.
func (p *Poly) IntegConsts(m int, ks []float64) (*Poly, error) {
	if m < 0 {
		return nil, fmt.Errorf("%w: integral order %d", ErrInvalidArgument, m)
	}
	if len(ks) < m {
		return nil, fmt.Errorf("%w: %d integration constants for %d integrals", ErrInvalidArgument, len(ks), m)
	}
	out := newVar(p.coeffs, p.variable)
	for i := 0; i < m; i++ {
		out = out.integOnce(ks[i])
	}
	return out, nil
}

func (p *Poly) integOnce(k float64) *Poly {
	deg := p.Degree()
	out := make([]float64, 0, deg+2)
	for n := deg; n >= 0; n-- {
		out = append(out, p.Coeff(n)/float64(n+1))
	}
	out = append(out, k)
	return newVar(out, p.variable)
}
