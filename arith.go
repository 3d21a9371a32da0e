package poly1d

import "fmt"

// ============================================================
// Arithmetic
// ============================================================

// Neg returns -p.
func (p *Poly) Neg() *Poly { return p.Scale(-1) }

// Scale returns c*p.
func (p *Poly) Scale(c float64) *Poly {
	out := make([]float64, len(p.coeffs))
	for i, v := range p.coeffs {
		out[i] = c * v
	}
	return newVar(out, p.variable)
}

// Add returns p + q.
func (p *Poly) Add(q *Poly) *Poly {
	return p.combine(q, func(a, b float64) float64 { return a + b })
}

// Sub returns p - q.
func (p *Poly) Sub(q *Poly) *Poly {
	return p.combine(q, func(a, b float64) float64 { return a - b })
}

func (p *Poly) combine(q *Poly, op func(a, b float64) float64) *Poly {
	a, b := padLeading(p.coeffs, q.coeffs)
	out, err := zipWith(a, b, op)
	if err != nil {
		// padLeading always returns equal lengths.
		panic(err)
	}
	return newVar(out, p.variable)
}

// padLeading returns copies of a and b, the shorter one prefixed with
// zeros so both have the same length.
func padLeading(a, b []float64) ([]float64, []float64) {
	n := max(len(a), len(b))
	pa := make([]float64, n)
	pb := make([]float64, n)
	copy(pa[n-len(a):], a)
	copy(pb[n-len(b):], b)
	return pa, pb
}

func zipWith(a, b []float64, op func(a, b float64) float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("poly1d: coefficient length mismatch %d != %d", len(a), len(b))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out, nil
}

// AddScalar returns p + c.
func (p *Poly) AddScalar(c float64) *Poly { return p.Add(Const(c)) }

// SubScalar returns p - c.
func (p *Poly) SubScalar(c float64) *Poly { return p.Sub(Const(c)) }

// ScalarAdd returns c + p.
func ScalarAdd(c float64, p *Poly) *Poly {
	return Const(c).WithVariable(p.variable).Add(p)
}

// ScalarSub returns c - p.
func ScalarSub(c float64, p *Poly) *Poly {
	return Const(c).WithVariable(p.variable).Sub(p)
}

// Mul returns p * q.
func (p *Poly) Mul(q *Poly) *Poly {
	a, b := p.ascending(), q.ascending()
	prod := make([]float64, len(a)+len(b)-1)
	for m, x := range a {
		for n, y := range b {
			prod[m+n] += x * y
		}
	}
	out := make([]float64, len(prod))
	for i, v := range prod {
		out[len(prod)-1-i] = v
	}
	return newVar(out, p.variable)
}

// DivMod divides p by d using polynomial long division and returns the
// quotient and remainder, with p = q*d + r and r.Degree() < d.Degree()
// unless r is zero.
func (p *Poly) DivMod(d *Poly) (q, r *Poly, err error) {
	if d.IsZero() {
		return nil, nil, fmt.Errorf("%w: divisor %s", ErrDivisionByZero, d)
	}
	q = Const(0).WithVariable(p.variable)
	r = p
	for !r.IsZero() && r.Degree() >= d.Degree() {
		t := leadingQuotient(r, d)
		q = q.Add(t)
		next := r.Sub(t.Mul(d))
		if next.Degree() >= r.Degree() {
			// Cancellation of the leading term left a value above Epsilon;
			// drop it so the loop always makes progress.
			next = newVar(next.coeffs[1:], p.variable)
		}
		r = next
	}
	return q, r, nil
}

// leadingQuotient returns the single term lead(r)/lead(d) * x^(deg r - deg d).
func leadingQuotient(r, d *Poly) *Poly {
	n := r.Degree() - d.Degree()
	c := make([]float64, n+1)
	c[0] = r.Coeff(r.Degree()) / d.Coeff(d.Degree())
	return newVar(c, r.variable)
}

// DivScalar returns p / v.
func (p *Poly) DivScalar(v float64) (*Poly, error) {
	if isZero(v) {
		return nil, fmt.Errorf("%w: scalar %g", ErrDivisionByZero, v)
	}
	return p.Scale(1 / v), nil
}
