package poly1d_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/poly1d"
)

const tol = 1e-9

func assertCoeffs(t *testing.T, want []float64, p *poly1d.Poly) {
	t.Helper()
	require.NotNil(t, p)
	if diff := cmp.Diff(want, p.Coeffs(), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Errorf("coefficients mismatch (-want +got):\n%s", diff)
	}
}

// ============================================================
// Construction
// ============================================================

func TestNew_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{"empty", nil, []float64{0}},
		{"all zero", []float64{0, 0, 0}, []float64{0}},
		{"leading zeros", []float64{0, 0, 2, 1}, []float64{2, 1}},
		{"near zero lead", []float64{1e-9, -1e-8, 2}, []float64{2}},
		{"keeps inner zeros", []float64{1, 0, 0}, []float64{1, 0, 0}},
		{"cubic", []float64{1, -3, -1, 3}, []float64{1, -3, -1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := poly1d.New(tt.in)
			assertCoeffs(t, tt.want, p)
			assert.Equal(t, len(p.Coeffs())-1, p.Degree())
		})
	}
}

func TestNew_DoesNotAlias(t *testing.T) {
	in := []float64{1, 2, 3}
	p := poly1d.New(in)
	in[0] = 100
	out := p.Coeffs()
	out[1] = 100
	assertCoeffs(t, []float64{1, 2, 3}, p)
}

func TestConst(t *testing.T) {
	p := poly1d.Const(4.5)
	assert.Equal(t, 0, p.Degree())
	assert.Equal(t, 4.5, p.Eval(-10))
	assert.True(t, poly1d.Const(0).IsZero())
	assert.False(t, p.IsZero())
}

func TestFromRoots(t *testing.T) {
	p := poly1d.FromRoots(-1, 1, 3)
	assertCoeffs(t, []float64{1, -3, -1, 3}, p)
	for _, r := range []float64{-1, 1, 3} {
		assert.InDelta(t, 0, p.Eval(r), tol)
	}
}

func TestFromRoots_EmptyIsX(t *testing.T) {
	p := poly1d.FromRoots()
	assertCoeffs(t, []float64{1, 0}, p)
	assert.Equal(t, 1, p.Degree())
}

// ============================================================
// Accessors and evaluation
// ============================================================

func TestCubicScenario(t *testing.T) {
	p := poly1d.New([]float64{1, -3, -1, 3})
	assert.Equal(t, 3, p.Degree())
	assert.InDelta(t, 5.625, p.Eval(3.5), tol)
	assert.Equal(t, -3.0, p.Coeff(2))
	assert.Equal(t, 3.0, p.Coeff(0))
	assert.Equal(t, 1.0, p.Coeff(3))
	assert.Equal(t, 0.0, p.Coeff(-100))
	assert.Equal(t, 0.0, p.Coeff(4))
}

func TestEval_Linearity(t *testing.T) {
	p := poly1d.New([]float64{2, -1, 0.5})
	q := poly1d.New([]float64{-4, 3, 0, 1, 7})
	sum := p.Add(q)
	for _, x := range []float64{-3, -1.25, 0, 0.5, 2, 10} {
		assert.InDelta(t, p.Eval(x)+q.Eval(x), sum.Eval(x), 1e-6, "x=%g", x)
	}
}

func TestEqual(t *testing.T) {
	p := poly1d.New([]float64{1, 2})
	assert.True(t, p.Equal(poly1d.New([]float64{1, 2 + 1e-12}), tol))
	assert.False(t, p.Equal(poly1d.New([]float64{1, 2.1}), tol))
	assert.False(t, p.Equal(poly1d.New([]float64{1, 2, 0}), tol))
}

// ============================================================
// Formatting
// ============================================================

func TestString(t *testing.T) {
	tests := []struct {
		p    *poly1d.Poly
		want string
	}{
		{poly1d.New([]float64{1, -3, -1, 3}), "1x^3 - 3x^2 - 1x + 3"},
		{poly1d.New([]float64{-1, 0, 2}), "-1x^2 + 2"},
		{poly1d.New([]float64{2.5, 0, 0}), "2.5x^2"},
		{poly1d.New([]float64{2, -1}).WithVariable("t"), "2t - 1"},
		{poly1d.Const(-2.5), "-2.5"},
		{poly1d.New(nil), "0"},
		{poly1d.Const(0).Neg(), "0"},
		{poly1d.New([]float64{math.Copysign(0, -1)}), "0"},
		{poly1d.New([]float64{2, 0, 0}).Scale(-1), "-2x^2"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.String())
	}
}

func TestNew_NegativeZero(t *testing.T) {
	p := poly1d.New([]float64{1, math.Copysign(0, -1)}).Neg()
	for _, c := range p.Coeffs() {
		assert.False(t, c == 0 && math.Signbit(c), "coefficients %v", p.Coeffs())
	}
	assert.Equal(t, "-1x", p.String())
}

func TestLaTeX(t *testing.T) {
	p := poly1d.New([]float64{1, 0, -4, 2})
	assert.Equal(t, "1x^{3} - 4x + 2", p.LaTeX())
}

func TestWithVariable(t *testing.T) {
	p := poly1d.New([]float64{1, 0}).WithVariable("s")
	assert.Equal(t, "s", p.Variable())
	assert.Equal(t, "s", p.Mul(p).Variable())
	assert.Equal(t, poly1d.DefaultVariable, p.WithVariable("").Variable())
}
