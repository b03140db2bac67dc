package flexknot

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpolantReproducesKnots(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for n := 2; n <= 8; n++ {
		x := make([]float64, n)
		y := make([]float64, n)
		for i := range x {
			x[i] = float64(i) + 0.5*rng.Float64()
			y[i] = 10 * (rng.Float64() - 0.5)
		}

		p := NewInterpolant(n)
		require.NoError(t, p.Set(x, y))
		for i := range x {
			require.InDelta(t, y[i], p.Eval(x[i]), 1e-12, "n=%d knot %d", n, i)
		}
	}
}

func TestInterpolantTwoKnotsIsLinear(t *testing.T) {
	p := NewInterpolant(2)
	require.NoError(t, p.Set([]float64{0, 4}, []float64{1, 9}))

	require.InDelta(t, 3.0, p.Eval(1), 1e-12)
	require.InDelta(t, 5.0, p.Eval(2), 1e-12)
	require.InDelta(t, 7.0, p.Eval(3), 1e-12)
}

func TestInterpolantMonotone(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := 3 + rng.Intn(8)
		x := make([]float64, n)
		y := make([]float64, n)
		x[0] = 50 + rng.Float64()
		for i := 1; i < n; i++ {
			x[i] = x[i-1] + 0.1 + 10*rng.Float64()
		}
		for i := range y {
			y[i] = 10 * rng.Float64()
		}
		sort.Float64s(y)

		p := NewInterpolant(n)
		require.NoError(t, p.Set(x, y))

		prev := p.Eval(x[0])
		for k := 1; k <= 400; k++ {
			q := x[0] + (x[n-1]-x[0])*float64(k)/400
			v := p.Eval(q)
			require.GreaterOrEqual(t, v, prev-1e-9,
				"trial %d: interpolant decreased at q=%v", trial, q)
			prev = v
		}
	}
}

func TestInterpolantRejectsUnsortedKnots(t *testing.T) {
	p := NewInterpolant(3)

	err := p.Set([]float64{0, 2, 1}, []float64{0, 1, 2})
	require.ErrorIs(t, err, ErrValidation)

	err = p.Set([]float64{0, 0, 1}, []float64{0, 1, 2})
	require.ErrorIs(t, err, ErrValidation)
}

func TestInterpolantRejectsWrongLength(t *testing.T) {
	p := NewInterpolant(3)
	err := p.Set([]float64{0, 1}, []float64{0, 1})
	require.ErrorIs(t, err, ErrValidation)
}

func TestInterpolantSetReuse(t *testing.T) {
	xa := []float64{0, 1, 2, 3}
	ya := []float64{0, 1, 4, 9}
	qs := []float64{0.25, 0.5, 1.5, 2.75}

	p := NewInterpolant(4)
	require.Equal(t, 4, p.Knots())
	require.NoError(t, p.Set(xa, ya))
	first := p.EvalAll(qs)

	// Overwrite with a different knot set, then come back.
	require.NoError(t, p.Set([]float64{-5, 0, 5, 10}, []float64{3, 2, 1, 0}))
	require.NoError(t, p.Set(xa, ya))

	out := make([]float64, len(qs))
	p.EvalAll(qs, out)
	for i := range qs {
		require.Equal(t, first[i], out[i], "q=%v", qs[i])
	}
}

func TestNewInterpolantPanicsBelowTwoKnots(t *testing.T) {
	require.Panics(t, func() { NewInterpolant(1) })
}

func TestInterpolantFlatSegmentsStayFlat(t *testing.T) {
	// Equal neighbouring values force a zero derivative on both sides, so
	// the cubic over that segment must be constant.
	p := NewInterpolant(4)
	require.NoError(t, p.Set([]float64{0, 1, 2, 3}, []float64{1, 5, 5, 2}))

	for _, q := range []float64{1.1, 1.5, 1.9} {
		require.InDelta(t, 5.0, p.Eval(q), 1e-12, "q=%v", q)
	}
}

func TestInterpolantErrorIsValidation(t *testing.T) {
	p := NewInterpolant(2)
	err := p.Set([]float64{1, 0}, []float64{0, 0})
	require.True(t, errors.Is(err, ErrValidation))
	t.Logf("err = %v", err)
}
