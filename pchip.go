package flexknot

import (
	"fmt"
	"math"
)

// Interpolant is a monotone shape-preserving piecewise cubic Hermite
// interpolant (PCHIP) over a fixed number of knots. Set may be called any
// number of times with new knot values; nothing after construction
// allocates, so a sampler can rebuild it millions of times.
type Interpolant struct {
	x, y []float64 // knots, retained from the last Set
	d    []float64 // derivative at each knot
}

// NewInterpolant sizes an interpolant for n knots, n >= 2.
func NewInterpolant(n int) *Interpolant {
	if n < 2 {
		panic(fmt.Sprintf("flexknot: interpolant needs at least 2 knots, got %d", n))
	}
	return &Interpolant{d: make([]float64, n)}
}

// Knots reports the knot count the interpolant was sized for.
func (p *Interpolant) Knots() int { return len(p.d) }

// Set derives the monotone knot derivatives for a new set of knot values
// using the Fritsch-Carlson construction: a weighted harmonic mean of the
// adjacent secants in the interior and a shape-limited three point formula
// at each end. x and y must have the length given to NewInterpolant and x
// must be strictly increasing; both slices are retained until the next Set.
func (p *Interpolant) Set(x, y []float64) error {
	if len(x) != len(p.d) || len(y) != len(p.d) {
		return fmt.Errorf("%w: interpolant sized for %d knots, got len(x)=%d, len(y)=%d",
			ErrValidation, len(p.d), len(x), len(y))
	}
	for i := 0; i < len(x)-1; i++ {
		if x[i+1] <= x[i] {
			return fmt.Errorf("%w: knot x values not strictly increasing at index %d", ErrValidation, i+1)
		}
	}
	p.x, p.y = x, y

	n := len(x)
	h1 := x[1] - x[0]
	del1 := (y[1] - y[0]) / h1
	if n == 2 {
		p.d[0], p.d[1] = del1, del1
		return nil
	}

	h2 := x[2] - x[1]
	del2 := (y[2] - y[1]) / h2
	hsum := h1 + h2

	p.d[0] = limitEndDeriv(((h1+hsum)*del1-h1*del2)/hsum, del1, del2)

	for i := 1; i < n-1; i++ {
		if i > 1 {
			h1, del1 = h2, del2
			h2 = x[i+1] - x[i]
			del2 = (y[i+1] - y[i]) / h2
			hsum = h1 + h2
		}
		p.d[i] = 0
		if sameSign(del1, del2) {
			w1 := (hsum + h1) / (3 * hsum)
			w2 := (hsum + h2) / (3 * hsum)
			dmax := math.Max(math.Abs(del1), math.Abs(del2))
			dmin := math.Min(math.Abs(del1), math.Abs(del2))
			p.d[i] = dmin / (w1*(del1/dmax) + w2*(del2/dmax))
		}
	}

	p.d[n-1] = limitEndDeriv(((h2+hsum)*del2-h2*del1)/hsum, del2, del1)
	return nil
}

// limitEndDeriv clamps a one-sided boundary derivative estimate so the end
// interval cannot overshoot. adj is the secant of the boundary interval,
// far the next one in.
func limitEndDeriv(d, adj, far float64) float64 {
	switch {
	case !sameSign(d, adj):
		return 0
	case oppositeSign(adj, far) && math.Abs(d) > math.Abs(3*adj):
		return 3 * adj
	}
	return d
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

func oppositeSign(a, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}

// Eval computes the value of the interpolant at the given point. Points
// outside the knot range are extrapolated with the nearest boundary cubic.
func (p *Interpolant) Eval(q float64) float64 {
	if q == p.x[len(p.x)-1] {
		return p.y[len(p.y)-1]
	}
	i := p.bsearch(q)

	h := p.x[i+1] - p.x[i]
	delta := (p.y[i+1] - p.y[i]) / h
	c2 := (3*delta - 2*p.d[i] - p.d[i+1]) / h
	c3 := (p.d[i] + p.d[i+1] - 2*delta) / (h * h)
	t := q - p.x[i]
	return p.y[i] + t*(p.d[i]+t*(c2+t*c3))
}

// EvalAll evaluates the interpolant at every point of qs. If an output
// buffer is supplied it is reused, otherwise one is allocated.
func (p *Interpolant) EvalAll(qs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(qs))}
	}
	for i := range qs {
		out[0][i] = p.Eval(qs[i])
	}
	return out[0]
}

// bsearch returns the index of the segment whose left knot is the largest
// one not exceeding q, clamped to the boundary segments.
func (p *Interpolant) bsearch(q float64) int {
	lo, hi := 0, len(p.x)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if q >= p.x[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
