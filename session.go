// Package flexknot evaluates a flexknot signal model plus a parametric
// foreground against a fixed observational dataset, returning the Gaussian
// log-likelihood consumed by an external nested sampler.
//
// The sampler supplies each proposal as a flat vector of named parameters.
// The leading character of each name selects its role: 'x' and 'y' are the
// positions and values of the interior knots in input order, 'a' the
// auxiliary foreground coefficients, and the two 'f' parameters the y values
// of the fixed knots pinned just beyond each end of the data.
package flexknot

import (
	"errors"
	"fmt"
)

// border keeps the two fixed knots slightly beyond the data range so the
// interpolant stays well-defined at the extremes for downstream
// posterior-predictive tooling.
const border = 0.1

// defaultStdev is the measurement error of the EDGES low band data.
const defaultStdev = 0.025

var (
	// ErrClosed is returned by evaluations on a closed session.
	ErrClosed = errors.New("flexknot: session is closed")
	// ErrValidation wraps every precondition failure reported by the package.
	ErrValidation = errors.New("flexknot: invalid input")
)

// Session holds the dataset and every buffer a likelihood call reuses.
// One sampling process, one dataset: a Session is not safe for concurrent
// use; successive calls overwrite its scratch storage serially.
type Session struct {
	x, y  []float64
	order int
	model Model
	stdev float64

	interp    *Interpolant
	predicted []float64

	// routing scratch, overwritten on every call
	knotX, knotY, aux []float64

	closed bool
}

// NewSession copies the dataset into owned storage and sizes every scratch
// buffer once, so that no later evaluation allocates. order counts interior
// knots only; order 0 fits a straight line between the two fixed knots.
// The foreground model choice is fixed for the lifetime of the session.
func NewSession(x, y []float64, order int, model Model) (*Session, error) {
	if len(x) == 0 || len(x) != len(y) {
		return nil, fmt.Errorf("%w: dataset has len(x)=%d, len(y)=%d", ErrValidation, len(x), len(y))
	}
	if order < 0 {
		return nil, fmt.Errorf("%w: order %d is negative", ErrValidation, order)
	}
	for i := 0; i < len(x)-1; i++ {
		if x[i+1] <= x[i] {
			return nil, fmt.Errorf("%w: dataset x not strictly increasing at index %d", ErrValidation, i+1)
		}
	}
	if model.NumCoefficients() == 0 {
		return nil, fmt.Errorf("%w: unknown foreground model %d", ErrValidation, int(model))
	}

	return &Session{
		x:         append([]float64(nil), x...),
		y:         append([]float64(nil), y...),
		order:     order,
		model:     model,
		stdev:     defaultStdev,
		interp:    NewInterpolant(order + 2),
		predicted: make([]float64, len(x)),
		knotX:     make([]float64, order+2),
		knotY:     make([]float64, order+2),
		aux:       make([]float64, model.NumCoefficients()),
	}, nil
}

// Close releases the session's storage. Any further evaluation fails with
// ErrClosed.
func (s *Session) Close() {
	s.x, s.y = nil, nil
	s.interp = nil
	s.predicted = nil
	s.knotX, s.knotY, s.aux = nil, nil, nil
	s.closed = true
}

// SetStdev overrides the measurement error used by the Gaussian log-density.
// The default is the EDGES low band value.
func (s *Session) SetStdev(stdev float64) error {
	if stdev <= 0 {
		return fmt.Errorf("%w: stdev %v is not positive", ErrValidation, stdev)
	}
	s.stdev = stdev
	return nil
}

func (s *Session) Len() int { return len(s.x) }

func (s *Session) Order() int { return s.order }

func (s *Session) Model() Model { return s.model }

func (s *Session) Stdev() float64 { return s.stdev }

func (s *Session) String() string {
	out := "\nFlexknot session:\n"
	out = fmt.Sprintf("%s\torder: %v; model: %v; stdev: %v\n", out, s.order, s.model, s.stdev)
	out = fmt.Sprintf("%s\tpoints: %v; closed: %v\n", out, len(s.x), s.closed)
	if len(s.x) > 0 {
		out = fmt.Sprintf("%s\tx range: [%v, %v]\n", out, s.x[0], s.x[len(s.x)-1])
	}
	return out
}
