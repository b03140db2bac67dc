package flexknot

import (
	"fmt"
	"math"
)

// nuc is the reference frequency in MHz shared by both foreground models.
const nuc = 75.0

// Model selects the parametric foreground added on top of the interpolated
// signal. The choice is fixed for the lifetime of a Session.
type Model int

const (
	// ModelEdges is the five term foreground of the EDGES detection paper.
	ModelEdges Model = iota
	// ModelSimsPober is the Sims & Pober foreground: a sinusoidal
	// calibration residual plus five log-polynomial power terms.
	ModelSimsPober
)

// NumCoefficients reports how many auxiliary coefficients the model
// consumes, or 0 for an unknown model.
func (m Model) NumCoefficients() int {
	switch m {
	case ModelEdges:
		return 5
	case ModelSimsPober:
		return 9
	}
	return 0
}

func (m Model) String() string {
	switch m {
	case ModelEdges:
		return "edges"
	case ModelSimsPober:
		return "sims-pober"
	}
	return fmt.Sprintf("Model(%d)", int(m))
}

func (m Model) eval(a []float64, nu float64) float64 {
	switch m {
	case ModelEdges:
		return edgesForeground(a, nu)
	case ModelSimsPober:
		return simsPoberForeground(a, nu)
	}
	return math.NaN()
}

// edgesForeground is a -2.5 power law with two logarithmic corrections, an
// ionospheric -4.5 term and a -2.0 absorption term.
func edgesForeground(a []float64, nu float64) float64 {
	r := nu / nuc
	lr := math.Log(r)
	pl := math.Pow(r, -2.5)
	return a[0]*pl +
		a[1]*pl*lr +
		a[2]*pl*lr*lr +
		a[3]*math.Pow(r, -4.5) +
		a[4]*math.Pow(r, -2.0)
}

// simsPoberForeground evaluates d[2]..d[3] as a calibration sinusoid of
// period d[1] under a d[0] power envelope, plus power terms whose exponent
// is the absolute coefficient index 4..8.
func simsPoberForeground(d []float64, nu float64) float64 {
	cal := math.Pow(nu/nuc, d[0]) *
		(d[2]*math.Sin(2*math.Pi*nu/d[1]) + d[3]*math.Cos(2*math.Pi*nu/d[1]))
	lg := math.Log10(nu / nuc)
	sum := 0.0
	for i := 4; i < 9; i++ {
		sum += math.Pow(10, d[i]*math.Pow(lg, float64(i)))
	}
	return sum + cal
}

// Foreground evaluates the session's foreground model alone at one
// frequency, for plotting and posterior-predictive diagnostics.
func (s *Session) Foreground(aux []float64, nu float64) (float64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if len(aux) != s.model.NumCoefficients() {
		return 0, fmt.Errorf("%w: model %v needs %d coefficients, got %d",
			ErrValidation, s.model, s.model.NumCoefficients(), len(aux))
	}
	return s.model.eval(aux, nu), nil
}
