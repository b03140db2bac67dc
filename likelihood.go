package flexknot

import "math"

// logNormPDF is the log density of a Gaussian with the given mean and width.
func logNormPDF(y, mean, stdev float64) float64 {
	u := (y - mean) / stdev
	return -0.5*u*u - math.Log(math.Sqrt(2*math.Pi)*stdev)
}

// LogLikelihood evaluates the flexknot model described by the named
// parameter vector against the session dataset: the routed knots define a
// monotone cubic baseline, the foreground model adds its correction at each
// data frequency, and the result is the summed Gaussian log density of the
// observations about that prediction.
//
// NaN or infinite values from pathological proposals propagate into the
// returned scalar; the sampler is expected to reject them.
func (s *Session) LogLikelihood(names []string, values []float64) (float64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	coef, err := s.route(names, values)
	if err != nil {
		return 0, err
	}
	if err := s.interp.Set(coef.knotX, coef.knotY); err != nil {
		return 0, err
	}
	s.interp.EvalAll(s.x, s.predicted)

	sum := 0.0
	for i, nu := range s.x {
		mean := s.predicted[i] + s.model.eval(coef.aux, nu)
		sum += logNormPDF(s.y[i], mean, s.stdev)
	}
	return sum, nil
}
