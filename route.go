package flexknot

import "fmt"

// paramRole classifies a named parameter by the leading character of its
// name, the scheme the sampler's config generator emits (x_1, y_1, a_0,
// fy_f, fy_l, ...).
type paramRole int

const (
	roleInteriorX paramRole = iota
	roleInteriorY
	roleAuxiliary
	roleBoundary
)

func parseRole(name string) (paramRole, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: empty parameter name", ErrValidation)
	}
	switch name[0] {
	case 'x':
		return roleInteriorX, nil
	case 'y':
		return roleInteriorY, nil
	case 'a':
		return roleAuxiliary, nil
	case 'f':
		return roleBoundary, nil
	}
	return 0, fmt.Errorf("%w: parameter %q has no recognised role", ErrValidation, name)
}

// coefficientSet groups one call's routed coefficients. The slices alias
// session scratch storage and are only valid until the next routing call.
type coefficientSet struct {
	knotX []float64
	knotY []float64
	aux   []float64
}

// route dispatches a flat name/value vector into knot and foreground
// coefficient slots. Interior knots fill slots 1..order in input order, the
// two boundary parameters pin the padded endpoints in encounter order, and
// auxiliary coefficients append in input order. The parameter count must be
// exactly 2*order+2 plus the model's coefficient count; anything else is a
// validation error rather than a silently wrong likelihood.
func (s *Session) route(names []string, values []float64) (coefficientSet, error) {
	if len(names) != len(values) {
		return coefficientSet{}, fmt.Errorf("%w: %d names but %d values",
			ErrValidation, len(names), len(values))
	}
	want := 2*s.order + 2 + s.model.NumCoefficients()
	if len(names) != want {
		return coefficientSet{}, fmt.Errorf("%w: got %d parameters, model %v at order %d needs %d",
			ErrValidation, len(names), s.model, s.order, want)
	}

	xLoc, yLoc, aLoc, fLoc := 1, 1, 0, 0
	last := s.order + 1
	for i, name := range names {
		role, err := parseRole(name)
		if err != nil {
			return coefficientSet{}, err
		}
		switch role {
		case roleInteriorX:
			if xLoc > s.order {
				return coefficientSet{}, fmt.Errorf("%w: interior x parameter %q exceeds order %d",
					ErrValidation, name, s.order)
			}
			s.knotX[xLoc] = values[i]
			xLoc++
		case roleInteriorY:
			if yLoc > s.order {
				return coefficientSet{}, fmt.Errorf("%w: interior y parameter %q exceeds order %d",
					ErrValidation, name, s.order)
			}
			s.knotY[yLoc] = values[i]
			yLoc++
		case roleAuxiliary:
			if aLoc >= len(s.aux) {
				return coefficientSet{}, fmt.Errorf("%w: auxiliary parameter %q exceeds the %d coefficients of model %v",
					ErrValidation, name, len(s.aux), s.model)
			}
			s.aux[aLoc] = values[i]
			aLoc++
		case roleBoundary:
			// First occurrence binds the left end, second the right.
			switch fLoc {
			case 0:
				s.knotX[0] = s.x[0] - border
				s.knotY[0] = values[i]
			case 1:
				s.knotX[last] = s.x[len(s.x)-1] + border
				s.knotY[last] = values[i]
			default:
				return coefficientSet{}, fmt.Errorf("%w: more than two boundary parameters", ErrValidation)
			}
			fLoc++
		}
	}
	// The exact-count check plus the per-role caps above guarantee every
	// slot is filled once we get here.
	return coefficientSet{knotX: s.knotX, knotY: s.knotY, aux: s.aux}, nil
}
