package curve

import "errors"

var (
	// ErrTooFewPoints reports a series too short for the 3-tap smoother.
	ErrTooFewPoints = errors.New("curve: need at least 3 points to smooth")

	// ErrNoDaylight reports a series with no positive pv at all, which
	// leaves the stretch stage with nothing to map onto the day.
	ErrNoDaylight = errors.New("curve: no positive samples")

	// ErrInsufficientDaylight reports a series whose positive window is a
	// single point, so the stretch factor is undefined.
	ErrInsufficientDaylight = errors.New("curve: single positive sample, cannot stretch")
)
