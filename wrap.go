package angle

import "math"

// WrapRadians reduces value into [0, 2π), or into [-π, π) if signed is true.
func WrapRadians(value float64, signed bool) float64 {
	return wrap(value, 2*math.Pi, signed)
}

// WrapDegrees reduces value into [0, 360), or into [-180, 180) if signed is true.
func WrapDegrees(value float64, signed bool) float64 {
	return wrap(value, 360, signed)
}

// WrapGradians reduces value into [0, 400), or into [-200, 200) if signed is true.
func WrapGradians(value float64, signed bool) float64 {
	return wrap(value, 400, signed)
}

// WrapTurns reduces value into [0, 1), or into [-0.5, 0.5) if signed is true.
func WrapTurns(value float64, signed bool) float64 {
	return wrap(value, 1, signed)
}

func wrap(value, period float64, signed bool) float64 {
	// math.Mod is exact and keeps the sign of the dividend,
	// values already within (-period, period) are returned unchanged
	value = math.Mod(value, period)
	if value == 0 {
		// drops the sign of a negative zero
		return 0
	}

	if signed {
		return shiftSigned(value, period)
	}

	if value < 0 {
		value += period

		// adding the period to a tiny negative remainder can round up
		if value >= period {
			value = 0
		}
	}

	return value
}

// shiftSigned moves a remainder in (-period, period) into [-period/2, period/2).
func shiftSigned(value, period float64) float64 {
	half := period / 2

	switch {
	case value >= half:
		value -= period

	case value < -half:
		value += period

		// the sum can round up onto the excluded boundary
		if value >= half {
			value = -half
		}
	}

	return value
}

// Wrap returns the angle reduced into [0, 2π), or into [-π, π)
// if signed is true. The receiver is not modified.
func (a Angle) Wrap(signed bool) Angle {
	return Angle{rad: WrapRadians(a.rad, signed)}
}

// Accumulator sums up angles and keeps the running total wrapped.
// Use it in hot loops instead of repeatedly calling Add and Wrap.
//
// An Accumulator must not be mutated concurrently.
type Accumulator struct {
	rad    float64
	signed bool
}

// NewAccumulator returns an Accumulator starting at the given angle.
func NewAccumulator(start Angle, signed bool) *Accumulator {
	return &Accumulator{
		rad:    WrapRadians(start.rad, signed),
		signed: signed,
	}
}

// Add adds the angle to the running total in place.
func (acc *Accumulator) Add(a Angle) {
	acc.rad = WrapRadians(acc.rad+a.rad, acc.signed)
}

// Sub subtracts the angle from the running total in place.
func (acc *Accumulator) Sub(a Angle) {
	acc.rad = WrapRadians(acc.rad-a.rad, acc.signed)
}

// Reset sets the running total to the given angle.
func (acc *Accumulator) Reset(a Angle) {
	acc.rad = WrapRadians(a.rad, acc.signed)
}

// Angle returns the current total as an immutable Angle.
func (acc *Accumulator) Angle() Angle {
	return Angle{rad: acc.rad}
}
