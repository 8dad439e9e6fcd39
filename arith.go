package angle

import "math"

func (a Angle) Add(other Angle) Angle {
	return Angle{rad: a.rad + other.rad}
}

func (a Angle) Sub(other Angle) Angle {
	return Angle{rad: a.rad - other.rad}
}

func (a Angle) Mul(scalar float64) Angle {
	return Angle{rad: a.rad * scalar}
}

// Div divides the angle by scalar. It fails with ErrDivisionByZero
// if scalar is exactly zero.
func (a Angle) Div(scalar float64) (Angle, error) {
	if scalar == 0 {
		return Angle{}, ErrDivisionByZero
	}

	return Angle{rad: a.rad / scalar}, nil
}

func (a Angle) Neg() Angle {
	return Angle{rad: -a.rad}
}

func (a Angle) Abs() Angle {
	return Angle{rad: math.Abs(a.rad)}
}

// DistanceTo returns the signed circular difference from a to other,
// in the range [-π, π).
func (a Angle) DistanceTo(other Angle) Angle {
	return Angle{rad: WrapRadians(other.rad-a.rad, true)}
}

// Lerp interpolates along the shorter arc between a and other.
// A value for f of 0 returns a, a value of 1 returns an angle
// congruent to other.
func (a Angle) Lerp(f float64, other Angle) Angle {
	d := a.DistanceTo(other)
	return Angle{rad: a.rad + f*d.rad}
}

// Compare compares two angles by their circular distance. It returns 0 if
// the angles are within epsilon radians of each other, -1 if other is
// ahead of a (the shorter way round is counter clockwise) and 1 otherwise.
//
// Angles that are congruent modulo the full circle compare as equal.
func (a Angle) Compare(other Angle, epsilon float64) (int, error) {
	if epsilon < 0 || math.IsNaN(epsilon) {
		return 0, invalidArgument("epsilon must not be negative, got %v", epsilon)
	}

	delta := WrapRadians(other.rad-a.rad, true)

	switch {
	case math.Abs(delta) <= epsilon:
		return 0, nil
	case delta > 0:
		return -1, nil
	default:
		return 1, nil
	}
}

// Equals reports whether both angles are circularly equal within epsilon.
func (a Angle) Equals(other Angle, epsilon float64) (bool, error) {
	cmp, err := a.Compare(other, epsilon)
	if err != nil {
		return false, err
	}

	return cmp == 0, nil
}

// Cmp is Compare using RadEpsilon.
func (a Angle) Cmp(other Angle) int {
	cmp, _ := a.Compare(other, RadEpsilon)
	return cmp
}

// Equal is Equals using RadEpsilon.
func (a Angle) Equal(other Angle) bool {
	return a.Cmp(other) == 0
}
