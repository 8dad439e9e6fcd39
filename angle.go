package angle

import (
	"log/slog"
	"math"
	"strconv"
)

const (
	// RadEpsilon is the default tolerance in radians used by Cmp and Equal.
	RadEpsilon = 1e-9

	// TrigEpsilon is the magnitude below which a denominator of a
	// trigonometric or hyperbolic function is treated as zero.
	TrigEpsilon = 1e-12
)

const (
	degPerRad  = 180 / math.Pi
	gradPerRad = 200 / math.Pi
	radPerDeg  = math.Pi / 180
	radPerGrad = math.Pi / 200
)

var (
	Zero     = Angle{}
	Right    = Angle{rad: math.Pi / 2}
	Straight = Angle{rad: math.Pi}
	Full     = Angle{rad: 2 * math.Pi}
)

// Angle is a planar angle. The zero value is an angle of zero radians.
//
// Angle is an immutable value, every operation returns a new Angle.
type Angle struct {
	rad float64
}

func FromRadians(r float64) Angle {
	return Angle{rad: r}
}

func FromDegrees(d float64) Angle {
	return Angle{rad: d * radPerDeg}
}

func FromGradians(g float64) Angle {
	return Angle{rad: g * radPerGrad}
}

// FromTurns creates an angle from a number of full turns.
func FromTurns(t float64) Angle {
	return Angle{rad: t * 2 * math.Pi}
}

// Radians returns the value of the angle in radians as float64.
func (a Angle) Radians() float64 {
	return a.rad
}

func (a Angle) Degrees() float64 {
	return a.rad * degPerRad
}

func (a Angle) Gradians() float64 {
	return a.rad * gradPerRad
}

func (a Angle) Turns() float64 {
	return a.rad / (2 * math.Pi)
}

// IsFinite reports whether the angle is neither infinite nor NaN.
func (a Angle) IsFinite() bool {
	return !math.IsInf(a.rad, 0) && !math.IsNaN(a.rad)
}

// String formats the angle in degrees using the shortest representation
// that parses back into the same value.
func (a Angle) String() string {
	return strconv.FormatFloat(a.Degrees(), 'g', -1, 64) + string(StyleDeg)
}

func (a Angle) LogValue() slog.Value {
	return slog.StringValue(a.String())
}
