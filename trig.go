package angle

import "math"

// reciprocal returns 1/x, or an infinity with the sign of x if x is
// within TrigEpsilon of zero.
func reciprocal(x float64) float64 {
	if math.Abs(x) <= TrigEpsilon {
		return math.Copysign(math.Inf(1), x)
	}

	return 1 / x
}

func (a Angle) Sin() float64 {
	return math.Sin(a.rad)
}

func (a Angle) Cos() float64 {
	return math.Cos(a.rad)
}

// Sincos returns Sin and Cos of the angle.
func (a Angle) Sincos() (sin, cos float64) {
	return math.Sincos(a.rad)
}

// Tan returns the tangent of the angle. Close to a zero of the cosine
// the result is an infinity with the sign the quotient sin/cos has
// on this side of the pole. The sign is not taken from the cosine alone:
// just below 3π/2 the cosine is negative, but the result is +Inf.
func (a Angle) Tan() float64 {
	sin, cos := math.Sincos(a.rad)
	if math.Abs(cos) <= TrigEpsilon {
		return math.Copysign(math.Inf(1), sin) * math.Copysign(1, cos)
	}

	return math.Tan(a.rad)
}

// Csc returns 1/Sin, which is infinite at multiples of π.
func (a Angle) Csc() float64 {
	return reciprocal(a.Sin())
}

// Sec returns 1/Cos, which is infinite at odd multiples of π/2.
func (a Angle) Sec() float64 {
	return reciprocal(a.Cos())
}

// Cot returns 1/Tan. It is infinite at multiples of π and
// zero where Tan is infinite.
func (a Angle) Cot() float64 {
	return reciprocal(a.Tan())
}

func (a Angle) Sinh() float64 {
	return math.Sinh(a.rad)
}

func (a Angle) Cosh() float64 {
	return math.Cosh(a.rad)
}

func (a Angle) Tanh() float64 {
	return math.Tanh(a.rad)
}

func (a Angle) Csch() float64 {
	return reciprocal(a.Sinh())
}

// Sech returns 1/Cosh. Cosh is at least one for finite angles,
// so there is no singularity.
func (a Angle) Sech() float64 {
	return reciprocal(a.Cosh())
}

func (a Angle) Coth() float64 {
	return reciprocal(a.Tanh())
}

// Asin returns the angle whose sine is x.
func Asin(x float64) Angle {
	return Angle{rad: math.Asin(x)}
}

// Acos returns the angle whose cosine is x.
func Acos(x float64) Angle {
	return Angle{rad: math.Acos(x)}
}

// Atan returns the angle whose tangent is x.
func Atan(x float64) Angle {
	return Angle{rad: math.Atan(x)}
}

// Atan2 returns the angle of the point (x, y), see math.Atan2.
func Atan2(y, x float64) Angle {
	return Angle{rad: math.Atan2(y, x)}
}
