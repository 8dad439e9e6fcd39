package angle

import (
	"math"
	"math/rand"
)

// RandomIn returns an angle uniformly sampled from [min, max).
func RandomIn(min, max Angle) Angle {
	return Angle{rad: rand.Float64()*(max.rad-min.rad) + min.rad}
}

// RandomAngle returns an angle uniformly sampled from the full circle.
func RandomAngle() Angle {
	return Angle{rad: rand.Float64() * 2 * math.Pi}
}
