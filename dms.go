package angle

import "math"

// DMSUnit selects the smallest component returned by ToDMS.
type DMSUnit int

const (
	DMSDegrees DMSUnit = iota
	DMSMinutes
	DMSSeconds
)

// FromDMS creates an angle from degrees, minutes and seconds. The parts are
// summed as given, a negative angle needs all parts to be negative:
// FromDMS(-12, -34, -56) is -12.5822°.
func FromDMS(d, m, s float64) Angle {
	return FromDegrees(d + m/60 + s/3600)
}

// ToDMS decomposes the angle into degrees, minutes and seconds, down to the
// component selected by smallest. The smallest component is rounded to the
// given number of decimals, the larger components are integral.
//
// Rounding carries into the larger components, so that 29.999999999° is
// returned as [30 0 0] for three decimals. For negative angles every
// non-zero component is negative.
func (a Angle) ToDMS(smallest DMSUnit, decimals int) ([]float64, error) {
	if smallest < DMSDegrees || smallest > DMSSeconds {
		return nil, invalidArgument("smallest unit must be 0, 1 or 2, got %d", smallest)
	}

	if decimals < 0 {
		return nil, invalidArgument("decimals must not be negative, got %d", decimals)
	}

	deg := a.Degrees()

	sign := 1.0
	if deg < 0 {
		sign = -1
		deg = -deg
	}

	parts := make([]float64, smallest+1)

	parts[0] = deg
	for idx := 1; idx < len(parts); idx++ {
		whole, frac := math.Modf(parts[idx-1])
		parts[idx-1] = whole
		parts[idx] = frac * 60
	}

	last := len(parts) - 1
	parts[last] = roundTo(parts[last], decimals)

	for idx := last; idx > 0; idx-- {
		if parts[idx] >= 60 {
			parts[idx] -= 60
			parts[idx-1] += 1
		}
	}

	for idx, part := range parts {
		if part != 0 {
			parts[idx] = sign * part
		}
	}

	return parts, nil
}

// roundTo rounds value to the given number of decimal places.
func roundTo(value float64, decimals int) float64 {
	scale := math.Pow10(decimals)

	scaled := value * scale
	if math.IsInf(scaled, 0) || math.Abs(scaled) >= 1<<53 {
		// already at or beyond the precision of a float64
		return value
	}

	return math.Round(scaled) / scale
}
