// Package angle provides Angle, an immutable planar angle value.
//
// An Angle stores its measure in radians and converts to degrees, gradians,
// turns and degrees-minutes-seconds on demand. Angles can be parsed from and
// formatted to strings like "12.5deg", "0.25turn" or "12° 34′ 56″".
//
// Comparison is circular: two angles are equal if they are congruent modulo
// the full circle, within an epsilon. Use Wrap to reduce an angle into a
// canonical range.
//
// The reciprocal trigonometric and hyperbolic functions return a signed
// infinity at their singularities instead of a huge but finite value.
package angle
