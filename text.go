package angle

import (
	"encoding"
	"strconv"
)

var (
	_ encoding.TextMarshaler   = Angle{}
	_ encoding.TextUnmarshaler = (*Angle)(nil)
)

// MarshalText encodes the angle in radians, using the shortest
// representation that reads back to the exact same value.
func (a Angle) MarshalText() ([]byte, error) {
	if !a.IsFinite() {
		return nil, invalidArgument("can not encode non finite angle %v", a.rad)
	}

	text := strconv.AppendFloat(nil, a.rad, 'g', -1, 64)
	return append(text, string(StyleRad)...), nil
}

// UnmarshalText accepts everything that Parse accepts.
func (a *Angle) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}
