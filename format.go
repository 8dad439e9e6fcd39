package angle

import (
	"slices"
	"strconv"
	"strings"
)

// Style selects the representation used by Format.
type Style string

const (
	StyleRad  Style = "rad"
	StyleDeg  Style = "deg"
	StyleGrad Style = "grad"
	StyleTurn Style = "turn"

	// StyleD formats decimal degrees with a degree sign, like 12.5°
	StyleD Style = "d"

	// StyleDM formats degrees and decimal minutes, like 12° 30.0′
	StyleDM Style = "dm"

	// StyleDMS formats degrees, minutes and decimal seconds, like 12° 34′ 56.0″
	StyleDMS Style = "dms"
)

var styles = [...]Style{StyleRad, StyleDeg, StyleGrad, StyleTurn, StyleD, StyleDM, StyleDMS}

// Styles returns all styles supported by Format. The returned slice
// is a copy and may be modified by the caller.
func Styles() []Style {
	return slices.Clone(styles[:])
}

var dmsSymbols = [...]string{"°", "′", "″"}

// ParseStyle returns the Style with the given name.
func ParseStyle(name string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range styles {
		if style == known {
			return style, nil
		}
	}

	return "", invalidArgument("unknown style %q", name)
}

// Format formats the angle in the given style with the given number of
// decimal places. For the degrees, minutes and seconds styles the
// decimals apply to the smallest component.
//
// The result can be read back using Parse.
func (a Angle) Format(style Style, decimals int) (string, error) {
	if decimals < 0 {
		return "", invalidArgument("decimals must not be negative, got %d", decimals)
	}

	switch style {
	case StyleRad:
		return formatUnit(a.Radians(), decimals, style), nil
	case StyleDeg:
		return formatUnit(a.Degrees(), decimals, style), nil
	case StyleGrad:
		return formatUnit(a.Gradians(), decimals, style), nil
	case StyleTurn:
		return formatUnit(a.Turns(), decimals, style), nil
	case StyleD:
		return a.formatDMS(DMSDegrees, decimals)
	case StyleDM:
		return a.formatDMS(DMSMinutes, decimals)
	case StyleDMS:
		return a.formatDMS(DMSSeconds, decimals)
	default:
		return "", invalidArgument("unknown style %q", style)
	}
}

func formatUnit(value float64, decimals int, style Style) string {
	return strconv.FormatFloat(value, 'f', decimals, 64) + string(style)
}

func (a Angle) formatDMS(smallest DMSUnit, decimals int) (string, error) {
	parts, err := a.ToDMS(smallest, decimals)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	for _, part := range parts {
		if part < 0 {
			// the sign is written once and applies to all components
			sb.WriteByte('-')
			break
		}
	}

	last := len(parts) - 1
	for idx, part := range parts {
		if idx > 0 {
			sb.WriteByte(' ')
		}

		precision := 0
		if idx == last {
			precision = decimals
		}

		if part < 0 {
			part = -part
		}

		sb.WriteString(strconv.FormatFloat(part, 'f', precision, 64))
		sb.WriteString(dmsSymbols[idx])
	}

	return sb.String(), nil
}
