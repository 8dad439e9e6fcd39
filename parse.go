package angle

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const numberPattern = `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`

var (
	// a number with a unit, like "12.5deg" or "-1e-3 RAD"
	unitPattern = regexp.MustCompile(
		`^([+-]?` + numberPattern + `)\s*((?i:rad|deg|grad|turn))$`,
	)

	// degrees, optionally followed by minutes and seconds, like 12°34'56".
	// Seconds are only allowed after minutes.
	dmsPattern = regexp.MustCompile(
		`^([+-]?)(` + numberPattern + `)\s*°` +
			`(?:\s*(` + numberPattern + `)\s*['′]` +
			`(?:\s*(` + numberPattern + `)\s*["″])?)?$`,
	)
)

var (
	errEmptyInput    = errors.New("empty input")
	errUnknownFormat = errors.New("neither a number with unit nor degrees, minutes and seconds")
)

// Parse parses an angle. Accepted are a number followed by one of the units
// rad, deg, grad or turn (case insensitive, optionally separated by spaces),
// or degrees, minutes and seconds like -12°34'56" or 12° 34′ 56″.
//
// A sign in front of a degrees, minutes and seconds expression applies
// to all components.
func Parse(text string) (Angle, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Angle{}, &ParseError{Input: text, Err: errEmptyInput}
	}

	if match := unitPattern.FindStringSubmatch(trimmed); match != nil {
		value, err := parseNumber(match[1])
		if err != nil {
			return Angle{}, &ParseError{Input: text, Err: err}
		}

		switch Style(strings.ToLower(match[2])) {
		case StyleRad:
			return FromRadians(value), nil
		case StyleDeg:
			return FromDegrees(value), nil
		case StyleGrad:
			return FromGradians(value), nil
		case StyleTurn:
			return FromTurns(value), nil
		}
	}

	if match := dmsPattern.FindStringSubmatch(trimmed); match != nil {
		var parts [3]float64

		for idx, part := range match[2:] {
			if part == "" {
				continue
			}

			value, err := parseNumber(part)
			if err != nil {
				return Angle{}, &ParseError{Input: text, Err: err}
			}

			if match[1] == "-" {
				value = -value
			}

			parts[idx] = value
		}

		return FromDMS(parts[0], parts[1], parts[2]), nil
	}

	return Angle{}, &ParseError{Input: text, Err: errUnknownFormat}
}

// TryParse is like Parse, but reports failure with a boolean instead of an error.
func TryParse(text string) (Angle, bool) {
	a, err := Parse(text)
	if err != nil {
		return Angle{}, false
	}

	return a, true
}

// MustParse is like Parse, but panics on error.
func MustParse(text string) Angle {
	a, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return a
}

func parseNumber(text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", text, err)
	}

	return value, nil
}
