// Package color decodes textual hex colors into per-channel intensities for
// keyboard LED requests.
//
// ACCEPTED FORM:
// Exactly six hexadecimal digits, case-insensitive, optionally preceded by a
// single '#' marker. The marker is always accepted, never required:
//
//	FF00FF   ff00ff   #Ff00fF
//
// Anything else is rejected with ErrInvalidColor: empty input, a bare '#',
// shorter or longer digit runs, shorthand forms like "#F0F", "0x" prefixes,
// doubled markers and surrounding whitespace. The codec never clamps, trims or
// guesses; a rejected color is never sent to the controller.
package color

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidColor reports text that is not a six digit hex color.
var ErrInvalidColor = errors.New("invalid color")

// hexDigits is the number of hex digits in an RRGGBB color.
const hexDigits = 6

// Color is a triple of 8-bit channel intensities.
// Values are only produced by Parse, so every channel is in [0,255] by type.
type Color struct {
	R uint8 `json:"red"`
	G uint8 `json:"green"`
	B uint8 `json:"blue"`
}

// Parse decodes a hex color string into a Color.
// Pure: the same input always yields the same result.
func Parse(s string) (Color, error) {
	digits := s
	if len(digits) > 0 && digits[0] == '#' {
		digits = digits[1:]
	}

	if len(digits) != hexDigits {
		return Color{}, fmt.Errorf("%w: %q must be %d hex digits", ErrInvalidColor, s, hexDigits)
	}

	var channels [3]uint8
	for i := range channels {
		pair := digits[i*2 : i*2+2]
		if !isHexPair(pair) {
			return Color{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColor, s)
		}
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		channels[i] = uint8(v)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex renders the color as six uppercase hex digits without a marker.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer using the '#'-prefixed form.
func (c Color) String() string {
	return "#" + c.Hex()
}

// isHexPair reports whether both bytes are ASCII hex digits.
func isHexPair(pair string) bool {
	for i := 0; i < len(pair); i++ {
		ch := pair[i]
		if !((ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')) {
			return false
		}
	}
	return true
}
