package engine

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidColor = errors.New("invalid color")

// Color is a 24-bit RGB value.
type Color uint32

const colorMask = 0xFFFFFF

func RGB(r, g, b uint8) Color {
	return Color(r)<<16 | Color(g)<<8 | Color(b)
}

func (c Color) RGB() (r, g, b uint8) {
	c &= colorMask
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String renders the color as #RRGGBB with uppercase hex digits.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", uint32(c&colorMask))
}

func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(v), nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
