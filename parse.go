package csscolor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned by ParseStrict when text matches none of the
// supported color grammars.
var ErrInvalidColor = errors.New("csscolor: invalid color")

// snapEpsilon is the distance from 0 or 1 within which a functional
// component is snapped to the boundary.
const snapEpsilon = 0.00001

// funcPattern matches rgb(), hsv() and hsl() with an optional alpha suffix.
var funcPattern = regexp.MustCompile(
	`(?i)\b(rgb|hsv|hsl)a?\s*\(\s*` +
		`(` + numberPattern + `%?)\s*,\s*` +
		`(` + numberPattern + `%?)\s*,\s*` +
		`(` + numberPattern + `%?)\s*` +
		`(?:,\s*(` + numberPattern + `%?)\s*)?\)`)

const numberPattern = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`

// slotMax holds the value a bare number is divided by, per function and slot.
// The fourth slot is always alpha.
var slotMax = map[string][4]float64{
	"rgb": {255, 255, 255, 255},
	"hsv": {360, 100, 100, 255},
	"hsl": {360, 100, 100, 255},
}

// Parse converts CSS-like color text to a Color.
//
// Supported forms, tried in this order:
//   - named colors: "transparent", "white", "black" (case-sensitive)
//   - "#RRGGBB" and "#RRGGBBAA"
//   - "#RGB" and "#RGBA", each digit duplicated
//   - "rgb(r, g, b[, a])", "hsv(h, s, v[, a])", "hsl(h, s, l[, a])",
//     case-insensitive, with an optional "a" suffix on the name
//
// Parse never fails. Text that matches none of the forms yields
// Transparent. Use ParseStrict to detect unrecognized input.
func Parse(text string) Color {
	c, err := ParseStrict(text)
	if err != nil {
		Logger().Debug("csscolor: falling back to transparent", "text", text)
		return Transparent
	}
	return c
}

// ParseStrict is like Parse but returns ErrInvalidColor instead of
// falling back to Transparent.
func ParseStrict(text string) (Color, error) {
	if c, ok := Named(text); ok {
		return c, nil
	}
	if c, ok := parseHex(text); ok {
		return c, nil
	}
	if c, ok := parseFunc(text); ok {
		return c, nil
	}
	return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, text)
}

// parseHex handles the "#RRGGBB[AA]" and "#RGB[A]" forms.
func parseHex(text string) (Color, bool) {
	if len(text) < 2 || text[0] != '#' {
		return Color{}, false
	}
	digits := text[1:]

	var ch [4]uint8
	ch[3] = 255

	switch len(digits) {
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(digits)/2; i++ {
			hi, ok1 := hexValue(digits[2*i])
			lo, ok2 := hexValue(digits[2*i+1])
			if !ok1 || !ok2 {
				return Color{}, false
			}
			ch[i] = hi<<4 | lo
		}
	case 3, 4: // RGB, RGBA
		for i := 0; i < len(digits); i++ {
			v, ok := hexValue(digits[i])
			if !ok {
				return Color{}, false
			}
			ch[i] = v * 17
		}
	default:
		return Color{}, false
	}

	return Color{
		R: float64(ch[0]) / 255,
		G: float64(ch[1]) / 255,
		B: float64(ch[2]) / 255,
		A: float64(ch[3]) / 255,
	}, true
}

// hexValue decodes a single hexadecimal digit.
func hexValue(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// parseFunc handles rgb(), hsv() and hsl() with optional alpha.
func parseFunc(text string) (Color, bool) {
	m := funcPattern.FindStringSubmatch(text)
	if m == nil {
		return Color{}, false
	}

	name := strings.ToLower(m[1])
	maxima := slotMax[name]

	var v [4]float64
	v[3] = 1
	for i, comp := range m[2:6] {
		if comp == "" {
			continue
		}
		x, ok := parseComponent(comp, maxima[i])
		if !ok {
			return Color{}, false
		}
		v[i] = x
	}

	switch name {
	case "hsv":
		return FromHSV(v[0], v[1], v[2], v[3]), true
	case "hsl":
		return FromHSL(v[0], v[1], v[2], v[3]), true
	default:
		return New(v[0], v[1], v[2], v[3]), true
	}
}

// parseComponent converts "n" or "n%" to a unit value, dividing bare
// numbers by limit and percentages by 100.
func parseComponent(s string, limit float64) (float64, bool) {
	div := limit
	if strings.HasSuffix(s, "%") {
		s = s[:len(s)-1]
		div = 100
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return snapUnit(x / div), true
}

// snapUnit snaps values within snapEpsilon of 0 or 1 to exactly 0 or 1.
func snapUnit(x float64) float64 {
	switch {
	case x > -snapEpsilon && x < snapEpsilon:
		return 0
	case x > 1-snapEpsilon && x < 1+snapEpsilon:
		return 1
	default:
		return x
	}
}
