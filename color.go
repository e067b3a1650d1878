package csscolor

import (
	"image/color"
	"math"
)

// Color represents a color with red, green, blue, and alpha channels.
// Each channel is nominally in the range [0, 1]. Values outside that range
// are kept as-is and only clamped when the color is serialized.
type Color struct {
	R, G, B, A float64
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// New creates a color from RGBA channels in [0, 1].
func New(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from RGB channels in [0, 1].
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromColor converts a standard color.Color to Color.
// The result is not premultiplied.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// Clone returns an independent copy of c.
func (c Color) Clone() Color {
	return c
}

// RGBA implements the color.Color interface.
// Channels are quantized the same way as CSS and then premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.Bytes()
	return color.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// Bytes returns the channels quantized to [0, 255].
func (c Color) Bytes() (r, g, b, a uint8) {
	return quantize(c.R), quantize(c.G), quantize(c.B), quantize(c.A)
}

// CSS returns the color as a lowercase #rrggbbaa string.
func (c Color) CSS() string {
	var buf [9]byte
	buf[0] = '#'
	r, g, b, a := c.Bytes()
	for i, v := range [4]uint8{r, g, b, a} {
		buf[1+2*i] = hexDigits[v>>4]
		buf[2+2*i] = hexDigits[v&0x0f]
	}
	return string(buf[:])
}

// String implements fmt.Stringer and returns CSS().
func (c Color) String() string {
	return c.CSS()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.CSS()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unlike Parse, unrecognized text is reported as an error.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseStrict(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

const hexDigits = "0123456789abcdef"

// quantize maps a channel in [0, 1] to a byte, rounding half up and
// clamping anything outside the range.
func quantize(x float64) uint8 {
	return uint8(clamp255(math.Round(x * 255)))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 || math.IsNaN(x) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
