package csscolor

import "math"

// Mix moves c toward other by proportion p and returns c.
// A proportion of 0 or less leaves c unchanged; anything above 1 is
// treated as 1. All four channels are interpolated.
func (c *Color) Mix(other Color, p float64) *Color {
	if p <= 0 {
		return c
	}
	if p > 1 {
		p = 1
	}
	// The conversions keep the products from being fused into FMA
	// instructions, so results are identical on every architecture.
	c.R += float64((other.R - c.R) * p)
	c.G += float64((other.G - c.G) * p)
	c.B += float64((other.B - c.B) * p)
	c.A += float64((other.A - c.A) * p)
	return c
}

// Brighten mixes c toward white by amount, keeping its alpha, and returns c.
func (c *Color) Brighten(amount float64) *Color {
	return c.Mix(Color{R: 1, G: 1, B: 1, A: c.A}, amount)
}

// Darken mixes c toward black by amount, keeping its alpha, and returns c.
func (c *Color) Darken(amount float64) *Color {
	return c.Mix(Color{R: 0, G: 0, B: 0, A: c.A}, amount)
}

// HueShift rotates the hue of c by fraction of a full turn and returns c.
// The shift wraps, so fraction and fraction+1 give the same result.
// Achromatic colors have no hue and are left unchanged.
func (c *Color) HueShift(fraction float64) *Color {
	h, s, v := c.HSV()
	if s == 0 {
		return c
	}
	h = math.Mod(h+fraction, 1)
	if h < 0 {
		h++
	}
	*c = FromHSV(h, s, v, c.A)
	return c
}

// Mixed is the non-mutating form of Mix.
func (c Color) Mixed(other Color, p float64) Color {
	return *c.Mix(other, p)
}

// Brightened is the non-mutating form of Brighten.
func (c Color) Brightened(amount float64) Color {
	return *c.Brighten(amount)
}

// Darkened is the non-mutating form of Darken.
func (c Color) Darkened(amount float64) Color {
	return *c.Darken(amount)
}

// HueShifted is the non-mutating form of HueShift.
func (c Color) HueShifted(fraction float64) Color {
	return *c.HueShift(fraction)
}
