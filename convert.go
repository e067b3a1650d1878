package csscolor

import "math"

// FromHSV creates a color from hue, saturation, value and alpha, all in
// [0, 1]. Hue is a fraction of a full turn, so 1/3 is green.
func FromHSV(h, s, v, a float64) Color {
	h6 := h * 6
	sector := math.Floor(h6)
	f := h6 - sector
	i := ((int(sector) % 6) + 6) % 6

	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return Color{R: r, G: g, B: b, A: a}
}

// FromHSL creates a color from hue, saturation, lightness and alpha, all in
// [0, 1].
func FromHSL(h, s, l, a float64) Color {
	if s == 0 {
		return Color{R: l, G: l, B: l, A: a}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return Color{
		R: hueToChannel(p, q, h+1.0/3),
		G: hueToChannel(p, q, h),
		B: hueToChannel(p, q, h-1.0/3),
		A: a,
	}
}

// hueToChannel evaluates one RGB channel of an HSL color.
// t is the hue offset for the channel and is wrapped into [0, 1].
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// HSV returns the hue, saturation and value of c, each in [0, 1].
// Achromatic colors report hue and saturation 0.
func (c Color) HSV() (h, s, v float64) {
	hi, lo := max(c.R, c.G, c.B), min(c.R, c.G, c.B)
	v = hi
	d := hi - lo
	if hi != 0 {
		s = d / hi
	}
	return hue(c, hi, d), s, v
}

// HSL returns the hue, saturation and lightness of c, each in [0, 1].
// Achromatic colors report hue and saturation 0.
func (c Color) HSL() (h, s, l float64) {
	hi, lo := max(c.R, c.G, c.B), min(c.R, c.G, c.B)
	l = (hi + lo) / 2
	d := hi - lo
	if d != 0 {
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
	}
	return hue(c, hi, d), s, l
}

// hue derives the hue of c from its largest channel hi and the spread d
// between largest and smallest channels.
func hue(c Color, hi, d float64) float64 {
	if d == 0 {
		return 0
	}
	var h float64
	switch hi {
	case c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	return h / 6
}
