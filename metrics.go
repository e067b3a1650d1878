package csscolor

import "math"

// Brightness returns the perceived brightness of c using BT.601 weights.
// Alpha is ignored.
func (c Color) Brightness() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsLight reports whether c has a brightness of at least 0.5.
func (c Color) IsLight() bool {
	return c.Brightness() >= 0.5
}

// Luminance returns the WCAG relative luminance of c.
func (c Color) Luminance() float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// linearize converts a gamma-encoded channel to linear light.
// The 0.03928 threshold is the one given by WCAG 2.x.
func linearize(x float64) float64 {
	if x <= 0.03928 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between c and other.
// The result is symmetric and lies in [1, 21].
func (c Color) ContrastRatio(other Color) float64 {
	l1, l2 := c.Luminance(), other.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// PerceptualDistance returns a brightness-weighted RGB distance between c
// and other in [0, 1]. Alpha is ignored.
func (c Color) PerceptualDistance(other Color) float64 {
	dr := c.R - other.R
	dg := c.G - other.G
	db := c.B - other.B
	return math.Sqrt(0.299*dr*dr + 0.587*dg*dg + 0.114*db*db)
}

// Readable returns whichever candidate has the highest contrast ratio
// against c. With no candidates it chooses between Black and White.
// Ties go to the earlier candidate.
func (c Color) Readable(candidates ...Color) Color {
	if len(candidates) == 0 {
		candidates = []Color{Black, White}
	}
	best := candidates[0]
	bestRatio := c.ContrastRatio(best)
	for _, cand := range candidates[1:] {
		if r := c.ContrastRatio(cand); r > bestRatio {
			best, bestRatio = cand, r
		}
	}
	return best
}
