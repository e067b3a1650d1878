// Package csscolor parses, converts and manipulates RGBA colors.
//
// # Overview
//
// A [Color] holds four float64 channels, nominally in [0, 1]. Colors are
// created from text with [Parse], from HSV or HSL parameters with [FromHSV]
// and [FromHSL], or directly with [New] and [RGB]. They are written back as
// CSS with [Color.CSS], which always yields a lowercase "#rrggbbaa" string.
//
// # Quick Start
//
//	import "github.com/gogpu/csscolor"
//
//	c := csscolor.Parse("hsl(210, 60%, 40%)")
//	c.Brighten(0.2).HueShift(0.5)
//	fmt.Println(c.CSS(), c.ContrastRatio(csscolor.White))
//
// # Parsing
//
// Parse accepts named colors ("transparent", "white", "black"), hex forms
// with 3, 4, 6 or 8 digits, and rgb(), hsv() and hsl() with an optional
// alpha suffix and component. It never fails: unrecognized text yields
// [Transparent]. [ParseStrict] reports such text as [ErrInvalidColor], and
// [Parser] adds a bounded cache in front of either behavior.
//
// # Range Handling
//
// Channels are not validated on construction. Mixing, brightening and
// darkening may move them outside [0, 1]; they are clamped only when
// quantized by [Color.CSS], [Color.Bytes] or [Color.RGBA].
//
// # Mutation
//
// Mix, Brighten, Darken and HueShift mutate the receiver and return it so
// calls can be chained. Mixed, Brightened, Darkened and HueShifted return a
// modified copy instead.
//
// # Metrics
//
// [Color.Brightness] and [Color.PerceptualDistance] use BT.601 weights.
// [Color.Luminance] and [Color.ContrastRatio] follow WCAG 2.x.
package csscolor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
