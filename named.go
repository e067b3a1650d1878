package csscolor

// Common colors. These are values, so modifying a copy never affects them.
var (
	Transparent = New(0, 0, 0, 0)
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
)

// namedColors is the fixed set of names understood by Parse.
// It is never modified after initialization.
var namedColors = map[string]Color{
	"transparent": Transparent,
	"white":       White,
	"black":       Black,
}

// Named returns the color registered under name. Names are case-sensitive.
// The returned value is a copy of the table entry.
func Named(name string) (Color, bool) {
	c, ok := namedColors[name]
	return c, ok
}
