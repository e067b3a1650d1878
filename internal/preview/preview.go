// Package preview renders colors as terminal chips.
package preview

import (
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/csscolor"
)

// Renderer draws chips for a particular output.
// Color output is only produced when the output supports it.
type Renderer struct {
	r *lipgloss.Renderer
}

// New creates a Renderer for w.
func New(w io.Writer) *Renderer {
	return &Renderer{r: lipgloss.NewRenderer(w)}
}

// Chip renders label on a background of c with a readable foreground.
// Terminals have no alpha, so the chip shows c fully opaque.
func (p *Renderer) Chip(c csscolor.Color, label string) string {
	opaque := csscolor.RGB(c.R, c.G, c.B)
	return p.r.NewStyle().
		Background(lipgloss.Color(rgbHex(opaque))).
		Foreground(lipgloss.Color(rgbHex(opaque.Readable()))).
		Padding(0, 1).
		Render(label)
}

// Strip renders a chip for each color side by side, labelled with its CSS.
func (p *Renderer) Strip(colors []csscolor.Color) string {
	chips := make([]string, len(colors))
	for i, c := range colors {
		chips[i] = p.Chip(c, c.CSS())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// rgbHex returns c as "#rrggbb", the form terminal color parsers accept.
func rgbHex(c csscolor.Color) string {
	return c.CSS()[:7]
}
