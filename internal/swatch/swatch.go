// Package swatch renders colors as labelled tiles in a PNG image.
package swatch

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/csscolor"
)

// ErrNoColors is returned when Render is called without colors.
var ErrNoColors = errors.New("swatch: no colors to render")

// Option configures Render.
type Option func(*options)

type options struct {
	tileSize  int
	columns   int
	checkSize int
	labels    bool
	fontSize  float64
}

func defaultOptions() options {
	return options{
		tileSize:  96,
		columns:   8,
		checkSize: 8,
		labels:    true,
		fontSize:  11,
	}
}

// WithTileSize sets the edge length of each tile in pixels.
func WithTileSize(px int) Option {
	return func(o *options) {
		if px > 0 {
			o.tileSize = px
		}
	}
}

// WithColumns sets the maximum number of tiles per row.
func WithColumns(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.columns = n
		}
	}
}

// WithLabels enables or disables the CSS label drawn on each tile.
func WithLabels(on bool) Option {
	return func(o *options) {
		o.labels = on
	}
}

// checkerLight and checkerDark are the backdrop that makes alpha visible.
var (
	checkerLight = csscolor.RGB(0.86, 0.86, 0.86)
	checkerDark  = csscolor.RGB(0.66, 0.66, 0.66)
	checkerMid   = checkerLight.Mixed(checkerDark, 0.5)
)

// Render draws one tile per color, left to right and top to bottom.
func Render(colors []csscolor.Color, opts ...Option) (*image.RGBA, error) {
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cols := min(o.columns, len(colors))
	rows := (len(colors) + cols - 1) / cols
	img := image.NewRGBA(image.Rect(0, 0, cols*o.tileSize, rows*o.tileSize))
	drawChecker(img, o.checkSize)

	var face font.Face
	if o.labels {
		f, err := labelFace(o.fontSize)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		face = f
	}

	for i, c := range colors {
		x, y := (i%cols)*o.tileSize, (i/cols)*o.tileSize
		tile := image.Rect(x, y, x+o.tileSize, y+o.tileSize)
		draw.Draw(img, tile, image.NewUniform(c), image.Point{}, draw.Over)

		if face != nil {
			drawLabel(img, tile, face, c)
		}
	}

	csscolor.Logger().Debug("swatch: rendered", "colors", len(colors), "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// drawChecker fills img with a two-tone checkerboard of size px squares.
func drawChecker(img *image.RGBA, px int) {
	b := img.Bounds()
	light, dark := image.NewUniform(checkerLight), image.NewUniform(checkerDark)
	for y := b.Min.Y; y < b.Max.Y; y += px {
		for x := b.Min.X; x < b.Max.X; x += px {
			src := light
			if (x/px+y/px)%2 == 1 {
				src = dark
			}
			draw.Draw(img, image.Rect(x, y, x+px, y+px).Intersect(b), src, image.Point{}, draw.Src)
		}
	}
}

// drawLabel writes the CSS text of c centered near the bottom of tile,
// in whichever of black or white reads better on the composited color.
func drawLabel(img *image.RGBA, tile image.Rectangle, face font.Face, c csscolor.Color) {
	text := c.CSS()
	shown := checkerMid.Mixed(csscolor.RGB(c.R, c.G, c.B), c.A)

	width := font.MeasureString(face, text).Round()
	x := tile.Min.X + (tile.Dx()-width)/2
	y := tile.Max.Y - tile.Dy()/8

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(shown.Readable()),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

var parseLabelFont = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// labelFace returns a new Go Regular face at size points.
func labelFace(size float64) (font.Face, error) {
	f, err := parseLabelFont()
	if err != nil {
		return nil, fmt.Errorf("swatch: parse label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("swatch: create label face: %w", err)
	}
	return face, nil
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
