package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/csscolor"
	"github.com/gogpu/csscolor/internal/swatch"
)

// WCAG 2.x minimum contrast ratios.
const (
	contrastAA      = 4.5
	contrastAAA     = 7.0
	contrastAALarge = 3.0
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse COLOR...",
		Short: "Print the canonical form and metrics of colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := a.parseAll(args)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, c := range colors {
				if i > 0 {
					fmt.Fprintln(w)
				}
				a.printColor(w, c)

				r, g, b, alpha := c.Bytes()
				h, s, v := c.HSV()
				_, hs, l := c.HSL()
				tone := "dark"
				if c.IsLight() {
					tone = "light"
				}
				p := a.printer
				p.Fprintf(w, "  input       %s\n", args[i])
				p.Fprintf(w, "  rgba        %d, %d, %d, %d\n", r, g, b, alpha)
				p.Fprintf(w, "  hsv         %.1f°, %.1f%%, %.1f%%\n", h*360, s*100, v*100)
				p.Fprintf(w, "  hsl         %.1f°, %.1f%%, %.1f%%\n", h*360, hs*100, l*100)
				p.Fprintf(w, "  brightness  %.4f (%s)\n", c.Brightness(), tone)
				p.Fprintf(w, "  luminance   %.4f\n", c.Luminance())
			}
			return nil
		},
	}
}

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast FOREGROUND BACKGROUND",
		Short: "Print the WCAG contrast ratio between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := a.parseAll(args)
			if err != nil {
				return err
			}
			ratio := colors[0].ContrastRatio(colors[1])

			w := cmd.OutOrStdout()
			a.printer.Fprintf(w, "contrast  %.2f:1\n", ratio)
			a.printer.Fprintf(w, "AA        %s\n", verdict(ratio >= contrastAA))
			a.printer.Fprintf(w, "AA large  %s\n", verdict(ratio >= contrastAALarge))
			a.printer.Fprintf(w, "AAA       %s\n", verdict(ratio >= contrastAAA))
			return nil
		},
	}
}

func verdict(ok bool) string {
	if ok {
		return "pass"
	}
	return "fail"
}

func newDistanceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "distance COLOR COLOR",
		Short: "Print the perceptual distance between two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := a.parseAll(args)
			if err != nil {
				return err
			}
			a.printer.Fprintf(cmd.OutOrStdout(), "%.4f\n", colors[0].PerceptualDistance(colors[1]))
			return nil
		},
	}
}

func newMixCmd(a *app) *cobra.Command {
	var proportion float64
	cmd := &cobra.Command{
		Use:   "mix COLOR OTHER",
		Short: "Interpolate a color toward another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := a.parseAll(args)
			if err != nil {
				return err
			}
			a.printColor(cmd.OutOrStdout(), *colors[0].Mix(colors[1], proportion))
			return nil
		},
	}
	cmd.Flags().Float64VarP(&proportion, "proportion", "p", 0.5, "how far to move toward OTHER, 0 to 1")
	return cmd
}

// newAdjustCmd builds brighten and darken, which share a shape.
func newAdjustCmd(a *app, use, short string, adjust func(*csscolor.Color, float64) *csscolor.Color) *cobra.Command {
	var amount float64
	cmd := &cobra.Command{
		Use:   use + " COLOR...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := a.parseAll(args)
			if err != nil {
				return err
			}
			for i := range colors {
				a.printColor(cmd.OutOrStdout(), *adjust(&colors[i], amount))
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0.2, "proportion to mix, 0 to 1")
	return cmd
}

func newShiftCmd(a *app) *cobra.Command {
	var (
		turns   float64
		degrees float64
	)
	cmd := &cobra.Command{
		Use:   "shift COLOR...",
		Short: "Rotate the hue of colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := a.parseAll(args)
			if err != nil {
				return err
			}
			fraction := turns
			if cmd.Flags().Changed("degrees") {
				fraction = degrees / 360
			}
			for i := range colors {
				a.printColor(cmd.OutOrStdout(), *colors[i].HueShift(fraction))
			}
			return nil
		},
	}
	cmd.Flags().Float64VarP(&turns, "turns", "t", 0.5, "rotation as a fraction of a full turn")
	cmd.Flags().Float64VarP(&degrees, "degrees", "d", 0, "rotation in degrees, overrides --turns")
	cmd.MarkFlagsMutuallyExclusive("turns", "degrees")
	return cmd
}

func newSwatchCmd(a *app) *cobra.Command {
	var (
		output   string
		size     int
		columns  int
		noLabels bool
	)
	cmd := &cobra.Command{
		Use:   "swatch COLOR...",
		Short: "Render colors to a PNG swatch sheet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors, err := a.parseAll(args)
			if err != nil {
				return err
			}
			img, err := swatch.Render(colors,
				swatch.WithTileSize(size),
				swatch.WithColumns(columns),
				swatch.WithLabels(!noLabels),
			)
			if err != nil {
				return err
			}
			if output == "-" {
				return swatch.WritePNG(cmd.OutOrStdout(), img)
			}
			if err := swatch.SavePNG(output, img); err != nil {
				return fmt.Errorf("write swatch: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Swatch saved to %s (%dx%d)\n", output, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "swatch.png", `output file, "-" for stdout`)
	f.IntVar(&size, "size", 96, "tile edge length in pixels")
	f.IntVar(&columns, "columns", 8, "tiles per row")
	f.BoolVar(&noLabels, "no-labels", false, "omit CSS labels")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of csscolor",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "csscolor version %s\n", csscolor.Version)
		},
	}
}
