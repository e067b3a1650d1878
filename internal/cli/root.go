// Package cli implements the csscolor command line tool.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/csscolor"
	"github.com/gogpu/csscolor/internal/preview"
)

// app holds state shared by all commands of one invocation.
type app struct {
	verbose bool
	strict  bool
	lang    string
	noChips bool

	parser  *csscolor.Parser
	printer *message.Printer
	preview *preview.Renderer
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "csscolor",
		Short: "Parse, inspect and transform CSS colors",
		Long: `csscolor reads colors written as names, hex (#rgb, #rgba, #rrggbb,
#rrggbbaa) or rgb()/hsv()/hsl() notation and prints their canonical
#rrggbbaa form, accessibility metrics and transformed variants.`,
		Version:      csscolor.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetVersionTemplate(`{{printf "csscolor version %s\n" .Version}}`)

	pf := root.PersistentFlags()
	pf.BoolVar(&a.verbose, "verbose", false, "log debug output to stderr")
	pf.BoolVar(&a.strict, "strict", false, "reject unrecognized colors instead of using transparent")
	pf.StringVar(&a.lang, "lang", "en", "language tag used to format numbers")
	pf.BoolVar(&a.noChips, "no-preview", false, "do not print color chips")

	root.AddCommand(
		newParseCmd(a),
		newContrastCmd(a),
		newDistanceCmd(a),
		newMixCmd(a),
		newAdjustCmd(a, "brighten", "Mix colors toward white", (*csscolor.Color).Brighten),
		newAdjustCmd(a, "darken", "Mix colors toward black", (*csscolor.Color).Darken),
		newShiftCmd(a),
		newSwatchCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.verbose {
		csscolor.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	tag, err := language.Parse(a.lang)
	if err != nil {
		return fmt.Errorf("invalid --lang %q: %w", a.lang, err)
	}
	a.printer = message.NewPrinter(tag)
	a.parser = csscolor.NewParser(csscolor.WithStrict(a.strict))
	a.preview = preview.New(cmd.OutOrStdout())
	return nil
}

// parseAll parses every argument, stopping at the first error.
func (a *app) parseAll(args []string) ([]csscolor.Color, error) {
	colors := make([]csscolor.Color, 0, len(args))
	for _, arg := range args {
		c, err := a.parser.Parse(arg)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// printColor writes c with an optional chip in front.
func (a *app) printColor(w io.Writer, c csscolor.Color) {
	if a.noChips {
		fmt.Fprintln(w, c.CSS())
		return
	}
	fmt.Fprintf(w, "%s %s\n", a.preview.Chip(c, "  "), c.CSS())
}
