package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"

	"throbber/pkg/gui/components"
	"throbber/pkg/symbols"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const fallbackWidth = 80

// outputWidth returns the terminal width of stdout, or fallbackWidth when
// stdout is not a terminal.
func outputWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallbackWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallbackWidth
	}
	return width
}

func newOnceCmd() *cobra.Command {
	var (
		setName string
		label   string
		mode    string
		width   int
		seed    uint64
	)

	cmd := &cobra.Command{
		Use:   "once",
		Short: "Print a single random frame and exit",
		Long: `once renders one throbber without keeping any animation state, so every
run shows a random frame. Pass --seed to make the output repeatable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, ok := symbols.Lookup(setName)
			if !ok {
				return fmt.Errorf("unknown symbol set %q (available: %s)", setName, strings.Join(symbols.Names(), ", "))
			}
			use, ok := symbols.ParseWhichUse(mode)
			if !ok {
				return fmt.Errorf("unknown mode %q (want full, empty or spin)", mode)
			}

			th := components.New().ThrobberSet(set).UseType(use)
			if label != "" {
				th = th.Label(label)
			}
			if cmd.Flags().Changed("seed") {
				th = th.Rand(rand.New(rand.NewPCG(seed, seed)))
			}

			if width <= 0 {
				width = outputWidth()
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(th.View(nil, width), " "))
			return nil
		},
	}

	cmd.Flags().StringVarP(&setName, "set", "s", "BRAILLE_SIX", "Symbol set to draw from (see the list command)")
	cmd.Flags().StringVarP(&label, "label", "l", "", "Text shown after the glyph")
	cmd.Flags().StringVarP(&mode, "mode", "m", "spin", "Glyph to show: full, empty or spin")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "Output width in cells (0 uses the terminal width)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the random frame")
	return cmd
}
