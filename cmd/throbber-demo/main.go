package main

import (
	"fmt"
	"os"
	"time"

	"throbber/internal/debug"
	"throbber/internal/version"
	"throbber/pkg/config"
	"throbber/pkg/gui/icons"
	"throbber/pkg/gui/theme"
	"throbber/pkg/symbols"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func runDemo(prefs config.DemoState) error {
	logger := debug.InitDebugLogger()
	defer logger.Close()

	debug.DebugLog("starting gallery %s: columns=%d tick=%s mode=%s", version.Short(), prefs.Columns, prefs.Tick(), prefs.Mode)

	p := tea.NewProgram(newModel(prefs, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var (
		showVersion bool
		noColor     bool
		nerdFonts   bool
		columns     int
		tick        time.Duration
		mode        string
	)

	rootCmd := &cobra.Command{
		Use:   "throbber-demo",
		Short: "A gallery of terminal throbbers",
		Long: `throbber-demo animates every built-in symbol set side by side.

Keys:
  space    pause or resume
  →/l ←/h  step every throbber forward or back
  r        jump to random frames
  m        cycle full / empty / spin
  +/-      change the number of columns
  ?        show all keybindings
  q        quit

Preferences are saved to $THROBBER_HOME/state.json (default ~/.throbber).

Examples:
  throbber-demo --columns 3 --tick 100ms
  throbber-demo list
  throbber-demo once --set clock --label "Waiting..."`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}
			if cmd.Flags().Changed("nerd-fonts") {
				icons.SetNerdFonts(nerdFonts)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Long(cmd.Name()))
				return nil
			}

			prefs, err := config.GetDemoState()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to load preferences: %v\n", err)
			}

			if cmd.Flags().Changed("columns") {
				prefs.Columns = columns
			}
			if cmd.Flags().Changed("tick") {
				if tick < config.MinTick {
					return fmt.Errorf("tick %s is too short (minimum %s)", tick, config.MinTick)
				}
				prefs.TickMillis = int(tick / time.Millisecond)
			}
			if cmd.Flags().Changed("mode") {
				use, ok := symbols.ParseWhichUse(mode)
				if !ok {
					return fmt.Errorf("unknown mode %q (want full, empty or spin)", mode)
				}
				prefs.Mode = use.String()
			}

			return runDemo(prefs)
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().IntVarP(&columns, "columns", "c", 4, "Number of grid columns")
	rootCmd.Flags().DurationVarP(&tick, "tick", "t", 250*time.Millisecond, "Time between frames")
	rootCmd.Flags().StringVarP(&mode, "mode", "m", "spin", "Glyph to show: full, empty or spin")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colors")
	rootCmd.PersistentFlags().BoolVar(&nerdFonts, "nerd-fonts", false, "Force Nerd Font icons on or off")

	rootCmd.AddCommand(newListCmd(), newOnceCmd())
	return rootCmd
}

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color(theme.ErrorStatus)).
	Bold(true)

func main() {
	rootCmd := newRootCmd()
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}
