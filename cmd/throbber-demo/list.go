package main

import (
	"fmt"
	"strconv"
	"strings"

	"throbber/pkg/gui/theme"
	"throbber/pkg/symbols"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	listHeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.AccentColor)).
			Bold(true).
			Padding(0, 1)

	listCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.TextDescription)).
			Padding(0, 1)

	listBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.SeparatorColor))
)

func renderCatalogTable() string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(listBorderStyle).
		Headers("NAME", "FULL", "EMPTY", "FRAMES", "SYMBOLS").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return listCellStyle
		})

	for _, entry := range symbols.Catalog {
		t.Row(
			entry.Name,
			entry.Set.Full,
			entry.Set.Empty,
			strconv.Itoa(entry.Set.Len()),
			strings.Join(entry.Set.Symbols, " "),
		)
	}

	return t.String()
}

func newListCmd() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in symbol sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if namesOnly {
				for _, name := range symbols.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			fmt.Fprintln(out, renderCatalogTable())
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "Print only the set names")
	return cmd
}
