package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spark/internal/theme"
	"github.com/alexisbeaulieu97/spark/internal/tui/explorer"
)

func newExploreCmd(root *rootFlags) *cobra.Command {
	var label string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Launch the interactive button explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := root.loadTheme()
			if err != nil {
				return err
			}
			themes := []*theme.Theme{first}
			for _, name := range theme.BuiltinNames() {
				if t, _ := theme.Builtin(name); !t.Equal(first) {
					themes = append(themes, t)
				}
			}

			// The program owns the terminal, so publications are not logged.
			m := explorer.NewModel(explorer.Options{Themes: themes, Label: label, Output: os.Stdout})
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVar(&label, "label", "Continue", "Button label")

	return cmd
}
