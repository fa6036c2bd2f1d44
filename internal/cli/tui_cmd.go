package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	var viewFlag string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive planning grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := parseView(viewFlag)
			if err != nil {
				return err
			}
			if !app.interactive() {
				return fmt.Errorf("tui needs an interactive terminal; use 'capgrid show' instead")
			}
			defer app.Notices.Use(nil)

			p := tea.NewProgram(newGridModel(app, view),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	addViewFlag(cmd.Flags(), &viewFlag)
	return cmd
}
