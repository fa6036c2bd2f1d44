package cli

import (
	"github.com/alexanderramin/capgrid/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Planning service.PlanningService
	Notices  *NoticeRouter

	// WeeksShown is the default number of week columns rendered.
	WeeksShown int

	// IsInteractive reports whether stdin is a terminal. Nil means false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) weeksShown() int {
	if a.WeeksShown <= 0 {
		return 8
	}
	return a.WeeksShown
}

// NewRootCmd creates the top-level "capgrid" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Notices == nil {
		app.Notices = NewNoticeRouter()
	}

	root := &cobra.Command{
		Use:           "capgrid",
		Short:         "Capacity planning grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newViewsCmd(app),
		newShowCmd(app),
		newEditCmd(app),
		newApplyCmd(app),
		newReviewCmd(app),
		newTUICmd(app),
	)

	return root
}
