package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/capgrid/internal/cli"
	"github.com/alexanderramin/capgrid/internal/config"
	"github.com/alexanderramin/capgrid/internal/domain"
	"github.com/alexanderramin/capgrid/internal/importer"
	"github.com/alexanderramin/capgrid/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if _, err := config.LoadEnv([]string{".env", ".env.local"}); err != nil {
		return fmt.Errorf("loading env files: %w", err)
	}
	cfg := config.Load()

	var seeds map[domain.ViewKind][]*domain.PlanningNode
	if cfg.SeedFile != "" {
		view, forest, err := importer.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return fmt.Errorf("loading seed file: %w", err)
		}
		seeds = map[domain.ViewKind][]*domain.PlanningNode{view: forest}
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogEnabled {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	notices := cli.NewNoticeRouter()
	planning := service.NewPlanningService(service.PlanningConfig{
		Seeds:              seeds,
		Anchor:             cfg.Anchor,
		OverallocThreshold: cfg.OverallocThreshold,
		Notifier:           notices,
	}, observer)

	app := &cli.App{
		Planning:   planning,
		Notices:    notices,
		WeeksShown: cfg.WeeksShown,
	}

	// Detect interactive terminal for the edit wizard and the TUI.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
