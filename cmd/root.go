// Package cmd wires the command-line surface. The bare `grocer` command
// starts the interactive TUI; subcommands cover quick non-interactive use.
package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/multyp/grocer/internal/config"
	"github.com/multyp/grocer/internal/database"
	"github.com/multyp/grocer/internal/logging"
	itemsvc "github.com/multyp/grocer/internal/services/item"
	listsvc "github.com/multyp/grocer/internal/services/list"
	"github.com/multyp/grocer/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "grocer",
	Short: "Grocer - a grocery list manager for your terminal",
	Long:  `Grocer keeps named grocery lists with checkable items in a local SQLite database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setup(cmd.Context())
		if err != nil {
			return err
		}
		defer app.close()

		model := tui.InitialModel(app.lists, app.items, app.cfg)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// app bundles the initialized services shared by all commands
type app struct {
	cfg   *config.Config
	store *database.Store
	lists listsvc.Service
	items itemsvc.Service
}

func (a *app) close() {
	if err := a.store.Close(); err != nil {
		fmt.Printf("error closing store: %v\n", err)
	}
}

// setup initializes logging, config, and the store, in that order
func setup(ctx context.Context) (*app, error) {
	if err := logging.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	store := database.New(cfg.Database.Path)
	if err := store.Init(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &app{
		cfg:   cfg,
		store: store,
		lists: listsvc.NewService(store),
		items: itemsvc.NewService(store),
	}, nil
}
