package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/groupme-info/internal/backend"
	"github.com/atomicstack/groupme-info/internal/logging/events"
	"github.com/atomicstack/groupme-info/internal/store"
	"github.com/atomicstack/groupme-info/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	DBPath     string
	GroupID    string
	Panel      string
	Refresh    time.Duration
	SeedPath   string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Exit(err) }()

	ctx := context.Background()
	st, snap, err := Prepare(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var watcher *backend.Watcher
	if cfg.Refresh > 0 {
		watcher = backend.NewWatcher(st, cfg.GroupID, cfg.Refresh)
		defer func() {
			watcher.Stop()
			watcher.Wait()
		}()
	}

	model := ui.NewModel(ModelOptions(cfg, snap, st, watcher))
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Prepare opens the store, imports the seed file when one is configured and
// loads the initial snapshot of the group.
func Prepare(ctx context.Context, cfg Config) (*store.Store, store.Snapshot, error) {
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, store.Snapshot{}, err
	}
	events.Store.Open(st.Path())

	if cfg.SeedPath != "" {
		seed, err := store.LoadSeed(cfg.SeedPath)
		if err != nil {
			st.Close()
			return nil, store.Snapshot{}, err
		}
		n, err := st.Import(ctx, seed)
		if err != nil {
			st.Close()
			return nil, store.Snapshot{}, fmt.Errorf("import %s: %w", cfg.SeedPath, err)
		}
		events.Store.Import(cfg.SeedPath, n)
	}

	snap, err := st.Snapshot(ctx, cfg.GroupID)
	if err != nil {
		st.Close()
		return nil, store.Snapshot{}, fmt.Errorf("load group %s: %w", cfg.GroupID, err)
	}
	events.Store.Snapshot(cfg.GroupID, len(snap.Commands), snap.Group.Found)
	return st, snap, nil
}

// ModelOptions maps application config onto UI options.
func ModelOptions(cfg Config, snap store.Snapshot, source backend.Source, watcher *backend.Watcher) ui.Options {
	return ui.Options{
		GroupID:      cfg.GroupID,
		Width:        cfg.Width,
		Height:       cfg.Height,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		InitialPanel: cfg.Panel,
		Snapshot:     snap,
		Source:       source,
		Watcher:      watcher,
	}
}
