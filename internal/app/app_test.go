package app

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/atomicstack/groupme-info/internal/logging"
	"github.com/atomicstack/groupme-info/internal/store"
	"github.com/atomicstack/groupme-info/internal/testutil"
	"github.com/atomicstack/groupme-info/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func seededConfig(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	seedPath := filepath.Join(dir, "seed.yaml")
	if err := os.WriteFile(seedPath, []byte(testutil.SeedYAML), 0o644); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	return Config{
		DBPath:   filepath.Join(dir, "groupme.db"),
		GroupID:  testutil.GroupID,
		Panel:    "commands",
		SeedPath: seedPath,
		Width:    80,
		Height:   20,
	}
}

func TestPrepareImportsSeedAndLoadsSnapshot(t *testing.T) {
	cfg := seededConfig(t)
	st, snap, err := Prepare(context.Background(), cfg)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	defer st.Close()
	if !snap.Group.Found || snap.Group.Name != "friends" {
		t.Fatalf("unexpected group %#v", snap.Group)
	}
	if len(snap.Commands) != 3 || len(snap.Mods) != 1 {
		t.Fatalf("expected 3 commands and 1 mod, got %d/%d", len(snap.Commands), len(snap.Mods))
	}
}

func TestPrepareFailsOnMissingSeed(t *testing.T) {
	cfg := seededConfig(t)
	cfg.SeedPath = filepath.Join(t.TempDir(), "absent.yaml")
	if _, _, err := Prepare(context.Background(), cfg); err == nil {
		t.Fatalf("expected error for missing seed file")
	}
}

func TestModelOptionsCarriesConfig(t *testing.T) {
	cfg := seededConfig(t)
	cfg.ShowFooter = true
	opts := ModelOptions(cfg, store.Snapshot{}, nil, nil)
	if opts.GroupID != cfg.GroupID || opts.InitialPanel != "commands" || !opts.ShowFooter {
		t.Fatalf("unexpected options %#v", opts)
	}
	if opts.Width != 80 || opts.Height != 20 {
		t.Fatalf("expected fixed size, got %dx%d", opts.Width, opts.Height)
	}
}

func TestReloadPicksUpRecordedUse(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "app.log"))
	t.Cleanup(func() { logging.Configure("") })

	ctx := context.Background()
	cfg := seededConfig(t)
	st, snap, err := Prepare(ctx, cfg)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	defer st.Close()

	opts := ModelOptions(cfg, snap, st, nil)
	opts.Clipboard = func(string) error { return nil }
	h := ui.NewHarness(ui.NewModel(opts))

	for i := 0; i < 6; i++ {
		if err := st.RecordUse(ctx, cfg.GroupID, "cd"); err != nil {
			t.Fatalf("record use: %v", err)
		}
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlR})
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	var names []string
	for _, e := range h.Model().List().Entries {
		names = append(names, e.Name)
	}
	if !reflect.DeepEqual(names, []string{"cd", "ls", "motd"}) {
		t.Fatalf("expected cd first after reload and sort, got %v", names)
	}
}
