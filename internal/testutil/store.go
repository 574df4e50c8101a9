package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/atomicstack/groupme-info/internal/store"
	_ "modernc.org/sqlite"
)

// GroupID identifies the group written by NewStore.
const GroupID = "1001"

// SeedYAML is the fixture imported by NewStore. The motd command is written
// without a description; NewStore then corrupts its usage counter.
const SeedYAML = `
group:
  id: "1001"
  name: friends
  messages: 420
  likes: 99
  members: 2
  most_liked: {text: "first!", likes: 12}
  created: 2019-04-01T10:00:00Z
  updated: 2020-05-01T10:00:00Z
members:
  - {user_id: u1, username: ann, messages: 300, likes: 70, likes_given: 20, mod: true}
  - {user_id: u2, username: bob, messages: 120, likes: 29, likes_given: 50}
commands:
  - {name: ls, response: "bin etc usr", description: "Lists files", times_used: 7}
  - {name: cd, response: "ok", description: "change directory", times_used: "2"}
  - {name: motd, response: "hello"}
`

// NewStore returns a store in a temporary directory seeded with SeedYAML.
func NewStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "groupme.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	seed, err := store.ParseSeed([]byte(SeedYAML))
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}
	if _, err := s.Import(context.Background(), seed); err != nil {
		t.Fatalf("import seed: %v", err)
	}
	Exec(t, path, `UPDATE commands SET times_used = 'often' WHERE command = 'motd'`)
	return s
}

// Exec runs a statement against the database file through a separate handle,
// mimicking the bot writing behind the viewer's back.
func Exec(t *testing.T, path, query string, args ...interface{}) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
