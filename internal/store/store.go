package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultDescription is assigned to commands created without one.
const DefaultDescription = "No description added yet!"

// ErrGroupNotFound is returned when a group has no row in the groups table.
var ErrGroupNotFound = errors.New("group not found")

// Command is a user-defined chat command as stored by the bot.
type Command struct {
	Name           string
	Response       string
	Description    string
	HasDescription bool
	TimesUsed      int
}

// MostLiked describes the group's most liked message.
type MostLiked struct {
	Text  string
	Likes int
}

// Group carries the per-group counters shown on the group panel.
type Group struct {
	ID          string
	Name        string
	Messages    int
	Likes       int
	Members     int
	MostLiked   MostLiked
	Created     time.Time
	LastUpdated time.Time
	Found       bool
}

// Member is a tracked group member.
type Member struct {
	UserID     string
	Username   string
	AvatarURL  string
	Messages   int
	Likes      int
	LikesGiven int
	Ignored    bool
	Mod        bool
}

// Snapshot bundles everything the viewer needs for one group.
type Snapshot struct {
	Group    Group
	Mods     []Member
	Members  []Member
	Commands []Command
}

// Store wraps the bot's SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("open store: empty path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// a single connection keeps in-memory databases coherent across queries
	db.SetMaxOpenConns(1)
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database location the store was opened with.
func (s *Store) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ParseUsage converts a stored usage counter into an int. Missing, invalid
// and negative values count as zero.
func ParseUsage(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Commands returns the group's user-defined commands in insertion order.
func (s *Store) Commands(ctx context.Context, groupID string) ([]Command, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT command, COALESCE(response, ''), description, CAST(times_used AS TEXT)
		FROM commands
		WHERE group_id = ?
		ORDER BY id`, groupID)
	if err != nil {
		return nil, fmt.Errorf("query commands: %w", err)
	}
	defer rows.Close()

	var out []Command
	for rows.Next() {
		var (
			cmd   Command
			desc  sql.NullString
			usage sql.NullString
		)
		if err := rows.Scan(&cmd.Name, &cmd.Response, &desc, &usage); err != nil {
			return nil, fmt.Errorf("scan command: %w", err)
		}
		cmd.Description = desc.String
		cmd.HasDescription = desc.Valid
		cmd.TimesUsed = ParseUsage(usage.String)
		out = append(out, cmd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commands: %w", err)
	}
	return out, nil
}

// Group loads the group row. ErrGroupNotFound is returned when the bot has not
// initialised the group yet.
func (s *Store) Group(ctx context.Context, groupID string) (Group, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT group_id, COALESCE(group_name, ''), COALESCE(message_count, 0),
		       COALESCE(like_count, 0), COALESCE(member_count, 0),
		       COALESCE(ml_message, ''), COALESCE(ml_likes, 0),
		       COALESCE(date_created, ''), COALESCE(last_updated, '')
		FROM groups
		WHERE group_id = ?`, groupID)
	var (
		g       Group
		created string
		updated string
	)
	err := row.Scan(&g.ID, &g.Name, &g.Messages, &g.Likes, &g.Members,
		&g.MostLiked.Text, &g.MostLiked.Likes, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return Group{ID: groupID}, ErrGroupNotFound
	}
	if err != nil {
		return Group{ID: groupID}, fmt.Errorf("query group %s: %w", groupID, err)
	}
	g.Created = parseTime(created)
	g.LastUpdated = parseTime(updated)
	g.Found = true
	return g, nil
}

// Members returns every tracked member of the group ordered by username.
func (s *Store) Members(ctx context.Context, groupID string) ([]Member, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, COALESCE(username, ''), COALESCE(avatar_url, ''),
		       COALESCE(message_count, 0), COALESCE(like_count, 0),
		       COALESCE(likes_given, 0), COALESCE(is_ignored, 0), COALESCE(is_mod, 0)
		FROM members
		WHERE group_id = ?
		ORDER BY username COLLATE NOCASE`, groupID)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.Username, &m.AvatarURL, &m.Messages,
			&m.Likes, &m.LikesGiven, &m.Ignored, &m.Mod); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate members: %w", err)
	}
	return out, nil
}

// Snapshot loads the group, its members and its commands. A missing group row
// is not an error; the returned Group has Found == false.
func (s *Store) Snapshot(ctx context.Context, groupID string) (Snapshot, error) {
	group, err := s.Group(ctx, groupID)
	if err != nil && !errors.Is(err, ErrGroupNotFound) {
		return Snapshot{}, err
	}
	members, err := s.Members(ctx, groupID)
	if err != nil {
		return Snapshot{}, err
	}
	commands, err := s.Commands(ctx, groupID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Group:    group,
		Mods:     ModsOf(members),
		Members:  members,
		Commands: commands,
	}, nil
}

// ModsOf filters the moderators out of members, keeping order.
func ModsOf(members []Member) []Member {
	var mods []Member
	for _, m := range members {
		if m.Mod {
			mods = append(mods, m)
		}
	}
	return mods
}

// AddCommand creates a command with the default description and zero usage.
func (s *Store) AddCommand(ctx context.Context, groupID, name, response string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return errors.New("add command: empty name")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO commands (command, response, description, group_id, times_used)
		VALUES (?, ?, ?, ?, 0)`, name, response, DefaultDescription, groupID)
	if err != nil {
		return fmt.Errorf("add command %s: %w", name, err)
	}
	return nil
}

// RecordUse increments the usage counter of a command, treating a missing or
// invalid counter as zero.
func (s *Store) RecordUse(ctx context.Context, groupID, name string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE commands
		SET times_used = CASE
			WHEN typeof(times_used) = 'integer' AND times_used >= 0 THEN times_used + 1
			ELSE 1
		END
		WHERE group_id = ? AND command = ?`, groupID, strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("record use of %s: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("record use: command !%s does not exist", name)
	}
	return nil
}

func parseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
