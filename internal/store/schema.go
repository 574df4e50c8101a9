package store

import (
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS groups (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	group_id      TEXT UNIQUE,
	group_name    TEXT,
	message_count INTEGER,
	like_count    INTEGER,
	member_count  INTEGER,
	ml_message    TEXT,
	ml_likes      INTEGER,
	date_created  TEXT,
	last_updated  TEXT
);

CREATE TABLE IF NOT EXISTS members (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id       TEXT,
	group_id      TEXT,
	username      TEXT,
	avatar_url    TEXT,
	message_count INTEGER,
	like_count    INTEGER,
	likes_given   INTEGER,
	is_ignored    INTEGER,
	is_mod        INTEGER,
	UNIQUE(group_id, user_id)
);

CREATE TABLE IF NOT EXISTS commands (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	command     TEXT NOT NULL,
	response    TEXT,
	description TEXT,
	group_id    TEXT,
	times_used  INTEGER,
	UNIQUE(group_id, command)
);

CREATE INDEX IF NOT EXISTS idx_commands_group ON commands(group_id);
CREATE INDEX IF NOT EXISTS idx_members_group ON members(group_id);
`

func ensureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	return nil
}
