package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Seed is the YAML document accepted by Import.
type Seed struct {
	Group    SeedGroup     `yaml:"group"`
	Members  []SeedMember  `yaml:"members"`
	Commands []SeedCommand `yaml:"commands"`
}

type SeedGroup struct {
	ID        string        `yaml:"id"`
	Name      string        `yaml:"name"`
	Messages  int           `yaml:"messages"`
	Likes     int           `yaml:"likes"`
	Members   int           `yaml:"members"`
	MostLiked SeedMostLiked `yaml:"most_liked"`
	Created   time.Time     `yaml:"created"`
	Updated   time.Time     `yaml:"updated"`
}

type SeedMostLiked struct {
	Text  string `yaml:"text"`
	Likes int    `yaml:"likes"`
}

type SeedMember struct {
	UserID     string `yaml:"user_id"`
	Username   string `yaml:"username"`
	AvatarURL  string `yaml:"avatar_url"`
	Messages   int    `yaml:"messages"`
	Likes      int    `yaml:"likes"`
	LikesGiven int    `yaml:"likes_given"`
	Ignored    bool   `yaml:"ignored"`
	Mod        bool   `yaml:"mod"`
}

// SeedCommand keeps description and usage optional; usage is accepted as any
// scalar and normalised with ParseUsage.
type SeedCommand struct {
	Name        string  `yaml:"name"`
	Response    string  `yaml:"response"`
	Description *string `yaml:"description"`
	TimesUsed   string  `yaml:"times_used"`
}

// LoadSeed reads and decodes a seed file.
func LoadSeed(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	if strings.TrimSpace(seed.Group.ID) == "" {
		return Seed{}, errors.New("decode seed: group.id is required")
	}
	return seed, nil
}

// Import upserts the seed's group, members and commands in one transaction.
// It returns the number of commands written.
func (s *Store) Import(ctx context.Context, seed Seed) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	g := seed.Group
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO groups (group_id, group_name, message_count, like_count, member_count,
		                    ml_message, ml_likes, date_created, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(group_id) DO UPDATE SET
			group_name = excluded.group_name,
			message_count = excluded.message_count,
			like_count = excluded.like_count,
			member_count = excluded.member_count,
			ml_message = excluded.ml_message,
			ml_likes = excluded.ml_likes,
			date_created = excluded.date_created,
			last_updated = excluded.last_updated`,
		g.ID, g.Name, g.Messages, g.Likes, g.Members,
		g.MostLiked.Text, g.MostLiked.Likes, formatTime(g.Created), formatTime(g.Updated)); err != nil {
		return 0, fmt.Errorf("import group %s: %w", g.ID, err)
	}

	for _, m := range seed.Members {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO members (user_id, group_id, username, avatar_url, message_count,
			                     like_count, likes_given, is_ignored, is_mod)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(group_id, user_id) DO UPDATE SET
				username = excluded.username,
				avatar_url = excluded.avatar_url,
				message_count = excluded.message_count,
				like_count = excluded.like_count,
				likes_given = excluded.likes_given,
				is_ignored = excluded.is_ignored,
				is_mod = excluded.is_mod`,
			m.UserID, g.ID, m.Username, m.AvatarURL, m.Messages,
			m.Likes, m.LikesGiven, m.Ignored, m.Mod); err != nil {
			return 0, fmt.Errorf("import member %s: %w", m.UserID, err)
		}
	}

	written := 0
	for _, c := range seed.Commands {
		name := strings.ToLower(strings.TrimSpace(c.Name))
		if name == "" {
			continue
		}
		var desc interface{}
		if c.Description != nil {
			desc = *c.Description
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO commands (command, response, description, group_id, times_used)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(group_id, command) DO UPDATE SET
				response = excluded.response,
				description = excluded.description,
				times_used = excluded.times_used`,
			name, c.Response, desc, g.ID, ParseUsage(c.TimesUsed)); err != nil {
			return 0, fmt.Errorf("import command %s: %w", name, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return written, nil
}

func formatTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}
