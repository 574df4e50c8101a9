package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/groupme-info/internal/app"
	"github.com/atomicstack/groupme-info/internal/panel"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	defaultDBPath = "groupme.db"

	envDBPath     = "GROUPME_INFO_DB"
	envGroupID    = "GROUPME_INFO_GROUP"
	envPanel      = "GROUPME_INFO_PANEL"
	envRefresh    = "GROUPME_INFO_REFRESH"
	envSeed       = "GROUPME_INFO_SEED"
	envWidth      = "GROUPME_INFO_WIDTH"
	envHeight     = "GROUPME_INFO_HEIGHT"
	envShowFooter = "GROUPME_INFO_FOOTER"
	envVerbose    = "GROUPME_INFO_VERBOSE"
	envTrace      = "GROUPME_INFO_TRACE"
	envLogFile    = "GROUPME_INFO_LOG_FILE"
)

// LoadArgs parses configuration from CLI arguments, falling back to the
// given environment for anything not set on the command line.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("groupme-info", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	dbPath := fs.String("db", envOrDefault(env, envDBPath, defaultDBPath), "path to the bot's SQLite database")
	groupID := fs.String("group", envOrDefault(env, envGroupID, ""), "group ID to display (required)")
	initialPanel := fs.String("panel", envOrDefault(env, envPanel, panel.CommandsID), "panel shown at startup ("+strings.Join(panel.IDs(), ", ")+")")
	refresh := fs.Duration("refresh", envOrDuration(env, envRefresh, 2*time.Second), "poll interval for database changes (0 disables polling)")
	seed := fs.String("seed", envOrDefault(env, envSeed, ""), "YAML file imported into the database before start")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show group and panel details in the status line")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			DBPath:     *dbPath,
			GroupID:    strings.TrimSpace(*groupID),
			Panel:      strings.TrimSpace(*initialPanel),
			Refresh:    *refresh,
			SeedPath:   *seed,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"db":      *dbPath,
			"group":   *groupID,
			"panel":   *initialPanel,
			"refresh": refresh.String(),
			"seed":    *seed,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if cfg.App.GroupID == "" {
		return errors.New("a group ID is required (-group or " + envGroupID + ")")
	}
	if strings.TrimSpace(cfg.App.DBPath) == "" {
		return errors.New("database path must not be empty")
	}
	if cfg.App.Panel != "" && !panel.Known(cfg.App.Panel) {
		return fmt.Errorf("unknown panel %q (want one of %s)", cfg.App.Panel, strings.Join(panel.IDs(), ", "))
	}
	if cfg.App.Refresh < 0 {
		return fmt.Errorf("refresh must be >= 0 (got %s)", cfg.App.Refresh)
	}
	return nil
}
