package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/groupme-info/internal/app"
	"github.com/atomicstack/groupme-info/internal/config"
	"github.com/atomicstack/groupme-info/internal/logging"
)

func TestProbeTerminalsCoversStandardDescriptors(t *testing.T) {
	report := probeTerminals()
	if len(report.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(report.Probes))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if report.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, report.Probes[i].Name)
		}
	}
	if report.Detected != nil && !report.Probes[0].IsTerminal && !report.Probes[1].IsTerminal && !report.Probes[2].IsTerminal {
		t.Fatalf("detected terminal without a terminal probe: %#v", report)
	}
}

func TestStartupPayloadIncludesFlagsAndGroup(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			DBPath:   "groupme.db",
			GroupID:  "1001",
			Panel:    "stats",
			Refresh:  2 * time.Second,
			SeedPath: "seed.yaml",
			Width:    80,
			Height:   24,
		},
		Logging: config.Logging{FilePath: "trace.log", Trace: true},
		Flags: map[string]string{
			"group":   "1001",
			"refresh": "2s",
			"width":   "80",
		},
		Args: []string{"-group", "1001"},
	}

	payload := startupPayload(cfg, terminalReport{})

	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flags["group"] != "1001" || flags["refresh"] != "2s" || flags["width"] != "80" {
		t.Fatalf("unexpected flags %v", flags)
	}
	if flags["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flags["trace"])
	}
	if flags["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flags["logFile"])
	}
	if payload["group"] != "1001" || payload["panel"] != "stats" || payload["refresh"] != "2s" {
		t.Fatalf("unexpected payload %v", payload)
	}
	if payload["seed"] != "seed.yaml" {
		t.Fatalf("expected seed path, got %v", payload["seed"])
	}
	if _, ok := payload["tty"].(terminalReport); !ok {
		t.Fatalf("expected terminal report in payload")
	}
}

func TestStartupPayloadOmitsEmptySeed(t *testing.T) {
	payload := startupPayload(config.Config{App: app.Config{GroupID: "1"}}, terminalReport{})
	if _, ok := payload["seed"]; ok {
		t.Fatalf("expected no seed entry, got %v", payload["seed"])
	}
}

func TestRunRejectsInvalidConfiguration(t *testing.T) {
	var stderr strings.Builder
	called := false
	code := run([]string{"-db", "x.db"}, nil, &stderr, func(app.Config) error {
		called = true
		return nil
	})
	if code != exitConfig {
		t.Fatalf("expected exit code %d, got %d", exitConfig, code)
	}
	if called {
		t.Fatalf("expected app not to start")
	}
	if !strings.Contains(stderr.String(), "Configuration error: a group ID is required") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	var stderr strings.Builder
	code := run([]string{"-bogus"}, nil, &stderr, func(app.Config) error { return nil })
	if code != exitConfig {
		t.Fatalf("expected exit code %d, got %d", exitConfig, code)
	}
}

func TestRunPassesEnvironmentToApp(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "run.log")
	t.Cleanup(func() { logging.Configure("") })
	var stderr strings.Builder
	var got app.Config
	code := run(nil, []string{"GROUPME_INFO_GROUP=77", "GROUPME_INFO_LOG_FILE=" + logPath}, &stderr, func(cfg app.Config) error {
		got = cfg
		return nil
	})
	if probeTerminals().Detected == nil {
		if code != exitError || !strings.Contains(stderr.String(), "no terminal attached") {
			t.Fatalf("expected no-terminal error, got code %d stderr %q", code, stderr.String())
		}
		return
	}
	if code != exitOK {
		t.Fatalf("expected exit code 0, got %d (%s)", code, stderr.String())
	}
	if got.GroupID != "77" {
		t.Fatalf("expected group from environment, got %q", got.GroupID)
	}
}
