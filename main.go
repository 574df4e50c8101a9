package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/groupme-info/internal/app"
	"github.com/atomicstack/groupme-info/internal/config"
	"github.com/atomicstack/groupme-info/internal/logging"
	"github.com/atomicstack/groupme-info/internal/logging/events"
	"golang.org/x/term"
)

const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

var errNoTerminal = errors.New("no terminal attached; run groupme-info from an interactive shell")

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), os.Stderr, app.Run))
}

// run loads configuration and starts the UI, returning the process exit code.
func run(args, environ []string, stderr io.Writer, start func(app.Config) error) int {
	cfg, err := config.LoadArgs(args, environ)
	if err == nil {
		err = config.Validate(cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Configuration error: %v\n", err)
		return exitConfig
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	tty := probeTerminals()
	events.App.Start(startupPayload(cfg, tty))

	if tty.Detected == nil {
		err = errNoTerminal
	} else {
		err = start(cfg.App)
	}
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// startupPayload describes the launch for the trace log.
func startupPayload(cfg config.Config, tty terminalReport) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"group":   cfg.App.GroupID,
		"db":      cfg.App.DBPath,
		"panel":   cfg.App.Panel,
		"refresh": cfg.App.Refresh.String(),
		"tty":     tty,
	}
	if cfg.App.SeedPath != "" {
		payload["seed"] = cfg.App.SeedPath
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	return payload
}

type terminalReport struct {
	Detected *terminalSize  `json:"detected,omitempty"`
	Probes   []terminalProbe `json:"probes"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// probeTerminals checks the standard descriptors; the first one with a
// readable size is reported as detected.
func probeTerminals() terminalReport {
	files := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	report := terminalReport{Probes: make([]terminalProbe, 0, len(files))}
	for _, f := range files {
		probe := terminalProbe{Name: f.name}
		fd := int(f.file.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				probe.Error = err.Error()
			default:
				probe.Width, probe.Height = width, height
				if report.Detected == nil {
					report.Detected = &terminalSize{Source: f.name, Width: width, Height: height}
				}
			}
		}
		report.Probes = append(report.Probes, probe)
	}
	return report
}
