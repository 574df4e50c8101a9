package ui

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/groupme-info/internal/backend"
	"github.com/atomicstack/groupme-info/internal/data/dispatcher"
	"github.com/atomicstack/groupme-info/internal/panel"
	"github.com/atomicstack/groupme-info/internal/state"
	"github.com/atomicstack/groupme-info/internal/store"
	"github.com/atomicstack/groupme-info/internal/theme"
	"github.com/atomicstack/groupme-info/internal/ui/command"
	uistate "github.com/atomicstack/groupme-info/internal/ui/state"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const commandListID = "commands"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	GroupID      string
	Width        int
	Height       int
	ShowFooter   bool
	Verbose      bool
	InitialPanel string
	Snapshot     store.Snapshot
	// Source backs the reload action. Reload is unavailable when nil.
	Source  backend.Source
	Watcher *backend.Watcher
	// Clipboard receives copied text. Defaults to the system clipboard.
	Clipboard func(string) error
	Registry  *panel.Registry
}

// Model implements the Bubble Tea model for the group info screen.
type Model struct {
	list *uistate.List

	registry     *panel.Registry
	links        []panel.Link
	activeLink   int
	visiblePanel string
	viewports    map[string]*viewport.Model

	groupID    string
	groups     state.GroupStore
	commands   state.CommandStore
	dispatcher *dispatcher.Dispatcher
	source     backend.Source
	clipboard  func(string) error
	bus        *command.Bus

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI from a loaded snapshot.
func NewModel(opts Options) *Model {
	registry := opts.Registry
	if registry == nil {
		registry = panel.BuildRegistry()
	}
	groups := state.NewGroupStore()
	commands := state.NewCommandStore()
	m := &Model{
		registry:     registry,
		links:        registry.Links(),
		activeLink:   -1,
		viewports:    map[string]*viewport.Model{},
		groupID:      opts.GroupID,
		groups:       groups,
		commands:     commands,
		dispatcher:   dispatcher.New(groups, commands),
		source:       opts.Source,
		clipboard:    opts.Clipboard,
		bus:          command.New(context.Background()),
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.dispatcher.Seed(opts.Snapshot)
	m.list = uistate.NewList(commandListID, uistate.EntriesFromCommands(m.commands.Commands()))

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.applyInitialPanel(opts.InitialPanel)
	m.syncList()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(actionResultMsg{}):   m.handleActionResultMsg,
		reflect.TypeOf(reloadedMsg{}):       m.handleReloadedMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// List exposes the command list state.
func (m *Model) List() *uistate.List {
	return m.list
}

// VisiblePanel returns the ID of the shown panel, or "" when none is shown.
func (m *Model) VisiblePanel() string {
	return m.visiblePanel
}

// ActiveLink returns the index of the active tab link, or -1.
func (m *Model) ActiveLink() int {
	return m.activeLink
}

func (m *Model) headerTitle() string {
	group := m.groups.Group()
	name := strings.TrimSpace(group.Name)
	if !group.Found || name == "" {
		name = fmt.Sprintf("group %s", m.groupID)
	}
	return "groupme-info · " + name
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
