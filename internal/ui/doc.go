// Package ui contains the Bubble Tea program that renders a group's command
// list and info panels.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Every message is
//     routed through a typed handler registry so each tea.Msg is handled by a
//     focused function (keys, mouse, resize, backend events, action results).
//   - Key and mouse helpers (navigation.go, mouse.go) translate input into
//     operations on the command list: tooltip toggle, usage sort, cursor
//     movement. Filter editing lives in input.go and re-applies the filter
//     after every edit.
//   - Panel switching (panels.go) keeps a single active tab link and resolves
//     its target through the panel registry. An unresolved target hides every
//     panel.
//
// State ownership:
//   - The command list lives in internal/ui/state.List, which tracks entries,
//     filter, tooltip, cursor and viewport.
//   - Group and command snapshots are held by internal/state and kept in sync
//     by the dispatcher. Text panels render from those stores into bubbles
//     viewports.
//   - Clipboard copy and reload run through the internal/ui/command bus.
//
// Backend interactions:
//   - An optional backend.Watcher polls the store. Update waits for its events
//     and merges new command data into the list without losing order, cursor
//     or the open tooltip.
package ui
