package command

import (
	"context"
	"fmt"

	"github.com/atomicstack/groupme-info/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Handler performs side-effecting work off the update loop and reports back
// with a message.
type Handler func(context.Context) tea.Msg

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Handler
}

// Bus runs requested actions as Bubble Tea commands.
type Bus struct {
	ctx context.Context
}

// New initialises a command bus whose handlers observe ctx.
func New(ctx context.Context) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		msg := req.Handler(b.ctx)
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
