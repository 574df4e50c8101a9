package backend

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/atomicstack/groupme-info/internal/logging/events"
	"github.com/atomicstack/groupme-info/internal/store"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindCommands Kind = iota
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindCommands:
		return "commands"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Source is the subset of the store the watcher polls.
type Source interface {
	Commands(ctx context.Context, groupID string) ([]store.Command, error)
	Group(ctx context.Context, groupID string) (store.Group, error)
	Members(ctx context.Context, groupID string) ([]store.Member, error)
}

// GroupData is the payload of KindGroup events.
type GroupData struct {
	Group   store.Group
	Members []store.Member
}

// Event conveys updated data or an error from a backend poll.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

const minPollGap = 250 * time.Millisecond

// Watcher polls the store at a fixed interval and publishes events.
type Watcher struct {
	source  Source
	groupID string

	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher that polls source every interval.
func NewWatcher(source Source, groupID string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = time.Second
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		source:   source,
		groupID:  groupID,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.startCommandPoller()
	w.startGroupPoller()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) startCommandPoller() {
	throttle := newThrottle(minPollGap)
	w.wg.Add(1)
	go w.poll(KindCommands, func(ctx context.Context) (interface{}, error) {
		if !throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		return w.source.Commands(ctx, w.groupID)
	})
}

func (w *Watcher) startGroupPoller() {
	throttle := newThrottle(minPollGap)
	w.wg.Add(1)
	go w.poll(KindGroup, func(ctx context.Context) (interface{}, error) {
		if !throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		return FetchGroup(ctx, w.source, w.groupID)
	})
}

// FetchGroup loads the group row and its members. A group the bot has not
// initialised yet is reported with Found == false rather than as an error.
func FetchGroup(ctx context.Context, source Source, groupID string) (GroupData, error) {
	group, err := source.Group(ctx, groupID)
	if err != nil && !errors.Is(err, store.ErrGroupNotFound) {
		return GroupData{}, err
	}
	members, err := source.Members(ctx, groupID)
	if err != nil {
		return GroupData{}, err
	}
	return GroupData{Group: group, Members: members}, nil
}

func (w *Watcher) poll(kind Kind, fetch func(context.Context) (interface{}, error)) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		events.Backend.Poll(kind.String(), err)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
