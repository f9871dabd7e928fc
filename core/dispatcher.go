package core

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/tokuplus/tokubot/core/chat"
	"github.com/tokuplus/tokubot/core/ops"
	"github.com/tokuplus/tokubot/core/pattern"
)

const defaultMaxConcurrent = 4

// Dispatcher classifies inbound events and runs at most one op per event.
type Dispatcher struct {
	ops    *ops.Registry
	sink   chat.Sink
	self   string
	logger *slog.Logger
	sem    chan struct{}
	wg     sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. Free text whose token equals self is
// ignored. maxConcurrent bounds Submit; values below 1 select a default.
func NewDispatcher(reg *ops.Registry, sink chat.Sink, self string, maxConcurrent int, logger *slog.Logger) *Dispatcher {
	if maxConcurrent < 1 {
		maxConcurrent = defaultMaxConcurrent
	}
	return &Dispatcher{
		ops:    reg,
		sink:   sink,
		self:   self,
		logger: logger,
		sem:    make(chan struct{}, maxConcurrent),
	}
}

// Dispatch handles ev synchronously. Failures are logged, never returned.
func (d *Dispatcher) Dispatch(ctx context.Context, ev chat.Event) {
	log := d.logger.With("event_id", ev.ID, "update_id", ev.UpdateID,
		"chat_id", ev.ChatID, "sender_id", ev.SenderID, "message_id", ev.MessageID)

	defer func() {
		if p := recover(); p != nil {
			log.Error("dispatch panicked", "panic", p, "stack", string(debug.Stack()))
		}
	}()

	name, run := d.route(ev, log)
	if run == nil {
		return
	}

	if err := run(ctx); err != nil {
		if IsTransient(err) {
			log.Warn("transient transport failure", "op", name, "error", err)
			return
		}
		log.Error("op failed", "op", name, "error", err)
	}
}

// route selects the op for ev. Commands only ever match the command
// registry; free text only ever matches the text op.
func (d *Dispatcher) route(ev chat.Event, log *slog.Logger) (string, func(context.Context) error) {
	if ev.IsCommand() {
		op := d.ops.Get(ev.Command)
		if op == nil {
			log.Debug("unknown command dropped", "command", ev.Command, "args", ev.Args)
			return "", nil
		}
		return op.Name(), func(ctx context.Context) error {
			return op.Execute(ctx, ev, d.sink)
		}
	}

	text := d.ops.Text()
	if text == nil || ev.Text == "" {
		return "", nil
	}

	token, ok := pattern.FindToken(ev.Text)
	if !ok {
		return "", nil
	}
	if token == d.self {
		log.Debug("own address ignored")
		return "", nil
	}
	return text.Name(), func(ctx context.Context) error {
		return text.Execute(ctx, ev, token, d.sink)
	}
}

// Submit dispatches ev on its own goroutine. It blocks while the maximum
// number of dispatches is in flight and returns false if ctx ends first.
// In-flight dispatches are not cancelled with ctx.
func (d *Dispatcher) Submit(ctx context.Context, ev chat.Event) bool {
	select {
	case d.sem <- struct{}{}:
	case <-ctx.Done():
		d.logger.Debug("event not dispatched, shutting down", "event_id", ev.ID)
		return false
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() { <-d.sem }()
		d.Dispatch(context.WithoutCancel(ctx), ev)
	}()
	return true
}

// Wait blocks until every submitted dispatch has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
