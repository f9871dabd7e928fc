package ops

import (
	"context"
	"fmt"
	"sort"

	"github.com/tokuplus/tokubot/core/chat"
)

// Op is a handler triggered by one or more command aliases.
type Op interface {
	Name() string
	Commands() []string
	Execute(ctx context.Context, ev chat.Event, out chat.Sink) error
}

// TextOp is the handler for free text carrying an email-shaped token.
type TextOp interface {
	Name() string
	Execute(ctx context.Context, ev chat.Event, token string, out chat.Sink) error
}

// Registry maps command aliases to ops. It is immutable once built.
type Registry struct {
	commands map[string]Op
	text     TextOp
}

// NewRegistry builds a registry from a text handler (may be nil) and a set
// of command ops. Every alias must be non-empty and unique across ops.
func NewRegistry(text TextOp, cmds ...Op) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]Op),
		text:     text,
	}
	for _, op := range cmds {
		aliases := op.Commands()
		if len(aliases) == 0 {
			return nil, fmt.Errorf("op %s has no commands", op.Name())
		}
		for _, alias := range aliases {
			if alias == "" {
				return nil, fmt.Errorf("op %s has an empty command", op.Name())
			}
			if prev, exists := r.commands[alias]; exists {
				return nil, fmt.Errorf("command %q already registered by %s", alias, prev.Name())
			}
			r.commands[alias] = op
		}
	}
	return r, nil
}

// Get returns the op registered for the exact command name, or nil.
func (r *Registry) Get(command string) Op {
	return r.commands[command]
}

// Text returns the free-text handler, or nil if none is registered.
func (r *Registry) Text() TextOp {
	return r.text
}

// Commands returns every registered alias sorted alphabetically.
func (r *Registry) Commands() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
