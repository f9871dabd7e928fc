package chat

import (
	"context"
	"fmt"
)

// Result records the outcome of a best-effort side effect.
type Result struct {
	Action string
	Err    error
}

// OK reports whether the side effect succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Attempt runs fn and captures its outcome. A panic in fn is captured as
// a failed result.
func Attempt(action string, fn func() error) (res Result) {
	res.Action = action
	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("%s panicked: %v", action, p)
		}
	}()
	res.Err = fn()
	return res
}

// DeleteTrigger attempts to delete the message that produced ev.
func DeleteTrigger(ctx context.Context, s Sink, ev Event) Result {
	return Attempt("delete", func() error {
		return s.Delete(ctx, ev.ChatID, ev.MessageID)
	})
}
