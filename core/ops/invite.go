package ops

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/tokuplus/tokubot/core/chat"
)

// InviteOp opens the invite page for a detected email and confirms it in chat.
type InviteOp struct {
	BaseURL string
	Opener  chat.Opener
	Logger  *slog.Logger
}

func (i *InviteOp) Name() string { return "convidar" }

// InviteURL returns the invite page URL for token.
func (i *InviteOp) InviteURL(token string) string {
	return i.BaseURL + "?" + url.Values{"email": {token}}.Encode()
}

func (i *InviteOp) Execute(ctx context.Context, ev chat.Event, token string, out chat.Sink) error {
	i.Logger.Info("processing invite", "chat_id", ev.ChatID, "email", token)

	link := i.InviteURL(token)
	res := chat.Attempt("open", func() error { return i.Opener.Open(ctx, link) })
	if !res.OK() {
		i.Logger.Warn("could not open invite url", "url", link, "error", res.Err)
	}

	r := chat.Reply{ChatID: ev.ChatID, Text: inviteText(token), ReplyTo: ev.MessageID}
	if err := out.Send(ctx, r); err != nil {
		return fmt.Errorf("send invite reply: %w", err)
	}
	return nil
}
