package telegram_sender

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mymmrac/telego"
	ta "github.com/mymmrac/telego/telegoapi"
	tu "github.com/mymmrac/telego/telegoutil"

	"github.com/tokuplus/tokubot/core/chat"
)

// Sender delivers replies and deletions through the Telegram Bot API.
type Sender struct {
	bot *telego.Bot
}

// New creates a Telegram sender.
func New(bot *telego.Bot) *Sender {
	return &Sender{bot: bot}
}

func (s *Sender) Send(ctx context.Context, r chat.Reply) error {
	params := tu.Message(tu.ID(r.ChatID), r.Text)
	if r.ReplyTo != 0 {
		params.ReplyParameters = &telego.ReplyParameters{
			MessageID:                r.ReplyTo,
			AllowSendingWithoutReply: true,
		}
	}

	if _, err := s.bot.SendMessage(ctx, params); err != nil {
		return wrap("send message", err)
	}
	return nil
}

func (s *Sender) Delete(ctx context.Context, chatID int64, messageID int) error {
	err := s.bot.DeleteMessage(ctx, &telego.DeleteMessageParams{
		ChatID:    tu.ID(chatID),
		MessageID: messageID,
	})
	if err != nil {
		return wrap("delete message", err)
	}
	return nil
}

// APIError is an error reported by the Telegram Bot API.
type APIError struct {
	Op   string
	Code int
	Err  error
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *APIError) Unwrap() error { return e.Err }

// Transient reports whether Telegram asked us to back off or failed on its side.
func (e *APIError) Transient() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= http.StatusInternalServerError
}

func wrap(op string, err error) error {
	var apiErr *ta.Error
	if errors.As(err, &apiErr) {
		return &APIError{Op: op, Code: apiErr.ErrorCode, Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
