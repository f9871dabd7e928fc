package telegram_receiver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"

	"github.com/tokuplus/tokubot/core/chat"
)

const (
	longPollTimeout  = 30
	botCommandEntity = "bot_command"
)

// Receiver long-polls Telegram for inbound messages.
type Receiver struct {
	bot      *telego.Bot
	handler  chat.Handler
	logger   *slog.Logger
	username string
}

// New creates a Telegram receiver.
func New(bot *telego.Bot, handler chat.Handler, logger *slog.Logger) *Receiver {
	return &Receiver{
		bot:     bot,
		handler: handler,
		logger:  logger,
	}
}

// Start begins the long-poll loop. Blocks until ctx is cancelled.
// It fails immediately if the bot token is rejected.
func (r *Receiver) Start(ctx context.Context) error {
	me, err := r.bot.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("get bot identity: %w", err)
	}
	r.username = me.Username

	updates, err := r.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout:        longPollTimeout,
		// Edits are not new requests and never trigger a reply.
		AllowedUpdates: []string{"message"},
	})
	if err != nil {
		return fmt.Errorf("start long polling: %w", err)
	}

	r.logger.Info("telegram receiver started", "username", r.username)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("telegram receiver stopped")
			return nil
		case u, ok := <-updates:
			if !ok {
				r.logger.Info("telegram receiver stopped")
				return nil
			}
			ev, ok := toEvent(u, r.username)
			if !ok {
				continue
			}
			r.handler(ev)
		}
	}
}

// toEvent converts an update into a chat event. Updates without a text
// message are skipped.
func toEvent(u telego.Update, username string) (chat.Event, bool) {
	msg := u.Message
	if msg == nil || msg.Text == "" {
		return chat.Event{}, false
	}

	var senderID int64
	if msg.From != nil {
		senderID = msg.From.ID
	}

	ev := chat.Event{
		ID:        uuid.NewString(),
		UpdateID:  u.UpdateID,
		ChatID:    msg.Chat.ID,
		SenderID:  senderID,
		MessageID: msg.MessageID,
		Text:      msg.Text,
	}

	if startsWithCommand(msg) {
		cmd, mention, args := parseCommand(msg.Text)
		// A command addressed to another bot keeps its suffix so that it
		// matches no alias.
		if mention != "" && !strings.EqualFold(mention, username) {
			cmd += "@" + mention
		}
		ev.Command = cmd
		ev.Args = args
	}
	return ev, true
}

func startsWithCommand(msg *telego.Message) bool {
	for _, e := range msg.Entities {
		if e.Type == botCommandEntity && e.Offset == 0 {
			return true
		}
	}
	return false
}

// parseCommand splits "/command@botname args" into its parts. Case is preserved.
func parseCommand(text string) (cmd, mention, args string) {
	if !strings.HasPrefix(text, "/") {
		return "", "", ""
	}

	text = text[1:]
	if i := strings.IndexFunc(text, unicode.IsSpace); i != -1 {
		cmd, args = text[:i], strings.TrimSpace(text[i:])
	} else {
		cmd = text
	}

	if at := strings.Index(cmd, "@"); at != -1 {
		cmd, mention = cmd[:at], cmd[at+1:]
	}
	return cmd, mention, args
}
