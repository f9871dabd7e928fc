package ops

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tokuplus/tokubot/core/chat"
)

// ScriptedOp replies with fixed text. When DeleteTrigger is set it first
// tries to delete the triggering message; failure there never blocks the reply.
type ScriptedOp struct {
	OpName        string
	Aliases       []string
	Text          string
	DeleteTrigger bool
	Quote         bool
	Logger        *slog.Logger
}

func (s *ScriptedOp) Name() string       { return s.OpName }
func (s *ScriptedOp) Commands() []string { return s.Aliases }

func (s *ScriptedOp) Execute(ctx context.Context, ev chat.Event, out chat.Sink) error {
	if s.DeleteTrigger {
		if res := chat.DeleteTrigger(ctx, out, ev); !res.OK() {
			s.Logger.Debug("could not delete trigger message",
				"op", s.OpName, "chat_id", ev.ChatID, "message_id", ev.MessageID, "error", res.Err)
		}
	}

	r := chat.Reply{ChatID: ev.ChatID, Text: s.Text}
	if s.Quote {
		r.ReplyTo = ev.MessageID
	}
	if err := out.Send(ctx, r); err != nil {
		return fmt.Errorf("send %s reply: %w", s.OpName, err)
	}
	return nil
}

// Web shows the web-access instructions.
func Web(logger *slog.Logger) *ScriptedOp {
	return &ScriptedOp{
		OpName:        "web",
		Aliases:       []string{"navegador", "web", "computador"},
		Text:          webText,
		DeleteTrigger: true,
		Logger:        logger,
	}
}

// WhatsApp sends the WhatsApp group invite link.
func WhatsApp(logger *slog.Logger) *ScriptedOp {
	return &ScriptedOp{
		OpName:        "wpp",
		Aliases:       []string{"wpp"},
		Text:          whatsAppText,
		DeleteTrigger: true,
		Logger:        logger,
	}
}

// Sent confirms a manually sent invite.
func Sent(logger *slog.Logger) *ScriptedOp {
	return &ScriptedOp{
		OpName:  "enviado",
		Aliases: []string{"enviado"},
		Text:    sentText,
		Quote:   true,
		Logger:  logger,
	}
}

// Donation shows the donation instructions.
func Donation(logger *slog.Logger) *ScriptedOp {
	return &ScriptedOp{
		OpName:        "doacao",
		Aliases:       []string{"doacao", "ajudar", "pix"},
		Text:          donationText,
		DeleteTrigger: true,
		Logger:        logger,
	}
}

// Defaults returns the stock command ops.
func Defaults(logger *slog.Logger) []Op {
	return []Op{Web(logger), WhatsApp(logger), Sent(logger), Donation(logger)}
}
