package chat

import "context"

// Reply is an outbound text message.
type Reply struct {
	ChatID  int64
	Text    string
	ReplyTo int // message ID to reply to, 0 for none
}

// Sink delivers outbound actions to the chat platform.
type Sink interface {
	Send(ctx context.Context, r Reply) error
	Delete(ctx context.Context, chatID int64, messageID int) error
}

// Opener opens an external resource such as a URL.
type Opener interface {
	Open(ctx context.Context, url string) error
}
