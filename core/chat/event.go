package chat

// Event represents one inbound chat message.
type Event struct {
	ID        string // correlation ID assigned by the receiver
	UpdateID  int
	ChatID    int64
	SenderID  int64
	MessageID int
	Text      string
	Command   string // empty for free text
	Args      string
}

// IsCommand reports whether the event invokes a named command.
func (e Event) IsCommand() bool {
	return e.Command != ""
}

// Handler processes an inbound event.
type Handler func(ev Event)
