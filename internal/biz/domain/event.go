package domain

// MessageEvent is a read-only view of an incoming message update.
type MessageEvent struct {
	ChatID    string // origin chat, normalized decimal string
	SenderID  string // empty when the platform omits the sender
	MessageID int32
	Text      string

	// Media attachment flags
	Photo    bool
	Video    bool
	Audio    bool
	Document bool
}

// HasMedia reports whether any attachment flag is set.
func (e *MessageEvent) HasMedia() bool {
	return e.Photo || e.Video || e.Audio || e.Document
}

// CallbackEvent is a read-only view of an inline button press.
type CallbackEvent struct {
	SenderID string
	ChatID   string
	Data     string
}

// Decision is the outcome of routing a message event.
type Decision struct {
	Forward   bool
	Source    string
	MessageID int32
}

// Ignore is the zero routing decision.
var Ignore = Decision{}

// ForwardTo builds a forwarding decision for a qualifying event.
func ForwardTo(source string, messageID int32) Decision {
	return Decision{Forward: true, Source: source, MessageID: messageID}
}
