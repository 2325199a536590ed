package repo

import "context"

// Menu describes the admin menu message: banner, caption and a 2x2
// inline keyboard. Button rows are rendered in order.
type Menu struct {
	BannerURL string
	Caption   string
	Rows      [][]MenuButton
}

// MenuButton is one inline keyboard button.
type MenuButton struct {
	Label string
	Data  string
}

// MessengerRepo is the outbound side of the chat platform.
// Implementations wrap the Telegram client; the usecases never see it directly.
type MessengerRepo interface {
	// SendText sends a plain text message into a chat.
	SendText(ctx context.Context, chatID string, text string) error

	// SendMenu sends the banner message with its inline keyboard.
	SendMenu(ctx context.Context, chatID string, menu Menu) error

	// Forward copies one message by id from a source chat to the destination.
	Forward(ctx context.Context, destID, sourceID string, messageID int32) error
}
