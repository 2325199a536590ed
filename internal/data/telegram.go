package data

import (
	"context"
	"fmt"
	"strconv"

	"github.com/amarnathcjd/gogram/telegram"

	"github.com/afrinode-dev/userbot/internal/biz/repo"
)

// messengerRepo implements repo.MessengerRepo over the gogram client.
type messengerRepo struct {
	client *telegram.Client
}

// NewMessengerRepo wraps the Telegram client as a messenger repository.
func NewMessengerRepo(client *telegram.Client) repo.MessengerRepo {
	return &messengerRepo{client: client}
}

// peer converts a stored identifier into something the client can
// resolve: a numeric chat id, or a username as-is.
func peer(id string) any {
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		return n
	}
	return id
}

// SendText sends a plain text message into a chat.
func (r *messengerRepo) SendText(ctx context.Context, chatID, text string) error {
	if _, err := r.client.SendMessage(peer(chatID), text); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", chatID, err)
	}
	return nil
}

// SendMenu sends the banner image with a caption and inline keyboard.
func (r *messengerRepo) SendMenu(ctx context.Context, chatID string, menu repo.Menu) error {
	kb := telegram.NewKeyboard()
	for _, row := range menu.Rows {
		buttons := make([]telegram.KeyboardButton, 0, len(row))
		for _, b := range row {
			buttons = append(buttons, telegram.Button.Data(b.Label, b.Data))
		}
		kb.AddRow(buttons...)
	}
	_, err := r.client.SendMedia(peer(chatID), menu.BannerURL, &telegram.MediaOptions{
		Caption:     menu.Caption,
		ReplyMarkup: kb.Build(),
	})
	if err != nil {
		return fmt.Errorf("failed to send menu to %s: %w", chatID, err)
	}
	return nil
}

// Forward copies one message by id from a source chat to the destination.
func (r *messengerRepo) Forward(ctx context.Context, destID, sourceID string, messageID int32) error {
	if _, err := r.client.Forward(peer(destID), peer(sourceID), []int32{messageID}); err != nil {
		return fmt.Errorf("failed to forward message %d from %s: %w", messageID, sourceID, err)
	}
	return nil
}
