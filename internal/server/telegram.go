package server

import (
	"context"
	"strconv"

	"github.com/amarnathcjd/gogram/telegram"
	"github.com/rs/zerolog"

	"github.com/afrinode-dev/userbot/internal/biz/domain"
	"github.com/afrinode-dev/userbot/internal/biz/usecase"
)

// TelegramServer receives Telegram updates and hands them to the router
// and the dispatcher. The client delivers each update on its own
// goroutine; everything downstream is safe for that.
type TelegramServer struct {
	client     *telegram.Client
	router     *usecase.RouterUsecase
	dispatcher *usecase.DispatcherUsecase
	logger     zerolog.Logger
}

// NewTelegramServer creates a new Telegram server
func NewTelegramServer(
	client *telegram.Client,
	router *usecase.RouterUsecase,
	dispatcher *usecase.DispatcherUsecase,
	logger zerolog.Logger,
) *TelegramServer {
	return &TelegramServer{
		client:     client,
		router:     router,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Run registers the update handlers and blocks until the client stops.
func (s *TelegramServer) Run() error {
	s.client.AddMessageHandler(telegram.OnNewMessage, s.handleMessage)
	s.client.AddCallbackHandler(telegram.OnCallbackQuery, s.handleCallback)
	s.logger.Info().Msg("listening for updates")
	s.client.Idle()
	return nil
}

// Stop disconnects the client.
func (s *TelegramServer) Stop() {
	s.client.Stop()
}

// handleMessage feeds one new-message update to the dispatcher and the
// router. A failure in either never reaches the other, and never
// propagates to the client.
func (s *TelegramServer) handleMessage(m *telegram.NewMessage) error {
	ev := messageEvent(m)
	ctx := context.Background()

	if err := s.dispatcher.DispatchMessage(ctx, ev); err != nil {
		s.logger.Error().Err(err).
			Str("chat", ev.ChatID).
			Msg("command handling failed")
	}

	s.router.HandleMessage(ctx, ev)
	return nil
}

// handleCallback feeds one button press to the dispatcher and answers
// the query with whatever acknowledgment it returns. An empty ack just
// stops the client-side spinner.
func (s *TelegramServer) handleCallback(q *telegram.CallbackQuery) error {
	ev := &domain.CallbackEvent{
		SenderID: strconv.FormatInt(q.SenderID, 10),
		ChatID:   strconv.FormatInt(q.ChatID, 10),
		Data:     string(q.Data),
	}

	ack, err := s.dispatcher.DispatchCallback(context.Background(), ev)
	if err != nil {
		s.logger.Error().Err(err).
			Str("data", ev.Data).
			Msg("callback handling failed")
	}
	if _, err := q.Answer(ack); err != nil {
		s.logger.Warn().Err(err).Msg("failed to answer callback")
	}
	return nil
}

// messageEvent converts a client update into the read-only domain view.
func messageEvent(m *telegram.NewMessage) *domain.MessageEvent {
	ev := &domain.MessageEvent{
		ChatID:    strconv.FormatInt(m.ChatID(), 10),
		MessageID: m.Message.ID,
		Text:      m.Message.Message,
	}
	if id := m.SenderID(); id != 0 {
		ev.SenderID = strconv.FormatInt(id, 10)
	}
	classifyMedia(m.Message.Media, ev)
	return ev
}

// classifyMedia maps the MTProto media object onto the four attachment
// flags: photos directly, documents by their video/audio attributes,
// anything else document-shaped as a generic document.
func classifyMedia(media telegram.MessageMedia, ev *domain.MessageEvent) {
	switch media := media.(type) {
	case *telegram.MessageMediaPhoto:
		ev.Photo = true
	case *telegram.MessageMediaDocument:
		doc, ok := media.Document.(*telegram.DocumentObj)
		if !ok {
			ev.Document = true
			return
		}
		for _, attr := range doc.Attributes {
			switch attr.(type) {
			case *telegram.DocumentAttributeVideo:
				ev.Video = true
				return
			case *telegram.DocumentAttributeAudio:
				ev.Audio = true
				return
			}
		}
		ev.Document = true
	}
}
