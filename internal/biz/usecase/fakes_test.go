package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/afrinode-dev/userbot/internal/biz/domain"
	"github.com/afrinode-dev/userbot/internal/biz/repo"
)

// fakeMessenger records outbound traffic and can fail forwards on demand.
type fakeMessenger struct {
	mu sync.Mutex

	texts    []sentText
	menus    []sentMenu
	forwards []sentForward

	failForwards int // fail this many forward calls, then succeed
}

type sentText struct {
	chatID string
	text   string
}

type sentMenu struct {
	chatID string
	menu   repo.Menu
}

type sentForward struct {
	destID    string
	sourceID  string
	messageID int32
}

func (f *fakeMessenger) SendText(ctx context.Context, chatID, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, sentText{chatID: chatID, text: text})
	return nil
}

func (f *fakeMessenger) SendMenu(ctx context.Context, chatID string, menu repo.Menu) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.menus = append(f.menus, sentMenu{chatID: chatID, menu: menu})
	return nil
}

func (f *fakeMessenger) Forward(ctx context.Context, destID, sourceID string, messageID int32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failForwards > 0 {
		f.failForwards--
		return errors.New("FLOOD_WAIT")
	}
	f.forwards = append(f.forwards, sentForward{destID: destID, sourceID: sourceID, messageID: messageID})
	return nil
}

func (f *fakeMessenger) sentTexts() []sentText {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentText(nil), f.texts...)
}

func (f *fakeMessenger) sentForwards() []sentForward {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentForward(nil), f.forwards...)
}

// fakeSourceStore is an in-memory source store with failure injection.
type fakeSourceStore struct {
	ids     []string
	hasData bool
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeSourceStore) LoadSources(ctx context.Context) ([]string, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if !f.hasData {
		return nil, errors.New("no sources file")
	}
	return append([]string(nil), f.ids...), nil
}

func (f *fakeSourceStore) SaveSources(ctx context.Context, ids []string) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.ids = append([]string(nil), ids...)
	f.hasData = true
	return nil
}

// fakeGateStore is an in-memory gate store.
type fakeGateStore struct {
	enabled bool
	found   bool
	saveErr error
}

func (f *fakeGateStore) LoadGate(ctx context.Context) (bool, bool, error) {
	return f.enabled, f.found, nil
}

func (f *fakeGateStore) SaveGate(ctx context.Context, enabled bool) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.enabled = enabled
	f.found = true
	return nil
}

// fakeDeadLetters is an in-memory dead letter store.
type fakeDeadLetters struct {
	mu      sync.Mutex
	letters []domain.DeadLetter
}

func (f *fakeDeadLetters) Record(ctx context.Context, dl *domain.DeadLetter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.letters = append(f.letters, *dl)
	return nil
}

func (f *fakeDeadLetters) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.letters)), nil
}

func (f *fakeDeadLetters) List(ctx context.Context, limit int) ([]domain.DeadLetter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := append([]domain.DeadLetter(nil), f.letters...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
