package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/afrinode-dev/userbot/internal/biz/domain"
	"github.com/afrinode-dev/userbot/internal/biz/repo"
)

// Callback payloads attached to the menu buttons.
const (
	cbAddSource     = "add_source"
	cbRemoveSource  = "remove_source"
	cbListSources   = "list_sources"
	cbToggleForward = "toggle_forward"
)

// ReplyText contains every user-visible string the dispatcher sends.
type ReplyText struct {
	MenuCaption     string
	BtnAddSource    string
	BtnRemoveSource string
	BtnListSources  string
	BtnStopForward  string
	BtnStartForward string

	UsageAdd    string
	UsageRemove string
	Added       string // {{id}}
	Removed     string // {{id}}
	Exists      string
	Missing     string
	ListHeader  string // {{list}}
	ListEmpty   string

	ForwardStarted string
	ForwardStopped string

	CallbackAddHint    string
	CallbackRemoveHint string

	StatsReport string // {{state}}, {{forwarded}}, {{failed}}, {{dead}}
	StateOn     string
	StateOff    string

	DeadHeader string // {{list}}
	DeadEmpty  string
}

// DispatcherConfig contains dispatcher configuration
type DispatcherConfig struct {
	AdminID   string
	BannerURL string
	Text      ReplyText
}

// DispatcherUsecase handles admin commands and inline button presses.
// Anything not sent by the configured admin is dropped without a reply,
// so the bot never confirms its presence to other users.
type DispatcherUsecase struct {
	cfg         DispatcherConfig
	registry    *RegistryUsecase
	gate        *domain.Gate
	gateStore   repo.GateStore
	messenger   repo.MessengerRepo
	router      *RouterUsecase
	deadLetters repo.DeadLetterRepo
	logger      zerolog.Logger
}

// NewDispatcherUsecase creates a new dispatcher usecase
func NewDispatcherUsecase(
	cfg DispatcherConfig,
	registry *RegistryUsecase,
	gate *domain.Gate,
	gateStore repo.GateStore,
	messenger repo.MessengerRepo,
	router *RouterUsecase,
	deadLetters repo.DeadLetterRepo,
	logger zerolog.Logger,
) *DispatcherUsecase {
	return &DispatcherUsecase{
		cfg:         cfg,
		registry:    registry,
		gate:        gate,
		gateStore:   gateStore,
		messenger:   messenger,
		router:      router,
		deadLetters: deadLetters,
		logger:      logger,
	}
}

// RestoreGate applies the persisted gate state, if any.
func (uc *DispatcherUsecase) RestoreGate(ctx context.Context) {
	enabled, found, err := uc.gateStore.LoadGate(ctx)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("failed to load gate state, keeping default")
		return
	}
	if found {
		uc.gate.Set(enabled)
		uc.logger.Info().Bool("enabled", enabled).Msg("gate state restored")
	}
}

func (uc *DispatcherUsecase) isAdmin(senderID string) bool {
	return senderID != "" &&
		domain.NormalizeID(senderID) == domain.NormalizeID(uc.cfg.AdminID)
}

// DispatchMessage handles one admin text command. Commands match on the
// exact first whitespace token; anything else is ignored silently.
func (uc *DispatcherUsecase) DispatchMessage(ctx context.Context, ev *domain.MessageEvent) error {
	if !uc.isAdmin(ev.SenderID) {
		return nil
	}

	fields := strings.Fields(ev.Text)
	if len(fields) == 0 {
		return nil
	}

	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch fields[0] {
	case "/menu":
		return uc.sendMenu(ctx, ev.ChatID)
	case "/addsource":
		return uc.addSource(ctx, ev.ChatID, arg)
	case "/removesource":
		return uc.removeSource(ctx, ev.ChatID, arg)
	case "/listsources":
		return uc.messenger.SendText(ctx, ev.ChatID, uc.listText())
	case "/startforward":
		uc.gate.Enable()
		uc.persistGate(ctx)
		return uc.messenger.SendText(ctx, ev.ChatID, uc.cfg.Text.ForwardStarted)
	case "/stopforward":
		uc.gate.Disable()
		uc.persistGate(ctx)
		return uc.messenger.SendText(ctx, ev.ChatID, uc.cfg.Text.ForwardStopped)
	case "/stats":
		return uc.messenger.SendText(ctx, ev.ChatID, uc.statsText(ctx))
	case "/deadletters":
		return uc.messenger.SendText(ctx, ev.ChatID, uc.deadLetterText(ctx))
	}
	return nil
}

// DispatchCallback handles one inline button press and returns the
// acknowledgment text. Non-admin presses get an empty ack (the client
// spinner stops, nothing is revealed) and no action.
func (uc *DispatcherUsecase) DispatchCallback(ctx context.Context, ev *domain.CallbackEvent) (string, error) {
	if !uc.isAdmin(ev.SenderID) {
		return "", nil
	}

	switch ev.Data {
	case cbAddSource:
		return uc.cfg.Text.CallbackAddHint, nil
	case cbRemoveSource:
		return uc.cfg.Text.CallbackRemoveHint, nil
	case cbListSources:
		return "", uc.messenger.SendText(ctx, ev.ChatID, uc.listText())
	case cbToggleForward:
		enabled := uc.gate.Toggle()
		uc.persistGate(ctx)
		if enabled {
			return uc.cfg.Text.ForwardStarted, nil
		}
		return uc.cfg.Text.ForwardStopped, nil
	}
	return "", nil
}

func (uc *DispatcherUsecase) sendMenu(ctx context.Context, chatID string) error {
	toggle := uc.cfg.Text.BtnStartForward
	if uc.gate.Enabled() {
		toggle = uc.cfg.Text.BtnStopForward
	}
	menu := repo.Menu{
		BannerURL: uc.cfg.BannerURL,
		Caption:   uc.cfg.Text.MenuCaption,
		Rows: [][]repo.MenuButton{
			{
				{Label: uc.cfg.Text.BtnAddSource, Data: cbAddSource},
				{Label: uc.cfg.Text.BtnRemoveSource, Data: cbRemoveSource},
			},
			{
				{Label: uc.cfg.Text.BtnListSources, Data: cbListSources},
				{Label: toggle, Data: cbToggleForward},
			},
		},
	}
	return uc.messenger.SendMenu(ctx, chatID, menu)
}

func (uc *DispatcherUsecase) addSource(ctx context.Context, chatID, id string) error {
	if id == "" {
		return uc.messenger.SendText(ctx, chatID, uc.cfg.Text.UsageAdd)
	}
	switch err := uc.registry.Add(ctx, id); err {
	case nil:
		return uc.messenger.SendText(ctx, chatID, render(uc.cfg.Text.Added, "id", id))
	case domain.ErrAlreadyExists:
		return uc.messenger.SendText(ctx, chatID, uc.cfg.Text.Exists)
	default:
		return err
	}
}

func (uc *DispatcherUsecase) removeSource(ctx context.Context, chatID, id string) error {
	if id == "" {
		return uc.messenger.SendText(ctx, chatID, uc.cfg.Text.UsageRemove)
	}
	switch err := uc.registry.Remove(ctx, id); err {
	case nil:
		return uc.messenger.SendText(ctx, chatID, render(uc.cfg.Text.Removed, "id", id))
	case domain.ErrNotFound:
		return uc.messenger.SendText(ctx, chatID, uc.cfg.Text.Missing)
	default:
		return err
	}
}

// listText renders the 1-indexed source listing.
func (uc *DispatcherUsecase) listText() string {
	ids := uc.registry.List()
	if len(ids) == 0 {
		return uc.cfg.Text.ListEmpty
	}
	lines := make([]string, len(ids))
	for i, id := range ids {
		lines[i] = fmt.Sprintf("%d. %s", i+1, id)
	}
	return render(uc.cfg.Text.ListHeader, "list", strings.Join(lines, "\n"))
}

func (uc *DispatcherUsecase) statsText(ctx context.Context) string {
	stats := uc.router.Stats()
	state := uc.cfg.Text.StateOff
	if uc.gate.Enabled() {
		state = uc.cfg.Text.StateOn
	}
	// The dead-letter store survives restarts, prefer its total.
	dead := stats.DeadLettered
	if total, err := uc.deadLetters.Count(ctx); err == nil {
		dead = total
	} else {
		uc.logger.Warn().Err(err).Msg("failed to count dead letters")
	}
	out := uc.cfg.Text.StatsReport
	out = render(out, "state", state)
	out = render(out, "forwarded", strconv.FormatInt(stats.Forwarded, 10))
	out = render(out, "failed", strconv.FormatInt(stats.Failed, 10))
	out = render(out, "dead", strconv.FormatInt(dead, 10))
	return out
}

// deadLetterText renders the most recent dead letters, newest first.
func (uc *DispatcherUsecase) deadLetterText(ctx context.Context) string {
	letters, err := uc.deadLetters.List(ctx, 10)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("failed to list dead letters")
		return uc.cfg.Text.DeadEmpty
	}
	if len(letters) == 0 {
		return uc.cfg.Text.DeadEmpty
	}
	lines := make([]string, len(letters))
	for i, dl := range letters {
		lines[i] = fmt.Sprintf("%s  %s #%d  %s",
			dl.CreatedAt.Format("2006-01-02 15:04"), dl.Source, dl.MessageID, dl.Reason)
	}
	return render(uc.cfg.Text.DeadHeader, "list", strings.Join(lines, "\n"))
}

func (uc *DispatcherUsecase) persistGate(ctx context.Context) {
	if err := uc.gateStore.SaveGate(ctx, uc.gate.Enabled()); err != nil {
		uc.logger.Error().Err(err).Msg("failed to persist gate state")
	}
}

func render(template, key, value string) string {
	return strings.ReplaceAll(template, "{{"+key+"}}", value)
}
