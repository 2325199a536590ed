package usecase

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/afrinode-dev/userbot/internal/biz/domain"
	"github.com/afrinode-dev/userbot/internal/biz/repo"
)

// RouterConfig contains routing configuration
type RouterConfig struct {
	DestChat string

	// Retry policy for failed forwards
	Attempts int
	Backoff  time.Duration
}

// DefaultRouterConfig returns the default retry policy.
func DefaultRouterConfig(destChat string) RouterConfig {
	return RouterConfig{
		DestChat: destChat,
		Attempts: 3,
		Backoff:  500 * time.Millisecond,
	}
}

// Stats are the routing counters since process start.
type Stats struct {
	Forwarded    int64
	Failed       int64
	DeadLettered int64
}

// RouterUsecase decides whether an inbound message qualifies for
// forwarding and performs the forward call.
type RouterUsecase struct {
	cfg         RouterConfig
	gate        *domain.Gate
	registry    *RegistryUsecase
	messenger   repo.MessengerRepo
	deadLetters repo.DeadLetterRepo
	logger      zerolog.Logger

	forwarded atomic.Int64
	failed    atomic.Int64
	dead      atomic.Int64
}

// NewRouterUsecase creates a new router usecase
func NewRouterUsecase(
	cfg RouterConfig,
	gate *domain.Gate,
	registry *RegistryUsecase,
	messenger repo.MessengerRepo,
	deadLetters repo.DeadLetterRepo,
	logger zerolog.Logger,
) *RouterUsecase {
	return &RouterUsecase{
		cfg:         cfg,
		gate:        gate,
		registry:    registry,
		messenger:   messenger,
		deadLetters: deadLetters,
		logger:      logger,
	}
}

// Route evaluates the forwarding conditions in order: gate, source
// membership, media presence. Message content is never inspected.
func (uc *RouterUsecase) Route(ev *domain.MessageEvent) domain.Decision {
	if !uc.gate.Enabled() {
		return domain.Ignore
	}
	if !uc.registry.Contains(ev.ChatID) {
		return domain.Ignore
	}
	if !ev.HasMedia() {
		return domain.Ignore
	}
	return domain.ForwardTo(ev.ChatID, ev.MessageID)
}

// HandleMessage routes one inbound event and, when it qualifies, forwards
// it with bounded retry. Exhausted forwards go to the dead-letter store.
// Errors never propagate past this point; a failed event is dropped.
func (uc *RouterUsecase) HandleMessage(ctx context.Context, ev *domain.MessageEvent) {
	decision := uc.Route(ev)
	if !decision.Forward {
		return
	}

	var lastErr error
	for attempt := 0; attempt < uc.cfg.Attempts; attempt++ {
		if attempt > 0 {
			if !sleep(ctx, uc.cfg.Backoff<<(attempt-1)) {
				return
			}
		}
		lastErr = uc.messenger.Forward(ctx, uc.cfg.DestChat, decision.Source, decision.MessageID)
		if lastErr == nil {
			uc.forwarded.Add(1)
			uc.logger.Info().
				Str("source", decision.Source).
				Int32("message_id", decision.MessageID).
				Msg("forwarded message")
			return
		}
		uc.failed.Add(1)
		uc.logger.Warn().Err(lastErr).
			Str("source", decision.Source).
			Int32("message_id", decision.MessageID).
			Int("attempt", attempt+1).
			Msg("forward attempt failed")
	}

	uc.dead.Add(1)
	dl := &domain.DeadLetter{
		ID:        uuid.NewString(),
		Source:    decision.Source,
		MessageID: decision.MessageID,
		Reason:    lastErr.Error(),
		CreatedAt: time.Now(),
	}
	if err := uc.deadLetters.Record(ctx, dl); err != nil {
		uc.logger.Error().Err(err).Msg("failed to record dead letter")
	}
}

// Stats returns the routing counters since process start.
func (uc *RouterUsecase) Stats() Stats {
	return Stats{
		Forwarded:    uc.forwarded.Load(),
		Failed:       uc.failed.Load(),
		DeadLettered: uc.dead.Load(),
	}
}

// sleep waits for d or until ctx is done, reporting whether the full
// duration elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
