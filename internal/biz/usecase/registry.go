package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/afrinode-dev/userbot/internal/biz/domain"
	"github.com/afrinode-dev/userbot/internal/biz/repo"
)

// RegistryUsecase owns the source registry and its persistence.
type RegistryUsecase struct {
	store    repo.SourceStore
	registry *domain.SourceRegistry
	initial  []string
	logger   zerolog.Logger
}

// NewRegistryUsecase creates the registry usecase. The initial list is only
// applied when no persisted registry can be read.
func NewRegistryUsecase(store repo.SourceStore, initial []string, logger zerolog.Logger) *RegistryUsecase {
	return &RegistryUsecase{
		store:    store,
		registry: domain.NewSourceRegistry(nil),
		initial:  initial,
		logger:   logger,
	}
}

// Load reads the persisted registry. Any read or parse failure falls back
// to the configured initial list, which is immediately persisted. Load
// never fails the process.
func (uc *RegistryUsecase) Load(ctx context.Context) {
	ids, err := uc.store.LoadSources(ctx)
	if err != nil {
		uc.logger.Info().Err(err).Strs("initial", uc.initial).
			Msg("no persisted sources, using configured list")
		uc.registry.Replace(uc.initial)
		uc.persist(ctx)
		return
	}
	uc.registry.Replace(ids)
	uc.logger.Info().Strs("sources", uc.registry.List()).Msg("sources loaded")
}

// Add registers a new source and persists the registry.
// Returns domain.ErrAlreadyExists when the id is already present.
func (uc *RegistryUsecase) Add(ctx context.Context, id string) error {
	if err := uc.registry.Add(id); err != nil {
		return err
	}
	uc.persist(ctx)
	return nil
}

// Remove unregisters a source and persists the registry.
// Returns domain.ErrNotFound when the id is absent.
func (uc *RegistryUsecase) Remove(ctx context.Context, id string) error {
	if err := uc.registry.Remove(id); err != nil {
		return err
	}
	uc.persist(ctx)
	return nil
}

// Contains reports whether a chat id is a registered source.
func (uc *RegistryUsecase) Contains(id string) bool {
	return uc.registry.Contains(id)
}

// List returns the registered sources in insertion order.
func (uc *RegistryUsecase) List() []string {
	return uc.registry.List()
}

// persist rewrites the store. A write failure is logged and the in-memory
// state stays the source of truth until the next successful write.
func (uc *RegistryUsecase) persist(ctx context.Context) {
	if err := uc.store.SaveSources(ctx, uc.registry.List()); err != nil {
		uc.logger.Error().Err(err).Msg("failed to persist sources")
	}
}
