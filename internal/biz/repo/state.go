package repo

import "context"

// SourceStore persists the source registry as a whole; every save is a
// full rewrite, matching the low mutation rate of the registry.
type SourceStore interface {
	// LoadSources reads the persisted identifier list.
	LoadSources(ctx context.Context) ([]string, error)

	// SaveSources rewrites the persisted identifier list.
	SaveSources(ctx context.Context, ids []string) error
}

// GateStore persists the forwarding gate across restarts.
type GateStore interface {
	// LoadGate returns the stored state; found is false when nothing
	// was ever stored, in which case the default applies.
	LoadGate(ctx context.Context) (enabled, found bool, err error)

	// SaveGate stores the current state.
	SaveGate(ctx context.Context, enabled bool) error
}
