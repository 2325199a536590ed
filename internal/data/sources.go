package data

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/afrinode-dev/userbot/internal/biz/repo"
)

// sourceStore persists the registry as a bare JSON string array, the
// same wire format as the original sources.json.
type sourceStore struct {
	path string
}

// NewSourceStore creates a JSON file backed source store.
func NewSourceStore(path string) (repo.SourceStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &sourceStore{path: path}, nil
}

// LoadSources reads the persisted identifier list.
func (s *sourceStore) LoadSources(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}
	return ids, nil
}

// SaveSources rewrites the whole file on every call; the registry is
// small and mutations are rare.
func (s *sourceStore) SaveSources(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("failed to encode sources: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write sources file: %w", err)
	}
	return nil
}
