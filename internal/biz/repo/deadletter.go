package repo

import (
	"context"

	"github.com/afrinode-dev/userbot/internal/biz/domain"
)

// DeadLetterRepo stores forwards that failed after retry exhaustion.
type DeadLetterRepo interface {
	// Record appends one dead letter.
	Record(ctx context.Context, dl *domain.DeadLetter) error

	// Count returns the total number of stored dead letters.
	Count(ctx context.Context) (int64, error)

	// List returns the most recent dead letters, newest first.
	List(ctx context.Context, limit int) ([]domain.DeadLetter, error)
}
