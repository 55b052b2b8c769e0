package deletions

import (
	"context"

	"github.com/daiki-beppu/ui-gohan/internal/server/models"
)

// Repository describes the per-user deletion log.
type Repository interface {
	// Record stores the deletion instant for an id, keeping the latest one
	// when the id was already logged.
	Record(ctx context.Context, userID, id string, deletedAtMs int64) error

	// DeletedAt returns the logged deletion instant for an id, and whether
	// one exists.
	DeletedAt(ctx context.Context, userID, id string) (int64, bool, error)

	// SelectSince returns the user's deletions strictly after the given
	// epoch-millisecond marker.
	SelectSince(ctx context.Context, userID string, sinceMs int64) ([]models.Deletion, error)
}
