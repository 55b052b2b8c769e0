package menus

import (
	"context"

	"github.com/daiki-beppu/ui-gohan/internal/server/models"
)

// Repository describes the sync queries over replicated menus rows. All
// operations are scoped to one user; a row belonging to someone else is
// never read or written.
type Repository interface {
	// Upsert applies a replicated row last-write-wins. An existing row is
	// overwritten only when it belongs to the same user and the incoming
	// updated_at is strictly newer. A lost write is not an error.
	Upsert(ctx context.Context, menu *models.Menu) error

	// DeleteStale removes the user's row only if it was not updated after
	// the replicated deletion time. Reports whether a row was removed.
	DeleteStale(ctx context.Context, userID, id string, deletedAtMs int64) (bool, error)

	// SelectUpdatedSince returns the user's rows with updated_at strictly
	// after the given epoch-millisecond marker.
	SelectUpdatedSince(ctx context.Context, userID string, sinceMs int64) ([]models.Menu, error)
}
