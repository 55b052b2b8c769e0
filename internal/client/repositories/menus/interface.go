package menus

import (
	"context"

	"github.com/daiki-beppu/ui-gohan/internal/client/models"
)

// Repository describes CRUD and sync queries for Menu rows.
// Implementations are typically backed by a local SQLite database.
type Repository interface {
	// Insert writes a fully populated new row.
	Insert(ctx context.Context, menu *models.Menu) error

	// Update replaces the mutable columns of an existing row by id and
	// returns common.ErrNotFound when no row matched. Id, user id and
	// creation time are never written by this path.
	Update(ctx context.Context, menu *models.Menu) error

	// GetAll returns all rows ordered by sort order ascending.
	GetAll(ctx context.Context) ([]models.Menu, error)

	// GetByDay and GetByMealType apply an equality filter with the same
	// ordering as GetAll.
	GetByDay(ctx context.Context, day models.Weekday) ([]models.Menu, error)
	GetByMealType(ctx context.Context, mealType models.MealType) ([]models.Menu, error)

	// GetByID returns a row by id, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Menu, error)

	// DeleteByID removes exactly one row, or fails with common.ErrNotFound.
	DeleteByID(ctx context.Context, id string) error

	// CountByDay reports how many rows exist for a day; used to assign the
	// default sort order at creation time.
	CountByDay(ctx context.Context, day models.Weekday) (int, error)

	// SelectUpdatedSince returns rows with updated_at strictly after the
	// given epoch-millisecond marker; used to collect local changes for sync.
	SelectUpdatedSince(ctx context.Context, sinceMs int64) ([]models.Menu, error)

	// Upsert applies a replicated row last-write-wins: it inserts the row,
	// or overwrites an existing one only when the incoming updated_at is
	// newer.
	Upsert(ctx context.Context, menu *models.Menu) error

	// DeleteStale removes the row only if it was not updated after the
	// replicated deletion time. Reports whether a row was removed.
	DeleteStale(ctx context.Context, id string, deletedAtMs int64) (bool, error)
}
