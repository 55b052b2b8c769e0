// Package deletions provides the PostgreSQL-backed deletion log used to
// order late-arriving updates against replicated deletes.
package deletions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/daiki-beppu/ui-gohan/internal/dbx"
	"github.com/daiki-beppu/ui-gohan/internal/server/models"
)

// PostgresRepository implements the deletion log over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Record(ctx context.Context, userID, id string, deletedAtMs int64) error {
	query := `
		INSERT INTO menu_deletions (id, user_id, deleted_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id)
		DO UPDATE SET deleted_at = EXCLUDED.deleted_at
			WHERE menu_deletions.user_id = EXCLUDED.user_id
			  AND EXCLUDED.deleted_at > menu_deletions.deleted_at;
	`
	if _, err := r.db.ExecContext(ctx, query, id, userID, deletedAtMs); err != nil {
		return fmt.Errorf("failed to record deletion: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeletedAt(ctx context.Context, userID, id string) (int64, bool, error) {
	var deletedAt int64
	err := r.db.QueryRowContext(ctx,
		`SELECT deleted_at FROM menu_deletions WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&deletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up deletion: %w", err)
	}
	return deletedAt, true, nil
}

func (r *PostgresRepository) SelectSince(ctx context.Context, userID string, sinceMs int64) ([]models.Deletion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, deleted_at FROM menu_deletions WHERE user_id = $1 AND deleted_at > $2`,
		userID, sinceMs)
	if err != nil {
		return nil, fmt.Errorf("failed to select deletions: %w", err)
	}
	defer rows.Close()

	var result []models.Deletion
	for rows.Next() {
		var item models.Deletion
		if err := rows.Scan(&item.ID, &item.UserID, &item.DeletedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
