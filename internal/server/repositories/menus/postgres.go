// Package menus provides the PostgreSQL-backed repository for server-side
// menu persistence and sync queries.
package menus

import (
	"context"
	"fmt"

	"github.com/daiki-beppu/ui-gohan/internal/dbx"
	"github.com/daiki-beppu/ui-gohan/internal/server/models"
)

// PostgresRepository implements menu storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, menu *models.Menu) error {
	query := `
		INSERT INTO menus (id, user_id, day_of_week, meal_type, dish_name, memo, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id)
		DO UPDATE SET
			day_of_week = EXCLUDED.day_of_week,
			meal_type = EXCLUDED.meal_type,
			dish_name = EXCLUDED.dish_name,
			memo = EXCLUDED.memo,
			sort_order = EXCLUDED.sort_order,
			updated_at = EXCLUDED.updated_at
			WHERE menus.user_id = EXCLUDED.user_id AND EXCLUDED.updated_at > menus.updated_at;
	`
	_, err := r.db.ExecContext(ctx, query,
		menu.ID, menu.UserID, menu.DayOfWeek, menu.MealType, menu.DishName,
		menu.Memo, menu.SortOrder, menu.CreatedAt, menu.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert menu: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteStale(ctx context.Context, userID, id string, deletedAtMs int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM menus WHERE id = $1 AND user_id = $2 AND updated_at <= $3`,
		id, userID, deletedAtMs)
	if err != nil {
		return false, fmt.Errorf("failed to delete menu: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) SelectUpdatedSince(ctx context.Context, userID string, sinceMs int64) ([]models.Menu, error) {
	query := `
		SELECT id, user_id, day_of_week, meal_type, dish_name, memo, sort_order, created_at, updated_at
		FROM menus
		WHERE user_id = $1 AND updated_at > $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, sinceMs)
	if err != nil {
		return nil, fmt.Errorf("failed to select menus: %w", err)
	}
	defer rows.Close()

	var result []models.Menu
	for rows.Next() {
		var item models.Menu
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.DayOfWeek, &item.MealType, &item.DishName,
			&item.Memo, &item.SortOrder, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
