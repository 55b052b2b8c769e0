package menus

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/daiki-beppu/ui-gohan/internal/client/models"
	"github.com/daiki-beppu/ui-gohan/internal/common"
	"github.com/daiki-beppu/ui-gohan/internal/dbx"
)

const menuColumns = `id, user_id, day_of_week, meal_type, dish_name, memo, sort_order, created_at, updated_at`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanMenu decodes one row into a typed Menu. Unexpected column shapes
// surface as a scan error rather than silently producing a zero value.
func scanMenu(s scanner) (*models.Menu, error) {
	var (
		m       models.Menu
		day     int
		meal    string
		memo    sql.NullString
		created int64
		updated int64
	)
	if err := s.Scan(&m.ID, &m.UserID, &day, &meal, &m.DishName, &memo, &m.SortOrder, &created, &updated); err != nil {
		return nil, err
	}
	m.DayOfWeek = models.Weekday(day)
	m.MealType = models.MealType(meal)
	if memo.Valid {
		v := memo.String
		m.Memo = &v
	}
	m.CreatedAt = time.UnixMilli(created)
	m.UpdatedAt = time.UnixMilli(updated)
	return &m, nil
}

func (r *SQLiteRepository) selectMany(ctx context.Context, query string, args ...any) ([]models.Menu, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select menus: %w", err)
	}
	defer rows.Close()

	var result []models.Menu
	for rows.Next() {
		item, err := scanMenu(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu row: %w", err)
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Insert writes a new row. All columns come pre-populated from the service.
func (r *SQLiteRepository) Insert(ctx context.Context, menu *models.Menu) error {
	query := `INSERT INTO menus (` + menuColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		menu.ID, menu.UserID, int(menu.DayOfWeek), string(menu.MealType), menu.DishName,
		menu.Memo, menu.SortOrder, menu.CreatedAt.UnixMilli(), menu.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert menu: %w", err)
	}
	return nil
}

// Update replaces the mutable columns by id. Id, user_id and created_at stay
// untouched.
func (r *SQLiteRepository) Update(ctx context.Context, menu *models.Menu) error {
	query := `UPDATE menus
			SET day_of_week = ?, meal_type = ?, dish_name = ?, memo = ?, sort_order = ?, updated_at = ?
			WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		int(menu.DayOfWeek), string(menu.MealType), menu.DishName,
		menu.Memo, menu.SortOrder, menu.UpdatedAt.UnixMilli(), menu.ID)
	if err != nil {
		return fmt.Errorf("failed to update menu: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

// GetAll lists every row ordered by sort_order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Menu, error) {
	return r.selectMany(ctx, `SELECT `+menuColumns+` FROM menus ORDER BY sort_order ASC`)
}

// GetByDay lists rows for one day of the week ordered by sort_order.
func (r *SQLiteRepository) GetByDay(ctx context.Context, day models.Weekday) ([]models.Menu, error) {
	return r.selectMany(ctx,
		`SELECT `+menuColumns+` FROM menus WHERE day_of_week = ? ORDER BY sort_order ASC`, int(day))
}

// GetByMealType lists rows for one meal slot ordered by sort_order.
func (r *SQLiteRepository) GetByMealType(ctx context.Context, mealType models.MealType) ([]models.Menu, error) {
	return r.selectMany(ctx,
		`SELECT `+menuColumns+` FROM menus WHERE meal_type = ? ORDER BY sort_order ASC`, string(mealType))
}

// GetByID returns a single row or common.ErrNotFound.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Menu, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+menuColumns+` FROM menus WHERE id = ?`, id)
	m, err := scanMenu(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan menu row: %w", err)
	}
	return m, nil
}

// DeleteByID removes exactly one row (hard delete, no tombstone).
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menus WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrNotFound
	}
	return nil
}

// CountByDay reports the number of rows planned for a day.
func (r *SQLiteRepository) CountByDay(ctx context.Context, day models.Weekday) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menus WHERE day_of_week = ?`, int(day)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count menus: %w", err)
	}
	return n, nil
}

// SelectUpdatedSince returns rows changed strictly after sinceMs.
func (r *SQLiteRepository) SelectUpdatedSince(ctx context.Context, sinceMs int64) ([]models.Menu, error) {
	return r.selectMany(ctx,
		`SELECT `+menuColumns+` FROM menus WHERE updated_at > ? ORDER BY sort_order ASC`, sinceMs)
}

// Upsert applies a replicated row. On conflict the existing row is replaced
// only when the incoming updated_at is strictly newer (last write wins);
// user_id is never re-scoped.
func (r *SQLiteRepository) Upsert(ctx context.Context, menu *models.Menu) error {
	query := `INSERT INTO menus (` + menuColumns + `)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				day_of_week = excluded.day_of_week,
				meal_type = excluded.meal_type,
				dish_name = excluded.dish_name,
				memo = excluded.memo,
				sort_order = excluded.sort_order,
				updated_at = excluded.updated_at
			WHERE excluded.updated_at > menus.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		menu.ID, menu.UserID, int(menu.DayOfWeek), string(menu.MealType), menu.DishName,
		menu.Memo, menu.SortOrder, menu.CreatedAt.UnixMilli(), menu.UpdatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to upsert menu: %w", err)
	}
	return nil
}

// DeleteStale removes the row unless it was updated after the replicated
// deletion time.
func (r *SQLiteRepository) DeleteStale(ctx context.Context, id string, deletedAtMs int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM menus WHERE id = ? AND updated_at <= ?`, id, deletedAtMs)
	if err != nil {
		return false, fmt.Errorf("failed to delete menu: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return ra > 0, nil
}
