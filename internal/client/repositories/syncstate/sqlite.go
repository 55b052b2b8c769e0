package syncstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/daiki-beppu/ui-gohan/internal/dbx"
	"github.com/daiki-beppu/ui-gohan/internal/syncapi"
)

const lastSyncedAtKey = "last_synced_at"

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) LastSyncedAt(ctx context.Context) (int64, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM sync_state WHERE key = ?`, lastSyncedAtKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get sync marker: %w", err)
	}
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt sync marker %q: %w", value, err)
	}
	return ms, nil
}

func (r *SQLiteRepository) SetLastSyncedAt(ctx context.Context, ms int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sync_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, lastSyncedAtKey, strconv.FormatInt(ms, 10))
	if err != nil {
		return fmt.Errorf("failed to set sync marker: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) AddDeletion(ctx context.Context, id string, deletedAtMs int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO menu_deletions (id, deleted_at) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET deleted_at = excluded.deleted_at
	`, id, deletedAtMs)
	if err != nil {
		return fmt.Errorf("failed to journal deletion: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Deletions(ctx context.Context) ([]syncapi.Deletion, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, deleted_at FROM menu_deletions`)
	if err != nil {
		return nil, fmt.Errorf("failed to list deletions: %w", err)
	}
	defer rows.Close()

	var result []syncapi.Deletion
	for rows.Next() {
		var d syncapi.Deletion
		if err := rows.Scan(&d.ID, &d.DeletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deletion row: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) ClearDeletions(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM menu_deletions WHERE id = ?`, id); err != nil {
			return fmt.Errorf("failed to clear deletion %s: %w", id, err)
		}
	}
	return nil
}
