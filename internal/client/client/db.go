package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/daiki-beppu/ui-gohan/internal/client/migrations"
	"github.com/daiki-beppu/ui-gohan/internal/client/repositories/menus"
	"github.com/daiki-beppu/ui-gohan/internal/client/repositories/syncstate"

	_ "modernc.org/sqlite"
)

// Repositories bundles the repository set over one shared store handle.
// The handle is opened once at startup and reused for the process lifetime.
type Repositories struct {
	DB        *sql.DB
	Menus     menus.Repository
	SyncState syncstate.Repository
}

// RunMigrations applies every pending migration step in order. The store is
// left at its last successfully recorded version if a step fails.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// SchemaVersion reports the store's recorded migration version.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	return goose.GetDBVersionContext(ctx, db)
}

// InitDatabase opens the local store, migrates it to the current schema
// version, and returns the repositories bound to it. The connection pool is
// capped at one connection: SQLite is a single-writer store and every
// repository call shares this handle.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, err
	}

	return &Repositories{
		DB:        db,
		Menus:     menus.NewSQLiteRepository(db),
		SyncState: syncstate.NewSQLiteRepository(db),
	}, nil
}
