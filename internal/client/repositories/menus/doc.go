// Package menus provides the client-side persistence layer for planned meals.
//
// # Overview
//
// The package defines a Repository interface for CRUD and query operations on
// Menu models (see internal/client/models). A SQLite-backed implementation
// (SQLiteRepository) persists data using a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Data Model
//
// One row per planned meal: an immutable 10-character id, the owning user id
// (empty without auth), the (day_of_week, meal_type) slot, the dish name, an
// optional memo, a sort order, and millisecond create/update timestamps.
// Listings order by sort_order ascending.
//
// # Concurrency
//
// Implementations are safe for concurrent use when backed by a properly
// configured *sql.DB. When using *sql.Tx (DBTX), follow normal transaction
// scoping rules.
//
// Key Types
//
//   - type Repository        — interface used by higher-level services
//   - type SQLiteRepository  — SQLite implementation over dbx.DBTX
//
// Typical Usage
//
//	repo := menus.NewSQLiteRepository(db)
//	_ = repo.Insert(ctx, menu)
//	list, _ := repo.GetAll(ctx)
//	one, _ := repo.GetByID(ctx, id)
//	_ = repo.DeleteByID(ctx, id)
package menus
