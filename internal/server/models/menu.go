// Package models defines the server-side row types for the sync store.
// Timestamps stay as epoch milliseconds, the same representation the wire
// format and both databases use.
package models

// Menu is one replicated menus row.
type Menu struct {
	ID        string
	UserID    string
	DayOfWeek int
	MealType  string
	DishName  string
	Memo      *string
	SortOrder int
	CreatedAt int64
	UpdatedAt int64
}

// Deletion is one row of the deletion log. The log keeps the latest deletion
// instant per id so late-arriving updates can be ordered against it.
type Deletion struct {
	ID        string
	UserID    string
	DeletedAt int64
}
