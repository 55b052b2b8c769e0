// Package syncapi defines the JSON wire types exchanged between the planner
// client and the sync server. Both sides share these shapes so the exchange
// stays symmetric.
//
// Timestamps are epoch milliseconds everywhere, matching the on-disk
// representation of the menus table.
package syncapi

// Menu is the wire representation of one menus row.
type Menu struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	DayOfWeek int     `json:"day_of_week"`
	MealType  string  `json:"meal_type"`
	DishName  string  `json:"dish_name"`
	Memo      *string `json:"memo"`
	SortOrder int     `json:"sort_order"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

// Deletion records that a row was hard-deleted at DeletedAt. A deletion only
// wins over rows that were not updated after that instant.
type Deletion struct {
	ID        string `json:"id"`
	DeletedAt int64  `json:"deleted_at"`
}

// SyncRequest carries local changes since the client's last sync marker.
type SyncRequest struct {
	Since     int64      `json:"since"`
	Menus     []Menu     `json:"menus"`
	Deletions []Deletion `json:"deletions"`
}

// SyncResponse returns remote changes since the requested marker, plus the
// server clock the client should record as its new marker.
type SyncResponse struct {
	ServerTime int64      `json:"server_time"`
	Menus      []Menu     `json:"menus"`
	Deletions  []Deletion `json:"deletions"`
}
