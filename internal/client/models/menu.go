// Package models defines the client-side domain model for planned meals.
package models

import (
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/daiki-beppu/ui-gohan/internal/common"
)

// IDLength is the length of generated menu identifiers.
const IDLength = 10

// Weekday numbers the days of the planner week: 0 = Sunday … 6 = Saturday.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// MealType classifies a meal slot within a day.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// ParseMealType converts user input into a MealType, failing with a
// validation error on unknown values.
func ParseMealType(s string) (MealType, error) {
	m := MealType(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown meal type %q", common.ErrValidation, s)
	}
	return m, nil
}

// Menu is one planned meal, persisted locally and optionally replicated.
type Menu struct {
	// ID is a globally unique, immutable identifier assigned at creation.
	ID string

	// UserID scopes ownership. Empty when no auth context exists; never
	// changes after creation.
	UserID string

	DayOfWeek Weekday
	MealType  MealType
	DishName  string

	// Memo is optional free text; nil when unset.
	Memo *string

	// SortOrder determines display order within a day; not required unique.
	SortOrder int

	// CreatedAt is set once at creation. UpdatedAt is refreshed on every
	// successful update; both carry millisecond precision.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewID generates a fresh 10-character identifier from the URL-safe nanoid
// alphabet.
func NewID() (string, error) {
	id, err := gonanoid.New(IDLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return id, nil
}
