package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daiki-beppu/ui-gohan/internal/client/models"
)

// parseDay accepts either a number 0-6 (0 = Sunday) or an English day name,
// full or three-letter ("sun", "Monday").
func parseDay(s string) (models.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		d := models.Weekday(n)
		if !d.Valid() {
			return 0, fmt.Errorf("day of week must be 0-6, got %d", n)
		}
		return d, nil
	}

	for d := models.Sunday; d <= models.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown day %q", s)
}

// formatMenu renders one entry as a single REPL line.
func formatMenu(m *models.Menu) string {
	memo := ""
	if m.Memo != nil {
		memo = "  # " + *m.Memo
	}
	return fmt.Sprintf("%s  %-9s %-9s %s%s", m.ID, m.DayOfWeek, m.MealType, m.DishName, memo)
}
