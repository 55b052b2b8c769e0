package cli

import (
	"context"
	"log"
	"os"

	"github.com/daiki-beppu/ui-gohan/internal/client/models"
)

// List prints every planned meal of the week in display order.
func (a *App) List(ctx context.Context) error {
	all, err := a.menuService.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(all) == 0 {
		printlnFn("No entries yet (try 'add' or 'seed')")
		return nil
	}
	for i := range all {
		printlnFn(formatMenu(&all[i]))
	}
	return nil
}

// Day prompts for a day of the week and prints its entries.
func (a *App) Day(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Enter day (0-6 or name, 0=Sunday)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	day, err := parseDay(answer)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	entries, err := a.menuService.ListByDay(ctx, day)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for i := range entries {
		printlnFn(formatMenu(&entries[i]))
	}
	return nil
}

// Meal prompts for a meal type and prints matching entries across the week.
func (a *App) Meal(ctx context.Context) error {
	answer, err := GetSimpleText(a.reader, "Enter meal type (breakfast/lunch/dinner/snack)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	mealType, err := models.ParseMealType(answer)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	entries, err := a.menuService.ListByMealType(ctx, mealType)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for i := range entries {
		printlnFn(formatMenu(&entries[i]))
	}
	return nil
}
