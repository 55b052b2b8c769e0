package cli

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/daiki-beppu/ui-gohan/internal/client/models"
	"github.com/daiki-beppu/ui-gohan/internal/client/services"
)

// Show fetches and displays a single entry by ID, prompting the user for it.
func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter entry id to show", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	menu, err := a.menuService.GetByID(ctx, id)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	log.Printf("Day: %s", menu.DayOfWeek)
	log.Printf("Meal: %s", menu.MealType)
	log.Printf("Dish: %s", menu.DishName)
	if menu.Memo != nil {
		log.Printf("Memo: %s", *menu.Memo)
	}
	log.Printf("Created: %s", menu.CreatedAt.Format("2006-01-02 15:04:05"))
	log.Printf("Updated: %s", menu.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// Edit updates a single entry by ID. Prompts that are left empty keep the
// current value; entering "-" for the memo clears it.
func (a *App) Edit(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter entry id to edit", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	var params services.UpdateMenuParams

	dayAnswer, err := GetSimpleText(a.reader, "Enter day (empty to keep)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if dayAnswer != "" {
		day, err := parseDay(dayAnswer)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		params.DayOfWeek = &day
	}

	mealAnswer, err := GetSimpleText(a.reader, "Enter meal type (empty to keep)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if mealAnswer != "" {
		mealType, err := models.ParseMealType(mealAnswer)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		params.MealType = &mealType
	}

	dishAnswer, err := GetSimpleText(a.reader, "Enter dish name (empty to keep)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if dishAnswer != "" {
		params.DishName = &dishAnswer
	}

	memoAnswer, err := GetSimpleText(a.reader, "Enter memo (empty to keep, '-' to clear)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	switch memoAnswer {
	case "":
	case "-":
		params.Memo = &sql.NullString{}
	default:
		params.Memo = &sql.NullString{String: memoAnswer, Valid: true}
	}

	updated, err := a.menuService.Update(ctx, id, params)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Updated:", formatMenu(updated))
	return nil
}

// Delete removes an entry by its identifier, prompting the user for the ID.
func (a *App) Delete(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter entry id to delete", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if err := a.menuService.Delete(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn("Deleted:", id)
	return nil
}
