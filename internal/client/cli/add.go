package cli

import (
	"context"
	"log"
	"os"

	"github.com/daiki-beppu/ui-gohan/internal/client/models"
	"github.com/daiki-beppu/ui-gohan/internal/client/services"
)

// Add interactively collects a new entry and persists it.
func (a *App) Add(ctx context.Context) error {
	dayAnswer, err := GetSimpleText(a.reader, "Enter day (0-6 or name, 0=Sunday)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	day, err := parseDay(dayAnswer)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	mealAnswer, err := GetSimpleText(a.reader, "Enter meal type (breakfast/lunch/dinner/snack)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	mealType, err := models.ParseMealType(mealAnswer)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	dishName, err := GetSimpleText(a.reader, "Enter dish name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	memoAnswer, err := GetSimpleText(a.reader, "Enter memo (optional)", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	params := services.CreateMenuParams{
		DayOfWeek: day,
		MealType:  mealType,
		DishName:  dishName,
	}
	if memoAnswer != "" {
		params.Memo = &memoAnswer
	}

	created, err := a.menuService.Create(ctx, params)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Added:", formatMenu(created))
	return nil
}
