package services

import (
	"context"

	"github.com/daiki-beppu/ui-gohan/internal/client/models"
)

type demoDish struct {
	day  models.Weekday
	meal models.MealType
	dish string
	memo string
}

var demoWeek = []demoDish{
	{models.Monday, models.MealBreakfast, "納豆ご飯と味噌汁", ""},
	{models.Monday, models.MealLunch, "サラダチキン弁当", "コンビニで購入"},
	{models.Monday, models.MealDinner, "カレーライス", "辛口で"},
	{models.Tuesday, models.MealBreakfast, "トーストとコーヒー", ""},
	{models.Tuesday, models.MealDinner, "鮭の塩焼き定食", ""},
	{models.Wednesday, models.MealBreakfast, "グラノーラとヨーグルト", ""},
	{models.Wednesday, models.MealDinner, "パスタカルボナーラ", ""},
	{models.Saturday, models.MealDinner, "ピザとサラダ", "配達"},
	{models.Sunday, models.MealSnack, "ケーキとコーヒー", "カフェで"},
}

// SeedDemoWeek fills an empty planner with a sample week. Entries go through
// Create so they get real ids and timestamps and will replicate like any
// user-entered row.
func SeedDemoWeek(ctx context.Context, svc MenuService) (int, error) {
	created := 0
	for _, d := range demoWeek {
		params := CreateMenuParams{
			DayOfWeek: d.day,
			MealType:  d.meal,
			DishName:  d.dish,
		}
		if d.memo != "" {
			memo := d.memo
			params.Memo = &memo
		}
		if _, err := svc.Create(ctx, params); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
