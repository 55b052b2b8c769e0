package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/daiki-beppu/ui-gohan/internal/client/services"
)

// Sync triggers one replication round with the remote endpoint.
func (a *App) Sync(ctx context.Context) error {
	result, err := a.syncService.Sync(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("Synced: pushed %d, pulled %d, deleted %d",
		result.Pushed, result.Pulled, result.Deleted))
	return nil
}

// Seed fills an empty planner with a demo week of meals.
func (a *App) Seed(ctx context.Context) error {
	existing, err := a.menuService.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(existing) > 0 {
		printlnFn("Planner is not empty, refusing to seed")
		return nil
	}

	n, err := services.SeedDemoWeek(ctx, a.menuService)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn(fmt.Sprintf("Seeded %d entries", n))
	return nil
}
