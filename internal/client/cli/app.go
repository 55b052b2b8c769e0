package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"

	"github.com/daiki-beppu/ui-gohan/internal/client/client"
	"github.com/daiki-beppu/ui-gohan/internal/client/config"
	"github.com/daiki-beppu/ui-gohan/internal/client/services"
	"github.com/daiki-beppu/ui-gohan/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	repos       *client.Repositories
	menuService services.MenuService
	syncService *services.SyncService
	logger      logging.Logger
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	var apiClient client.Client
	if c.RemoteURL != "" {
		apiClient = client.NewHTTPClient(c.RemoteURL, c.RemoteAuthToken, c.RequestTimeout)
	}

	ms := services.NewMenuService(repos, "")
	ss := services.NewSyncService(apiClient, repos, logger)

	return &App{
		config:      c,
		repos:       repos,
		menuService: ms,
		syncService: ss,
		logger:      logger,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// Run performs a best-effort startup sync and then blocks in the REPL until
// the user exits. A failed startup sync only logs a warning; the planner
// keeps working on local data.
func (a *App) Run(ctx context.Context) {
	defer a.repos.DB.Close()

	if a.syncService.Enabled() {
		if _, err := a.syncService.Sync(ctx); err != nil {
			a.logger.Warn(ctx, "startup sync failed, continuing offline", "error", err)
		}
	}

	a.Root(ctx)
}

func (a *App) hasRemote() bool {
	return a.syncService.Enabled()
}
