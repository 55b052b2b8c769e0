// Package httpapi exposes the sync service over HTTP/JSON.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/daiki-beppu/ui-gohan/internal/common"
	"github.com/daiki-beppu/ui-gohan/internal/logging"
	"github.com/daiki-beppu/ui-gohan/internal/syncapi"
)

// Reconciler is the service surface the HTTP layer needs. Satisfied by
// services.SyncService.
type Reconciler interface {
	Reconcile(ctx context.Context, userID string, req *syncapi.SyncRequest) (*syncapi.SyncResponse, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	sync      Reconciler
	jwtSecret []byte
}

// NewServer builds the HTTP front end. An empty secretKey switches the
// endpoint to open mode: requests are accepted without a token and all rows
// live under the empty user id.
func NewServer(a string, l logging.Logger, ss Reconciler, secretKey string) *Server {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		sync:      ss,
		jwtSecret: []byte(secretKey),
	}
}

// Router assembles the route table. Split out from Run so tests can drive the
// handlers through httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Post(common.SyncPath, s.handleSync)
	})

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
