package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/daiki-beppu/ui-gohan/internal/common"
	"github.com/daiki-beppu/ui-gohan/internal/syncapi"
)

func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("request_id", requestIDFromContext(ctx))

	var req syncapi.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID := userIDFromContext(ctx)

	resp, err := s.sync.Reconcile(ctx, userID, &req)
	if err != nil {
		if errors.Is(err, common.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error(ctx, "sync reconcile failed", "user_id", userID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	logger.Info(ctx, "sync round served",
		"user_id", userID,
		"pushed_menus", len(req.Menus),
		"pushed_deletions", len(req.Deletions),
		"returned_menus", len(resp.Menus),
		"returned_deletions", len(resp.Deletions))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error(ctx, "failed to encode sync response", "error", err)
	}
}
