package api

import (
	"net/http"

	"github.com/ignite/adserver/internal/domain"
	"github.com/ignite/adserver/internal/pkg/httputil"
	"github.com/ignite/adserver/internal/pkg/logger"
)

// ServeResponse is the delivery plan returned to the host tag.
type ServeResponse struct {
	Placements []domain.Placement `json:"placements"`
}

// HandleServe resolves a publisher's placements. The response is
// all-or-nothing: any resolver failure fails the whole request rather than
// partially rendering.
func (s *Server) HandleServe(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		httputil.BadRequest(w, "missing_user_id")
		return
	}

	placements, err := s.resolver.Resolve(r.Context(), userID)
	if err != nil {
		logger.Error("serve failed", "publisher", userID, "err", err)
		httputil.ErrorCode(w, http.StatusInternalServerError, "serve_failed")
		return
	}

	logger.Debug("served placements", "publisher", userID, "count", len(placements))
	httputil.OK(w, ServeResponse{Placements: placements})
}

// HandleHealth reports liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
