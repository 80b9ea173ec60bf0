package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ignite/adserver/internal/counter"
	"github.com/ignite/adserver/internal/creative"
	"github.com/ignite/adserver/internal/domain"
	"github.com/ignite/adserver/internal/pkg/httputil"
)

// HandleStats returns a creative's lifetime aggregate plus the current UTC
// day's aggregate. Counters for a creative that exists but has never been
// tracked read as zero.
func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	adID := chi.URLParam(r, "adID")

	if _, err := s.records.GetByID(ctx, adID); err != nil {
		if errors.Is(err, creative.ErrNotFound) {
			httputil.NotFound(w, "not_found")
			return
		}
		httputil.InternalError(w, "stats_failed", err)
		return
	}

	lifetime, err := s.counters.Lifetime(ctx, adID)
	if err != nil {
		httputil.InternalError(w, "stats_failed", err)
		return
	}
	today, err := s.counters.Daily(ctx, adID, counter.DateKey(time.Now()))
	if err != nil {
		httputil.InternalError(w, "stats_failed", err)
		return
	}

	httputil.OK(w, domain.AdStats{AdID: adID, Lifetime: lifetime, Today: today})
}
