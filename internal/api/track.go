package api

import (
	"encoding/base64"
	"net/http"

	"github.com/ignite/adserver/internal/domain"
	"github.com/ignite/adserver/internal/pkg/httputil"
)

// 1x1 transparent GIF, served to every pixel request. The image must never
// 404: a broken image blocks layout and pollutes the host page's console.
var pixelGIF, _ = base64.StdEncoding.DecodeString(
	"R0lGODlhAQABAIAAAP///wAAACH5BAEAAAAALAAAAAABAAEAAAICRAEAOw==")

// HandleTrackPixel is the GET pixel contract: always 200, always image/gif,
// even when adId is absent or the counter write fails. A missing adId just
// means no event is recorded.
func (s *Server) HandleTrackPixel(w http.ResponseWriter, r *http.Request) {
	adID := r.URL.Query().Get("adId")
	event := r.URL.Query().Get("event")
	if event == "" {
		event = domain.EventView
	}

	if adID != "" {
		s.recorder.Record(adID, event)
	}

	s.servePixel(w)
}

// TrackRequest is the structured beacon body.
type TrackRequest struct {
	AdID  string `json:"adId"`
	Event string `json:"event"`
}

// HandleTrackPost is the structured beacon contract. Only a malformed
// request fails; persistence failure still returns success, because the
// caller is fire-and-forget and has no remediation path for a retryable
// error.
func (s *Server) HandleTrackPost(w http.ResponseWriter, r *http.Request) {
	var req TrackRequest
	if !httputil.Decode(w, r, &req) {
		return
	}
	if req.AdID == "" || req.Event == "" {
		httputil.BadRequest(w, "missing_fields")
		return
	}

	s.recorder.Record(req.AdID, req.Event)

	httputil.OK(w, map[string]bool{"success": true})
}

func (s *Server) servePixel(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.Write(pixelGIF)
}
