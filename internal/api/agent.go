package api

import (
	"net/http"

	"github.com/ignite/adserver/web"
)

// HandleAgentScript serves the host tag. The script discovers its publisher
// id from its own URL, so one immutable asset serves every publisher; a
// short public cache keeps tag loads off the origin.
func (s *Server) HandleAgentScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Write(web.AgentJS)
}
