package http

import (
	"net/http"

	"github.com/taskdeck-io/taskdeck/pkg/utils/errutil"
)

func (s *Server) dashboardAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := s.uc.Dashboard.Analytics(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, analytics)
}
