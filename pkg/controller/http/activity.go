package http

import (
	"net/http"

	"github.com/taskdeck-io/taskdeck/pkg/utils/errutil"
)

func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.uc.Activity.ListActivities(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, activities)
}
