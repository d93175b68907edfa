package http

import (
	"net/http"

	"github.com/taskdeck-io/taskdeck/pkg/utils/errutil"
)

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.uc.User.ListUsers(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, users)
}
