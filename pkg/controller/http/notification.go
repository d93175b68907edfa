package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/usecase"
	"github.com/taskdeck-io/taskdeck/pkg/utils/errutil"
)

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.uc.Notification.ListNotifications(r.Context(), actorFrom(r.Context()))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, notifications)
}

func (s *Server) markNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := types.NotificationID(chi.URLParam(r, "notificationID"))

	notification, err := s.uc.Notification.MarkNotificationRead(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotificationNotFound) {
			respondMessage(w, http.StatusNotFound, "Notification not found")
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, notification)
}
