package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/usecase"
	"github.com/taskdeck-io/taskdeck/pkg/utils/errutil"
)

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.uc.Task.ListTasks(r.Context(), actorFrom(r.Context()))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, tasks)
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	id := types.TaskID(chi.URLParam(r, "taskID"))

	task, err := s.uc.Task.GetTask(r.Context(), actorFrom(r.Context()), id)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			respondMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, task)
}

type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Project     string `json:"project"`
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Project == "" {
		respondMessage(w, http.StatusBadRequest, "Title and project are required")
		return
	}

	task, err := s.uc.Task.CreateTask(r.Context(), actorFrom(r.Context()), req.Title, req.Description, types.ProjectID(req.Project))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusCreated, task)
}

type updateTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Project     string  `json:"project"`
	Status      string  `json:"status"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	TimeSpent   float64 `json:"timeSpent"`
	AssignedTo  string  `json:"assignedTo"`
}

// parseDateField accepts RFC 3339 timestamps and plain dates; an empty
// string is a zero time, meaning "not provided".
func parseDateField(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	id := types.TaskID(chi.URLParam(r, "taskID"))

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := model.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Project:     types.ProjectID(req.Project),
		TimeSpent:   req.TimeSpent,
		AssignedTo:  types.UserID(req.AssignedTo),
	}
	if req.Status != "" {
		status, err := types.ParseStatus(req.Status)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid status")
			return
		}
		patch.Status = status
	}

	start, ok := parseDateField(req.StartDate)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid startDate")
		return
	}
	patch.StartDate = start

	end, ok := parseDateField(req.EndDate)
	if !ok {
		respondMessage(w, http.StatusBadRequest, "Invalid endDate")
		return
	}
	patch.EndDate = end

	task, err := s.uc.Task.UpdateTask(r.Context(), actorFrom(r.Context()), id, patch)
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			respondMessage(w, http.StatusNotFound, "Task not found")
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, task)
}
