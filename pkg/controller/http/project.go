package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/taskdeck-io/taskdeck/pkg/domain/model"
	"github.com/taskdeck-io/taskdeck/pkg/domain/types"
	"github.com/taskdeck-io/taskdeck/pkg/usecase"
	"github.com/taskdeck-io/taskdeck/pkg/utils/errutil"
)

func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.uc.Project.ListProjects(r.Context())
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, projects)
}

type createProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.New("title is required"), http.StatusBadRequest)
		return
	}

	project, err := s.uc.Project.CreateProject(r.Context(), actorFrom(r.Context()), req.Title, req.Description, req.StartDate, req.EndDate)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusCreated, project)
}

type updateProjectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Developer   string `json:"developer"`
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id := types.ProjectID(chi.URLParam(r, "projectID"))

	var req updateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	patch := model.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		DeveloperID: types.UserID(req.Developer),
	}
	if req.Status != "" {
		status, err := types.ParseStatus(req.Status)
		if err != nil {
			errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid status"), http.StatusBadRequest)
			return
		}
		patch.Status = status
	}

	project, err := s.uc.Project.UpdateProject(r.Context(), actorFrom(r.Context()), id, patch)
	if err != nil {
		if errors.Is(err, usecase.ErrProjectNotFound) {
			errutil.HandleHTTP(r.Context(), w, err, http.StatusNotFound)
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, project)
}

func (s *Server) listProjectTasks(w http.ResponseWriter, r *http.Request) {
	id := types.ProjectID(chi.URLParam(r, "projectID"))

	tasks, err := s.uc.Project.ListProjectTasks(r.Context(), id)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	respondJSON(w, r, http.StatusOK, tasks)
}
