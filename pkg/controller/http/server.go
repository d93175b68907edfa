package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskdeck-io/taskdeck/pkg/usecase"
	"github.com/taskdeck-io/taskdeck/pkg/utils/logging"
)

// Server routes the REST API. All /api routes except the user, activity
// and dashboard reads require an actor identified by the X-Actor-ID
// header.
type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

func New(uc *usecase.UseCases) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`)) //nolint:errcheck
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", s.listProjects)
			r.Get("/{projectID}/tasks", s.listProjectTasks)

			r.Group(func(r chi.Router) {
				r.Use(requireActor)
				r.Post("/", s.createProject)
				r.Put("/{projectID}", s.updateProject)
			})
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Use(requireActor)
			r.Get("/", s.listTasks)
			r.Post("/", s.createTask)
			r.Get("/{taskID}", s.getTask)
			r.Put("/{taskID}", s.updateTask)
		})

		r.Get("/users", s.listUsers)
		r.Get("/activities", s.listActivities)

		r.Route("/notifications", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(requireActor)
				r.Get("/", s.listNotifications)
			})
			r.Put("/{notificationID}/read", s.markNotificationRead)
		})

		r.Get("/dashboard/analytics", s.dashboardAnalytics)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
