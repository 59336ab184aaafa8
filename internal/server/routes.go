package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", s.healthHandler)

	r.Post("/auth/register", s.registerHandler)
	r.Post("/auth/login", s.loginHandler)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get("/me", s.meHandler)
		r.Put("/me", s.updateMeHandler)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.listUsersHandler)
			r.Post("/", s.createUserHandler)
			r.Put("/{id}", s.updateUserHandler)
			r.Delete("/{id}", s.deleteUserHandler)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", s.listTeamsHandler)
			r.Post("/", s.createTeamHandler)
		})

		r.Route("/lists", func(r chi.Router) {
			r.Get("/", s.listListsHandler)
			r.Post("/", s.createListHandler)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.listTasksHandler)
			r.Post("/", s.createTaskHandler)
			r.Get("/{id}", s.getTaskHandler)
			r.Put("/{id}", s.updateTaskHandler)
			r.Delete("/{id}", s.deleteTaskHandler)
		})

		r.Route("/invites", func(r chi.Router) {
			r.Get("/", s.listInvitesHandler)
			r.Post("/", s.sendInviteHandler)
			r.Post("/{id}/accept", s.acceptInviteHandler)
			r.Post("/{id}/decline", s.declineInviteHandler)
		})
	})

	return r
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	healthStats := s.db.Health(r.Context())
	if status, ok := healthStats["status"]; ok && status == "down" {
		respondWithJSON(w, http.StatusServiceUnavailable, healthStats)
		return
	}
	respondWithJSON(w, http.StatusOK, healthStats)
}

// urlID parses the {id} route parameter.
func urlID(r *http.Request) (uint, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalid
	}
	return uint(id), nil
}
