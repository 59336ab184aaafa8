package server

import (
	"net/http"

	"github.com/teamtodo/teamtodo-backend/internal/service"
)

func (s *Server) registerHandler(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondServiceError(w, err)
		return
	}

	user, err := s.auth.Register(r.Context(), req)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

// loginHandler accepts form-style credentials (username=email, password)
// and returns {access_token, token_type:"bearer"}.
func (s *Server) loginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form body")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		respondWithError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := s.auth.Login(r.Context(), email, password)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
