package server

import (
	"net/http"

	"github.com/teamtodo/teamtodo-backend/internal/service"
)

func (s *Server) listTeamsHandler(w http.ResponseWriter, r *http.Request) {
	teams, err := s.teams.List(r.Context(), identityFrom(r.Context()))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, teams)
}

func (s *Server) createTeamHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTeamRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondServiceError(w, err)
		return
	}

	team, err := s.teams.Create(r.Context(), identityFrom(r.Context()), req)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, team)
}
