package server

import (
	"net/http"

	"github.com/teamtodo/teamtodo-backend/internal/service"
)

func (s *Server) listInvitesHandler(w http.ResponseWriter, r *http.Request) {
	invites, err := s.invites.ListMine(r.Context(), identityFrom(r.Context()))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, invites)
}

func (s *Server) sendInviteHandler(w http.ResponseWriter, r *http.Request) {
	var req service.SendInviteRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondServiceError(w, err)
		return
	}

	invite, err := s.invites.Send(r.Context(), identityFrom(r.Context()), req)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, invite)
}

func (s *Server) acceptInviteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid invite ID")
		return
	}

	invite, err := s.invites.Accept(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, invite)
}

func (s *Server) declineInviteHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid invite ID")
		return
	}

	invite, err := s.invites.Decline(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, invite)
}
