package server

import (
	"net/http"

	"github.com/teamtodo/teamtodo-backend/internal/service"
)

func (s *Server) listListsHandler(w http.ResponseWriter, r *http.Request) {
	lists, err := s.lists.List(r.Context(), identityFrom(r.Context()))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, lists)
}

func (s *Server) createListHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateListRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondServiceError(w, err)
		return
	}

	list, err := s.lists.Create(r.Context(), identityFrom(r.Context()), req)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, list)
}
