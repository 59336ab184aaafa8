package server

import (
	"net/http"

	"github.com/teamtodo/teamtodo-backend/internal/service"
)

func (s *Server) listTasksHandler(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.tasks.List(r.Context(), identityFrom(r.Context()))
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, tasks)
}

func (s *Server) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondServiceError(w, err)
		return
	}

	task, err := s.tasks.Create(r.Context(), identityFrom(r.Context()), req)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, task)
}

func (s *Server) getTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid task ID")
		return
	}

	task, err := s.tasks.Get(r.Context(), identityFrom(r.Context()), id)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, task)
}

func (s *Server) updateTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid task ID")
		return
	}

	var req service.UpdateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		s.respondServiceError(w, err)
		return
	}

	task, err := s.tasks.Update(r.Context(), identityFrom(r.Context()), id, req)
	if err != nil {
		s.respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, task)
}

func (s *Server) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid task ID")
		return
	}

	if err := s.tasks.Delete(r.Context(), identityFrom(r.Context()), id); err != nil {
		s.respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
