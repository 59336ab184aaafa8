package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/teamtodo/teamtodo-backend/internal/domain"
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error preparing response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondServiceError maps the domain error taxonomy onto status codes.
// Anything outside the taxonomy is a server fault: logged, not leaked.
func (s *Server) respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUserNotFound):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict),
		errors.Is(err, domain.ErrAlreadyProcessed):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalid):
		respondWithError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Errorw("internal error", "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON decodes a request body into v, translating the decoder's many
// failure modes into one ErrInvalid with a usable message.
func decodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(v)
	if err == nil {
		return nil
	}

	var syntaxError *json.SyntaxError
	var unmarshalTypeError *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxError):
		return fmt.Errorf("%w: badly-formed JSON (at position %d)", domain.ErrInvalid, syntaxError.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: badly-formed JSON", domain.ErrInvalid)
	case errors.As(err, &unmarshalTypeError):
		return fmt.Errorf("%w: invalid value for field %q", domain.ErrInvalid, unmarshalTypeError.Field)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.TrimPrefix(err.Error(), "json: unknown field ")
		return fmt.Errorf("%w: unknown field %s", domain.ErrInvalid, field)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: request body must not be empty", domain.ErrInvalid)
	default:
		return fmt.Errorf("%w: %v", domain.ErrInvalid, err)
	}
}
