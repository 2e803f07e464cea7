package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	verrors "github.com/vango-dev/vnode/internal/errors"
)

type errorBody struct {
	Error *verrors.Error `json:"error"`
}

// statusFor maps an error to its HTTP status.
func statusFor(e *verrors.Error) int {
	switch e.Code {
	case "E161":
		return http.StatusRequestEntityTooLarge
	case "E163":
		return http.StatusNotFound
	}
	switch e.Category {
	case verrors.CategoryMarkup, verrors.CategoryComponent, verrors.CategoryRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error body.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	e := verrors.FromError(err, "E180")
	status := statusFor(e)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.logger.Log(r.Context(), level, "request failed",
		"code", e.Code,
		"error", e.Error(),
		"request_id", chimw.GetReqID(r.Context()),
	)

	_ = writeJSON(w, status, errorBody{Error: e})
}

func notFound(r *http.Request) *verrors.Error {
	return verrors.New("E163").WithDetail(r.Method + " " + r.URL.Path)
}

// respond writes v as JSON, or an E180 error when v cannot be encoded.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := writeJSON(w, status, v); err != nil {
		s.fail(w, r, verrors.New("E180").
			WithDetail("The response could not be encoded as JSON.").
			Wrap(err))
	}
}

// writeJSON encodes v before touching w, so a failed encode leaves the
// response unwritten.
func writeJSON(w http.ResponseWriter, status int, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(data, '\n'))
	return nil
}
