package ioweb

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/namenest/namenest/pkg/errcode"
)

// Envelope provides a consistent JSON response structure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

var enc = gnfmt.GNjson{}

func writeJSON(w http.ResponseWriter, status int, env Envelope, logger *slog.Logger) {
	body, err := enc.Encode(env)
	if err != nil {
		logger.Error("Failed to encode JSON response", "error", err)
		status = http.StatusInternalServerError
		body = []byte(`{"success":false,"error":"internal error"}`)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func success(w http.ResponseWriter, data any, logger *slog.Logger) {
	writeJSON(w, http.StatusOK, Envelope{Success: true, Data: data}, logger)
}

func failure(w http.ResponseWriter, status int, msg string, logger *slog.Logger) {
	writeJSON(w, status, Envelope{Error: msg}, logger)
}

// fail maps an error to an HTTP status of the error response.
func fail(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := http.StatusInternalServerError
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		switch gnErr.Code {
		case errcode.NameNotFoundError, errcode.PostNotFoundError:
			status = http.StatusNotFound
		case errcode.FavoritesInvalidIDError:
			status = http.StatusBadRequest
		}
	}
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	failure(w, status, err.Error(), logger)
}
