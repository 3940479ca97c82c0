package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"folkers/internal/service"
	"folkers/internal/signing"
	"folkers/internal/uploads"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError переводит сентинельные ошибки сервисов в HTTP-статусы.
// Всё неопознанное — 500 без деталей наружу.
func writeServiceError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, service.ErrConflict):
		http.Error(w, "conflict", http.StatusConflict)
	case errors.Is(err, uploads.ErrTooLarge):
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, uploads.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, signing.ErrBadPrivateKey),
		errors.Is(err, signing.ErrBadPublicKey),
		errors.Is(err, signing.ErrBadSignature):
		http.Error(w, "malformed key material", http.StatusBadRequest)
	default:
		logger.Errorw(op+": internal error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
