package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folkers/internal/middleware"
	"folkers/internal/service"
)

// SignatureHandler обрабатывает подписание, снятие подписи и проверку.
type SignatureHandler struct {
	SignatureService *service.SignatureService
	Logger           *zap.SugaredLogger
}

func NewSignatureHandler(signatureService *service.SignatureService, logger *zap.SugaredLogger) *SignatureHandler {
	return &SignatureHandler{SignatureService: signatureService, Logger: logger}
}

// SignRequest — тело POST /persons/{id}/sign. Приватный ключ
// передаётся вызывающим и сервером не хранится.
type SignRequest struct {
	PrivateKey string `json:"private_key"`
}

func (h *SignatureHandler) Sign(w http.ResponseWriter, r *http.Request) {
	var req SignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	actor, _ := middleware.GetUserFromContext(r.Context())

	sig, err := h.SignatureService.Sign(r.Context(), chi.URLParam(r, "id"), req.PrivateKey, actor)
	if err != nil {
		writeServiceError(w, h.Logger, "SignRecord", err)
		return
	}

	h.Logger.Infow("record signed", "record_id", sig.RecordID, "signed_by", sig.SignedBy)

	writeJSON(w, http.StatusOK, sig)
}

func (h *SignatureHandler) Unsign(w http.ResponseWriter, r *http.Request) {
	sig, err := h.SignatureService.Unsign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "UnsignRecord", err)
		return
	}

	h.Logger.Infow("record unsigned", "record_id", sig.RecordID)

	writeJSON(w, http.StatusOK, sig)
}

// Verify сверяет подпись с текущим содержимым записи.
// Расхождение — 403: запись менялась после подписания.
func (h *SignatureHandler) Verify(w http.ResponseWriter, r *http.Request) {
	sig, ok, err := h.SignatureService.Verify(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.Logger, "VerifyRecord", err)
		return
	}
	if !ok {
		http.Error(w, "record verification failed", http.StatusForbidden)
		return
	}

	writeJSON(w, http.StatusOK, sig)
}
