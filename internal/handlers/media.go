package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"folkers/internal/config"
	"folkers/internal/uploads"
)

// MediaHandler обрабатывает загрузку и выдачу медиа-объектов.
type MediaHandler struct {
	Store  *uploads.Store
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewMediaHandler(store *uploads.Store, logger *zap.SugaredLogger, cfg *config.Config) *MediaHandler {
	return &MediaHandler{Store: store, Logger: logger, Config: cfg}
}

// Upload принимает multipart-поле photo и сохраняет его в
// контентно-адресуемое хранилище. Ответ — hex-хеш содержимого.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// запас к лимиту: multipart-обвязка тоже часть тела
	maxBody := int64(h.Config.UploadMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	reader, err := r.MultipartReader()
	if err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			break
		}
		if part.FormName() != "photo" {
			_ = part.Close()
			continue
		}

		hash, err := h.Store.Save(r.Context(), part, part.Header.Get("Content-Type"))
		_ = part.Close()
		if err != nil {
			writeServiceError(w, h.Logger, "Upload", err)
			return
		}

		h.Logger.Infow("media uploaded", "hash", hash)

		writeJSON(w, http.StatusOK, hash)
		return
	}

	http.Error(w, "no photo found", http.StatusBadRequest)
}

// Get отдаёт объект по префиксу хеша.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "hash")

	content, contentType, err := h.Store.Get(r.Context(), hash)
	if err != nil {
		writeServiceError(w, h.Logger, "GetMedia", err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-File-Hash", hash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
