package http

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/paskibra-rajawali/admin-dashboard/internal/handler/http/response"
	"github.com/paskibra-rajawali/admin-dashboard/internal/pkg/storage"
)

// UploadHandler serves photos stored by the member app; the dashboard only reads them.
type UploadHandler interface {
	Serve(w http.ResponseWriter, r *http.Request)
}

type UploadHandlerImpl struct {
	store storage.MediaStore
}

func NewUploadHandler(store storage.MediaStore) UploadHandler {
	return &UploadHandlerImpl{store: store}
}

// Serve implements UploadHandler.
func (h *UploadHandlerImpl) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(chi.URLParam(r, "*"), "/")

	file, info, err := h.store.Open(r.Context(), path)
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) || errors.Is(err, storage.ErrInvalidPath) {
			response.NotFound(w, "File tidak ditemukan")
			return
		}
		slog.Error("Serve upload error", "path", path, "error", err)
		response.InternalServerError(w, "Terjadi kesalahan pada server")
		return
	}
	defer file.Close()

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	w.Header().Set("Last-Modified", info.ModTime.UTC().Format(http.TimeFormat))
	w.Header().Set("Cache-Control", "public, max-age=3600")

	if _, err := io.Copy(w, file); err != nil {
		slog.Warn("Serve upload copy interrupted", "path", path, "error", err)
	}
}
