package handlers

import (
	"context"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/markdave123-py/chathistory/internal/api/respond"
	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/services"
)

// multipart overhead allowed on top of the file itself
const formOverhead = 1 << 20

type FileHandler struct {
	files *services.FileService
	log   *slog.Logger
}

func NewFileHandler(files *services.FileService, log *slog.Logger) *FileHandler {
	return &FileHandler{files: files, log: log}
}

// Upload stores the multipart field "file" as a message attachment.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedChat)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadSize+formOverhead)
	if err := r.ParseMultipartForm(services.MaxUploadSize); err != nil {
		respond.Error(w, r, h.log, apperrors.Wrap(apperrors.CodeBadRequestFiles, "File size should be less than 5MB", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respond.Error(w, r, h.log, apperrors.Wrap(apperrors.CodeBadRequestFiles, "No file uploaded", err))
		return
	}
	defer file.Close()

	uploadCtx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	att, err := h.files.Upload(uploadCtx, session.UserID, header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	respond.JSON(w, http.StatusOK, att)
}

// Download streams one of the caller's attachments; the key is the path after /api/files/.
func (h *FileHandler) Download(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedChat)
	if !ok {
		return
	}
	key, ok := h.objectKey(w, r)
	if !ok {
		return
	}

	body, err := h.files.Open(r.Context(), session.UserID, key)
	if err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	defer body.Close()

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		h.log.Warn("attachment download interrupted", "key", key, "err", err)
	}
}

func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := requireSession(w, r, h.log, apperrors.CodeUnauthorizedChat)
	if !ok {
		return
	}
	key, ok := h.objectKey(w, r)
	if !ok {
		return
	}

	if err := h.files.Delete(r.Context(), session.UserID, key); err != nil {
		respond.Error(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *FileHandler) objectKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil || key == "" {
		respond.Error(w, r, h.log, apperrors.BadRequest(apperrors.SurfaceFiles, "Invalid file path"))
		return "", false
	}
	return key, true
}
