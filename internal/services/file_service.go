package services

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/markdave123-py/chathistory/internal/apperrors"
	"github.com/markdave123-py/chathistory/internal/core"
	"github.com/markdave123-py/chathistory/internal/models"
)

const MaxUploadSize = 5 << 20

var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// FileService stores message attachments in object storage.
type FileService struct {
	storage core.ObjectClient
}

// NewFileService accepts a nil storage; uploads then fail as offline.
func NewFileService(storage core.ObjectClient) *FileService {
	return &FileService{storage: storage}
}

func (s *FileService) Upload(ctx context.Context, userID, filename, contentType string, size int64, data io.Reader) (*models.Attachment, error) {
	if s.storage == nil {
		return nil, apperrors.New(apperrors.CodeOfflineFiles, "")
	}
	if size > MaxUploadSize {
		return nil, apperrors.New(apperrors.CodeBadRequestFiles, "File size should be less than 5MB")
	}
	if !allowedUploadTypes[contentType] {
		return nil, apperrors.New(apperrors.CodeBadRequestFiles, "File type should be JPEG or PNG")
	}

	key := s.objectKey(userID, uuid.NewString(), filename)
	url, err := s.storage.UploadFile(ctx, key, data, contentType)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeOfflineFiles, "Upload failed", err)
	}
	return &models.Attachment{URL: url, Pathname: key, ContentType: contentType}, nil
}

// objectKey creates a consistent S3 key layout.
func (s *FileService) objectKey(userID, fileID, filename string) string {
	filename = path.Base(strings.TrimSpace(filename))
	filename = strings.ReplaceAll(filename, " ", "_")
	if filename == "." || filename == "/" || filename == "" {
		filename = "upload"
	}
	return path.Join("users", userID, "attachments", fileID, filename)
}

// Open streams an attachment stored under the user's own prefix; the caller closes it.
func (s *FileService) Open(ctx context.Context, userID, key string) (io.ReadCloser, error) {
	if err := s.checkKey(userID, key); err != nil {
		return nil, err
	}
	body, err := s.storage.GetObjectReader(ctx, key)
	if errors.Is(err, core.ErrObjectNotFound) {
		return nil, apperrors.New(apperrors.CodeNotFoundFiles, "File not found")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeOfflineFiles, "Download failed", err)
	}
	return body, nil
}

// Delete removes an attachment stored under the user's own prefix.
func (s *FileService) Delete(ctx context.Context, userID, key string) error {
	if err := s.checkKey(userID, key); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(ctx, key); err != nil {
		return apperrors.Wrap(apperrors.CodeOfflineFiles, "Delete failed", err)
	}
	return nil
}

func (s *FileService) checkKey(userID, key string) error {
	if s.storage == nil {
		return apperrors.New(apperrors.CodeOfflineFiles, "")
	}
	if key == "" || path.Clean(key) != key {
		return apperrors.New(apperrors.CodeBadRequestFiles, "Invalid file path")
	}
	if !strings.HasPrefix(key, path.Join("users", userID, "attachments")+"/") {
		return apperrors.New(apperrors.CodeForbiddenFiles, "This file belongs to another user.")
	}
	return nil
}
