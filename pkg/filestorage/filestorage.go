package filestorage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStorageInterface is the contract for the object-storage collaborator.
// Save files the upload under the given request id and returns an opaque
// file reference; ResolveURL turns a reference into something a browser can
// fetch.
type FileStorageInterface interface {
	Save(fileHeader *multipart.FileHeader, requestID string) (fileRef string, err error)
	ResolveURL(ctx context.Context, fileRef string) (string, error)
	Delete(ctx context.Context, fileRef string) error
}

type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (FileStorageInterface, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

func (s *LocalFileStorage) Save(fileHeader *multipart.FileHeader, requestID string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Unique file name to avoid collisions; files are grouped per request.
	ext := filepath.Ext(fileHeader.Filename)
	uniqueFileName := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	fullDirPath := filepath.Join(s.basePath, "requests", requestID)
	if err := os.MkdirAll(fullDirPath, 0755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(fullDirPath, uniqueFileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join("requests", requestID, uniqueFileName)), nil
}

func (s *LocalFileStorage) ResolveURL(_ context.Context, fileRef string) (string, error) {
	return "/uploads/" + fileRef, nil
}

func (s *LocalFileStorage) Delete(_ context.Context, fileRef string) error {
	if fileRef == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.basePath, filepath.FromSlash(fileRef)))
}
