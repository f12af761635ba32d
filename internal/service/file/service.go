package file

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pontolabs/ponto-backend-go/internal/pkg/storage"
)

// FileService persists punch selfies and hands back the storage reference
// kept on the punch row.
type FileService interface {
	UploadSelfie(ctx context.Context, employeeID string, at time.Time, image []byte) (string, error)
	SelfieURL(ctx context.Context, path string) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) FileService {
	return &fileServiceImpl{storage: fileStorage}
}

// UploadSelfie implements FileService. Selfies are keyed by employee, date
// and a random id so repeated punches never collide.
func (s *fileServiceImpl) UploadSelfie(ctx context.Context, employeeID string, at time.Time, image []byte) (string, error) {
	uniqueID := uuid.New().String()
	path := fmt.Sprintf("selfies/%s/%s/%s.jpg", employeeID, at.Format("2006-01-02"), uniqueID)

	ref, err := s.storage.Upload(ctx, bytes.NewReader(image), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload selfie: %w", err)
	}

	return ref, nil
}

// SelfieURL implements FileService.
func (s *fileServiceImpl) SelfieURL(ctx context.Context, path string) (string, error) {
	return s.storage.GetURL(ctx, path, 15*time.Minute)
}
