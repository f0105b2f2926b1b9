package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tylacb11-spec/lienquan-sub000/models"
	"github.com/tylacb11-spec/lienquan-sub000/repositories"
	"github.com/tylacb11-spec/lienquan-sub000/storage"
)

// SaveService manages save slots and snapshot export. The world document
// itself round-trips through the repository as one flat JSON document.
type SaveService interface {
	List(ctx context.Context, userID int) ([]*models.Save, error)
	Delete(ctx context.Context, userID, slot int) error
	// Export uploads the save's snapshot to object storage and returns
	// its public URL.
	Export(ctx context.Context, userID, slot int) (string, error)
}

type saveService struct {
	saveRepo repositories.SaveRepository
	uploader storage.FileUploader
}

func NewSaveService(saveRepo repositories.SaveRepository, uploader storage.FileUploader) SaveService {
	return &saveService{saveRepo: saveRepo, uploader: uploader}
}

func (s *saveService) List(ctx context.Context, userID int) ([]*models.Save, error) {
	return s.saveRepo.List(ctx, userID)
}

func (s *saveService) Delete(ctx context.Context, userID, slot int) error {
	err := s.saveRepo.Delete(ctx, userID, slot)
	if errors.Is(err, repositories.ErrSaveNotFound) {
		return ErrSaveNotFound
	}
	return err
}

func (s *saveService) Export(ctx context.Context, userID, slot int) (string, error) {
	world, err := s.saveRepo.Get(ctx, userID, slot)
	if err != nil {
		if errors.Is(err, repositories.ErrSaveNotFound) {
			return "", ErrSaveNotFound
		}
		return "", fmt.Errorf("export save %d/%d: %w", userID, slot, err)
	}
	doc, err := json.Marshal(world)
	if err != nil {
		return "", fmt.Errorf("marshal world for export: %w", err)
	}
	key := fmt.Sprintf("exports/user%d/slot%d/%d.json", userID, slot, time.Now().Unix())
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("upload snapshot: %w", err)
	}
	return result.Location, nil
}
