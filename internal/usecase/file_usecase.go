package usecase

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/service"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/logger"
)

// Image uploads are capped at 5 MB.
const maxUploadSize = 5 << 20

var allowedFileTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type FileUseCase struct {
	fileService  service.FileUploadService
	metadataRepo repository.FileMetadataRepository
}

func NewFileUseCase(fileService service.FileUploadService, metadataRepo repository.FileMetadataRepository) *FileUseCase {
	return &FileUseCase{
		fileService:  fileService,
		metadataRepo: metadataRepo,
	}
}

type UploadInput struct {
	File       io.Reader
	Size       int64
	FileType   string
	Folder     string
	Public     bool
	EntityType string
	EntityID   string
}

func (uc *FileUseCase) Upload(ctx context.Context, ownerID string, input UploadInput) (*entity.FileMetadata, error) {
	if !allowedFileTypes[input.FileType] {
		return nil, errors.BadRequest("Unsupported file type, only images are allowed", nil)
	}
	if input.Size > maxUploadSize {
		return nil, errors.BadRequest("File exceeds the 5 MB limit", nil)
	}

	url, err := uc.fileService.UploadFile(ctx, input.File, input.FileType, input.Folder, input.Public)
	if err != nil {
		return nil, errors.Internal("Failed to upload file", err)
	}

	metadata := &entity.FileMetadata{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		URL:        url,
		FileType:   input.FileType,
		Folder:     input.Folder,
		Public:     input.Public,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		CreatedAt:  time.Now(),
	}

	if err := uc.metadataRepo.Create(ctx, metadata); err != nil {
		// The object is already in the bucket; try not to leave it orphaned.
		if delErr := uc.fileService.DeleteFile(ctx, url); delErr != nil {
			logger.Error("Failed to clean up uploaded object %s: %v", url, delErr)
		}
		return nil, errors.Internal("Failed to record file metadata", err)
	}

	return metadata, nil
}

func (uc *FileUseCase) Delete(ctx context.Context, callerID, fileID string) error {
	metadata, err := uc.metadataRepo.GetByID(ctx, fileID)
	if err != nil {
		return err
	}
	if metadata.OwnerID != callerID {
		return errors.Forbidden("You can only delete your own files", nil)
	}

	if err := uc.fileService.DeleteFile(ctx, metadata.URL); err != nil {
		return errors.Internal("Failed to delete file", err)
	}

	return uc.metadataRepo.Delete(ctx, fileID)
}

func (uc *FileUseCase) ListByEntity(ctx context.Context, entityType, entityID string) ([]*entity.FileMetadata, error) {
	return uc.metadataRepo.ListByEntity(ctx, entityType, entityID)
}

func (uc *FileUseCase) SignedUploadURL(ctx context.Context, fileType, folder string, public bool) (string, error) {
	if !allowedFileTypes[fileType] {
		return "", errors.BadRequest("Unsupported file type, only images are allowed", nil)
	}

	url, err := uc.fileService.GenerateSignedUploadURL(ctx, fileType, folder, public)
	if err != nil {
		return "", errors.Internal("Failed to generate signed upload URL", err)
	}

	return url, nil
}
