package repository

import (
	"context"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *entity.AdoptionApplication) error
	GetByID(ctx context.Context, id string) (*entity.AdoptionApplication, error)
	GetByPetAndApplicant(ctx context.Context, petID, applicantID string) (*entity.AdoptionApplication, error)
	ListByApplicant(ctx context.Context, applicantID string, limit, offset int) ([]*entity.AdoptionApplication, int64, error)
	ListByShelter(ctx context.Context, shelterID string, status string, limit, offset int) ([]*entity.AdoptionApplication, int64, error)
	Update(ctx context.Context, application *entity.AdoptionApplication) error
}
