package repository

import (
	"context"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
)

type ShelterRepository interface {
	Create(ctx context.Context, shelter *entity.Shelter) error
	GetByID(ctx context.Context, id string) (*entity.Shelter, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*entity.Shelter, error)
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Shelter, int64, error)
	Update(ctx context.Context, shelter *entity.Shelter) error
	Delete(ctx context.Context, id string) error
}
