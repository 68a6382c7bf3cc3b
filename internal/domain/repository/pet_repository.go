package repository

import (
	"context"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
)

type PetRepository interface {
	Create(ctx context.Context, pet *entity.Pet) error
	GetByID(ctx context.Context, id string) (*entity.Pet, error)
	List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Pet, int64, error)
	Update(ctx context.Context, pet *entity.Pet) error
	UpdateStatus(ctx context.Context, id, status string) error
	IncrementViews(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
}
