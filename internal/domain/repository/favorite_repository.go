package repository

import (
	"context"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID, petID string) (*entity.Favorite, error)
	Remove(ctx context.Context, userID, petID string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Favorite, int64, error)
	Exists(ctx context.Context, userID, petID string) (bool, error)
}
