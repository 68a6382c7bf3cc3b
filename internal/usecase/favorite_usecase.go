package usecase

import (
	"context"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	petRepo      repository.PetRepository
}

func NewFavoriteUseCase(favoriteRepo repository.FavoriteRepository, petRepo repository.PetRepository) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		petRepo:      petRepo,
	}
}

func (uc *FavoriteUseCase) Add(ctx context.Context, userID, petID string) (*entity.Favorite, error) {
	pet, err := uc.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet.DeletedAt != nil {
		return nil, errors.NotFound("Pet", nil)
	}

	exists, err := uc.favoriteRepo.Exists(ctx, userID, petID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.Conflict("Pet is already in your favorites")
	}

	return uc.favoriteRepo.Add(ctx, userID, petID)
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, petID string) error {
	exists, err := uc.favoriteRepo.Exists(ctx, userID, petID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.NotFound("Favorite", nil)
	}

	return uc.favoriteRepo.Remove(ctx, userID, petID)
}

// List returns the user's favorites with each pet resolved. Pets that have
// been deleted since they were favorited are skipped.
func (uc *FavoriteUseCase) List(ctx context.Context, userID string, limit, offset int) ([]*entity.FavoriteWithPet, int64, error) {
	favorites, total, err := uc.favoriteRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*entity.FavoriteWithPet, 0, len(favorites))
	for _, favorite := range favorites {
		pet, err := uc.petRepo.GetByID(ctx, favorite.PetID)
		if err != nil {
			logger.Debug("Skipping favorite %s, pet lookup failed: %v", favorite.ID, err)
			continue
		}
		if pet.DeletedAt != nil {
			continue
		}

		result = append(result, &entity.FavoriteWithPet{
			ID:        favorite.ID,
			UserID:    favorite.UserID,
			PetID:     favorite.PetID,
			Pet:       pet,
			CreatedAt: favorite.CreatedAt,
		})
	}

	return result, total, nil
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, petID string) (bool, error) {
	return uc.favoriteRepo.Exists(ctx, userID, petID)
}
