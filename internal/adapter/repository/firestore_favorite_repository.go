package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client: client,
	}
}

// Favorites use a deterministic userId_petId document id so Add is
// idempotent and Exists is a single doc read.
func favoriteID(userID, petID string) string {
	return userID + "_" + petID
}

func (r *firestoreFavoriteRepository) Add(ctx context.Context, userID, petID string) (*entity.Favorite, error) {
	favorite := &entity.Favorite{
		ID:        favoriteID(userID, petID),
		UserID:    userID,
		PetID:     petID,
		CreatedAt: time.Now(),
	}

	_, err := r.client.Collection("favorites").Doc(favorite.ID).Set(ctx, favorite)
	if err != nil {
		return nil, errors.Internal("Failed to add favorite", err)
	}

	return favorite, nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, petID string) error {
	_, err := r.client.Collection("favorites").Doc(favoriteID(userID, petID)).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Favorite, int64, error) {
	query := r.client.Collection("favorites").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch favorites", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var favorites []*entity.Favorite
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate favorites", err)
		}

		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			return nil, 0, errors.Internal("Failed to parse favorite data", err)
		}
		favorite.ID = doc.Ref.ID
		favorites = append(favorites, &favorite)
	}

	return favorites, total, nil
}

func (r *firestoreFavoriteRepository) Exists(ctx context.Context, userID, petID string) (bool, error) {
	doc, err := r.client.Collection("favorites").Doc(favoriteID(userID, petID)).Get(ctx)
	if err != nil {
		return false, nil
	}
	return doc.Exists(), nil
}
