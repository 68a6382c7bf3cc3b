package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

type firestoreShelterRepository struct {
	client *firestore.Client
}

func NewFirestoreShelterRepository(client *firestore.Client) repository.ShelterRepository {
	return &firestoreShelterRepository{
		client: client,
	}
}

func (r *firestoreShelterRepository) Create(ctx context.Context, shelter *entity.Shelter) error {
	if shelter.ID == "" {
		shelter.ID = uuid.New().String()
	}

	now := time.Now()
	shelter.CreatedAt = now
	shelter.UpdatedAt = now

	_, err := r.client.Collection("shelters").Doc(shelter.ID).Set(ctx, shelter)
	if err != nil {
		return errors.Internal("Failed to create shelter", err)
	}

	return nil
}

func (r *firestoreShelterRepository) GetByID(ctx context.Context, id string) (*entity.Shelter, error) {
	doc, err := r.client.Collection("shelters").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Shelter", err)
		}
		return nil, errors.Internal("Failed to get shelter", err)
	}

	var shelter entity.Shelter
	if err := doc.DataTo(&shelter); err != nil {
		return nil, errors.Internal("Failed to parse shelter data", err)
	}
	shelter.ID = doc.Ref.ID

	return &shelter, nil
}

func (r *firestoreShelterRepository) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Shelter, error) {
	iter := r.client.Collection("shelters").Where("ownerId", "==", ownerID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Shelter", nil)
		}
		return nil, errors.Internal("Failed to query shelter by owner", err)
	}

	var shelter entity.Shelter
	if err := doc.DataTo(&shelter); err != nil {
		return nil, errors.Internal("Failed to parse shelter data", err)
	}
	shelter.ID = doc.Ref.ID

	return &shelter, nil
}

func (r *firestoreShelterRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Shelter, int64, error) {
	query := r.client.Collection("shelters").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}
	query = query.OrderBy("name", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch shelters", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var shelters []*entity.Shelter
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate shelters", err)
		}

		var shelter entity.Shelter
		if err := doc.DataTo(&shelter); err != nil {
			return nil, 0, errors.Internal("Failed to parse shelter data", err)
		}
		shelter.ID = doc.Ref.ID
		shelters = append(shelters, &shelter)
	}

	return shelters, total, nil
}

func (r *firestoreShelterRepository) Update(ctx context.Context, shelter *entity.Shelter) error {
	shelter.UpdatedAt = time.Now()

	_, err := r.client.Collection("shelters").Doc(shelter.ID).Set(ctx, shelter)
	if err != nil {
		return errors.Internal("Failed to update shelter", err)
	}

	return nil
}

func (r *firestoreShelterRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("shelters").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete shelter", err)
	}

	return nil
}
