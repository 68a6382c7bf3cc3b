package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

type firestorePetRepository struct {
	client *firestore.Client
}

func NewFirestorePetRepository(client *firestore.Client) repository.PetRepository {
	return &firestorePetRepository{
		client: client,
	}
}

func (r *firestorePetRepository) Create(ctx context.Context, pet *entity.Pet) error {
	if pet.ID == "" {
		pet.ID = r.client.Collection("pets").NewDoc().ID
	}

	now := time.Now()
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = now
	}
	pet.UpdatedAt = now
	if pet.Status == "" {
		pet.Status = "available"
	}

	_, err := r.client.Collection("pets").Doc(pet.ID).Set(ctx, pet)
	if err != nil {
		return errors.Internal("Failed to create pet", err)
	}

	return nil
}

func (r *firestorePetRepository) GetByID(ctx context.Context, id string) (*entity.Pet, error) {
	doc, err := r.client.Collection("pets").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Pet", err)
		}
		return nil, errors.Internal("Failed to get pet", err)
	}

	var pet entity.Pet
	if err := doc.DataTo(&pet); err != nil {
		return nil, errors.Internal("Failed to parse pet data", err)
	}
	pet.ID = doc.Ref.ID

	return &pet, nil
}

// List applies equality filters only; that is all the store's query layer
// offers besides order-by, so range-style filters (e.g. age) are left to the
// caller.
func (r *firestorePetRepository) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Pet, int64, error) {
	query := r.client.Collection("pets").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}
	query = query.Where("deletedAt", "==", nil)

	if sort != "" {
		parts := strings.Split(sort, "_")
		field := parts[0]
		order := firestore.Asc
		if len(parts) > 1 && parts[1] == "desc" {
			order = firestore.Desc
		}
		query = query.OrderBy(field, order)
	} else {
		query = query.OrderBy("createdAt", firestore.Desc)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch pets", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var pets []*entity.Pet
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate pets", err)
		}

		var pet entity.Pet
		if err := doc.DataTo(&pet); err != nil {
			return nil, 0, errors.Internal("Failed to parse pet data", err)
		}
		pet.ID = doc.Ref.ID
		pets = append(pets, &pet)
	}

	return pets, total, nil
}

func (r *firestorePetRepository) Update(ctx context.Context, pet *entity.Pet) error {
	pet.UpdatedAt = time.Now()

	_, err := r.client.Collection("pets").Doc(pet.ID).Set(ctx, pet)
	if err != nil {
		return errors.Internal("Failed to update pet", err)
	}

	return nil
}

func (r *firestorePetRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.client.Collection("pets").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update pet status", err)
	}

	return nil
}

func (r *firestorePetRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("pets").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment pet views", err)
	}

	return nil
}

func (r *firestorePetRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now()
	_, err := r.client.Collection("pets").Doc(id).Update(ctx, []firestore.Update{
		{Path: "deletedAt", Value: now},
		{Path: "updatedAt", Value: now},
	})
	if err != nil {
		return errors.Internal("Failed to delete pet", err)
	}

	return nil
}
