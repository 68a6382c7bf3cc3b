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

type firestoreApplicationRepository struct {
	client *firestore.Client
}

func NewFirestoreApplicationRepository(client *firestore.Client) repository.ApplicationRepository {
	return &firestoreApplicationRepository{
		client: client,
	}
}

func (r *firestoreApplicationRepository) Create(ctx context.Context, application *entity.AdoptionApplication) error {
	if application.ID == "" {
		application.ID = uuid.New().String()
	}

	now := time.Now()
	application.CreatedAt = now
	application.UpdatedAt = now
	if application.Status == "" {
		application.Status = "pending"
	}

	_, err := r.client.Collection("adoptionApplications").Doc(application.ID).Set(ctx, application)
	if err != nil {
		return errors.Internal("Failed to create adoption application", err)
	}

	return nil
}

func (r *firestoreApplicationRepository) GetByID(ctx context.Context, id string) (*entity.AdoptionApplication, error) {
	doc, err := r.client.Collection("adoptionApplications").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Adoption application", err)
		}
		return nil, errors.Internal("Failed to get adoption application", err)
	}

	var application entity.AdoptionApplication
	if err := doc.DataTo(&application); err != nil {
		return nil, errors.Internal("Failed to parse adoption application data", err)
	}
	application.ID = doc.Ref.ID

	return &application, nil
}

func (r *firestoreApplicationRepository) GetByPetAndApplicant(ctx context.Context, petID, applicantID string) (*entity.AdoptionApplication, error) {
	iter := r.client.Collection("adoptionApplications").
		Where("petId", "==", petID).
		Where("applicantId", "==", applicantID).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, errors.NotFound("Adoption application", nil)
		}
		return nil, errors.Internal("Failed to query adoption application", err)
	}

	var application entity.AdoptionApplication
	if err := doc.DataTo(&application); err != nil {
		return nil, errors.Internal("Failed to parse adoption application data", err)
	}
	application.ID = doc.Ref.ID

	return &application, nil
}

func (r *firestoreApplicationRepository) ListByApplicant(ctx context.Context, applicantID string, limit, offset int) ([]*entity.AdoptionApplication, int64, error) {
	query := r.client.Collection("adoptionApplications").
		Where("applicantId", "==", applicantID).
		OrderBy("createdAt", firestore.Desc)

	return r.list(ctx, query, limit, offset)
}

func (r *firestoreApplicationRepository) ListByShelter(ctx context.Context, shelterID string, status string, limit, offset int) ([]*entity.AdoptionApplication, int64, error) {
	query := r.client.Collection("adoptionApplications").
		Where("shelterId", "==", shelterID)
	if status != "" {
		query = query.Where("status", "==", status)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	return r.list(ctx, query, limit, offset)
}

func (r *firestoreApplicationRepository) list(ctx context.Context, query firestore.Query, limit, offset int) ([]*entity.AdoptionApplication, int64, error) {
	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to fetch adoption applications", err)
	}
	total := int64(len(allDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var applications []*entity.AdoptionApplication
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate adoption applications", err)
		}

		var application entity.AdoptionApplication
		if err := doc.DataTo(&application); err != nil {
			return nil, 0, errors.Internal("Failed to parse adoption application data", err)
		}
		application.ID = doc.Ref.ID
		applications = append(applications, &application)
	}

	return applications, total, nil
}

func (r *firestoreApplicationRepository) Update(ctx context.Context, application *entity.AdoptionApplication) error {
	application.UpdatedAt = time.Now()

	_, err := r.client.Collection("adoptionApplications").Doc(application.ID).Set(ctx, application)
	if err != nil {
		return errors.Internal("Failed to update adoption application", err)
	}

	return nil
}
