package usecase

import (
	"context"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

type ShelterUseCase struct {
	shelterRepo repository.ShelterRepository
	userRepo    repository.UserRepository
}

func NewShelterUseCase(shelterRepo repository.ShelterRepository, userRepo repository.UserRepository) *ShelterUseCase {
	return &ShelterUseCase{
		shelterRepo: shelterRepo,
		userRepo:    userRepo,
	}
}

type RegisterShelterInput struct {
	Name        string
	Email       string
	Phone       string
	Description string
	Address     string
	City        string
}

// RegisterShelter creates the shelter and promotes the owning account to the
// shelter role.
func (uc *ShelterUseCase) RegisterShelter(ctx context.Context, ownerID string, input RegisterShelterInput) (*entity.Shelter, error) {
	if existing, err := uc.shelterRepo.GetByOwnerID(ctx, ownerID); err == nil && existing != nil {
		return nil, errors.Conflict("This account already manages a shelter")
	}

	owner, err := uc.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	shelter := &entity.Shelter{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		Description: input.Description,
		Address:     input.Address,
		City:        input.City,
		OwnerID:     ownerID,
	}

	if err := uc.shelterRepo.Create(ctx, shelter); err != nil {
		return nil, err
	}

	owner.Role = "shelter"
	owner.ShelterID = shelter.ID
	if err := uc.userRepo.Update(ctx, owner); err != nil {
		return nil, err
	}

	return shelter, nil
}

func (uc *ShelterUseCase) GetByID(ctx context.Context, id string) (*entity.Shelter, error) {
	return uc.shelterRepo.GetByID(ctx, id)
}

func (uc *ShelterUseCase) GetByOwner(ctx context.Context, ownerID string) (*entity.Shelter, error) {
	return uc.shelterRepo.GetByOwnerID(ctx, ownerID)
}

func (uc *ShelterUseCase) List(ctx context.Context, city string, verifiedOnly bool, limit, offset int) ([]*entity.Shelter, int64, error) {
	filter := map[string]interface{}{}
	if city != "" {
		filter["city"] = city
	}
	if verifiedOnly {
		filter["verified"] = true
	}

	return uc.shelterRepo.List(ctx, filter, limit, offset)
}

type UpdateShelterInput struct {
	Name        string
	Phone       string
	Description string
	Address     string
	City        string
	LogoURL     string
}

func (uc *ShelterUseCase) Update(ctx context.Context, ownerID, shelterID string, input UpdateShelterInput) (*entity.Shelter, error) {
	shelter, err := uc.shelterRepo.GetByID(ctx, shelterID)
	if err != nil {
		return nil, err
	}
	if shelter.OwnerID != ownerID {
		return nil, errors.Forbidden("Only the shelter owner can update it", nil)
	}

	if input.Name != "" {
		shelter.Name = input.Name
	}
	if input.Phone != "" {
		shelter.Phone = input.Phone
	}
	if input.Description != "" {
		shelter.Description = input.Description
	}
	if input.Address != "" {
		shelter.Address = input.Address
	}
	if input.City != "" {
		shelter.City = input.City
	}
	if input.LogoURL != "" {
		shelter.LogoURL = input.LogoURL
	}

	if err := uc.shelterRepo.Update(ctx, shelter); err != nil {
		return nil, err
	}

	return shelter, nil
}

// Verify is admin-only; the handler enforces the role.
func (uc *ShelterUseCase) Verify(ctx context.Context, shelterID string) (*entity.Shelter, error) {
	shelter, err := uc.shelterRepo.GetByID(ctx, shelterID)
	if err != nil {
		return nil, err
	}

	shelter.Verified = true
	if err := uc.shelterRepo.Update(ctx, shelter); err != nil {
		return nil, err
	}

	return shelter, nil
}
