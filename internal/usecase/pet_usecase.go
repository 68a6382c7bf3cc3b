package usecase

import (
	"context"
	"time"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/logger"
)

type PetUseCase struct {
	petRepo     repository.PetRepository
	shelterRepo repository.ShelterRepository
}

func NewPetUseCase(petRepo repository.PetRepository, shelterRepo repository.ShelterRepository) *PetUseCase {
	return &PetUseCase{
		petRepo:     petRepo,
		shelterRepo: shelterRepo,
	}
}

type CreatePetInput struct {
	Name        string
	Species     string
	Breed       string
	Gender      string
	AgeMonths   int
	Size        string
	Description string
	Vaccinated  bool
	Neutered    bool
	Photos      []entity.PetPhoto
}

type ListPetsInput struct {
	Species   string
	Size      string
	Gender    string
	ShelterID string
	Status    string
	Sort      string
	Limit     int
	Offset    int
}

// CreatePet registers a new listing under the caller's shelter. Only shelter
// accounts can list pets.
func (uc *PetUseCase) CreatePet(ctx context.Context, ownerID string, input CreatePetInput) (*entity.Pet, error) {
	shelter, err := uc.shelterRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Forbidden("Only shelter accounts can list pets", err)
	}

	now := time.Now()
	pet := &entity.Pet{
		ShelterID:   shelter.ID,
		Name:        input.Name,
		Species:     input.Species,
		Breed:       input.Breed,
		Gender:      input.Gender,
		AgeMonths:   input.AgeMonths,
		Size:        input.Size,
		Description: input.Description,
		Photos:      input.Photos,
		Status:      "available",
		Vaccinated:  input.Vaccinated,
		Neutered:    input.Neutered,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if pet.Photos == nil {
		pet.Photos = []entity.PetPhoto{}
	}

	if err := uc.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	shelter.PetCount++
	if err := uc.shelterRepo.Update(ctx, shelter); err != nil {
		logger.Warn("Failed to bump pet count for shelter %s: %v", shelter.ID, err)
	}

	return pet, nil
}

func (uc *PetUseCase) GetPet(ctx context.Context, id string) (*entity.Pet, error) {
	pet, err := uc.petRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pet.DeletedAt != nil {
		return nil, errors.NotFound("Pet", nil)
	}

	// View counting is best-effort and must not fail the read.
	if err := uc.petRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("Failed to increment views for pet %s: %v", id, err)
	}

	return pet, nil
}

func (uc *PetUseCase) ListPets(ctx context.Context, input ListPetsInput) ([]*entity.Pet, int64, error) {
	filter := map[string]interface{}{}
	if input.Species != "" {
		filter["species"] = input.Species
	}
	if input.Size != "" {
		filter["size"] = input.Size
	}
	if input.Gender != "" {
		filter["gender"] = input.Gender
	}
	if input.ShelterID != "" {
		filter["shelterId"] = input.ShelterID
	}
	if input.Status != "" {
		filter["status"] = input.Status
	}

	return uc.petRepo.List(ctx, filter, input.Sort, input.Limit, input.Offset)
}

type UpdatePetInput struct {
	Name        string
	Breed       string
	AgeMonths   *int
	Size        string
	Description string
	Vaccinated  *bool
	Neutered    *bool
	Photos      []entity.PetPhoto
}

func (uc *PetUseCase) UpdatePet(ctx context.Context, ownerID, petID string, input UpdatePetInput) (*entity.Pet, error) {
	pet, err := uc.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		pet.Name = input.Name
	}
	if input.Breed != "" {
		pet.Breed = input.Breed
	}
	if input.AgeMonths != nil {
		pet.AgeMonths = *input.AgeMonths
	}
	if input.Size != "" {
		pet.Size = input.Size
	}
	if input.Description != "" {
		pet.Description = input.Description
	}
	if input.Vaccinated != nil {
		pet.Vaccinated = *input.Vaccinated
	}
	if input.Neutered != nil {
		pet.Neutered = *input.Neutered
	}
	if input.Photos != nil {
		pet.Photos = input.Photos
	}
	pet.UpdatedAt = time.Now()

	if err := uc.petRepo.Update(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

func (uc *PetUseCase) UpdateStatus(ctx context.Context, ownerID, petID, status string) (*entity.Pet, error) {
	pet, err := uc.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return nil, err
	}

	switch status {
	case "available", "pending", "adopted":
	default:
		return nil, errors.BadRequest("Invalid pet status", nil)
	}

	if err := uc.petRepo.UpdateStatus(ctx, petID, status); err != nil {
		return nil, err
	}
	pet.Status = status

	return pet, nil
}

func (uc *PetUseCase) DeletePet(ctx context.Context, ownerID, petID string) error {
	pet, err := uc.ownedPet(ctx, ownerID, petID)
	if err != nil {
		return err
	}

	if err := uc.petRepo.SoftDelete(ctx, petID); err != nil {
		return err
	}

	if shelter, err := uc.shelterRepo.GetByID(ctx, pet.ShelterID); err == nil && shelter.PetCount > 0 {
		shelter.PetCount--
		if err := uc.shelterRepo.Update(ctx, shelter); err != nil {
			logger.Warn("Failed to decrement pet count for shelter %s: %v", shelter.ID, err)
		}
	}

	return nil
}

func (uc *PetUseCase) ownedPet(ctx context.Context, ownerID, petID string) (*entity.Pet, error) {
	pet, err := uc.petRepo.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if pet.DeletedAt != nil {
		return nil, errors.NotFound("Pet", nil)
	}

	shelter, err := uc.shelterRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, errors.Forbidden("Only shelter accounts can manage pets", err)
	}
	if pet.ShelterID != shelter.ID {
		return nil, errors.Forbidden("You can only manage your own shelter's pets", nil)
	}

	return pet, nil
}
