package usecase

import (
	"context"
	"time"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/logger"
)

type AdoptionUseCase struct {
	applicationRepo repository.ApplicationRepository
	petRepo         repository.PetRepository
	shelterRepo     repository.ShelterRepository
}

func NewAdoptionUseCase(
	applicationRepo repository.ApplicationRepository,
	petRepo repository.PetRepository,
	shelterRepo repository.ShelterRepository,
) *AdoptionUseCase {
	return &AdoptionUseCase{
		applicationRepo: applicationRepo,
		petRepo:         petRepo,
		shelterRepo:     shelterRepo,
	}
}

type ApplyInput struct {
	PetID   string
	Answers map[string]string
	Message string
}

// Apply files an adoption application for an available pet. A user may hold
// at most one open application per pet.
func (uc *AdoptionUseCase) Apply(ctx context.Context, applicantID string, input ApplyInput) (*entity.AdoptionApplication, error) {
	pet, err := uc.petRepo.GetByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}
	if pet.DeletedAt != nil {
		return nil, errors.NotFound("Pet", nil)
	}
	if pet.Status != "available" {
		return nil, errors.BadRequest("This pet is not available for adoption", nil)
	}

	shelter, err := uc.shelterRepo.GetByID(ctx, pet.ShelterID)
	if err != nil {
		return nil, err
	}
	if shelter.OwnerID == applicantID {
		return nil, errors.BadRequest("You cannot apply to adopt your own shelter's pet", nil)
	}

	if existing, err := uc.applicationRepo.GetByPetAndApplicant(ctx, input.PetID, applicantID); err == nil && existing != nil {
		if existing.Status == "pending" || existing.Status == "approved" {
			return nil, errors.Conflict("You already have an open application for this pet")
		}
	}

	now := time.Now()
	application := &entity.AdoptionApplication{
		PetID:       input.PetID,
		ApplicantID: applicantID,
		ShelterID:   pet.ShelterID,
		Answers:     input.Answers,
		Message:     input.Message,
		Status:      "pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if application.Answers == nil {
		application.Answers = map[string]string{}
	}

	if err := uc.applicationRepo.Create(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

func (uc *AdoptionUseCase) GetApplication(ctx context.Context, callerID, applicationID string) (*entity.AdoptionApplication, error) {
	application, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if application.ApplicantID != callerID {
		shelter, err := uc.shelterRepo.GetByID(ctx, application.ShelterID)
		if err != nil || shelter.OwnerID != callerID {
			return nil, errors.Forbidden("You do not have access to this application", nil)
		}
	}

	return application, nil
}

func (uc *AdoptionUseCase) ListMyApplications(ctx context.Context, applicantID string, limit, offset int) ([]*entity.AdoptionApplication, int64, error) {
	return uc.applicationRepo.ListByApplicant(ctx, applicantID, limit, offset)
}

func (uc *AdoptionUseCase) ListShelterApplications(ctx context.Context, ownerID, status string, limit, offset int) ([]*entity.AdoptionApplication, int64, error) {
	shelter, err := uc.shelterRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, 0, errors.Forbidden("Only shelter accounts can review applications", err)
	}

	return uc.applicationRepo.ListByShelter(ctx, shelter.ID, status, limit, offset)
}

// Decide transitions a pending application to approved or rejected. Approval
// also moves the pet to pending so it stops showing as available.
func (uc *AdoptionUseCase) Decide(ctx context.Context, ownerID, applicationID, decision, note string) (*entity.AdoptionApplication, error) {
	if decision != "approved" && decision != "rejected" {
		return nil, errors.BadRequest("Decision must be approved or rejected", nil)
	}

	application, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	shelter, err := uc.shelterRepo.GetByID(ctx, application.ShelterID)
	if err != nil || shelter.OwnerID != ownerID {
		return nil, errors.Forbidden("Only the shelter can decide this application", nil)
	}

	if application.Status != "pending" {
		return nil, errors.BadRequest("Only pending applications can be decided", nil)
	}

	now := time.Now()
	application.Status = decision
	application.StatusNote = note
	application.UpdatedAt = now
	application.DecidedAt = &now

	if err := uc.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	if decision == "approved" {
		if err := uc.petRepo.UpdateStatus(ctx, application.PetID, "pending"); err != nil {
			logger.Warn("Failed to move pet %s to pending after approval: %v", application.PetID, err)
		}
	}

	return application, nil
}

// Complete marks an approved application as completed and the pet as adopted.
func (uc *AdoptionUseCase) Complete(ctx context.Context, ownerID, applicationID string) (*entity.AdoptionApplication, error) {
	application, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	shelter, err := uc.shelterRepo.GetByID(ctx, application.ShelterID)
	if err != nil || shelter.OwnerID != ownerID {
		return nil, errors.Forbidden("Only the shelter can complete this application", nil)
	}

	if application.Status != "approved" {
		return nil, errors.BadRequest("Only approved applications can be completed", nil)
	}

	now := time.Now()
	application.Status = "completed"
	application.UpdatedAt = now

	if err := uc.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	if err := uc.petRepo.UpdateStatus(ctx, application.PetID, "adopted"); err != nil {
		logger.Warn("Failed to mark pet %s adopted: %v", application.PetID, err)
	}

	return application, nil
}

// Withdraw lets the applicant pull back a pending application.
func (uc *AdoptionUseCase) Withdraw(ctx context.Context, applicantID, applicationID string) (*entity.AdoptionApplication, error) {
	application, err := uc.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if application.ApplicantID != applicantID {
		return nil, errors.Forbidden("You can only withdraw your own application", nil)
	}
	if application.Status != "pending" {
		return nil, errors.BadRequest("Only pending applications can be withdrawn", nil)
	}

	application.Status = "withdrawn"
	application.UpdatedAt = time.Now()

	if err := uc.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}
