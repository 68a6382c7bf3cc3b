package usecase

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

type fakeApplicationRepo struct {
	applications map[string]*entity.AdoptionApplication
	nextID       int
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*entity.AdoptionApplication)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, application *entity.AdoptionApplication) error {
	r.nextID++
	application.ID = "app" + strconv.Itoa(r.nextID)
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*entity.AdoptionApplication, error) {
	application, ok := r.applications[id]
	if !ok {
		return nil, errors.NotFound("Application", nil)
	}
	return application, nil
}

func (r *fakeApplicationRepo) GetByPetAndApplicant(ctx context.Context, petID, applicantID string) (*entity.AdoptionApplication, error) {
	for _, application := range r.applications {
		if application.PetID == petID && application.ApplicantID == applicantID {
			return application, nil
		}
	}
	return nil, errors.NotFound("Application", nil)
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID string, limit, offset int) ([]*entity.AdoptionApplication, int64, error) {
	var result []*entity.AdoptionApplication
	for _, application := range r.applications {
		if application.ApplicantID == applicantID {
			result = append(result, application)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeApplicationRepo) ListByShelter(ctx context.Context, shelterID string, status string, limit, offset int) ([]*entity.AdoptionApplication, int64, error) {
	var result []*entity.AdoptionApplication
	for _, application := range r.applications {
		if application.ShelterID == shelterID && (status == "" || application.Status == status) {
			result = append(result, application)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeApplicationRepo) Update(ctx context.Context, application *entity.AdoptionApplication) error {
	r.applications[application.ID] = application
	return nil
}

func newAdoptionFixture() (*AdoptionUseCase, *fakeApplicationRepo, *fakePetRepo) {
	applicationRepo := newFakeApplicationRepo()
	petRepo := newFakePetRepo(
		&entity.Pet{ID: "p1", Name: "Rex", ShelterID: "s1", Status: "available"},
	)
	shelterRepo := newFakeShelterRepo(
		&entity.Shelter{ID: "s1", Name: "Happy Paws", OwnerID: "owner1"},
	)

	return NewAdoptionUseCase(applicationRepo, petRepo, shelterRepo), applicationRepo, petRepo
}

func TestApplyCreatesPendingApplication(t *testing.T) {
	uc, _, _ := newAdoptionFixture()

	application, err := uc.Apply(context.Background(), "u1", ApplyInput{
		PetID:   "p1",
		Answers: map[string]string{"has_yard": "yes"},
		Message: "We would love to adopt Rex",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", application.Status)
	assert.Equal(t, "s1", application.ShelterID)
	assert.Equal(t, "u1", application.ApplicantID)
}

func TestApplyRejectsDuplicateOpenApplication(t *testing.T) {
	uc, _, _ := newAdoptionFixture()
	ctx := context.Background()

	_, err := uc.Apply(ctx, "u1", ApplyInput{PetID: "p1"})
	require.NoError(t, err)

	_, err = uc.Apply(ctx, "u1", ApplyInput{PetID: "p1"})
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestApplyRejectsUnavailablePet(t *testing.T) {
	uc, _, petRepo := newAdoptionFixture()
	ctx := context.Background()

	require.NoError(t, petRepo.UpdateStatus(ctx, "p1", "adopted"))

	_, err := uc.Apply(ctx, "u1", ApplyInput{PetID: "p1"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestApplyRejectsOwnShelterPet(t *testing.T) {
	uc, _, _ := newAdoptionFixture()

	_, err := uc.Apply(context.Background(), "owner1", ApplyInput{PetID: "p1"})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestDecideApprovalMovesPetToPending(t *testing.T) {
	uc, _, petRepo := newAdoptionFixture()
	ctx := context.Background()

	application, err := uc.Apply(ctx, "u1", ApplyInput{PetID: "p1"})
	require.NoError(t, err)

	decided, err := uc.Decide(ctx, "owner1", application.ID, "approved", "Looks great")
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)
	assert.NotNil(t, decided.DecidedAt)

	pet, err := petRepo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "pending", pet.Status)
}

func TestDecideRejectedByNonOwner(t *testing.T) {
	uc, _, _ := newAdoptionFixture()
	ctx := context.Background()

	application, err := uc.Apply(ctx, "u1", ApplyInput{PetID: "p1"})
	require.NoError(t, err)

	_, err = uc.Decide(ctx, "someone-else", application.ID, "approved", "")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCompleteMarksPetAdopted(t *testing.T) {
	uc, _, petRepo := newAdoptionFixture()
	ctx := context.Background()

	application, err := uc.Apply(ctx, "u1", ApplyInput{PetID: "p1"})
	require.NoError(t, err)

	_, err = uc.Decide(ctx, "owner1", application.ID, "approved", "")
	require.NoError(t, err)

	completed, err := uc.Complete(ctx, "owner1", application.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", completed.Status)

	pet, err := petRepo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "adopted", pet.Status)
}

func TestWithdrawOnlyPending(t *testing.T) {
	uc, _, _ := newAdoptionFixture()
	ctx := context.Background()

	application, err := uc.Apply(ctx, "u1", ApplyInput{PetID: "p1"})
	require.NoError(t, err)

	withdrawn, err := uc.Withdraw(ctx, "u1", application.ID)
	require.NoError(t, err)
	assert.Equal(t, "withdrawn", withdrawn.Status)

	_, err = uc.Withdraw(ctx, "u1", application.ID)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
