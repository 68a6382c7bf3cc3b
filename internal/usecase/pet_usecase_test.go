package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

func newPetFixture() (*PetUseCase, *fakePetRepo, *fakeShelterRepo) {
	petRepo := newFakePetRepo()
	shelterRepo := newFakeShelterRepo(
		&entity.Shelter{ID: "s1", Name: "Happy Paws", OwnerID: "owner1"},
	)

	return NewPetUseCase(petRepo, shelterRepo), petRepo, shelterRepo
}

func TestCreatePetRequiresShelterAccount(t *testing.T) {
	uc, _, _ := newPetFixture()

	_, err := uc.CreatePet(context.Background(), "random-user", CreatePetInput{Name: "Rex"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreatePetDefaultsToAvailable(t *testing.T) {
	uc, _, shelterRepo := newPetFixture()

	pet, err := uc.CreatePet(context.Background(), "owner1", CreatePetInput{
		Name:      "Rex",
		Species:   "dog",
		Gender:    "male",
		AgeMonths: 18,
		Size:      "large",
	})
	require.NoError(t, err)

	assert.Equal(t, "available", pet.Status)
	assert.Equal(t, "s1", pet.ShelterID)
	assert.NotNil(t, pet.Photos)

	shelter, err := shelterRepo.GetByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, shelter.PetCount)
}

func TestGetPetCountsViews(t *testing.T) {
	uc, petRepo, _ := newPetFixture()
	ctx := context.Background()

	created, err := uc.CreatePet(ctx, "owner1", CreatePetInput{Name: "Rex", Species: "dog", Gender: "male", Size: "large"})
	require.NoError(t, err)

	_, err = uc.GetPet(ctx, created.ID)
	require.NoError(t, err)
	_, err = uc.GetPet(ctx, created.ID)
	require.NoError(t, err)

	stored, err := petRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Views)
}

func TestGetPetHidesSoftDeleted(t *testing.T) {
	uc, petRepo, _ := newPetFixture()
	ctx := context.Background()

	created, err := uc.CreatePet(ctx, "owner1", CreatePetInput{Name: "Rex", Species: "dog", Gender: "male", Size: "large"})
	require.NoError(t, err)

	require.NoError(t, petRepo.SoftDelete(ctx, created.ID))

	_, err = uc.GetPet(ctx, created.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateStatusValidatesTransitions(t *testing.T) {
	uc, _, _ := newPetFixture()
	ctx := context.Background()

	created, err := uc.CreatePet(ctx, "owner1", CreatePetInput{Name: "Rex", Species: "dog", Gender: "male", Size: "large"})
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, "owner1", created.ID, "lost")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	updated, err := uc.UpdateStatus(ctx, "owner1", created.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)
}

func TestUpdatePetRejectsForeignShelter(t *testing.T) {
	uc, _, shelterRepo := newPetFixture()
	ctx := context.Background()

	require.NoError(t, shelterRepo.Create(ctx, &entity.Shelter{ID: "s2", Name: "Other", OwnerID: "owner2"}))

	created, err := uc.CreatePet(ctx, "owner1", CreatePetInput{Name: "Rex", Species: "dog", Gender: "male", Size: "large"})
	require.NoError(t, err)

	_, err = uc.UpdatePet(ctx, "owner2", created.ID, UpdatePetInput{Name: "Stolen"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestDeletePetDecrementsShelterCount(t *testing.T) {
	uc, petRepo, shelterRepo := newPetFixture()
	ctx := context.Background()

	created, err := uc.CreatePet(ctx, "owner1", CreatePetInput{Name: "Rex", Species: "dog", Gender: "male", Size: "large"})
	require.NoError(t, err)

	require.NoError(t, uc.DeletePet(ctx, "owner1", created.ID))

	stored, err := petRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored.DeletedAt)

	shelter, err := shelterRepo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, shelter.PetCount)
}
