package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/usecase"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/response"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/utils"
)

type PetHandler struct {
	petUseCase *usecase.PetUseCase
}

func NewPetHandler(petUseCase *usecase.PetUseCase) *PetHandler {
	return &PetHandler{
		petUseCase: petUseCase,
	}
}

type createPetRequest struct {
	Name        string            `json:"name" validate:"required,min=1"`
	Species     string            `json:"species" validate:"required,oneof=dog cat rabbit bird other"`
	Breed       string            `json:"breed" validate:"omitempty"`
	Gender      string            `json:"gender" validate:"required,oneof=male female"`
	AgeMonths   int               `json:"age_months" validate:"gte=0"`
	Size        string            `json:"size" validate:"required,oneof=small medium large"`
	Description string            `json:"description" validate:"omitempty,max=5000"`
	Vaccinated  bool              `json:"vaccinated"`
	Neutered    bool              `json:"neutered"`
	Photos      []entity.PetPhoto `json:"photos" validate:"omitempty,dive"`
}

func (h *PetHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createPetRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	pet, err := h.petUseCase.CreatePet(c.Request().Context(), uid, usecase.CreatePetInput{
		Name:        req.Name,
		Species:     req.Species,
		Breed:       req.Breed,
		Gender:      req.Gender,
		AgeMonths:   req.AgeMonths,
		Size:        req.Size,
		Description: req.Description,
		Vaccinated:  req.Vaccinated,
		Neutered:    req.Neutered,
		Photos:      req.Photos,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, pet)
}

func (h *PetHandler) Get(c echo.Context) error {
	pet, err := h.petUseCase.GetPet(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pet)
}

func (h *PetHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	status := c.QueryParam("status")
	if status == "" {
		status = "available"
	}

	pets, total, err := h.petUseCase.ListPets(c.Request().Context(), usecase.ListPetsInput{
		Species:   c.QueryParam("species"),
		Size:      c.QueryParam("size"),
		Gender:    c.QueryParam("gender"),
		ShelterID: c.QueryParam("shelter_id"),
		Status:    status,
		Sort:      c.QueryParam("sort"),
		Limit:     pagination.PageSize,
		Offset:    pagination.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, pets, total, pagination.Page, pagination.PageSize)
}

type updatePetRequest struct {
	Name        string            `json:"name" validate:"omitempty,min=1"`
	Breed       string            `json:"breed" validate:"omitempty"`
	AgeMonths   *int              `json:"age_months" validate:"omitempty,gte=0"`
	Size        string            `json:"size" validate:"omitempty,oneof=small medium large"`
	Description string            `json:"description" validate:"omitempty,max=5000"`
	Vaccinated  *bool             `json:"vaccinated"`
	Neutered    *bool             `json:"neutered"`
	Photos      []entity.PetPhoto `json:"photos" validate:"omitempty,dive"`
}

func (h *PetHandler) Update(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updatePetRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	pet, err := h.petUseCase.UpdatePet(c.Request().Context(), uid, c.Param("id"), usecase.UpdatePetInput{
		Name:        req.Name,
		Breed:       req.Breed,
		AgeMonths:   req.AgeMonths,
		Size:        req.Size,
		Description: req.Description,
		Vaccinated:  req.Vaccinated,
		Neutered:    req.Neutered,
		Photos:      req.Photos,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pet)
}

func (h *PetHandler) UpdateStatus(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Status string `json:"status" validate:"required,oneof=available pending adopted"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	pet, err := h.petUseCase.UpdateStatus(c.Request().Context(), uid, c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pet)
}

func (h *PetHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.petUseCase.DeletePet(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Pet listing removed"})
}
