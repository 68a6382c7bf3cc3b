package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/usecase"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/response"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/utils"
)

type ShelterHandler struct {
	shelterUseCase *usecase.ShelterUseCase
}

func NewShelterHandler(shelterUseCase *usecase.ShelterUseCase) *ShelterHandler {
	return &ShelterHandler{
		shelterUseCase: shelterUseCase,
	}
}

type registerShelterRequest struct {
	Name        string `json:"name" validate:"required,min=3"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Address     string `json:"address" validate:"required"`
	City        string `json:"city" validate:"required"`
}

func (h *ShelterHandler) Register(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req registerShelterRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shelter, err := h.shelterUseCase.RegisterShelter(c.Request().Context(), uid, usecase.RegisterShelterInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, shelter)
}

func (h *ShelterHandler) Get(c echo.Context) error {
	shelter, err := h.shelterUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shelter)
}

func (h *ShelterHandler) GetMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	shelter, err := h.shelterUseCase.GetByOwner(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shelter)
}

func (h *ShelterHandler) List(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	city := c.QueryParam("city")
	verifiedOnly := c.QueryParam("verified") == "true"

	shelters, total, err := h.shelterUseCase.List(c.Request().Context(), city, verifiedOnly, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, shelters, total, pagination.Page, pagination.PageSize)
}

type updateShelterRequest struct {
	Name        string `json:"name" validate:"omitempty,min=3"`
	Phone       string `json:"phone" validate:"omitempty"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Address     string `json:"address" validate:"omitempty"`
	City        string `json:"city" validate:"omitempty"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

func (h *ShelterHandler) Update(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updateShelterRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	shelter, err := h.shelterUseCase.Update(c.Request().Context(), uid, c.Param("id"), usecase.UpdateShelterInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shelter)
}

func (h *ShelterHandler) Verify(c echo.Context) error {
	shelter, err := h.shelterUseCase.Verify(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, shelter)
}
