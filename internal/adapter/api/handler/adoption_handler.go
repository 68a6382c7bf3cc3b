package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/usecase"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/response"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/utils"
)

type AdoptionHandler struct {
	adoptionUseCase *usecase.AdoptionUseCase
}

func NewAdoptionHandler(adoptionUseCase *usecase.AdoptionUseCase) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionUseCase: adoptionUseCase,
	}
}

type applyRequest struct {
	PetID   string            `json:"pet_id" validate:"required"`
	Answers map[string]string `json:"answers" validate:"omitempty"`
	Message string            `json:"message" validate:"omitempty,max=2000"`
}

func (h *AdoptionHandler) Apply(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	application, err := h.adoptionUseCase.Apply(c.Request().Context(), uid, usecase.ApplyInput{
		PetID:   req.PetID,
		Answers: req.Answers,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, application)
}

func (h *AdoptionHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)

	application, err := h.adoptionUseCase.GetApplication(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

func (h *AdoptionHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	applications, total, err := h.adoptionUseCase.ListMyApplications(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, applications, total, pagination.Page, pagination.PageSize)
}

func (h *AdoptionHandler) ListForShelter(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	applications, total, err := h.adoptionUseCase.ListShelterApplications(
		c.Request().Context(), uid, c.QueryParam("status"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, applications, total, pagination.Page, pagination.PageSize)
}

func (h *AdoptionHandler) Decide(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Decision string `json:"decision" validate:"required,oneof=approved rejected"`
		Note     string `json:"note" validate:"omitempty,max=1000"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	application, err := h.adoptionUseCase.Decide(c.Request().Context(), uid, c.Param("id"), req.Decision, req.Note)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

func (h *AdoptionHandler) Complete(c echo.Context) error {
	uid := c.Get("uid").(string)

	application, err := h.adoptionUseCase.Complete(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}

func (h *AdoptionHandler) Withdraw(c echo.Context) error {
	uid := c.Get("uid").(string)

	application, err := h.adoptionUseCase.Withdraw(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, application)
}
