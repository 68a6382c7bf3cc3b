package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/usecase"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/response"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/utils"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		PetID string `json:"pet_id" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	favorite, err := h.favoriteUseCase.Add(c.Request().Context(), uid, req.PetID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, favorite)
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.favoriteUseCase.Remove(c.Request().Context(), uid, c.Param("petId")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Removed from favorites"})
}

func (h *FavoriteHandler) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	favorites, total, err := h.favoriteUseCase.List(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, favorites, total, pagination.Page, pagination.PageSize)
}

func (h *FavoriteHandler) Check(c echo.Context) error {
	uid := c.Get("uid").(string)

	exists, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), uid, c.Param("petId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"favorite": exists})
}
