package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/usecase"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/response"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
	}
}

func (h *FileHandler) Upload(c echo.Context) error {
	uid := c.Get("uid").(string)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("File is required", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	metadata, err := h.fileUseCase.Upload(c.Request().Context(), uid, usecase.UploadInput{
		File:       src,
		Size:       fileHeader.Size,
		FileType:   fileHeader.Header.Get("Content-Type"),
		Folder:     folder,
		Public:     c.FormValue("public") != "false",
		EntityType: c.FormValue("entity_type"),
		EntityID:   c.FormValue("entity_id"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, metadata)
}

func (h *FileHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.fileUseCase.Delete(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "File deleted"})
}

func (h *FileHandler) ListByEntity(c echo.Context) error {
	files, err := h.fileUseCase.ListByEntity(c.Request().Context(), c.QueryParam("entity_type"), c.QueryParam("entity_id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, files)
}

func (h *FileHandler) SignedUploadURL(c echo.Context) error {
	var req struct {
		FileType string `json:"file_type" validate:"required"`
		Folder   string `json:"folder" validate:"required"`
		Public   bool   `json:"public"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	url, err := h.fileUseCase.SignedUploadURL(c.Request().Context(), req.FileType, req.Folder, req.Public)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"upload_url": url})
}
