package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/usecase"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/response"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/utils"
)

type BlogHandler struct {
	blogUseCase *usecase.BlogUseCase
}

func NewBlogHandler(blogUseCase *usecase.BlogUseCase) *BlogHandler {
	return &BlogHandler{
		blogUseCase: blogUseCase,
	}
}

func (h *BlogHandler) isAdmin(c echo.Context) bool {
	isAdmin, _ := c.Get("isAdmin").(bool)
	return isAdmin
}

type createPostRequest struct {
	Title    string   `json:"title" validate:"required,min=3,max=200"`
	Body     string   `json:"body" validate:"required,min=10"`
	CoverURL string   `json:"cover_url" validate:"omitempty,url"`
	Tags     []string `json:"tags" validate:"omitempty,max=10"`
}

func (h *BlogHandler) CreatePost(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.CreatePost(c.Request().Context(), uid, usecase.CreatePostInput{
		Title:    req.Title,
		Body:     req.Body,
		CoverURL: req.CoverURL,
		Tags:     req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, post)
}

func (h *BlogHandler) GetPost(c echo.Context) error {
	post, err := h.blogUseCase.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *BlogHandler) ListPosts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	posts, total, err := h.blogUseCase.ListPosts(
		c.Request().Context(), c.QueryParam("author_id"), c.QueryParam("tag"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, posts, total, pagination.Page, pagination.PageSize)
}

type updatePostRequest struct {
	Title    string   `json:"title" validate:"omitempty,min=3,max=200"`
	Body     string   `json:"body" validate:"omitempty,min=10"`
	CoverURL string   `json:"cover_url" validate:"omitempty,url"`
	Tags     []string `json:"tags" validate:"omitempty,max=10"`
}

func (h *BlogHandler) UpdatePost(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	post, err := h.blogUseCase.UpdatePost(c.Request().Context(), uid, c.Param("id"), usecase.UpdatePostInput{
		Title:    req.Title,
		Body:     req.Body,
		CoverURL: req.CoverURL,
		Tags:     req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *BlogHandler) DeletePost(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.blogUseCase.DeletePost(c.Request().Context(), uid, c.Param("id"), h.isAdmin(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Post deleted"})
}

func (h *BlogHandler) LikePost(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.blogUseCase.LikePost(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Post liked"})
}

func (h *BlogHandler) UnlikePost(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.blogUseCase.UnlikePost(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Post unliked"})
}

func (h *BlogHandler) AddComment(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req struct {
		Text string `json:"text" validate:"required,min=1,max=1000"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	comment, err := h.blogUseCase.AddComment(c.Request().Context(), uid, c.Param("id"), req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, comment)
}

func (h *BlogHandler) ListComments(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	comments, total, err := h.blogUseCase.ListComments(c.Request().Context(), c.Param("id"), pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, comments, total, pagination.Page, pagination.PageSize)
}

func (h *BlogHandler) DeleteComment(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.blogUseCase.DeleteComment(c.Request().Context(), uid, c.Param("id"), c.Param("commentId"), h.isAdmin(c)); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"message": "Comment deleted"})
}
