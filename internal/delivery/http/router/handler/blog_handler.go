package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"novablog/internal/delivery/http/response"
	"novablog/internal/usecase"
)

// BlogHandler holds dependencies for blog-related handlers.
type BlogHandler struct {
	uc usecase.BlogUsecase
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(uc usecase.BlogUsecase) *BlogHandler {
	return &BlogHandler{uc: uc}
}

// Create handles the publish request.
func (h *BlogHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CreateBlogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}

	blog, err := h.uc.Create(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, blog, "Blog created successfully")
}

// List returns all published posts, newest first.
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blogs, "")
}

// ListMine returns the authenticated user's posts.
func (h *BlogHandler) ListMine(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	blogs, err := h.uc.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blogs, "")
}

// Get returns a single post by ID.
func (h *BlogHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	blog, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blog, "")
}

// Update handles the partial update request for an owned post.
func (h *BlogHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.UpdateBlogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid blog input")
	}

	blog, err := h.uc.Update(c.Request().Context(), userID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, blog, "Blog updated successfully")
}

// Delete removes an owned post.
func (h *BlogHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Blog deleted successfully")
}

// TrackView bumps the post's view counter.
func (h *BlogHandler) TrackView(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	views, err := h.uc.TrackView(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"views": views}, "")
}

// ToggleLike flips the caller's like on the post.
func (h *BlogHandler) ToggleLike(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	id, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ToggleLike(c.Request().Context(), userID, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}
