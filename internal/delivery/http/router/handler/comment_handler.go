package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"novablog/internal/delivery/http/response"
	"novablog/internal/usecase"
)

// CommentHandler holds dependencies for comment-related handlers.
type CommentHandler struct {
	uc usecase.CommentUsecase
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Create posts a comment on a blog.
func (h *CommentHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	blogID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input *usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}

	comment, err := h.uc.Create(c.Request().Context(), userID, blogID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment created successfully")
}

// ListByBlog returns the comments of a post.
func (h *CommentHandler) ListByBlog(c echo.Context) error {
	blogID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	comments, err := h.uc.ListByBlog(c.Request().Context(), blogID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "")
}

// Delete removes an owned comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	commentID, err := pathID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Delete(c.Request().Context(), userID, commentID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Comment deleted successfully")
}
