package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openblog/blog-api/internal/core/domain"
	"github.com/openblog/blog-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comments.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

type createCommentRequest struct {
	PostID  string `json:"post_id" validate:"required"`
	Content string `json:"content" validate:"required,max=2000"`
}

type updateCommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type commentResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	PostID    string `json:"post_id"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

func toCommentResponse(cm *domain.Comment) commentResponse {
	return commentResponse{
		ID:        cm.ID,
		Content:   cm.Content,
		PostID:    cm.PostID,
		Author:    cm.Author,
		CreatedAt: cm.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// List handles GET /v1/comments. A post_id query parameter scopes the
// listing to one post.
//
// @Summary      List comments, oldest first
// @Tags         comments
// @Produce      json
// @Param        post_id  query    string  false  "Scope to one post"
// @Success      200      {array}  commentResponse
// @Router       /v1/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.service.List(c.Request().Context(), Principal(c), c.QueryParam("post_id"))
	if err != nil {
		return err
	}

	resp := make([]commentResponse, 0, len(comments))
	for _, cm := range comments {
		resp = append(resp, toCommentResponse(cm))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /v1/comments/:id.
//
// @Summary      Get a comment by ID
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Comment ID"
// @Success      200  {object}  commentResponse
// @Failure      404  {object}  map[string]string
// @Router       /v1/comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.service.Get(c.Request().Context(), Principal(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Create handles POST /v1/comments.
//
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCommentRequest  true  "Comment content"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Create(c.Request().Context(), Principal(c), ports.CreateCommentInput{
		PostID:  req.PostID,
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// Update handles PUT /v1/comments/:id.
//
// @Summary      Update a comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Comment ID"
// @Param        body  body      updateCommentRequest  true  "New content"
// @Success      200   {object}  commentResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/comments/{id} [put]
func (h *CommentHandler) Update(c echo.Context) error {
	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Update(c.Request().Context(), Principal(c), c.Param("id"), ports.UpdateCommentInput{
		Content: req.Content,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentResponse(comment))
}

// Delete handles DELETE /v1/comments/:id.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), Principal(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
