package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkravets/backoffice/api/http/presenter"
	"github.com/mkravets/backoffice/pkg/auth"
	"github.com/mkravets/backoffice/pkg/post"
	securityjwt "github.com/mkravets/backoffice/pkg/security/jwt"
)

type PostHandler struct {
	uc post.UseCase
}

func NewPostHandler(uc post.UseCase) *PostHandler { return &PostHandler{uc: uc} }

type postRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type postResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	AuthorEmail string    `json:"author_email"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPostResponse(p post.Post) postResponse {
	return postResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Body:        p.Body,
		AuthorEmail: p.AuthorEmail,
		CreatedAt:   p.CreatedAt,
	}
}

// callerEmail returns the authenticated identity set by the JWT middleware.
func callerEmail(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(securityjwt.UserEmailKey).(string)
	return email, ok && email != ""
}

// Create adds a post owned by the authenticated caller.
// @Summary Create post
// @Tags    posts
// @Accept  json
// @Produce json
// @Param   input body postRequest true "post payload"
// @Security BearerAuth
// @Success 201 {object} postResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	email, ok := callerEmail(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not determine caller")
	}
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return presenter.Error(c, http.StatusBadRequest, "title and body are required")
	}
	p, err := h.uc.Create(c.Context(), email, req.Title, req.Body)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to create post")
	}
	return presenter.JSON(c, http.StatusCreated, toPostResponse(p))
}

// List returns posts, newest first. Reads are unauthenticated.
// @Summary List posts
// @Tags    posts
// @Produce json
// @Param   limit  query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {array} postResponse
// @Router  /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	posts, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list posts")
	}
	res := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		res = append(res, toPostResponse(p))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// GetByID returns a single post.
// @Summary Get post by ID
// @Tags    posts
// @Produce json
// @Param   id path string true "post ID (UUID)"
// @Success 200 {object} postResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [get]
func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid post id")
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "post not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to fetch post")
	}
	return presenter.JSON(c, http.StatusOK, toPostResponse(p))
}

// Update replaces title and body of the caller's own post.
// @Summary Update post
// @Tags    posts
// @Accept  json
// @Produce json
// @Param   id path string true "post ID (UUID)"
// @Param   input body postRequest true "post payload"
// @Security BearerAuth
// @Success 200 {object} postResponse
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	email, ok := callerEmail(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not determine caller")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid post id")
	}
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Body) == "" {
		return presenter.Error(c, http.StatusBadRequest, "title and body are required")
	}
	p, err := h.uc.Update(c.Context(), email, id, req.Title, req.Body)
	if err != nil {
		return h.mutationError(c, err, "update")
	}
	return presenter.JSON(c, http.StatusOK, toPostResponse(p))
}

// Delete removes the caller's own post.
// @Summary Delete post
// @Tags    posts
// @Produce json
// @Param   id path string true "post ID (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 403 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	email, ok := callerEmail(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "could not determine caller")
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid post id")
	}
	if err := h.uc.Delete(c.Context(), email, id); err != nil {
		return h.mutationError(c, err, "delete")
	}
	return c.SendStatus(http.StatusNoContent)
}

// mutationError keeps not-found and forbidden distinguishable: a missing
// post is 404 for every caller, a foreign post is 403.
func (h *PostHandler) mutationError(c *fiber.Ctx, err error, op string) error {
	switch {
	case errors.Is(err, post.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "post not found")
	case errors.Is(err, auth.ErrForbidden):
		return presenter.Error(c, http.StatusForbidden, "you are not the author of this post")
	default:
		return presenter.Error(c, http.StatusInternalServerError, "failed to "+op+" post")
	}
}
