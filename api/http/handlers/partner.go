package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkravets/backoffice/api/http/presenter"
	"github.com/mkravets/backoffice/pkg/partner"
)

type PartnerHandler struct {
	uc partner.UseCase
}

func NewPartnerHandler(uc partner.UseCase) *PartnerHandler { return &PartnerHandler{uc: uc} }

type partnerRequest struct {
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email"`
	Description string  `json:"description"`
	Discount    float64 `json:"discount"`
}

type partnerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	Discount    float64   `json:"discount"`
	CreatedAt   time.Time `json:"created_at"`
}

func toPartnerResponse(p partner.Partner) partnerResponse {
	return partnerResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		FullName:    p.FullName,
		Phone:       p.Phone,
		Email:       p.Email,
		Description: p.Description,
		Discount:    p.Discount,
		CreatedAt:   p.CreatedAt,
	}
}

func (r partnerRequest) toDomain() partner.Partner {
	return partner.Partner{
		Name:        r.Name,
		FullName:    r.FullName,
		Phone:       r.Phone,
		Email:       r.Email,
		Description: r.Description,
		Discount:    r.Discount,
	}
}

// Create adds a partner record.
func (h *PartnerHandler) Create(c *fiber.Ctx) error {
	var req partnerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p, err := h.uc.Create(c.Context(), req.toDomain())
	if err != nil {
		var ve partner.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create partner")
	}
	return presenter.JSON(c, http.StatusCreated, toPartnerResponse(p))
}

// List returns partner records, newest first.
func (h *PartnerHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	partners, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list partners")
	}
	res := make([]partnerResponse, 0, len(partners))
	for _, p := range partners {
		res = append(res, toPartnerResponse(p))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Update replaces all fields of a partner record.
func (h *PartnerHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid partner id")
	}
	var req partnerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	p := req.toDomain()
	p.ID = id
	if err := h.uc.Update(c.Context(), p); err != nil {
		var ve partner.ErrValidation
		switch {
		case errors.Is(err, partner.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "partner not found")
		case errors.As(err, &ve):
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to update partner")
		}
	}
	return c.SendStatus(http.StatusNoContent)
}

// Delete removes a partner record.
func (h *PartnerHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid partner id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, partner.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "partner not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete partner")
	}
	return c.SendStatus(http.StatusNoContent)
}
