package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/mkravets/backoffice/api/http/presenter"
	"github.com/mkravets/backoffice/pkg/sales"
)

type SaleHandler struct {
	uc sales.UseCase
}

func NewSaleHandler(uc sales.UseCase) *SaleHandler { return &SaleHandler{uc: uc} }

type saleRequest struct {
	Date         string  `json:"date"`
	Number       string  `json:"number"`
	Price        float64 `json:"price"`
	CustomerName string  `json:"customer_name"`
}

type saleResponse struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	Number       string    `json:"number"`
	Price        float64   `json:"price"`
	CustomerName string    `json:"customer_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func toSaleResponse(r sales.Record) saleResponse {
	return saleResponse{
		ID:           r.ID.String(),
		Date:         r.Date,
		Number:       r.Number,
		Price:        r.Price,
		CustomerName: r.CustomerName,
		CreatedAt:    r.CreatedAt,
	}
}

// Create adds a sale record.
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var req saleRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	rec, err := h.uc.Create(c.Context(), sales.Record{
		Date:         req.Date,
		Number:       req.Number,
		Price:        req.Price,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		var ve sales.ErrValidation
		if errors.As(err, &ve) {
			return presenter.Error(c, http.StatusBadRequest, ve.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create sale record")
	}
	return presenter.JSON(c, http.StatusCreated, toSaleResponse(rec))
}

// List returns sale records, newest first.
func (h *SaleHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	records, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list sale records")
	}
	res := make([]saleResponse, 0, len(records))
	for _, r := range records {
		res = append(res, toSaleResponse(r))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Delete removes a sale record.
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid sale record id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, sales.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "sale record not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete sale record")
	}
	return c.SendStatus(http.StatusNoContent)
}
