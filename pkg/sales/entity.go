package sales

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("sale record not found")

// Record is a single sale. Date stays a plain string: the upstream systems
// feeding this service do not agree on a date format.
type Record struct {
	ID           uuid.UUID
	Date         string
	Number       string
	Price        float64
	CustomerName string
	CreatedAt    time.Time
}

// Repository is the persistence port for sale records.
type Repository interface {
	Create(ctx context.Context, r Record) error
	List(ctx context.Context, limit, offset int) ([]Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
