package partner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("partner not found")

// Partner is a business partner record.
type Partner struct {
	ID          uuid.UUID
	Name        string
	FullName    string
	Phone       string
	Email       string
	Description string
	Discount    float64
	CreatedAt   time.Time
}

// Repository is the persistence port for partners.
type Repository interface {
	Create(ctx context.Context, p Partner) error
	List(ctx context.Context, limit, offset int) ([]Partner, error)
	Update(ctx context.Context, p Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
}
