package partner

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates partner record operations.
type UseCase interface {
	Create(ctx context.Context, p Partner) (Partner, error)
	List(ctx context.Context, limit, offset int) ([]Partner, error)
	Update(ctx context.Context, p Partner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, p Partner) (Partner, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return Partner{}, ErrValidation("name is required")
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Partner{}, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Partner, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, p Partner) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return ErrValidation("name is required")
	}
	return s.repo.Update(ctx, p)
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ErrValidation is a simple validation error.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
