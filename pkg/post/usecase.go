package post

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/backoffice/pkg/auth"
)

// UseCase encapsulates post operations. Reads are open; mutations require
// the caller identity recovered from the session token.
type UseCase interface {
	Create(ctx context.Context, authorEmail, title, body string) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context, limit, offset int) ([]Post, error)
	Update(ctx context.Context, callerEmail string, id uuid.UUID, title, body string) (Post, error)
	Delete(ctx context.Context, callerEmail string, id uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, authorEmail, title, body string) (Post, error) {
	p := Post{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Body:        body,
		AuthorEmail: authorEmail,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Post{}, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Post, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, callerEmail string, id uuid.UUID, title, body string) (Post, error) {
	if err := s.authorizeMutation(ctx, callerEmail, id); err != nil {
		return Post{}, err
	}
	if err := s.repo.Update(ctx, id, strings.TrimSpace(title), body); err != nil {
		return Post{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, callerEmail string, id uuid.UUID) error {
	if err := s.authorizeMutation(ctx, callerEmail, id); err != nil {
		return err
	}
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// authorizeMutation resolves existence before ownership: a missing post is
// not-found for every caller, a foreign post is forbidden.
func (s *service) authorizeMutation(ctx context.Context, callerEmail string, id uuid.UUID) error {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return err
	}
	return auth.AuthorizeOwner(author, callerEmail)
}
