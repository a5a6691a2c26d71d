package post

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when the referenced post row is absent.
var ErrNotFound = errors.New("post not found")

// Post is a blog entry. AuthorEmail is captured from the authenticated
// creator at insert time and is never reassigned afterwards; it is the
// sole authorization key for update and delete.
type Post struct {
	ID          uuid.UUID
	Title       string
	Body        string
	AuthorEmail string
	CreatedAt   time.Time
}

// Repository is the persistence port for posts.
type Repository interface {
	Create(ctx context.Context, p Post) error
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	List(ctx context.Context, limit, offset int) ([]Post, error)
	// GetAuthor returns only the recorded creator, so ownership can be
	// checked before any mutation work is done.
	GetAuthor(ctx context.Context, id uuid.UUID) (string, error)
	Update(ctx context.Context, id uuid.UUID, title, body string) error
	// Delete reports the number of rows removed.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
