package post_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravets/backoffice/pkg/auth"
	"github.com/mkravets/backoffice/pkg/post"
)

type memPostRepo struct {
	posts map[uuid.UUID]post.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: map[uuid.UUID]post.Post{}}
}

func (r *memPostRepo) Create(_ context.Context, p post.Post) error {
	r.posts[p.ID] = p
	return nil
}

func (r *memPostRepo) GetByID(_ context.Context, id uuid.UUID) (post.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return post.Post{}, post.ErrNotFound
	}
	return p, nil
}

func (r *memPostRepo) List(_ context.Context, limit, offset int) ([]post.Post, error) {
	out := make([]post.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memPostRepo) GetAuthor(_ context.Context, id uuid.UUID) (string, error) {
	p, ok := r.posts[id]
	if !ok {
		return "", post.ErrNotFound
	}
	return p.AuthorEmail, nil
}

func (r *memPostRepo) Update(_ context.Context, id uuid.UUID, title, body string) error {
	p, ok := r.posts[id]
	if !ok {
		return post.ErrNotFound
	}
	p.Title = title
	p.Body = body
	r.posts[id] = p
	return nil
}

func (r *memPostRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.posts[id]; !ok {
		return 0, nil
	}
	delete(r.posts, id)
	return 1, nil
}

func seedPost(t *testing.T, svc post.UseCase, authorEmail string) post.Post {
	t.Helper()
	p, err := svc.Create(context.Background(), authorEmail, "title", "body")
	require.NoError(t, err)
	return p
}

func TestCreateAndGet(t *testing.T) {
	t.Parallel()

	svc := post.NewService(newMemPostRepo())
	created := seedPost(t, svc, "a@x.com")
	assert.Equal(t, "a@x.com", created.AuthorEmail)

	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "title", got.Title)
}

func TestUpdate_Owner(t *testing.T) {
	t.Parallel()

	svc := post.NewService(newMemPostRepo())
	created := seedPost(t, svc, "a@x.com")

	updated, err := svc.Update(context.Background(), "a@x.com", created.ID, "new title", "new body")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, "new body", updated.Body)
	assert.Equal(t, "a@x.com", updated.AuthorEmail)
}

func TestUpdate_ForeignCaller(t *testing.T) {
	t.Parallel()

	svc := post.NewService(newMemPostRepo())
	created := seedPost(t, svc, "a@x.com")

	_, err := svc.Update(context.Background(), "b@x.com", created.ID, "hijack", "")
	require.ErrorIs(t, err, auth.ErrForbidden)

	// The post is untouched.
	got, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "title", got.Title)
}

func TestUpdate_Missing(t *testing.T) {
	t.Parallel()

	svc := post.NewService(newMemPostRepo())

	// A missing post is not-found for any caller, owner or not.
	_, err := svc.Update(context.Background(), "b@x.com", uuid.New(), "t", "b")
	require.ErrorIs(t, err, post.ErrNotFound)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	svc := post.NewService(newMemPostRepo())
	created := seedPost(t, svc, "a@x.com")

	require.ErrorIs(t, svc.Delete(context.Background(), "b@x.com", created.ID), auth.ErrForbidden)
	require.NoError(t, svc.Delete(context.Background(), "a@x.com", created.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), "a@x.com", created.ID), post.ErrNotFound)
}
