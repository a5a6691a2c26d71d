package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/mkravets/backoffice/api/http"
	"github.com/mkravets/backoffice/api/http/handlers"
	"github.com/mkravets/backoffice/pkg/auth"
	"github.com/mkravets/backoffice/pkg/health"
	"github.com/mkravets/backoffice/pkg/post"
	securityjwt "github.com/mkravets/backoffice/pkg/security/jwt"
	"github.com/mkravets/backoffice/pkg/security/password"
)

const (
	testSecret = "test-secret"
	testIssuer = "blog-service"
)

type memUserRepo struct {
	users map[string]auth.User
}

func (r *memUserRepo) Create(_ context.Context, user auth.User) error {
	if _, exists := r.users[user.Email]; exists {
		return auth.ErrUserAlreadyExists
	}
	r.users[user.Email] = user
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (auth.User, error) {
	user, ok := r.users[email]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

type memPostRepo struct {
	posts map[uuid.UUID]post.Post
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

type okChecker struct{}

func (okChecker) Name() string                  { return "store" }
func (okChecker) Check(_ context.Context) error { return nil }

// newBlogApp assembles the blog service against in-memory stores with the
// real hasher, token generator and gate in place.
func newBlogApp() *fiber.App {
	users := &memUserRepo{users: map[string]auth.User{}}
	posts := &memPostRepo{posts: map[uuid.UUID]post.Post{}}

	tokens := securityjwt.NewGenerator(testSecret, testIssuer, 24*time.Hour)
	authSvc := auth.NewAuthService(users, password.NewHasher(), tokens)
	postSvc := post.NewService(posts)
	healthSvc := health.NewService(okChecker{})

	app := fiber.New()
	apihttp.RegisterBlog(
		app,
		handlers.NewAuthHandler(authSvc),
		handlers.NewPostHandler(postSvc),
		handlers.NewHealthHandler(healthSvc),
		securityjwt.NewAuthMiddleware(testSecret, testIssuer),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && json.Valid(raw) {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func register(t *testing.T, app *fiber.App, email, pass string) {
	t.Helper()
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "",
		fiber.Map{"email": email, "password": pass})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func login(t *testing.T, app *fiber.App, email, pass string) string {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "",
		fiber.Map{"email": email, "password": pass})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestBlogFlow(t *testing.T) {
	t.Parallel()

	app := newBlogApp()

	register(t, app, "a@x.com", "secret")
	tokenA := login(t, app, "a@x.com", "secret")

	register(t, app, "b@x.com", "secret")
	tokenB := login(t, app, "b@x.com", "secret")

	// The issued token carries the subject identity: a post created with
	// A's token is owned by A.
	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/posts", tokenA,
		fiber.Map{"title": "hello", "body": "first post"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "a@x.com", body["author_email"])
	postID, _ := body["id"].(string)
	require.NotEmpty(t, postID)

	// Reads are open.
	resp, body = doJSON(t, app, http.MethodGet, "/api/v1/posts/"+postID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello", body["title"])

	// B cannot touch A's post.
	resp, _ = doJSON(t, app, http.MethodPut, "/api/v1/posts/"+postID, tokenB,
		fiber.Map{"title": "hijack", "body": "nope"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/posts/"+postID, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// A updates and deletes own post.
	resp, body = doJSON(t, app, http.MethodPut, "/api/v1/posts/"+postID, tokenA,
		fiber.Map{"title": "edited", "body": "second draft"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "edited", body["title"])

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/posts/"+postID, tokenA, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Deleting again is not-found, not forbidden.
	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/posts/"+postID, tokenA, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBlogAuthEndpoints(t *testing.T) {
	t.Parallel()

	app := newBlogApp()
	register(t, app, "a@x.com", "secret")

	// Duplicate email conflicts.
	resp, _ := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "",
		fiber.Map{"email": "a@x.com", "password": "other"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Unknown email and wrong password answer identically.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "",
		fiber.Map{"email": "nobody@x.com", "password": "secret"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "",
		fiber.Map{"email": "a@x.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Missing fields are rejected before hashing.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "",
		fiber.Map{"email": "", "password": "secret"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestBlogGate(t *testing.T) {
	t.Parallel()

	app := newBlogApp()
	register(t, app, "a@x.com", "secret")
	tokenA := login(t, app, "a@x.com", "secret")

	resp, body := doJSON(t, app, http.MethodPost, "/api/v1/posts", tokenA,
		fiber.Map{"title": "hello", "body": "text"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	postID, _ := body["id"].(string)

	// Every mutation is rejected without a token; the store stays untouched.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/v1/posts", "",
		fiber.Map{"title": "x", "body": "y"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/v1/posts/"+postID, "",
		fiber.Map{"title": "x", "body": "y"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/v1/posts/"+postID, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Listing needs no token.
	resp, _ = doJSON(t, app, http.MethodGet, "/api/v1/posts", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
