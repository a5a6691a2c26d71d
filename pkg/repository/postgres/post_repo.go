package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/backoffice/pkg/post"
)

// PostRepository implements post.Repository backed by PostgreSQL (pgx).
type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) (*PostRepository, error) {
	repo := &PostRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *PostRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			body TEXT NOT NULL,
			author_email TEXT NOT NULL REFERENCES users(email),
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_posts_created ON posts(created_at DESC);
	`)
	return err
}

func (r *PostRepository) Create(ctx context.Context, p post.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, body, author_email, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, p.ID, p.Title, p.Body, p.AuthorEmail, p.CreatedAt)
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (post.Post, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, body, author_email, created_at
		FROM posts WHERE id = $1
	`, id)
	return scanPost(row)
}

func (r *PostRepository) List(ctx context.Context, limit, offset int) ([]post.Post, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, body, author_email, created_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []post.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *PostRepository) GetAuthor(ctx context.Context, id uuid.UUID) (string, error) {
	row := r.pool.QueryRow(ctx, `SELECT author_email FROM posts WHERE id = $1`, id)
	var author string
	if err := row.Scan(&author); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", post.ErrNotFound
		}
		return "", err
	}
	return author, nil
}

func (r *PostRepository) Update(ctx context.Context, id uuid.UUID, title, body string) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE posts SET title = $1, body = $2 WHERE id = $3
	`, title, body, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return post.ErrNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanPost(row pgx.Row) (post.Post, error) {
	var p post.Post
	var created time.Time
	if err := row.Scan(&p.ID, &p.Title, &p.Body, &p.AuthorEmail, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return post.Post{}, post.ErrNotFound
		}
		return post.Post{}, err
	}
	p.CreatedAt = created.UTC()
	return p, nil
}
