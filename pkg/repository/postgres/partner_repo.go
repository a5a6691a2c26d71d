package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/backoffice/pkg/partner"
)

// PartnerRepository implements partner.Repository backed by PostgreSQL (pgx).
type PartnerRepository struct {
	pool *pgxpool.Pool
}

func NewPartnerRepository(pool *pgxpool.Pool) (*PartnerRepository, error) {
	repo := &PartnerRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *PartnerRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS partners (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			full_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			email TEXT NOT NULL,
			description TEXT NOT NULL,
			discount DOUBLE PRECISION NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *PartnerRepository) Create(ctx context.Context, p partner.Partner) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO partners (id, name, full_name, phone, email, description, discount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, p.ID, p.Name, p.FullName, p.Phone, p.Email, p.Description, p.Discount, p.CreatedAt)
	return err
}

func (r *PartnerRepository) List(ctx context.Context, limit, offset int) ([]partner.Partner, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, full_name, phone, email, description, discount, created_at
		FROM partners
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []partner.Partner
	for rows.Next() {
		var p partner.Partner
		var created time.Time
		if err := rows.Scan(&p.ID, &p.Name, &p.FullName, &p.Phone, &p.Email, &p.Description, &p.Discount, &created); err != nil {
			return nil, err
		}
		p.CreatedAt = created.UTC()
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *PartnerRepository) Update(ctx context.Context, p partner.Partner) error {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE partners SET
			name = $1,
			full_name = $2,
			phone = $3,
			email = $4,
			description = $5,
			discount = $6
		WHERE id = $7
	`, p.Name, p.FullName, p.Phone, p.Email, p.Description, p.Discount, p.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return partner.ErrNotFound
	}
	return nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM partners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return partner.ErrNotFound
	}
	return nil
}
