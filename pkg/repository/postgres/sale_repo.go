package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkravets/backoffice/pkg/sales"
)

// SaleRepository implements sales.Repository backed by PostgreSQL (pgx).
type SaleRepository struct {
	pool *pgxpool.Pool
}

func NewSaleRepository(pool *pgxpool.Pool) (*SaleRepository, error) {
	repo := &SaleRepository{pool: pool}
	if err := repo.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *SaleRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS sales (
			id UUID PRIMARY KEY,
			date TEXT NOT NULL,
			number TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			customer_name TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		);
	`)
	return err
}

func (r *SaleRepository) Create(ctx context.Context, rec sales.Record) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO sales (id, date, number, price, customer_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rec.ID, rec.Date, rec.Number, rec.Price, rec.CustomerName, rec.CreatedAt)
	return err
}

func (r *SaleRepository) List(ctx context.Context, limit, offset int) ([]sales.Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, date, number, price, customer_name, created_at
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []sales.Record
	for rows.Next() {
		var rec sales.Record
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Number, &rec.Price, &rec.CustomerName, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = created.UTC()
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *SaleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return sales.ErrNotFound
	}
	return nil
}
