package dealers

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// List returns all dealers ordered by code.
func (r *Repository) List(ctx context.Context) ([]Dealer, error) {
	rows, err := r.pool.Query(ctx, `SELECT code, name, region, city, contact, ytd_sales FROM dealers ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []Dealer
	for rows.Next() {
		var d Dealer
		if err := rows.Scan(&d.Code, &d.Name, &d.Region, &d.City, &d.Contact, &d.YTDSales); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Create inserts a dealer record.
func (r *Repository) Create(ctx context.Context, dealer Dealer) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO dealers (code, name, region, city, contact, ytd_sales) VALUES ($1, $2, $3, $4, $5, $6)`,
		dealer.Code, dealer.Name, dealer.Region, dealer.City, dealer.Contact, dealer.YTDSales,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateCode
	}
	return err
}

var _ RepositoryPort = (*Repository)(nil)
