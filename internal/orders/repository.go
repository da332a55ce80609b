package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

// List returns all orders ordered by date descending. ISO dates sort lexically.
func (r *Repository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, order_date, dealer, product, qty, amount, status FROM orders ORDER BY order_date DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Date, &o.Dealer, &o.Product, &o.Qty, &o.Amount, &o.Status); err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}

// Create inserts an order record.
func (r *Repository) Create(ctx context.Context, order Order) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO orders (id, order_date, dealer, product, qty, amount, status) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		order.ID, order.Date, order.Dealer, order.Product, order.Qty, order.Amount, order.Status,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateID
	}
	return err
}

// SetStatus updates an order's status.
func (r *Repository) SetStatus(ctx context.Context, id string, status Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownOrder
	}
	return nil
}

// MaxSequence returns the highest numeric suffix across order ids shaped like
// ORD-<year>-<sequence>; zero when the collection is empty.
func (r *Repository) MaxSequence(ctx context.Context) (int, error) {
	var maxSeq int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX((split_part(id, '-', 3))::int), 0)
		 FROM orders
		 WHERE id ~ '^ORD-[0-9]{4}-[0-9]+$'`,
	).Scan(&maxSeq)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return maxSeq, nil
}

var _ RepositoryPort = (*Repository)(nil)
