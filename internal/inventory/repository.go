package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

// List returns all items ordered by SKU. Status is left for the caller to derive.
func (r *Repository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.pool.Query(ctx, `SELECT sku, name, category, stock, reorder_level FROM inventory ORDER BY sku`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.SKU, &item.Name, &item.Category, &item.Stock, &item.ReorderLevel); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Get fetches a single item by SKU.
func (r *Repository) Get(ctx context.Context, sku string) (Item, error) {
	var item Item
	err := r.pool.QueryRow(ctx,
		`SELECT sku, name, category, stock, reorder_level FROM inventory WHERE sku = $1`, sku,
	).Scan(&item.SKU, &item.Name, &item.Category, &item.Stock, &item.ReorderLevel)
	if errors.Is(err, pgx.ErrNoRows) {
		return Item{}, ErrUnknownSKU
	}
	if err != nil {
		return Item{}, err
	}
	return item, nil
}

// SetStock writes the post-clamp stock level for a SKU.
func (r *Repository) SetStock(ctx context.Context, sku string, stock int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE inventory SET stock = $2 WHERE sku = $1`, sku, stock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUnknownSKU
	}
	return nil
}

var _ RepositoryPort = (*Repository)(nil)
