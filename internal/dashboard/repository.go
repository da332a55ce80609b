package dashboard

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// KPIRepository reads and writes the named KPI snapshot rows.
type KPIRepository struct {
	pool *pgxpool.Pool
}

var _ KPIPort = (*KPIRepository)(nil)

// NewKPIRepository constructs a postgres-backed KPIRepository.
func NewKPIRepository(pool *pgxpool.Pool) *KPIRepository {
	return &KPIRepository{pool: pool}
}

// Snapshot returns the stored KPI values layered over the defaults, so a
// partially seeded table still produces a complete block.
func (r *KPIRepository) Snapshot(ctx context.Context) (KPI, error) {
	kpi := defaultKPI

	rows, err := r.pool.Query(ctx, `SELECT name, value FROM kpi`)
	if err != nil {
		return kpi, err
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		var value int64
		if err := rows.Scan(&name, &value); err != nil {
			return kpi, err
		}
		switch name {
		case "revenue":
			kpi.Revenue = value
		case "unitsYTD":
			kpi.UnitsYTD = value
		case "capacityPercent":
			kpi.CapacityPercent = value
		}
	}
	return kpi, rows.Err()
}

// Store upserts one KPI value by name.
func (r *KPIRepository) Store(ctx context.Context, name string, value int64) error {
	const query = `
		INSERT INTO kpi (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`

	_, err := r.pool.Exec(ctx, query, name, value)
	return err
}
