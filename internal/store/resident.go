package store

import (
	"context"
	"fmt"
	"time"

	"wastetrack/internal/utils"
	"wastetrack/pkg/types"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const residentTableName = "wastetrack.residents"

var residentColumns = utils.StructTagValues(types.Resident{})

type ResidentRepository struct {
	pool *pgxpool.Pool
}

func NewResidentRepository(pool *pgxpool.Pool) *ResidentRepository {
	return &ResidentRepository{pool: pool}
}

// Residents enumerates every resident. The order is the enumeration order
// the report query flattens by.
func (r *ResidentRepository) Residents(ctx context.Context) ([]*types.Resident, error) {
	query, args, err := psql().
		Select(residentColumns...).
		From(residentTableName).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate residents query: %w", err)
	}

	var residents = make([]*types.Resident, 0)
	err = pgxscan.Select(ctx, r.pool, &residents, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch residents: %w", err)
	}

	return residents, nil
}

// UpsertResident inserts the resident or refreshes its name.
func (r *ResidentRepository) UpsertResident(ctx context.Context, resident *types.Resident) error {
	if resident.CreatedAt.IsZero() {
		resident.CreatedAt = time.Now()
	}

	query, args, err := psql().
		Insert(residentTableName).
		SetMap(utils.StructToMap(resident)).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert resident query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert resident")
}
