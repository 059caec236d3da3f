package store

import (
	"context"
	"fmt"
	"time"

	"wastetrack/internal/utils"
	"wastetrack/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reportTableName = "wastetrack.reports"

var reportColumns = utils.StructTagValues(types.Report{})

type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// ReportsByResident returns one resident's reports matching the filter's
// equality predicates, in insertion order.
func (r *ReportRepository) ReportsByResident(ctx context.Context, residentID string, filter types.ReportFilter) ([]*types.Report, error) {
	where := sq.Eq{"resident_id": residentID}
	if filter.Status != "" {
		where["status"] = filter.Status
	}
	if filter.District != nil {
		where["district"] = *filter.District
	}

	query, args, err := psql().
		Select(reportColumns...).
		From(reportTableName).
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate reports query for resident %s: %w", residentID, err)
	}

	var reports = make([]*types.Report, 0)
	err = pgxscan.Select(ctx, r.pool, &reports, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reports for resident %s: %w", residentID, err)
	}

	return reports, nil
}

func (r *ReportRepository) Report(ctx context.Context, residentID, reportID string) (*types.Report, error) {
	query, args, err := psql().
		Select(reportColumns...).
		From(reportTableName).
		Where(sq.Eq{"resident_id": residentID, "id": reportID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate report query: %w", err)
	}

	var report = new(types.Report)
	err = pgxscan.Get(ctx, r.pool, report, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, types.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to fetch report %s/%s: %w", residentID, reportID, err)
	}

	return report, nil
}

// CompleteReport applies the completion fields to a single report. It does
// not check the current status.
func (r *ReportRepository) CompleteReport(ctx context.Context, residentID, reportID string, completion *types.ReportCompletion) error {
	query, args, err := psql().
		Update(reportTableName).
		SetMap(utils.StructToMap(completion)).
		Where(sq.Eq{"resident_id": residentID, "id": reportID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate complete report query for report %s/%s: %w", residentID, reportID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to complete report: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrReportNotFound
	}

	return nil
}

// UpsertReport inserts a report or overwrites every mutable field of an
// existing one. The composite key is never rewritten.
func (r *ReportRepository) UpsertReport(ctx context.Context, report *types.Report) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	query, args, err := psql().
		Insert(reportTableName).
		SetMap(utils.StructToMap(report)).
		Suffix(`ON CONFLICT (resident_id, id) DO UPDATE SET
			district = EXCLUDED.district,
			issue = EXCLUDED.issue,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			status = EXCLUDED.status,
			weightwaste = EXCLUDED.weightwaste,
			picafterpickup = EXCLUDED.picafterpickup,
			date_collection = EXCLUDED.date_collection`).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate upsert report query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to upsert report")
}
