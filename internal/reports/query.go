package reports

import (
	"context"
	"fmt"

	"wastetrack/pkg/types"

	"github.com/sirupsen/logrus"
)

// FanoutQuery answers FetchPending with one resident listing followed by one
// filtered report query per resident.
type FanoutQuery struct {
	residents ResidentStore
	reports   ReportStore
	logger    logrus.FieldLogger
}

var _ QueryService = (*FanoutQuery)(nil)

func NewFanoutQuery(residents ResidentStore, reports ReportStore, logger logrus.FieldLogger) *FanoutQuery {
	return &FanoutQuery{
		residents: residents,
		reports:   reports,
		logger:    logger,
	}
}

// FetchPending flattens every matching report in resident enumeration order,
// then per-resident store order. The first store failure aborts the whole
// read and nothing gathered so far is returned.
func (q *FanoutQuery) FetchPending(ctx context.Context, district types.District) ([]*types.ReportView, error) {
	if !district.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownDistrict, string(district))
	}

	filter := types.ReportFilter{Status: types.ReportStatusPending}
	if !district.IsAll() {
		d := district
		filter.District = &d
	}

	residents, err := q.residents.Residents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrFetchFailed, err)
	}

	result := make([]*types.ReportView, 0)
	for _, resident := range residents {
		reports, err := q.reports.ReportsByResident(ctx, resident.ID, filter)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", types.ErrFetchFailed, err)
		}

		for _, report := range reports {
			result = append(result, types.NewReportView(report))
		}
	}

	q.logger.WithFields(logrus.Fields{
		"district":  district,
		"residents": len(residents),
		"reports":   len(result),
	}).Debug("fetched pending reports")

	return result, nil
}
