package reports_test

import (
	"context"
	"io"

	"wastetrack/pkg/types"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func float(v float64) *float64 {
	return &v
}

// memStore applies the same equality predicates the real stores do.
type memStore struct {
	residents []*types.Resident
	reports   map[string][]*types.Report
}

func (m *memStore) Residents(_ context.Context) ([]*types.Resident, error) {
	return m.residents, nil
}

func (m *memStore) ReportsByResident(_ context.Context, residentID string, filter types.ReportFilter) ([]*types.Report, error) {
	out := make([]*types.Report, 0)
	for _, r := range m.reports[residentID] {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.District != nil && r.District != *filter.District {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memStore) Report(_ context.Context, residentID, reportID string) (*types.Report, error) {
	for _, r := range m.reports[residentID] {
		if r.ID == reportID {
			return r, nil
		}
	}
	return nil, types.ErrReportNotFound
}

func (m *memStore) CompleteReport(_ context.Context, residentID, reportID string, c *types.ReportCompletion) error {
	r, err := m.Report(context.Background(), residentID, reportID)
	if err != nil {
		return err
	}
	r.Status = c.Status
	r.WeightWaste = &c.WeightWaste
	r.PicAfterPickup = &c.PicAfterPickup
	r.DateCollection = &c.DateCollection
	return nil
}
