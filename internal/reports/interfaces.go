package reports

import (
	"context"
	"io"

	"wastetrack/pkg/types"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ResidentStore enumerates the top-level resident records.
type ResidentStore interface {
	Residents(ctx context.Context) ([]*types.Resident, error)
}

// ReportStore reads and writes the reports nested under each resident.
type ReportStore interface {
	ReportsByResident(ctx context.Context, residentID string, filter types.ReportFilter) ([]*types.Report, error)
	Report(ctx context.Context, residentID, reportID string) (*types.Report, error)
	CompleteReport(ctx context.Context, residentID, reportID string, completion *types.ReportCompletion) error
}

// PhotoStore uploads a completion photo and returns a retrievable URL.
type PhotoStore interface {
	UploadPhoto(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// QueryService returns the pending reports for a district, or for every
// district when given types.DistrictAll. Callers depend on this interface so
// the fan-out can be replaced by an indexed query.
type QueryService interface {
	FetchPending(ctx context.Context, district types.District) ([]*types.ReportView, error)
}

// ReportCompleter performs the Pending -> Success transition.
type ReportCompleter interface {
	CompleteReport(ctx context.Context, input CompleteReportInput) (*types.ReportCompletion, error)
}

// ReportLoader fetches one report by its composite key.
type ReportLoader interface {
	LoadReport(ctx context.Context, residentID, reportID string) (*types.Report, error)
}
