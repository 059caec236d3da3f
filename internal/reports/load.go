package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wastetrack/pkg/types"
)

const noIssueLabel = "No issue provided"

type Loader struct {
	reports ReportStore
}

var _ ReportLoader = (*Loader)(nil)

func NewLoader(reports ReportStore) *Loader {
	return &Loader{reports: reports}
}

// LoadReport fetches a single report by composite key.
func (l *Loader) LoadReport(ctx context.Context, residentID, reportID string) (*types.Report, error) {
	residentID = strings.TrimSpace(residentID)
	reportID = strings.TrimSpace(reportID)
	if residentID == "" || reportID == "" {
		return nil, types.ErrInvalidNavigation
	}

	report, err := l.reports.Report(ctx, residentID, reportID)
	if err != nil {
		if errors.Is(err, types.ErrReportNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", types.ErrReportNotFound, residentID, reportID)
		}
		return nil, fmt.Errorf("%w: %w", types.ErrFetchFailed, err)
	}

	return report, nil
}

// IssueLabel is the human-readable label shown above the submit form.
func IssueLabel(report *types.Report) string {
	issue := strings.TrimSpace(report.Issue)
	if issue == "" {
		issue = noIssueLabel
	}
	return fmt.Sprintf("%s - %s", issue, report.ShortID())
}
