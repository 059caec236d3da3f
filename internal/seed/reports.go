package seed

import (
	"context"
	"fmt"
	"time"

	"wastetrack/internal/utils"
	"wastetrack/pkg/types"
)

// ResidentWriter and ReportWriter are satisfied by both the Postgres and the
// DynamoDB repositories.
type ResidentWriter interface {
	UpsertResident(ctx context.Context, resident *types.Resident) error
}

type ReportWriter interface {
	UpsertReport(ctx context.Context, report *types.Report) error
}

type residentSeed struct {
	Resident types.Resident
	Reports  []types.Report
}

// SeedReports upserts the residents and reports defined below. Reports are
// always written as Pending, so reseeding reopens completed demo reports.
//
// To generate new IDs: `go run ./cmd/wastetrack nanoid`
func SeedReports(ctx context.Context, residents ResidentWriter, reports ReportWriter, now time.Time) (int, error) {
	seeded := 0
	for i, rs := range seedData() {
		resident := rs.Resident
		resident.CreatedAt = now.Add(time.Duration(i) * time.Minute)
		if err := residents.UpsertResident(ctx, &resident); err != nil {
			return seeded, fmt.Errorf("failed to seed resident %s: %w", resident.ID, err)
		}

		for j, report := range rs.Reports {
			report.ResidentID = resident.ID
			report.Status = types.ReportStatusPending
			report.CreatedAt = resident.CreatedAt.Add(time.Duration(j) * time.Second)
			if err := reports.UpsertReport(ctx, &report); err != nil {
				return seeded, fmt.Errorf("failed to seed report %s/%s: %w", resident.ID, report.ID, err)
			}
			seeded++
		}
	}

	return seeded, nil
}

func seedData() []residentSeed {
	return []residentSeed{
		{
			Resident: types.Resident{ID: "q3VnX0cYpL8sRk2TgWb1", Name: utils.StringPtr("Aminah Yusof")},
			Reports: []types.Report{
				{
					ID:        "Hk7dPz2QaM9wLx4Ve1Rs",
					District:  types.DistrictArau,
					Issue:     "Overflowing bin",
					Latitude:  utils.Float64Ptr(6.4297),
					Longitude: utils.Float64Ptr(100.2699),
				},
				{
					ID:       "bN5tGy8UoJ3cFe6Wq0Zi",
					District: types.DistrictArau,
					Issue:    "Bulky waste",
				},
			},
		},
		{
			Resident: types.Resident{ID: "Xw1LmR7aKp4DsQ9cEz2H", Name: utils.StringPtr("Tan Wei Ming")},
			Reports: []types.Report{
				{
					ID:        "Ty6Uo2pZr8VbNc3XmA5k",
					District:  types.DistrictKangar,
					Issue:     "Illegal dumping",
					Latitude:  utils.Float64Ptr(6.4414),
					Longitude: utils.Float64Ptr(100.1986),
				},
			},
		},
		{
			Resident: types.Resident{ID: "Pz0Jf5hWs2Ke8YdRn4Gv", Name: utils.StringPtr("Siti Rahman")},
			Reports: []types.Report{
				{
					ID:        "Lq9Ca4Ex7Bm1Vn6Ht3Oj",
					District:  types.DistrictPadangBesar,
					Issue:     "Missed collection",
					Latitude:  utils.Float64Ptr(6.6619),
					Longitude: utils.Float64Ptr(100.3217),
				},
				{
					ID:        "Gd2Sk8Rf0Wl5Yp7Ia1Mu",
					District:  types.DistrictArau,
					Issue:     "Garden waste",
					Latitude:  utils.Float64Ptr(6.4331),
					Longitude: utils.Float64Ptr(100.2745),
				},
			},
		},
	}
}
