package main

import (
	"context"

	"wastetrack/internal/db"
	"wastetrack/internal/reports"
	"wastetrack/internal/seed"
	"wastetrack/internal/storage"
	"wastetrack/internal/store"
	"wastetrack/pkg/types"
)

type residentRepository interface {
	reports.ResidentStore
	seed.ResidentWriter
}

type reportRepository interface {
	reports.ReportStore
	seed.ReportWriter
}

// backends holds the document store repositories for STORE_BACKEND.
type backends struct {
	residents residentRepository
	reports   reportRepository
	close     func()
}

func openBackends(ctx context.Context, config *types.Config) (*backends, error) {
	if config.StoreBackend == types.StoreBackendDynamoDB {
		awsConfig, err := loadAWSConfig(ctx, config)
		if err != nil {
			return nil, err
		}

		client := db.ConnectDynamoDB(awsConfig, config)
		return &backends{
			residents: store.NewDynamoResidentRepository(client, config.DynamoResidentsTable),
			reports:   store.NewDynamoReportRepository(client, config.DynamoReportsTable),
			close:     func() {},
		}, nil
	}

	pool, err := db.Connect(ctx, config)
	if err != nil {
		return nil, err
	}

	return &backends{
		residents: store.NewResidentRepository(pool),
		reports:   store.NewReportRepository(pool),
		close:     pool.Close,
	}, nil
}

func openPhotoStore(ctx context.Context, config *types.Config) (reports.PhotoStore, error) {
	if err := validatePhotoBackend(config); err != nil {
		return nil, err
	}

	if config.PhotoBackend == types.PhotoBackendSupabase {
		return storage.NewSupabasePhotoStore(config.SupabaseProjectID, config.SupabaseAPIKey, config.SupabaseBucketName), nil
	}

	awsConfig, err := loadAWSConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	client := storage.NewS3Client(awsConfig, config.AWSEndpointURL)
	return storage.NewS3PhotoStore(client, config.S3BucketName, config.S3PublicBaseURL), nil
}
