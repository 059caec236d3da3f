package main

import (
	"context"
	"fmt"
	"strings"

	"wastetrack/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	switch c.StoreBackend {
	case types.StoreBackendPostgres:
		if c.DatabaseURL == "" {
			return nil, fmt.Errorf("set DATABASE_URL")
		}
	case types.StoreBackendDynamoDB:
		if c.DynamoResidentsTable == "" || c.DynamoReportsTable == "" {
			return nil, fmt.Errorf("set DYNAMODB_RESIDENTS_TABLE and DYNAMODB_REPORTS_TABLE")
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}

	if c.ServerPort == 0 {
		c.ServerPort = 8080
	}

	if c.ReadTimeoutSec == 0 {
		c.ReadTimeoutSec = 10
	}

	if c.WriteTimeoutSec == 0 {
		c.WriteTimeoutSec = 30
	}

	if d, err := types.ParseDistrict(c.DefaultDistrict); err != nil || d.IsAll() {
		return nil, fmt.Errorf("DEFAULT_DISTRICT must be one of %v", types.Districts())
	}

	return c, nil
}

// validatePhotoBackend is only called by commands that upload photos.
func validatePhotoBackend(c *types.Config) error {
	switch c.PhotoBackend {
	case types.PhotoBackendS3:
		if c.S3BucketName == "" {
			return fmt.Errorf("set S3_BUCKET_NAME")
		}
	case types.PhotoBackendSupabase:
		if c.SupabaseProjectID == "" || c.SupabaseAPIKey == "" {
			return fmt.Errorf("set SUPABASE_PROJECT_ID and SUPABASE_API_KEY")
		}
	default:
		return fmt.Errorf("unsupported PHOTO_BACKEND %q", c.PhotoBackend)
	}

	return nil
}

func loadAWSConfig(ctx context.Context, c *types.Config) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error

	// Local DynamoDB and S3-compatible stores don't validate credentials, but
	// the SDK still needs some.
	if c.AWSEndpointURL != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AWSAccessKeyID, c.AWSSecretAccessKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load aws config: %w", err)
	}

	if awsConfig.Region == "" {
		awsConfig.Region = "us-east-1"
	}

	return awsConfig, nil
}

func newLogger(c *types.Config) *logrus.Logger {
	logger := logrus.New()

	if c.LogFormat == "json" || (c.LogFormat == "" && !c.IsDevelopment()) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(strings.TrimSpace(c.LogLevel))
	if err != nil {
		logger.WithError(err).Warn("invalid LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
