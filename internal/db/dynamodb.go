package db

import (
	"context"
	"errors"
	"fmt"

	"wastetrack/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ConnectDynamoDB builds a DynamoDB client from an already loaded AWS
// config. AWS_ENDPOINT_URL points it at DynamoDB Local.
func ConnectDynamoDB(awsConfig aws.Config, config *types.Config) *dynamodb.Client {
	return dynamodb.NewFromConfig(awsConfig, func(o *dynamodb.Options) {
		if config.AWSEndpointURL != "" {
			o.BaseEndpoint = aws.String(config.AWSEndpointURL)
		}
	})
}

// CreateDynamoTables creates the residents and reports tables when they
// don't exist yet.
//
// Table layout:
//   - residents: PK id
//   - reports:   PK resident_id, SK id
func CreateDynamoTables(ctx context.Context, client *dynamodb.Client, config *types.Config) error {
	tables := []*dynamodb.CreateTableInput{
		{
			TableName:   aws.String(config.DynamoResidentsTable),
			BillingMode: ddbtypes.BillingModePayPerRequest,
			AttributeDefinitions: []ddbtypes.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: ddbtypes.ScalarAttributeTypeS},
			},
			KeySchema: []ddbtypes.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: ddbtypes.KeyTypeHash},
			},
		},
		{
			TableName:   aws.String(config.DynamoReportsTable),
			BillingMode: ddbtypes.BillingModePayPerRequest,
			AttributeDefinitions: []ddbtypes.AttributeDefinition{
				{AttributeName: aws.String("resident_id"), AttributeType: ddbtypes.ScalarAttributeTypeS},
				{AttributeName: aws.String("id"), AttributeType: ddbtypes.ScalarAttributeTypeS},
			},
			KeySchema: []ddbtypes.KeySchemaElement{
				{AttributeName: aws.String("resident_id"), KeyType: ddbtypes.KeyTypeHash},
				{AttributeName: aws.String("id"), KeyType: ddbtypes.KeyTypeRange},
			},
		},
	}

	for _, input := range tables {
		_, err := client.CreateTable(ctx, input)
		if err != nil {
			var inUse *ddbtypes.ResourceInUseException
			if errors.As(err, &inUse) {
				continue
			}
			return fmt.Errorf("create table %s: %w", aws.ToString(input.TableName), err)
		}
	}

	return nil
}
