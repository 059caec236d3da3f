package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wastetrack/pkg/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	ddbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type residentItem struct {
	ID        string  `dynamodbav:"id"`
	Name      *string `dynamodbav:"name,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
}

type reportItem struct {
	ResidentID     string   `dynamodbav:"resident_id"`
	ID             string   `dynamodbav:"id"`
	District       string   `dynamodbav:"district"`
	Issue          string   `dynamodbav:"issue"`
	Latitude       *float64 `dynamodbav:"latitude,omitempty"`
	Longitude      *float64 `dynamodbav:"longitude,omitempty"`
	Status         string   `dynamodbav:"status"`
	WeightWaste    *string  `dynamodbav:"weightwaste,omitempty"`
	PicAfterPickup *string  `dynamodbav:"picafterpickup,omitempty"`
	DateCollection *string  `dynamodbav:"date_collection,omitempty"`
	CreatedAt      string   `dynamodbav:"created_at"`
}

// DynamoResidentRepository reads and writes residents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type DynamoResidentRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewDynamoResidentRepository(ddb *dynamodb.Client, tableName string) *DynamoResidentRepository {
	return &DynamoResidentRepository{ddb: ddb, tableName: tableName}
}

// Residents scans the whole table, page by page. DynamoDB gives no ordering
// guarantee for scans; the scan order is the enumeration order.
func (r *DynamoResidentRepository) Residents(ctx context.Context) ([]*types.Resident, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	residents := make([]*types.Resident, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan residents: %w", err)
		}

		var items []residentItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to decode residents: %w", err)
		}

		for _, it := range items {
			residents = append(residents, fromResidentItem(it))
		}
	}

	return residents, nil
}

func (r *DynamoResidentRepository) UpsertResident(ctx context.Context, resident *types.Resident) error {
	if resident.CreatedAt.IsZero() {
		resident.CreatedAt = time.Now()
	}

	av, err := attributevalue.MarshalMap(toResidentItem(resident))
	if err != nil {
		return fmt.Errorf("failed to encode resident: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert resident: %w", err)
	}
	return nil
}

// DynamoReportRepository keeps each resident's reports under the resident's
// partition, mirroring the nested reports collection.
//
// Table requirements:
//   - PK: resident_id (string)
//   - SK: id (string)
type DynamoReportRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

func NewDynamoReportRepository(ddb *dynamodb.Client, tableName string) *DynamoReportRepository {
	return &DynamoReportRepository{ddb: ddb, tableName: tableName}
}

func (r *DynamoReportRepository) ReportsByResident(ctx context.Context, residentID string, filter types.ReportFilter) ([]*types.Report, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#resident_id = :resident_id"),
		ExpressionAttributeNames: map[string]string{
			"#resident_id": "resident_id",
		},
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":resident_id": &ddbtypes.AttributeValueMemberS{Value: residentID},
		},
	}

	filterExpr, names, values := reportFilterExpression(filter)
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		for k, v := range names {
			input.ExpressionAttributeNames[k] = v
		}
		for k, v := range values {
			input.ExpressionAttributeValues[k] = v
		}
	}

	paginator := dynamodb.NewQueryPaginator(r.ddb, input)

	reports := make([]*types.Report, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query reports for resident %s: %w", residentID, err)
		}

		var items []reportItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, fmt.Errorf("failed to decode reports for resident %s: %w", residentID, err)
		}

		for _, it := range items {
			reports = append(reports, fromReportItem(it))
		}
	}

	return reports, nil
}

func (r *DynamoReportRepository) Report(ctx context.Context, residentID, reportID string) (*types.Report, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            reportKey(residentID, reportID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report %s/%s: %w", residentID, reportID, err)
	}
	if len(out.Item) == 0 {
		return nil, types.ErrReportNotFound
	}

	var it reportItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, fmt.Errorf("failed to decode report %s/%s: %w", residentID, reportID, err)
	}
	return fromReportItem(it), nil
}

func (r *DynamoReportRepository) CompleteReport(ctx context.Context, residentID, reportID string, completion *types.ReportCompletion) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 reportKey(residentID, reportID),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String(
			"SET #weightwaste = :weightwaste, #picafterpickup = :picafterpickup, #status = :status, #date_collection = :date_collection",
		),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#weightwaste":     "weightwaste",
			"#picafterpickup":  "picafterpickup",
			"#status":          "status",
			"#date_collection": "date_collection",
		},
		ExpressionAttributeValues: map[string]ddbtypes.AttributeValue{
			":weightwaste":     &ddbtypes.AttributeValueMemberS{Value: completion.WeightWaste},
			":picafterpickup":  &ddbtypes.AttributeValueMemberS{Value: completion.PicAfterPickup},
			":status":          &ddbtypes.AttributeValueMemberS{Value: string(completion.Status)},
			":date_collection": &ddbtypes.AttributeValueMemberS{Value: formatTime(completion.DateCollection)},
		},
	})
	if err != nil {
		var cfe *ddbtypes.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return types.ErrReportNotFound
		}
		return fmt.Errorf("failed to complete report: %w", err)
	}
	return nil
}

func (r *DynamoReportRepository) UpsertReport(ctx context.Context, report *types.Report) error {
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	av, err := attributevalue.MarshalMap(toReportItem(report))
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert report: %w", err)
	}
	return nil
}

func reportFilterExpression(filter types.ReportFilter) (string, map[string]string, map[string]ddbtypes.AttributeValue) {
	var expr string
	names := map[string]string{}
	values := map[string]ddbtypes.AttributeValue{}

	if filter.Status != "" {
		expr = "#status = :status"
		names["#status"] = "status"
		values[":status"] = &ddbtypes.AttributeValueMemberS{Value: string(filter.Status)}
	}

	if filter.District != nil {
		if expr != "" {
			expr += " AND "
		}
		expr += "#district = :district"
		names["#district"] = "district"
		values[":district"] = &ddbtypes.AttributeValueMemberS{Value: string(*filter.District)}
	}

	return expr, names, values
}

func reportKey(residentID, reportID string) map[string]ddbtypes.AttributeValue {
	return map[string]ddbtypes.AttributeValue{
		"resident_id": &ddbtypes.AttributeValueMemberS{Value: residentID},
		"id":          &ddbtypes.AttributeValueMemberS{Value: reportID},
	}
}

func toResidentItem(r *types.Resident) residentItem {
	return residentItem{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: formatTime(r.CreatedAt),
	}
}

func fromResidentItem(it residentItem) *types.Resident {
	return &types.Resident{
		ID:        it.ID,
		Name:      it.Name,
		CreatedAt: parseTime(it.CreatedAt),
	}
}

func toReportItem(r *types.Report) reportItem {
	it := reportItem{
		ResidentID:     r.ResidentID,
		ID:             r.ID,
		District:       string(r.District),
		Issue:          r.Issue,
		Latitude:       r.Latitude,
		Longitude:      r.Longitude,
		Status:         string(r.Status),
		WeightWaste:    r.WeightWaste,
		PicAfterPickup: r.PicAfterPickup,
		CreatedAt:      formatTime(r.CreatedAt),
	}
	if r.DateCollection != nil {
		s := formatTime(*r.DateCollection)
		it.DateCollection = &s
	}
	return it
}

func fromReportItem(it reportItem) *types.Report {
	r := &types.Report{
		ResidentID:     it.ResidentID,
		ID:             it.ID,
		District:       types.District(it.District),
		Issue:          it.Issue,
		Latitude:       it.Latitude,
		Longitude:      it.Longitude,
		Status:         types.ReportStatus(it.Status),
		WeightWaste:    it.WeightWaste,
		PicAfterPickup: it.PicAfterPickup,
		CreatedAt:      parseTime(it.CreatedAt),
	}
	if it.DateCollection != nil {
		t := parseTime(*it.DateCollection)
		r.DateCollection = &t
	}
	return r
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
