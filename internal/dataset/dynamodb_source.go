package dataset

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/spacesedan/sentidash/internal/db"
	"github.com/spacesedan/sentidash/internal/models"
)

// DynamoDBSource scans one table per dataset. Items are schemaless, so a
// column counts as missing only when no item carries the attribute.
type DynamoDBSource struct {
	Client       dynamodb.ScanAPIClient
	ReviewsTable string
	TopicsTable  string
}

func (s DynamoDBSource) Reviews(ctx context.Context) ([]models.Review, error) {
	t, err := s.scan(ctx, s.ReviewsTable, ColumnText, ColumnSentiment)
	if err != nil {
		return nil, err
	}
	return reviewsFromTable(t)
}

func (s DynamoDBSource) Topics(ctx context.Context) ([]models.Topic, error) {
	t, err := s.scan(ctx, s.TopicsTable, ColumnRepresentation)
	if err != nil {
		return nil, err
	}
	return topicsFromTable(t)
}

// scan turns the table's items into the same header-plus-rows shape the
// file readers produce.
func (s DynamoDBSource) scan(ctx context.Context, tableName string, columns ...string) (*table, error) {
	items, err := db.ScanTable(ctx, s.Client, tableName, columns)
	if err != nil {
		return nil, err
	}

	seen := make([]bool, len(columns))
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		row := make([]string, len(columns))
		for i, col := range columns {
			v, ok, err := db.StringAttribute(item, col)
			if err != nil {
				return nil, err
			}
			if ok {
				seen[i] = true
			}
			row[i] = v
		}
		rows = append(rows, row)
	}

	// An empty table cannot contradict the schema.
	header := make([]string, len(columns))
	for i, col := range columns {
		if seen[i] || len(items) == 0 {
			header[i] = col
		}
	}

	return &table{name: tableName, header: header, rows: rows}, nil
}
