package db

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ScanTable reads every item of a table, projected onto attributes.
// Attribute names go through expression placeholders since several column
// names ("text", "Name") are DynamoDB reserved words.
func ScanTable(ctx context.Context, api dynamodb.ScanAPIClient, tableName string, attributes []string) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(tableName),
	}

	if len(attributes) > 0 {
		names := make(map[string]string, len(attributes))
		placeholders := make([]string, 0, len(attributes))
		for i, attr := range attributes {
			ph := "#a" + strconv.Itoa(i)
			names[ph] = attr
			placeholders = append(placeholders, ph)
		}
		input.ProjectionExpression = aws.String(strings.Join(placeholders, ", "))
		input.ExpressionAttributeNames = names
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(api, input)

	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("[DynamoDB] Scan of %s failed: %w", tableName, err)
		}
		items = append(items, out.Items...)
	}

	slog.Info("[DynamoDB] Successfully scanned table",
		slog.String("table", tableName),
		slog.Int("count", len(items)))
	return items, nil
}

// StringAttribute renders a scalar attribute as the text a spreadsheet cell
// would hold. NULL reads as blank; ok is false when the attribute is absent.
func StringAttribute(item map[string]types.AttributeValue, name string) (value string, ok bool, err error) {
	av, ok := item[name]
	if !ok {
		return "", false, nil
	}

	var v any
	if err := attributevalue.Unmarshal(av, &v); err != nil {
		return "", true, fmt.Errorf("[DynamoDB] attribute %s: %w", name, err)
	}

	switch x := v.(type) {
	case nil:
		return "", true, nil
	case string:
		return x, true, nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true, nil
	case bool:
		return strconv.FormatBool(x), true, nil
	default:
		return "", true, fmt.Errorf("[DynamoDB] attribute %s: unsupported type %T", name, v)
	}
}
