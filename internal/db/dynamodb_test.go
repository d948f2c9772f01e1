package db

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringAttribute(t *testing.T) {
	t.Parallel()

	item := map[string]types.AttributeValue{
		"text":   &types.AttributeValueMemberS{Value: "great service"},
		"count":  &types.AttributeValueMemberN{Value: "12.5"},
		"flag":   &types.AttributeValueMemberBOOL{Value: true},
		"empty":  &types.AttributeValueMemberNULL{Value: true},
		"nested": &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberS{Value: "x"}}},
	}

	tests := []struct {
		name    string
		attr    string
		want    string
		wantOK  bool
		wantErr bool
	}{
		{"string", "text", "great service", true, false},
		{"number", "count", "12.5", true, false},
		{"bool", "flag", "true", true, false},
		{"null", "empty", "", true, false},
		{"absent", "missing", "", false, false},
		{"list unsupported", "nested", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok, err := StringAttribute(item, tt.attr)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
