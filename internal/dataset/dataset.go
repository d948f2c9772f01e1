// Package dataset loads the two source tables the dashboard reports on.
//
// The review table needs "text" and "sentiment" columns, the topic table a
// "Representation" column. Tables come from spreadsheet/CSV files or from
// DynamoDB. A missing file or column is fatal: Load returns an error and the
// dashboard does not start.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spacesedan/sentidash/internal/models"
)

const (
	ColumnText           = "text"
	ColumnSentiment      = "sentiment"
	ColumnRepresentation = "Representation"
)

var (
	ErrMissingColumn     = errors.New("dataset: missing required column")
	ErrEmptyTable        = errors.New("dataset: table has no header row")
	ErrUnsupportedFormat = errors.New("dataset: unsupported file format")
)

// Dataset is the loaded, read-only pair of tables.
type Dataset struct {
	Reviews []models.Review
	Topics  []models.Topic
}

// Source yields both tables.
type Source interface {
	Reviews(ctx context.Context) ([]models.Review, error)
	Topics(ctx context.Context) ([]models.Topic, error)
}

// Load reads both tables from src.
func Load(ctx context.Context, src Source) (Dataset, error) {
	reviews, err := src.Reviews(ctx)
	if err != nil {
		return Dataset{}, fmt.Errorf("[Dataset] failed to load reviews: %w", err)
	}

	topics, err := src.Topics(ctx)
	if err != nil {
		return Dataset{}, fmt.Errorf("[Dataset] failed to load topics: %w", err)
	}

	slog.Info("[Dataset] Loaded source tables",
		slog.Int("reviews", len(reviews)),
		slog.Int("topics", len(topics)))

	return Dataset{Reviews: reviews, Topics: topics}, nil
}

func reviewsFromTable(t *table) ([]models.Review, error) {
	textIdx, err := t.column(ColumnText)
	if err != nil {
		return nil, err
	}
	sentimentIdx, err := t.column(ColumnSentiment)
	if err != nil {
		return nil, err
	}

	reviews := make([]models.Review, 0, len(t.rows))
	for _, row := range t.rows {
		reviews = append(reviews, models.Review{
			Text:      t.cell(row, textIdx),
			Sentiment: t.cell(row, sentimentIdx),
		})
	}
	return reviews, nil
}

func topicsFromTable(t *table) ([]models.Topic, error) {
	repIdx, err := t.column(ColumnRepresentation)
	if err != nil {
		return nil, err
	}

	topics := make([]models.Topic, 0, len(t.rows))
	for _, row := range t.rows {
		topics = append(topics, models.Topic{
			Representation: t.cell(row, repIdx),
		})
	}
	return topics, nil
}
