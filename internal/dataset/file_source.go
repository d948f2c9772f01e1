package dataset

import (
	"context"

	"github.com/spacesedan/sentidash/internal/models"
)

// FileSource reads .xlsx, .csv or .tsv files.
type FileSource struct {
	ReviewsPath string
	TopicsPath  string
}

func (s FileSource) Reviews(_ context.Context) ([]models.Review, error) {
	t, err := readTable(s.ReviewsPath)
	if err != nil {
		return nil, err
	}
	return reviewsFromTable(t)
}

func (s FileSource) Topics(_ context.Context) ([]models.Topic, error) {
	t, err := readTable(s.TopicsPath)
	if err != nil {
		return nil, err
	}
	return topicsFromTable(t)
}
