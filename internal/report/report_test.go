package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/sentidash/internal/dataset"
	"github.com/spacesedan/sentidash/internal/models"
	"github.com/spacesedan/sentidash/internal/selection"
	"github.com/spacesedan/sentidash/internal/sentiment"
)

func exampleDataset() dataset.Dataset {
	return dataset.Dataset{
		Reviews: []models.Review{
			{Text: "great service", Sentiment: "positive"},
			{Text: "slow and bad", Sentiment: "negative"},
			{Text: "Great Great experience", Sentiment: "positive"},
		},
		Topics: []models.Topic{
			{Representation: "['great','fast']"},
			{Representation: "['slow','bad']"},
		},
	}
}

func TestRenderExampleScenario(t *testing.T) {
	t.Parallel()

	ds := exampleDataset()
	d := New(ds)

	v := d.Render(selection.Unselected)
	assert.Equal(t, sentiment.Summary{Positive: 2, Negative: 1}, v.Summary)
	assert.Equal(t, []string{"bad", "fast"}, v.Keywords.Negative)
	assert.Equal(t, []string{"great", "slow"}, v.Keywords.Positive)
	assert.Nil(t, v.Results)

	sel := selection.Toggle(selection.Unselected, selection.Select(selection.GroupNegative, "bad"))
	v = d.Render(sel)
	require.NotNil(t, v.Results)
	assert.Equal(t, "Negative reviews mentioning 'bad':", v.Results.Title)
	assert.Equal(t, []models.Review{ds.Reviews[1]}, v.Results.Reviews)

	sel = selection.Toggle(sel, selection.Select(selection.GroupPositive, "great"))
	v = d.Render(sel)
	require.NotNil(t, v.Results)
	assert.Equal(t, "Positive reviews mentioning 'great':", v.Results.Title)
	assert.Equal(t, []models.Review{ds.Reviews[0], ds.Reviews[2]}, v.Results.Reviews)

	sel = selection.Toggle(sel, selection.Select(selection.GroupPositive, "great"))
	v = d.Render(sel)
	assert.False(t, v.Selection.Active())
	assert.Nil(t, v.Results, "results section hidden once the selection is cleared")
}

func TestRenderEmptyData(t *testing.T) {
	t.Parallel()

	d := New(dataset.Dataset{})
	v := d.Render(selection.Select(selection.GroupPositive, "anything"))

	assert.True(t, v.Summary.Empty())
	assert.Empty(t, v.Keywords.Negative)
	assert.Empty(t, v.Keywords.Positive)
	require.NotNil(t, v.Results)
	assert.Empty(t, v.Results.Reviews)
}

func TestViewJSON(t *testing.T) {
	t.Parallel()

	v := New(exampleDataset()).Render(selection.Select(selection.GroupNegative, "bad"))
	b, err := json.Marshal(v)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"summary": {"positive": 2, "negative": 1},
		"keywords": {"negative": ["bad", "fast"], "positive": ["great", "slow"]},
		"selection": {"group": "negative", "keyword": "bad"},
		"results": {
			"title": "Negative reviews mentioning 'bad':",
			"reviews": [{"text": "slow and bad", "sentiment": "negative"}]
		}
	}`, string(b))
}

func TestRows(t *testing.T) {
	t.Parallel()

	words := []string{"a", "b", "c", "d", "e", "f", "g"}

	assert.Equal(t, [][]string{{"a", "b", "c", "d", "e"}, {"f", "g"}}, Rows(words, GridColumns))
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e", "f"}, {"g"}}, Rows(words, 3))
	assert.Equal(t, [][]string{{"a", "b", "c", "d", "e"}, {"f", "g"}}, Rows(words, 0))
	assert.Nil(t, Rows(nil, GridColumns))
}
