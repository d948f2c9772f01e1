// Package report builds the dashboard view from the loaded tables and a
// session's selection.
package report

import (
	"fmt"

	"github.com/spacesedan/sentidash/internal/dataset"
	"github.com/spacesedan/sentidash/internal/keywords"
	"github.com/spacesedan/sentidash/internal/models"
	"github.com/spacesedan/sentidash/internal/selection"
	"github.com/spacesedan/sentidash/internal/sentiment"
)

// GridColumns is the number of keyword buttons per grid row.
const GridColumns = 5

// Dashboard holds the source tables. They are never modified, so one
// Dashboard serves every session concurrently.
type Dashboard struct {
	reviews []models.Review
	topics  []models.Topic
}

func New(ds dataset.Dataset) *Dashboard {
	return &Dashboard{reviews: ds.Reviews, topics: ds.Topics}
}

// Results is the filtered review table for the active selection.
type Results struct {
	Title   string          `json:"title"`
	Reviews []models.Review `json:"reviews"`
}

// View is everything one page render needs.
type View struct {
	Summary   sentiment.Summary   `json:"summary"`
	Keywords  keywords.Groups     `json:"keywords"`
	Selection selection.Selection `json:"selection"`
	Results   *Results            `json:"results,omitempty"`
}

// Render derives a fresh view for sel. Nothing is cached between calls.
func (d *Dashboard) Render(sel selection.Selection) View {
	v := View{
		Summary:   sentiment.Aggregate(d.reviews),
		Keywords:  keywords.ExtractGroups(d.topics),
		Selection: sel,
	}

	if sel.Active() {
		v.Results = &Results{
			Title:   ResultsTitle(sel),
			Reviews: FilterReviews(d.reviews, sel),
		}
	}
	return v
}

// ResultsTitle formats the results heading, e.g.
// "Negative reviews mentioning 'bad':".
func ResultsTitle(sel selection.Selection) string {
	return fmt.Sprintf("%s reviews mentioning '%s':", sel.Group.Title(), sel.Keyword)
}

// Rows chunks words into rows of at most n for a grid layout.
func Rows(words []string, n int) [][]string {
	if n <= 0 {
		n = GridColumns
	}

	var rows [][]string
	for start := 0; start < len(words); start += n {
		end := min(start+n, len(words))
		rows = append(rows, words[start:end])
	}
	return rows
}
