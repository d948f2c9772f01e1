package web

import (
	"github.com/spacesedan/sentidash/internal/report"
	"github.com/spacesedan/sentidash/internal/selection"
)

type button struct {
	Group   string
	Keyword string
	Active  bool
}

type grid struct {
	Title string
	Rows  [][]button
}

type page struct {
	View    report.View
	Columns int
	Grids   []grid
}

func newPage(v report.View) page {
	return page{
		View:    v,
		Columns: report.GridColumns,
		Grids: []grid{
			newGrid("Negative Topics", selection.GroupNegative, v.Keywords.Negative, v.Selection),
			newGrid("Positive Topics", selection.GroupPositive, v.Keywords.Positive, v.Selection),
		},
	}
}

func newGrid(title string, group selection.Group, words []string, sel selection.Selection) grid {
	g := grid{Title: title}
	for _, row := range report.Rows(words, report.GridColumns) {
		buttons := make([]button, 0, len(row))
		for _, kw := range row {
			buttons = append(buttons, button{
				Group:   group.String(),
				Keyword: kw,
				Active:  sel.Is(group, kw),
			})
		}
		g.Rows = append(g.Rows, buttons)
	}
	return g
}
