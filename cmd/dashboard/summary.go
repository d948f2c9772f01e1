package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacesedan/sentidash/config"
	"github.com/spacesedan/sentidash/internal/report"
	"github.com/spacesedan/sentidash/internal/selection"
)

func newSummaryCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the sentiment split and keyword groups without serving",
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := loadDataset(cmd.Context(), *cfg)
			if err != nil {
				return fmt.Errorf("failed to load dashboard data: %w", err)
			}

			printSummary(cmd.OutOrStdout(), report.New(ds).Render(selection.Unselected))
			return nil
		},
	}
}

func printSummary(w io.Writer, v report.View) {
	fmt.Fprintln(w, "Overall Sentiment Distribution")
	if v.Summary.Empty() {
		fmt.Fprintln(w, "  No sentiment data available.")
	} else {
		fmt.Fprintf(w, "  negative: %d (%.2f%%)\n", v.Summary.Negative, v.Summary.NegativeShare())
		fmt.Fprintf(w, "  positive: %d (%.2f%%)\n", v.Summary.Positive, v.Summary.PositiveShare())
	}

	printGroup(w, "Negative Topics", v.Keywords.Negative)
	printGroup(w, "Positive Topics", v.Keywords.Positive)
}

func printGroup(w io.Writer, title string, words []string) {
	fmt.Fprintf(w, "\n%s (%d)\n", title, len(words))
	if len(words) == 0 {
		fmt.Fprintln(w, "  No keywords available.")
		return
	}
	for _, row := range report.Rows(words, report.GridColumns) {
		fmt.Fprintf(w, "  %s\n", strings.Join(row, " | "))
	}
}
