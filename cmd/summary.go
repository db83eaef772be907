package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redgreenblue444/lol-dashboard/internal/aggregator"
	"github.com/redgreenblue444/lol-dashboard/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the overall record for the filtered match set",
	Long: `Display the win/loss record, per-game averages, streaks, multi-kill
totals and derived insights for the selected player's matches, after
applying any of the shared filter flags.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	_, _, matches, err := loadFiltered()
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found for the given filters.")
		return nil
	}

	s := aggregator.CalculateSummary(matches)
	streaks := aggregator.DetectStreaks(matches)
	multiKills := aggregator.CountMultiKills(matches)
	report.PrintSummary(os.Stdout, s, streaks, multiKills, aggregator.Insights(s))
	return nil
}
