package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redgreenblue444/lol-dashboard/internal/aggregator"
	"github.com/redgreenblue444/lol-dashboard/internal/report"
)

var trendBucket string

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show performance over time",
	Long: `Group the filtered match set into calendar buckets and display each
period's record and averages. Buckets: daily, weekly, monthly,
quarterly, yearly, or individual for one row per game.`,
	Args: cobra.NoArgs,
	RunE: runTrend,
}

func init() {
	trendCmd.Flags().StringVar(&trendBucket, "bucket", string(aggregator.Monthly), "bucket granularity")
}

func runTrend(cmd *cobra.Command, args []string) error {
	granularity, err := aggregator.ParseGranularity(trendBucket)
	if err != nil {
		return err
	}

	_, _, matches, err := loadFiltered()
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found for the given filters.")
		return nil
	}

	report.PrintTrendTable(os.Stdout, aggregator.ByTimeBucket(matches, granularity))
	return nil
}
