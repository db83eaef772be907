package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redgreenblue444/lol-dashboard/internal/aggregator"
	"github.com/redgreenblue444/lol-dashboard/internal/report"
)

var championsTopN int

var championsCmd = &cobra.Command{
	Use:   "champions",
	Short: "Show per-champion records",
	Long: `Display one row per champion played in the filtered match set, sorted
by games played, with best / worst / most played shortlists underneath.`,
	Args: cobra.NoArgs,
	RunE: runChampions,
}

func init() {
	championsCmd.Flags().IntVar(&championsTopN, "top", 3, "size of the best/worst shortlists")
}

func runChampions(cmd *cobra.Command, args []string) error {
	_, _, matches, err := loadFiltered()
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found for the given filters.")
		return nil
	}

	rollups := aggregator.ChampionStats(matches)
	report.PrintChampionTable(os.Stdout, rollups)
	report.PrintChampionHighlights(os.Stdout,
		aggregator.BestChampions(rollups, championsTopN),
		aggregator.WorstChampions(rollups, championsTopN),
		aggregator.MostPlayed(rollups, 5),
	)
	return nil
}
