package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redgreenblue444/lol-dashboard/internal/report"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List matches, most recent first",
	Long: `Display one row per match in the filtered set. The KEY column is the
match key accepted by 'loldash scoreboard'.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum rows to show, 0 for all")
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, _, matches, err := loadFiltered()
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found for the given filters.")
		return nil
	}

	if historyLimit > 0 && historyLimit < len(matches) {
		matches = matches[:historyLimit]
	}
	report.PrintHistoryTable(os.Stdout, matches)
	return nil
}
