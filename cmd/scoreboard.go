package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/redgreenblue444/lol-dashboard/internal/badge"
	"github.com/redgreenblue444/lol-dashboard/internal/report"
)

var scoreboardBadges int

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard <match-key>",
	Short: "Show the full ten-player scoreboard for one match",
	Long: `Display every participant of a single match with their line and earned
accolade badges. Match keys come from 'loldash history'.`,
	Args: cobra.ExactArgs(1),
	RunE: runScoreboard,
}

func init() {
	scoreboardCmd.Flags().IntVar(&scoreboardBadges, "badges", badge.DefaultTopN, "badges shown per participant")
}

func runScoreboard(cmd *cobra.Command, args []string) error {
	matchKey, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("match key must be a number, got %q", args[0])
	}

	_, snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	roster := snap.Roster(matchKey)
	if len(roster) == 0 {
		return fmt.Errorf("no participants recorded for match key %d", matchKey)
	}
	meta, _ := snap.Meta(matchKey)

	report.PrintScoreboard(os.Stdout, meta, roster, scoreboardBadges)
	return nil
}
