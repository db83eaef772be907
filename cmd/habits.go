package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redgreenblue444/lol-dashboard/internal/aggregator"
	"github.com/redgreenblue444/lol-dashboard/internal/report"
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Show when you play and how it goes",
	Long: `Display the filtered match set distributed over weekdays and over the
hours of the day, with per-slot win rates.`,
	Args: cobra.NoArgs,
	RunE: runHabits,
}

func runHabits(cmd *cobra.Command, args []string) error {
	_, _, matches, err := loadFiltered()
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found for the given filters.")
		return nil
	}

	days := aggregator.ByDayOfWeek(matches)
	hours := aggregator.ByHourOfDay(matches)
	report.PrintHabitTables(os.Stdout, days, hours)
	return nil
}
