package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/redgreenblue444/lol-dashboard/internal/aggregator"
	"github.com/redgreenblue444/lol-dashboard/internal/report"
)

var (
	buildsTopItems int
	buildsTopRunes int
)

var buildsCmd = &cobra.Command{
	Use:   "builds",
	Short: "Show recurring item builds and rune setups",
	Long: `Group the filtered match set by completed item combination and by rune
setup, and display the most common of each with their win rates.
Combine with --champion to inspect one champion's builds.`,
	Args: cobra.NoArgs,
	RunE: runBuilds,
}

func init() {
	buildsCmd.Flags().IntVar(&buildsTopItems, "top-items", 5, "item builds to show")
	buildsCmd.Flags().IntVar(&buildsTopRunes, "top-runes", 6, "rune setups to show")
}

func runBuilds(cmd *cobra.Command, args []string) error {
	_, snap, matches, err := loadFiltered()
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No matches found for the given filters.")
		return nil
	}

	builds := aggregator.ItemBuilds(matches, buildsTopItems)
	if len(builds) == 0 {
		fmt.Fprintln(os.Stdout, "No completed builds in the filtered set (3+ items needed).")
	} else {
		fmt.Fprintln(os.Stdout, "\nMost common item builds:")
		report.PrintBuildTable(os.Stdout, builds, func(key int) string {
			it, _ := snap.Item(key)
			return it.Name
		})
	}

	setups := aggregator.RuneSetups(matches, buildsTopRunes)
	if len(setups) > 0 {
		fmt.Fprintln(os.Stdout, "\nMost common rune setups:")
		report.PrintRuneTable(os.Stdout, setups)
	}
	return nil
}
