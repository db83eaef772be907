package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/redgreenblue444/lol-dashboard/internal/config"
	"github.com/redgreenblue444/lol-dashboard/internal/report"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List configured player accounts",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func runPlayers(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	report.PrintPlayers(os.Stdout, cfg.Players)
	return nil
}
