package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/redgreenblue444/lol-dashboard/internal/config"
	"github.com/redgreenblue444/lol-dashboard/internal/dataset"
	"github.com/redgreenblue444/lol-dashboard/internal/enrich"
	"github.com/redgreenblue444/lol-dashboard/internal/filter"
	"github.com/redgreenblue444/lol-dashboard/internal/loader"
	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// dateLayout is the on-flag date format, matching the dataset's full_date.
const dateLayout = "2006-01-02"

var (
	cfgPath      string
	playerID     string
	fromDate     string
	toDate       string
	lastN        int
	queueKey     int
	championName string
)

var rootCmd = &cobra.Command{
	Use:   "loldash",
	Short: "League match history analytics",
	Long: `Analyze exported League of Legends match datasets: summaries,
champion records, performance trends, item and rune builds, and
per-match scoreboards with accolade badges.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (default "+config.DefaultPath+")")
	pf.StringVar(&playerID, "player", "", "player id whose dataset to analyze")
	pf.StringVar(&fromDate, "from", "", "start date (YYYY-MM-DD), requires --to")
	pf.StringVar(&toDate, "to", "", "end date (YYYY-MM-DD, inclusive), requires --from")
	pf.IntVar(&lastN, "last", 0, "only the N most recent matches")
	pf.IntVar(&queueKey, "queue", 0, "only matches in this queue key (e.g. 420)")
	pf.StringVar(&championName, "champion", "", "only matches on this champion")

	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(championsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(buildsCmd)
	rootCmd.AddCommand(habitsCmd)
	rootCmd.AddCommand(playersCmd)
}

// loadSnapshot loads the configuration and the selected player's dataset.
// Datasets are loaded one player at a time because match keys are only
// unique within a single player's export.
func loadSnapshot() (*config.Config, *dataset.Snapshot, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}

	id := playerID
	if id == "" {
		id = cfg.Defaults.Player
	}
	if id == "" {
		id = cfg.Players[0].ID
	}
	player, ok := cfg.Player(id)
	if !ok {
		return nil, nil, fmt.Errorf("unknown player %q, run 'loldash players' to list accounts", id)
	}

	snap, err := loader.Load(cfg.DataDir, []model.Player{player})
	if err != nil {
		return nil, nil, err
	}
	return cfg, snap, nil
}

// loadFiltered additionally enriches the snapshot and applies the shared
// filter flags.
func loadFiltered() (*config.Config, *dataset.Snapshot, []model.EnrichedMatch, error) {
	cfg, snap, err := loadSnapshot()
	if err != nil {
		return nil, nil, nil, err
	}

	criteria, err := buildCriteria(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	matches := filter.Apply(enrich.Matches(snap), criteria)
	return cfg, snap, matches, nil
}

func buildCriteria(cfg *config.Config) (filter.Criteria, error) {
	c := filter.Criteria{
		Last:     lastN,
		QueueKey: queueKey,
		Champion: championName,
	}
	if c.Last == 0 {
		c.Last = cfg.Defaults.Last
	}
	if c.QueueKey == 0 {
		c.QueueKey = cfg.Defaults.QueueKey
	}

	if (fromDate == "") != (toDate == "") {
		return filter.Criteria{}, errors.New("--from and --to must be given together")
	}
	if fromDate != "" {
		start, err := time.Parse(dateLayout, fromDate)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("bad --from date: %w", err)
		}
		end, err := time.Parse(dateLayout, toDate)
		if err != nil {
			return filter.Criteria{}, fmt.Errorf("bad --to date: %w", err)
		}
		if end.Before(start) {
			return filter.Criteria{}, errors.New("--to is before --from")
		}
		c.Start, c.End = start, end
	}
	return c, nil
}
