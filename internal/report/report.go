package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/redgreenblue444/lol-dashboard/internal/aggregator"
	"github.com/redgreenblue444/lol-dashboard/internal/badge"
	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func outcome(win bool) string {
	if win {
		return "W"
	}
	return "L"
}

// PrintSummary prints the overview card: record, averages, streaks,
// multi-kill totals and any derived insights.
func PrintSummary(w io.Writer, s aggregator.Summary, st aggregator.Streaks, mk aggregator.MultiKillTotals, insights []string) {
	fmt.Fprintf(w, "\nGames: %d  |  Record: %dW – %dL  |  Win rate: %.1f%%  |  Current streak: %s\n\n",
		s.TotalGames, s.Wins, s.Losses, s.WinRate, st.Current())

	table := newTable(w)
	table.Header("AVG K", "AVG D", "AVG A", "KDA", "CS/MIN", "GOLD/MIN", "DMG/MIN", "VISION")
	table.Append(
		fmt.Sprintf("%.1f", s.AvgKills),
		fmt.Sprintf("%.1f", s.AvgDeaths),
		fmt.Sprintf("%.1f", s.AvgAssists),
		fmt.Sprintf("%.2f", s.AvgKDA),
		fmt.Sprintf("%.1f", s.AvgCSPerMin),
		fmt.Sprintf("%.0f", s.AvgGoldPerMin),
		fmt.Sprintf("%.0f", s.AvgDamagePerMin),
		fmt.Sprintf("%.1f", s.AvgVision),
	)
	table.Render()

	fmt.Fprintf(w, "\nLongest win streak: %d  |  Longest loss streak: %d\n", st.LongestWin, st.LongestLoss)
	fmt.Fprintf(w, "Multi-kills: %d double  |  %d triple  |  %d quadra  |  %d penta\n",
		mk.Double, mk.Triple, mk.Quadra, mk.Penta)

	if len(insights) > 0 {
		fmt.Fprintln(w, "\nInsights:")
		for _, line := range insights {
			fmt.Fprintf(w, "  * %s\n", line)
		}
	}
	fmt.Fprintln(w)
}

// PrintChampionTable prints the per-champion rollup table.
func PrintChampionTable(w io.Writer, rollups []aggregator.ChampionRollup) {
	table := newTable(w)
	table.Header("CHAMPION", "GAMES", "W", "L", "WIN%", "KDA", "K", "D", "A", "CS/MIN", "GOLD/MIN", "DMG/MIN")

	for _, r := range rollups {
		table.Append(
			r.Name,
			strconv.Itoa(r.Games),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Games-r.Wins),
			fmt.Sprintf("%.1f%%", r.WinRate),
			fmt.Sprintf("%.2f", r.AvgKDA),
			fmt.Sprintf("%.1f", r.AvgKills),
			fmt.Sprintf("%.1f", r.AvgDeaths),
			fmt.Sprintf("%.1f", r.AvgAssists),
			fmt.Sprintf("%.1f", r.AvgCS),
			fmt.Sprintf("%.0f", r.AvgGold),
			fmt.Sprintf("%.0f", r.AvgDamage),
		)
	}
	table.Render()
}

// PrintChampionHighlights prints best / worst / most played shortlists under
// the main champion table.
func PrintChampionHighlights(w io.Writer, best, worst, most []aggregator.ChampionRollup) {
	if len(best) > 0 {
		fmt.Fprintln(w, "\nBest champions (min 3 games):")
		for _, r := range best {
			fmt.Fprintf(w, "  * %s — %.1f%% over %d games\n", r.Name, r.WinRate, r.Games)
		}
	}
	if len(worst) > 0 {
		fmt.Fprintln(w, "\nWorst champions (min 3 games):")
		for _, r := range worst {
			fmt.Fprintf(w, "  * %s — %.1f%% over %d games\n", r.Name, r.WinRate, r.Games)
		}
	}
	if len(most) > 0 {
		fmt.Fprintln(w, "\nMost played:")
		for _, r := range most {
			fmt.Fprintf(w, "  * %s — %d games\n", r.Name, r.Games)
		}
	}
	fmt.Fprintln(w)
}

// PrintHistoryTable prints one row per match, most recent first.
func PrintHistoryTable(w io.Writer, matches []model.EnrichedMatch) {
	table := newTable(w)
	table.Header(" ", "KEY", "DATE", "CHAMPION", "QUEUE", "K", "D", "A", "KDA", "CS/MIN", "GOLD/MIN", "VISION", "KP%")

	for _, m := range matches {
		table.Append(
			outcome(m.Win),
			strconv.Itoa(m.MatchKey),
			m.Date,
			m.ChampionName,
			m.QueueName,
			strconv.Itoa(m.Kills),
			strconv.Itoa(m.Deaths),
			strconv.Itoa(m.Assists),
			fmt.Sprintf("%.2f", m.KDA),
			fmt.Sprintf("%.1f", m.CSPerMinute),
			fmt.Sprintf("%.0f", m.GoldPerMinute),
			strconv.Itoa(m.VisionScore),
			fmt.Sprintf("%.0f%%", m.KillParticipation*100),
		)
	}
	table.Render()
}

// PrintScoreboard prints the full ten-player roster of one match, blue team
// first, with each participant's top badges. The tracked player's row is
// marked with ">".
func PrintScoreboard(w io.Writer, meta model.MatchMeta, roster []model.Participant, topN int) {
	fmt.Fprintf(w, "\nMatch: %s  |  Duration: %dm%02ds  |  Patch: %s\n\n",
		meta.MatchID, meta.GameDurationSeconds/60, meta.GameDurationSeconds%60, meta.GameVersion)

	table := newTable(w)
	table.Header(" ", "TEAM", "PLAYER", "CHAMPION", "ROLE", "K", "D", "A", "KDA", "CS", "GOLD", "DMG", "VISION", "BADGES")

	for i := range roster {
		p := &roster[i]
		marker := " "
		if p.IsPlayer {
			marker = ">"
		}

		earned := badge.Evaluate(p, roster)
		top := badge.TopBadges(earned, topN)
		names := make([]string, len(top))
		for j, b := range top {
			names[j] = b.Icon + " " + b.Name
		}

		table.Append(
			marker,
			p.TeamID.String(),
			p.DisplayName(),
			p.ChampionName,
			string(p.TeamPosition),
			strconv.Itoa(p.Kills),
			strconv.Itoa(p.Deaths),
			strconv.Itoa(p.Assists),
			fmt.Sprintf("%.2f", p.KDA),
			strconv.Itoa(p.CSTotal),
			strconv.Itoa(p.GoldEarned),
			strconv.Itoa(p.DamageDealt),
			strconv.Itoa(p.VisionScore),
			strings.Join(names, ", "),
		)
	}
	table.Render()
}

// PrintTrendTable prints per-bucket performance over time.
func PrintTrendTable(w io.Writer, buckets []aggregator.Bucket) {
	table := newTable(w)
	table.Header("PERIOD", "GAMES", "W", "L", "WIN%", "KDA", "K", "D", "A", "KP%", "CS/MIN", "GOLD/MIN", "VISION")

	for _, b := range buckets {
		table.Append(
			b.Key,
			strconv.Itoa(b.Games),
			strconv.Itoa(b.Wins),
			strconv.Itoa(b.Games-b.Wins),
			fmt.Sprintf("%.1f%%", b.WinRate),
			fmt.Sprintf("%.2f", b.AvgKDA),
			fmt.Sprintf("%.1f", b.AvgKills),
			fmt.Sprintf("%.1f", b.AvgDeaths),
			fmt.Sprintf("%.1f", b.AvgAssists),
			fmt.Sprintf("%.1f%%", b.AvgKP),
			fmt.Sprintf("%.1f", b.AvgCSPerMin),
			fmt.Sprintf("%.0f", b.AvgGoldPerMin),
			fmt.Sprintf("%.0f", b.AvgVision),
		)
	}
	table.Render()
}

// PrintBuildTable prints recurring item builds. itemName resolves an item key
// to its display name; unresolved keys fall back to the raw key.
func PrintBuildTable(w io.Writer, builds []aggregator.ItemBuild, itemName func(int) string) {
	table := newTable(w)
	table.Header("ITEMS", "SAMPLE", "GAMES", "W", "WIN%")

	for _, b := range builds {
		names := make([]string, len(b.Items))
		for i, it := range b.Items {
			name := itemName(it)
			if name == "" {
				name = strconv.Itoa(it)
			}
			names[i] = name
		}
		table.Append(
			strings.Join(names, ", "),
			b.Champion,
			strconv.Itoa(b.Games),
			strconv.Itoa(b.Wins),
			fmt.Sprintf("%.1f%%", b.WinRate),
		)
	}
	table.Render()
}

// PrintRuneTable prints recurring rune setups.
func PrintRuneTable(w io.Writer, setups []aggregator.RuneSetup) {
	table := newTable(w)
	table.Header("KEYSTONE", "PRIMARY", "SECONDARY", "GAMES", "W", "WIN%")

	for _, s := range setups {
		table.Append(
			s.Keystone,
			s.Primary,
			s.Secondary,
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			fmt.Sprintf("%.1f%%", s.WinRate),
		)
	}
	table.Render()
}

// PrintHabitTables prints the day-of-week and hour-of-day distributions.
// Hours with no games are omitted to keep the clock table readable.
func PrintHabitTables(w io.Writer, days []aggregator.DaySlot, hours []aggregator.HourSlot) {
	table := newTable(w)
	table.Header("DAY", "GAMES", "W", "WIN%")
	for _, d := range days {
		winRate := "—"
		if d.Games > 0 {
			winRate = fmt.Sprintf("%.1f%%", d.WinRate)
		}
		table.Append(d.Day, strconv.Itoa(d.Games), strconv.Itoa(d.Wins), winRate)
	}
	table.Render()

	fmt.Fprintln(w)

	table = newTable(w)
	table.Header("HOUR", "GAMES", "W", "WIN%")
	for _, h := range hours {
		if h.Games == 0 {
			continue
		}
		table.Append(
			fmt.Sprintf("%02d:00", h.Hour),
			strconv.Itoa(h.Games),
			strconv.Itoa(h.Wins),
			fmt.Sprintf("%.1f%%", h.WinRate),
		)
	}
	table.Render()
}

// PrintPlayers lists the configured player accounts.
func PrintPlayers(w io.Writer, players []model.Player) {
	table := newTable(w)
	table.Header("ID", "NAME")
	for _, p := range players {
		table.Append(p.ID, p.DisplayName)
	}
	table.Render()
}
