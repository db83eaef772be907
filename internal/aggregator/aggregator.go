// Package aggregator computes view-ready statistics over a filtered match
// subset. Every function is a pure pass over the input slice; empty input
// always yields a zero-valued result rather than an error or NaN.
package aggregator

import (
	"fmt"
	"math"
	"sort"

	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// minGamesForRanking is the sample size a champion needs before its win rate
// is considered meaningful for best/worst rankings.
const minGamesForRanking = 3

// Summary holds totals and per-game averages for a match subset.
type Summary struct {
	TotalGames int
	Wins       int
	Losses     int
	WinRate    float64 // percent, 1 decimal

	AvgKills   float64 // 1 decimal
	AvgDeaths  float64
	AvgAssists float64
	AvgKDA     float64 // 2 decimals

	AvgCSPerMin     float64 // 1 decimal
	AvgVision       float64 // 1 decimal
	AvgGoldPerMin   float64 // 0 decimals
	AvgDamagePerMin float64 // 0 decimals
}

// CalculateSummary computes the summary card for a match subset.
func CalculateSummary(matches []model.EnrichedMatch) Summary {
	if len(matches) == 0 {
		return Summary{}
	}

	var s Summary
	var kills, deaths, assists int
	var kda, cs, vision, gold, damage float64
	for _, m := range matches {
		if m.Win {
			s.Wins++
		}
		kills += m.Kills
		deaths += m.Deaths
		assists += m.Assists
		kda += m.KDA
		cs += m.CSPerMinute
		vision += float64(m.VisionScore)
		gold += m.GoldPerMinute
		damage += m.DamagePerMinute
	}

	n := float64(len(matches))
	s.TotalGames = len(matches)
	s.Losses = s.TotalGames - s.Wins
	s.WinRate = round1(float64(s.Wins) / n * 100)
	s.AvgKills = round1(float64(kills) / n)
	s.AvgDeaths = round1(float64(deaths) / n)
	s.AvgAssists = round1(float64(assists) / n)
	s.AvgKDA = round2(kda / n)
	s.AvgCSPerMin = round1(cs / n)
	s.AvgVision = round1(vision / n)
	s.AvgGoldPerMin = round0(gold / n)
	s.AvgDamagePerMin = round0(damage / n)
	return s
}

// ChampionRollup accumulates one champion's record over a match subset.
type ChampionRollup struct {
	Name        string
	ChampionKey int // key of the first match seen, for icon resolution

	Games int
	Wins  int

	kills, deaths, assists int
	cs, gold, damage       float64

	WinRate    float64 // percent, 1 decimal
	AvgKDA     float64 // 2 decimals
	AvgKills   float64 // 1 decimal
	AvgDeaths  float64
	AvgAssists float64
	AvgCS      float64
	AvgGold    float64 // 0 decimals
	AvgDamage  float64 // 0 decimals
}

// ChampionStats groups the subset by resolved champion name (first-seen
// order), derives win rate and per-game averages, and returns the rollups
// sorted descending by games played.
func ChampionStats(matches []model.EnrichedMatch) []ChampionRollup {
	index := make(map[string]int)
	var rollups []ChampionRollup

	for _, m := range matches {
		i, ok := index[m.ChampionName]
		if !ok {
			i = len(rollups)
			index[m.ChampionName] = i
			rollups = append(rollups, ChampionRollup{
				Name:        m.ChampionName,
				ChampionKey: m.ChampionKey,
			})
		}
		r := &rollups[i]
		r.Games++
		if m.Win {
			r.Wins++
		}
		r.kills += m.Kills
		r.deaths += m.Deaths
		r.assists += m.Assists
		r.cs += m.CSPerMinute
		r.gold += m.GoldPerMinute
		r.damage += m.DamagePerMinute
	}

	for i := range rollups {
		r := &rollups[i]
		n := float64(r.Games)
		r.WinRate = round1(float64(r.Wins) / n * 100)
		d := r.deaths
		if d == 0 {
			d = 1
		}
		r.AvgKDA = round2(float64(r.kills+r.assists) / float64(d))
		r.AvgKills = round1(float64(r.kills) / n)
		r.AvgDeaths = round1(float64(r.deaths) / n)
		r.AvgAssists = round1(float64(r.assists) / n)
		r.AvgCS = round1(r.cs / n)
		r.AvgGold = round0(r.gold / n)
		r.AvgDamage = round0(r.damage / n)
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		return rollups[i].Games > rollups[j].Games
	})
	return rollups
}

// BestChampions returns the top n rollups by win rate among champions with
// at least minGamesForRanking games.
func BestChampions(rollups []ChampionRollup, n int) []ChampionRollup {
	return rankByWinRate(rollups, n, true)
}

// WorstChampions returns the bottom n rollups by win rate among champions
// with at least minGamesForRanking games.
func WorstChampions(rollups []ChampionRollup, n int) []ChampionRollup {
	return rankByWinRate(rollups, n, false)
}

// MostPlayed returns the top n rollups by games played.
func MostPlayed(rollups []ChampionRollup, n int) []ChampionRollup {
	if n > len(rollups) {
		n = len(rollups)
	}
	out := make([]ChampionRollup, n)
	copy(out, rollups[:n])
	return out
}

func rankByWinRate(rollups []ChampionRollup, n int, best bool) []ChampionRollup {
	var eligible []ChampionRollup
	for _, r := range rollups {
		if r.Games >= minGamesForRanking {
			eligible = append(eligible, r)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		if best {
			return eligible[i].WinRate > eligible[j].WinRate
		}
		return eligible[i].WinRate < eligible[j].WinRate
	})
	if n < len(eligible) {
		eligible = eligible[:n]
	}
	return eligible
}

// Streaks reports the current run of identical outcomes plus the longest win
// and loss runs in the subset.
type Streaks struct {
	CurrentLength int
	CurrentWin    bool
	LongestWin    int
	LongestLoss   int
}

// Current renders the current streak as display text, e.g. "3 game win streak".
func (s Streaks) Current() string {
	if s.CurrentLength == 0 {
		return "None"
	}
	outcome := "loss"
	if s.CurrentWin {
		outcome = "win"
	}
	return fmt.Sprintf("%d game %s streak", s.CurrentLength, outcome)
}

// DetectStreaks scans matches in most-recent-first order. The current streak
// is the leading run sharing the first match's outcome; the longest streaks
// are tracked with per-outcome running counters that reset on a change.
func DetectStreaks(matches []model.EnrichedMatch) Streaks {
	if len(matches) == 0 {
		return Streaks{}
	}

	s := Streaks{CurrentWin: matches[0].Win}
	for _, m := range matches {
		if m.Win != s.CurrentWin {
			break
		}
		s.CurrentLength++
	}

	var winRun, lossRun int
	for _, m := range matches {
		if m.Win {
			winRun++
			lossRun = 0
			if winRun > s.LongestWin {
				s.LongestWin = winRun
			}
		} else {
			lossRun++
			winRun = 0
			if lossRun > s.LongestLoss {
				s.LongestLoss = lossRun
			}
		}
	}
	return s
}

// MultiKillTotals sums the multi-kill counters over a subset.
type MultiKillTotals struct {
	Double int
	Triple int
	Quadra int
	Penta  int
}

// CountMultiKills totals double through penta kills for the subset.
func CountMultiKills(matches []model.EnrichedMatch) MultiKillTotals {
	var t MultiKillTotals
	for _, m := range matches {
		t.Double += m.DoubleKills
		t.Triple += m.TripleKills
		t.Quadra += m.QuadraKills
		t.Penta += m.PentaKills
	}
	return t
}

// Insights derives short threshold-based observations from a summary.
// An empty slice means there is not enough signal to say anything.
func Insights(s Summary) []string {
	if s.TotalGames == 0 {
		return nil
	}
	var out []string
	switch {
	case s.WinRate >= 55:
		out = append(out, fmt.Sprintf("Strong win rate of %.1f%%", s.WinRate))
	case s.WinRate <= 45:
		out = append(out, fmt.Sprintf("Win rate needs improvement (%.1f%%)", s.WinRate))
	}
	if s.AvgKDA >= 3 {
		out = append(out, fmt.Sprintf("Excellent KDA of %.2f", s.AvgKDA))
	}
	switch {
	case s.AvgCSPerMin >= 7:
		out = append(out, fmt.Sprintf("Great farming (%.1f CS/min)", s.AvgCSPerMin))
	case s.AvgCSPerMin < 5:
		out = append(out, fmt.Sprintf("Focus on CS (%.1f CS/min)", s.AvgCSPerMin))
	}
	if s.AvgVision >= 40 {
		out = append(out, fmt.Sprintf("Excellent vision control (%.1f avg)", s.AvgVision))
	}
	return out
}

// Rounding helpers matching the fixed display precision of each stat.

func round0(v float64) float64 { return math.Round(v) }

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
