// Package badge evaluates per-game accolades for scoreboard participants.
// Each badge is a pure predicate over one participant's line plus aggregates
// of the full ten-player roster; evaluation never depends on evaluation order.
package badge

import (
	"sort"

	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// DefaultTopN is how many badges a scoreboard row shows by default.
const DefaultTopN = 5

// gameStats holds the lobby-wide extrema and totals shared by every
// comparative predicate. Extrema comparisons use equality, so when two
// participants tie at an extremum both earn the badge.
type gameStats struct {
	maxGold, minGold     int
	maxCS                int
	maxVision, minVision int
	maxDamage            int
	maxTaken             int
	totalDamage          int
	totalTaken           int
	avgGold              float64
}

// teamStats holds the evaluated participant's own-team aggregates.
type teamStats struct {
	maxKills    int
	minGold     int
	minVision   int
	maxWards    int
	totalDamage int
}

type evalContext struct {
	p        *model.Participant
	duration float64
	game     gameStats
	team     teamStats
}

// Evaluate returns every badge the participant earned in this game, in
// catalog order. roster must contain the participant itself; with an empty
// roster no comparative badge can fire but threshold badges still can.
func Evaluate(p *model.Participant, roster []model.Participant) []Badge {
	if len(roster) == 0 {
		roster = []model.Participant{*p}
	}
	e := evalContext{
		p:        p,
		duration: p.Duration(),
		game:     computeGameStats(roster),
		team:     computeTeamStats(p.TeamID, roster),
	}

	var earned []Badge
	for _, d := range catalog {
		if d.check(&e) {
			earned = append(earned, d.Badge)
		}
	}
	return earned
}

// TopBadges orders earned badges by descending priority, breaking ties by
// catalog order, and keeps the first n. n <= 0 means DefaultTopN.
func TopBadges(earned []Badge, n int) []Badge {
	if n <= 0 {
		n = DefaultTopN
	}
	out := make([]Badge, len(earned))
	copy(out, earned)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// computeGameStats needs a non-empty roster; Evaluate guarantees that.
func computeGameStats(roster []model.Participant) gameStats {
	var s gameStats
	first := roster[0]
	s.maxGold, s.minGold = first.GoldEarned, first.GoldEarned
	s.maxCS = first.CSTotal
	s.maxVision, s.minVision = first.VisionScore, first.VisionScore
	s.maxDamage = first.DamageDealt
	s.maxTaken = first.DamageTaken

	var goldSum int
	for _, p := range roster {
		if p.GoldEarned > s.maxGold {
			s.maxGold = p.GoldEarned
		}
		if p.GoldEarned < s.minGold {
			s.minGold = p.GoldEarned
		}
		if p.CSTotal > s.maxCS {
			s.maxCS = p.CSTotal
		}
		if p.VisionScore > s.maxVision {
			s.maxVision = p.VisionScore
		}
		if p.VisionScore < s.minVision {
			s.minVision = p.VisionScore
		}
		if p.DamageDealt > s.maxDamage {
			s.maxDamage = p.DamageDealt
		}
		if p.DamageTaken > s.maxTaken {
			s.maxTaken = p.DamageTaken
		}
		s.totalDamage += p.DamageDealt
		s.totalTaken += p.DamageTaken
		goldSum += p.GoldEarned
	}
	s.avgGold = float64(goldSum) / float64(len(roster))
	return s
}

func computeTeamStats(team model.TeamID, roster []model.Participant) teamStats {
	var s teamStats
	seeded := false
	for _, p := range roster {
		if p.TeamID != team {
			continue
		}
		if !seeded {
			s.maxKills = p.Kills
			s.minGold = p.GoldEarned
			s.minVision = p.VisionScore
			s.maxWards = p.WardsPlaced
			seeded = true
		}
		if p.Kills > s.maxKills {
			s.maxKills = p.Kills
		}
		if p.GoldEarned < s.minGold {
			s.minGold = p.GoldEarned
		}
		if p.VisionScore < s.minVision {
			s.minVision = p.VisionScore
		}
		if p.WardsPlaced > s.maxWards {
			s.maxWards = p.WardsPlaced
		}
		s.totalDamage += p.DamageDealt
	}
	if !seeded {
		s.maxKills = -1
		s.minGold = -1
		s.minVision = -1
		s.maxWards = 1 << 30
	}
	return s
}
