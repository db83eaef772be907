// Package enrich joins fact rows against the dimension tables to produce the
// self-contained match records the rest of the pipeline consumes.
package enrich

import (
	"math"
	"sort"

	"github.com/redgreenblue444/lol-dashboard/internal/dataset"
	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// unknownStyle is the fallback rune style name when the rune dimension lookup
// misses or the page carries no style.
const unknownStyle = "Unknown"

// Matches joins every fact row with its champion, date, queue, metadata and
// rune dimensions plus the resolved item list, recomputes KDA, and returns
// the enriched set sorted descending by timestamp (most recent first). That
// order is canonical: recency filtering and streak detection depend on it.
//
// Missing dimension references are not errors; the affected derived fields
// stay at their zero values and the rest of the record is still produced.
func Matches(snap *dataset.Snapshot) []model.EnrichedMatch {
	itemsByMatch := resolveItems(snap.BridgeItems)

	enriched := make([]model.EnrichedMatch, 0, len(snap.Facts))
	for _, fact := range snap.Facts {
		m := model.EnrichedMatch{FactMatch: fact}

		// Corrected KDA always wins over whatever the fact row carried.
		m.KDA = RecomputeKDA(fact.Kills, fact.Deaths, fact.Assists)

		if champ, ok := snap.Champion(fact.ChampionKey); ok {
			m.ChampionName = champ.Name
			m.ChampionID = champ.ID
			m.Role = champ.Role
		}
		if queue, ok := snap.Queue(fact.QueueKey); ok {
			m.QueueName = queue.Name
			m.IsRanked = queue.IsRanked
		}
		if date, ok := snap.Date(fact.DateKey); ok {
			m.Date = date.FullDate
			m.DayOfWeek = date.DayOfWeek
			m.IsWeekend = date.IsWeekend
			m.HourOfDay = date.HourOfDay
		}
		if meta, ok := snap.Meta(fact.MatchKey); ok {
			m.MatchID = meta.MatchID
			m.Timestamp = meta.Timestamp
		}

		primary, secondary := unknownStyle, unknownStyle
		if runes, ok := snap.Rune(fact.RuneKey); ok {
			m.Runes = runes
			if runes.PrimaryStyleName != "" {
				primary = runes.PrimaryStyleName
			}
			if runes.SubStyleName != "" {
				secondary = runes.SubStyleName
			}
		}
		m.RunePrimary = primary
		m.RuneSecondary = secondary
		m.RuneCombo = primary + " / " + secondary

		m.Items = itemsByMatch[fact.MatchKey]

		enriched = append(enriched, m)
	}

	sort.SliceStable(enriched, func(i, j int) bool {
		return enriched[i].Timestamp > enriched[j].Timestamp
	})
	return enriched
}

// RecomputeKDA returns (kills+assists)/deaths with deaths floored at 1,
// rounded to two decimals.
func RecomputeKDA(kills, deaths, assists int) float64 {
	d := deaths
	if d == 0 {
		d = 1
	}
	return math.Round(float64(kills+assists)/float64(d)*100) / 100
}

// resolveItems groups the bridge rows by match key, orders each group by item
// position, and projects to item keys. Duplicates are kept as-is.
func resolveItems(bridge []model.BridgeItem) map[int][]int {
	byMatch := make(map[int][]model.BridgeItem)
	for _, b := range bridge {
		byMatch[b.MatchKey] = append(byMatch[b.MatchKey], b)
	}

	items := make(map[int][]int, len(byMatch))
	for key, rows := range byMatch {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].ItemPosition < rows[j].ItemPosition
		})
		keys := make([]int, len(rows))
		for i, r := range rows {
			keys[i] = r.ItemKey
		}
		items[key] = keys
	}
	return items
}
