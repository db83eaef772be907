// Package filter derives working subsets of the enriched match set. Every
// view recomputes from the full set through here, so filtering must stay pure
// and must never reorder its input.
package filter

import (
	"time"

	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// Criteria describes the composable filter chain. The zero value is a no-op
// on every stage: Apply returns the input set unchanged in content and order.
type Criteria struct {
	// Start and End bound the match timestamp to [Start, End+24h). Both must
	// be set for the date stage to apply; End is inclusive of its whole day.
	Start time.Time
	End   time.Time

	// Last keeps only the N most recent matches of the date-bounded set.
	// Zero means no limit.
	Last int

	// QueueKey restricts to one queue dimension key. Zero means all queues.
	QueueKey int

	// Champion restricts to an exact resolved champion name. Empty means all.
	Champion string
}

// Apply runs the filter stages in their fixed order: date range first, then
// recency limit, then queue, then champion. The order is load-bearing:
// limiting recency after date-bounding selects the newest N games within the
// window, which is not the same as windowing the newest N games.
// The input slice is never mutated.
func Apply(matches []model.EnrichedMatch, c Criteria) []model.EnrichedMatch {
	out := make([]model.EnrichedMatch, 0, len(matches))
	out = append(out, matches...)

	if !c.Start.IsZero() && !c.End.IsZero() {
		startMs := c.Start.UnixMilli()
		endMs := c.End.Add(24 * time.Hour).UnixMilli()
		kept := out[:0]
		for _, m := range out {
			if m.Timestamp >= startMs && m.Timestamp < endMs {
				kept = append(kept, m)
			}
		}
		out = kept
	}

	if c.Last > 0 && c.Last < len(out) {
		out = out[:c.Last]
	}

	if c.QueueKey != 0 {
		kept := out[:0]
		for _, m := range out {
			if m.QueueKey == c.QueueKey {
				kept = append(kept, m)
			}
		}
		out = kept
	}

	if c.Champion != "" {
		kept := out[:0]
		for _, m := range out {
			if m.ChampionName == c.Champion {
				kept = append(kept, m)
			}
		}
		out = kept
	}

	return out
}
