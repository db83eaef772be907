package aggregator

import (
	"fmt"
	"sort"
	"time"

	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// Granularity selects the calendar unit matches are grouped by.
type Granularity string

const (
	Daily     Granularity = "daily"
	Weekly    Granularity = "weekly"
	Monthly   Granularity = "monthly"
	Quarterly Granularity = "quarterly"
	Yearly    Granularity = "yearly"
	// Individual skips bucketing entirely; callers get the raw matches back.
	Individual Granularity = "individual"
)

// ParseGranularity validates a user-supplied granularity string.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(s); g {
	case Daily, Weekly, Monthly, Quarterly, Yearly, Individual:
		return g, nil
	}
	return "", fmt.Errorf("unknown bucket granularity %q", s)
}

// Bucket is one calendar period's aggregate plus the matches that fell in it.
type Bucket struct {
	Key       string
	Timestamp int64 // first (oldest) match in the bucket

	Games   int
	Wins    int
	WinRate float64 // percent, 1 decimal

	AvgKDA        float64 // 2 decimals
	AvgKills      float64 // 1 decimal
	AvgDeaths     float64
	AvgAssists    float64
	AvgKP         float64 // percent, 1 decimal
	AvgCSPerMin   float64 // 1 decimal
	AvgGoldPerMin float64 // 0 decimals
	AvgVision     float64 // 0 decimals

	Matches []model.EnrichedMatch
}

// ByTimeBucket groups matches into calendar buckets keyed per granularity in
// UTC. Buckets come back in chronological order; each bucket keeps its
// constituent matches sorted oldest first and takes the oldest match's
// timestamp as its own.
//
// Individual granularity returns one single-match bucket per game instead.
func ByTimeBucket(matches []model.EnrichedMatch, g Granularity) []Bucket {
	asc := make([]model.EnrichedMatch, len(matches))
	copy(asc, matches)
	sort.SliceStable(asc, func(i, j int) bool {
		return asc[i].Timestamp < asc[j].Timestamp
	})

	if g == Individual {
		buckets := make([]Bucket, 0, len(asc))
		for _, m := range asc {
			buckets = append(buckets, finishBucket(Bucket{
				Key:       time.UnixMilli(m.Timestamp).UTC().Format("2006-01-02 15:04"),
				Timestamp: m.Timestamp,
				Matches:   []model.EnrichedMatch{m},
			}))
		}
		return buckets
	}

	index := make(map[string]int)
	var buckets []Bucket
	for _, m := range asc {
		key := bucketKey(m.Timestamp, g)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, Bucket{Key: key, Timestamp: m.Timestamp})
		}
		buckets[i].Matches = append(buckets[i].Matches, m)
	}

	for i := range buckets {
		buckets[i] = finishBucket(buckets[i])
	}
	return buckets
}

func finishBucket(b Bucket) Bucket {
	var kda, kills, deaths, assists, kp, cs, gold, vision float64
	for _, m := range b.Matches {
		b.Games++
		if m.Win {
			b.Wins++
		}
		kda += m.KDA
		kills += float64(m.Kills)
		deaths += float64(m.Deaths)
		assists += float64(m.Assists)
		kp += m.KillParticipation
		cs += m.CSPerMinute
		gold += m.GoldPerMinute
		vision += float64(m.VisionScore)
	}

	n := float64(b.Games)
	b.WinRate = round1(float64(b.Wins) / n * 100)
	b.AvgKDA = round2(kda / n)
	b.AvgKills = round1(kills / n)
	b.AvgDeaths = round1(deaths / n)
	b.AvgAssists = round1(assists / n)
	b.AvgKP = round1(kp / n * 100)
	b.AvgCSPerMin = round1(cs / n)
	b.AvgGoldPerMin = round0(gold / n)
	b.AvgVision = round0(vision / n)
	return b
}

// bucketKey maps a timestamp to its calendar bucket label. Weekly buckets are
// keyed by the date of the Sunday that starts the week.
func bucketKey(tsMillis int64, g Granularity) string {
	t := time.UnixMilli(tsMillis).UTC()
	switch g {
	case Daily:
		return t.Format("2006-01-02")
	case Weekly:
		sunday := t.AddDate(0, 0, -int(t.Weekday()))
		return sunday.Format("2006-01-02")
	case Monthly:
		return t.Format("2006-01")
	case Quarterly:
		quarter := (int(t.Month())-1)/3 + 1
		return fmt.Sprintf("%d-Q%d", t.Year(), quarter)
	case Yearly:
		return t.Format("2006")
	}
	return t.Format("2006-01-02")
}
