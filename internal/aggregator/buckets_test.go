package aggregator

import (
	"testing"
	"time"

	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

func gameAt(win bool, at time.Time) model.EnrichedMatch {
	m := model.EnrichedMatch{}
	m.Win = win
	m.Timestamp = at.UnixMilli()
	return m
}

func TestParseGranularity(t *testing.T) {
	if _, err := ParseGranularity("weekly"); err != nil {
		t.Fatalf("weekly should parse: %v", err)
	}
	if _, err := ParseGranularity("fortnightly"); err == nil {
		t.Fatal("expected an error for an unknown granularity")
	}
}

func TestByTimeBucket_MonthlyAverages(t *testing.T) {
	a := gameAt(true, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC))
	a.KDA = 2.0
	b := gameAt(false, time.Date(2025, 3, 20, 22, 0, 0, 0, time.UTC))
	b.KDA = 4.0
	c := gameAt(true, time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC))
	c.KDA = 1.0

	buckets := ByTimeBucket([]model.EnrichedMatch{c, b, a}, Monthly)

	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	march := buckets[0]
	if march.Key != "2025-03" {
		t.Fatalf("first bucket key = %q, want 2025-03 (chronological order)", march.Key)
	}
	if march.Games != 2 || march.Wins != 1 {
		t.Errorf("march record = %d games %d wins, want 2/1", march.Games, march.Wins)
	}
	if march.AvgKDA != 3.0 {
		t.Errorf("march AvgKDA = %v, want 3.0", march.AvgKDA)
	}
	if march.WinRate != 50.0 {
		t.Errorf("march WinRate = %v, want 50.0", march.WinRate)
	}
	if march.Timestamp != a.Timestamp {
		t.Errorf("bucket timestamp should be its oldest match's")
	}
	if len(march.Matches) != 2 || march.Matches[0].Timestamp != a.Timestamp {
		t.Errorf("bucket matches should be kept oldest first")
	}
	if buckets[1].Key != "2025-04" {
		t.Errorf("second bucket key = %q, want 2025-04", buckets[1].Key)
	}
}

func TestBucketKey_WeeklySundayAligned(t *testing.T) {
	// 2025-03-19 is a Wednesday; its week starts Sunday 2025-03-16.
	wednesday := time.Date(2025, 3, 19, 15, 0, 0, 0, time.UTC).UnixMilli()
	if got := bucketKey(wednesday, Weekly); got != "2025-03-16" {
		t.Errorf("weekly key = %q, want 2025-03-16", got)
	}

	// A Sunday is its own week start.
	sunday := time.Date(2025, 3, 16, 0, 30, 0, 0, time.UTC).UnixMilli()
	if got := bucketKey(sunday, Weekly); got != "2025-03-16" {
		t.Errorf("weekly key for a Sunday = %q, want 2025-03-16", got)
	}
}

func TestBucketKey_Granularities(t *testing.T) {
	ts := time.Date(2025, 8, 9, 23, 0, 0, 0, time.UTC).UnixMilli()

	cases := []struct {
		g    Granularity
		want string
	}{
		{Daily, "2025-08-09"},
		{Monthly, "2025-08"},
		{Quarterly, "2025-Q3"},
		{Yearly, "2025"},
	}
	for _, c := range cases {
		if got := bucketKey(ts, c.g); got != c.want {
			t.Errorf("%s key = %q, want %q", c.g, got, c.want)
		}
	}
}

func TestByTimeBucket_Individual(t *testing.T) {
	a := gameAt(true, time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC))
	b := gameAt(false, time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC))

	buckets := ByTimeBucket([]model.EnrichedMatch{b, a}, Individual)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want one per match", len(buckets))
	}
	if buckets[0].Timestamp != a.Timestamp || buckets[0].Games != 1 {
		t.Errorf("individual buckets should be chronological single games")
	}
}
