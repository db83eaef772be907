package enrich

import (
	"testing"

	"github.com/redgreenblue444/lol-dashboard/internal/dataset"
	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// fixture builds a snapshot with one fully-dimensioned match and one match
// whose dimension keys resolve to nothing.
func fixture() *dataset.Snapshot {
	snap := dataset.New()

	snap.Champions[1] = model.Champion{Key: 1, ID: 103, Name: "Ahri", Role: "Mage"}
	snap.Queues[420] = model.Queue{Key: 420, Name: "Ranked Solo/Duo", IsRanked: true}
	snap.Dates[20250302] = model.DateInfo{
		Key: 20250302, FullDate: "2025-03-02", DayOfWeek: "Sunday", IsWeekend: true, HourOfDay: 21,
	}
	snap.Runes[7] = model.RunePage{
		Key: 7, PrimaryStyleName: "Domination", SubStyleName: "Sorcery",
		Keystone: model.RuneSlot{ID: 8112, Name: "Electrocute"},
	}
	snap.Metadata[1] = model.MatchMeta{MatchKey: 1, MatchID: "LA1_100", Timestamp: 2000}
	snap.Metadata[2] = model.MatchMeta{MatchKey: 2, MatchID: "LA1_200", Timestamp: 5000}

	snap.BridgeItems = []model.BridgeItem{
		{MatchKey: 1, ItemKey: 3094, ItemPosition: 2},
		{MatchKey: 1, ItemKey: 3006, ItemPosition: 0},
		{MatchKey: 1, ItemKey: 3031, ItemPosition: 1},
	}

	full := model.FactMatch{
		MatchKey: 1, ChampionKey: 1, QueueKey: 420, DateKey: 20250302, RuneKey: 7,
		Kills: 7, Deaths: 2, Assists: 3,
		KDA:   99.0, // stale source value, must be recomputed
	}
	bare := model.FactMatch{MatchKey: 2, ChampionKey: 999, QueueKey: 999, DateKey: 999, RuneKey: 999}

	snap.Facts = []model.FactMatch{full, bare}
	return snap
}

func TestMatches_JoinsAndOrder(t *testing.T) {
	enriched := Matches(fixture())

	if len(enriched) != 2 {
		t.Fatalf("got %d matches, want 2", len(enriched))
	}
	// Most recent (timestamp 5000) first.
	if enriched[0].MatchKey != 2 || enriched[1].MatchKey != 1 {
		t.Fatalf("order = [%d %d], want [2 1]", enriched[0].MatchKey, enriched[1].MatchKey)
	}

	m := enriched[1]
	if m.ChampionName != "Ahri" || m.Role != "Mage" {
		t.Errorf("champion join failed: %+v", m)
	}
	if m.QueueName != "Ranked Solo/Duo" || !m.IsRanked {
		t.Errorf("queue join failed: %+v", m)
	}
	if m.Date != "2025-03-02" || m.DayOfWeek != "Sunday" || !m.IsWeekend || m.HourOfDay != 21 {
		t.Errorf("date join failed: %+v", m)
	}
	if m.MatchID != "LA1_100" || m.Timestamp != 2000 {
		t.Errorf("metadata join failed: %+v", m)
	}
	if m.RuneCombo != "Domination / Sorcery" {
		t.Errorf("RuneCombo = %q", m.RuneCombo)
	}
}

func TestMatches_RecomputesKDA(t *testing.T) {
	enriched := Matches(fixture())
	m := enriched[1]
	if m.KDA != 5.0 {
		t.Errorf("KDA = %v, want 5.0 (source value must not survive)", m.KDA)
	}
}

func TestMatches_MissingDimensionsDegrade(t *testing.T) {
	enriched := Matches(fixture())
	bare := enriched[0]

	if bare.ChampionName != "" || bare.QueueName != "" || bare.Date != "" {
		t.Errorf("missing dimensions should leave zero values: %+v", bare)
	}
	if bare.RuneCombo != "Unknown / Unknown" {
		t.Errorf("RuneCombo = %q, want Unknown / Unknown", bare.RuneCombo)
	}
}

func TestMatches_ItemsInBuildOrder(t *testing.T) {
	enriched := Matches(fixture())
	m := enriched[1]

	want := []int{3006, 3031, 3094}
	if len(m.Items) != 3 {
		t.Fatalf("items = %v, want %v", m.Items, want)
	}
	for i := range want {
		if m.Items[i] != want[i] {
			t.Fatalf("items = %v, want %v (position order)", m.Items, want)
		}
	}
}

func TestRecomputeKDA_DeathsFloored(t *testing.T) {
	if got := RecomputeKDA(3, 0, 4); got != 7.0 {
		t.Errorf("deathless KDA = %v, want 7.0", got)
	}
	if got := RecomputeKDA(5, 3, 2); got != 2.33 {
		t.Errorf("KDA = %v, want 2.33", got)
	}
}
