package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeDataset creates a minimal one-match player dataset under root/id.
func writeDataset(t *testing.T, root, id, championName string) {
	t.Helper()
	dir := filepath.Join(root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	writeFile(t, dir, "fact_matches.csv",
		"match_key,champion_key,queue_key,date_key,rune_key,kills,deaths,assists,kda,gold_earned,gold_per_minute,win,game_duration_minutes,kill_participation\n"+
			"1,1,420,20250302,7,7,2,3,5.0,12000,420.5,1,28.5,0.62\n")
	writeFile(t, dir, "dim_champion.csv",
		"champion_key,champion_id,champion_name,role,icon_url\n"+
			"1,103,"+championName+",Mage,http://example/icon.png\n")
	writeFile(t, dir, "dim_queue.csv",
		"queue_key,queue_id,queue_name,is_ranked,game_mode\n"+
			"420,420,Ranked Solo/Duo,1,CLASSIC\n")
	writeFile(t, dir, "dim_match_metadata.csv",
		"match_key,match_id,game_duration_seconds,game_version,timestamp\n"+
			"1,LA1_100,1710,15.5.1,1741000000000\n")
	writeFile(t, dir, "bridge_match_items.csv",
		"match_key,item_key,item_position\n1,3006,0\n1,3031,1\n")
	writeFile(t, dir, "bridge_match_participants.csv",
		"match_key,participant_num,summoner_name,champion_name,team_id,team_position,is_player,win,kills,deaths,assists,kda,items\n"+
			"1,1,TestPlayer,"+championName+",100,MIDDLE,1,1,7,2,3,5.0,\"[3006, 3031, 0]\"\n")
}

func TestLoad_SinglePlayer(t *testing.T) {
	root := t.TempDir()
	writeDataset(t, root, "acc1", "Ahri")

	snap, err := Load(root, []model.Player{{ID: "acc1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Facts) != 1 {
		t.Fatalf("got %d facts, want 1", len(snap.Facts))
	}
	f := snap.Facts[0]
	if f.MatchKey != 1 || f.Kills != 7 || f.Deaths != 2 || f.Assists != 3 {
		t.Errorf("fact = %+v", f)
	}
	if !f.Win {
		t.Error("win flag 1 should parse as true")
	}
	if f.GoldPerMinute != 420.5 || f.GameDurationMinutes != 28.5 || f.KillParticipation != 0.62 {
		t.Errorf("float columns = %v/%v/%v", f.GoldPerMinute, f.GameDurationMinutes, f.KillParticipation)
	}

	champ, ok := snap.Champion(1)
	if !ok || champ.Name != "Ahri" || champ.Role != "Mage" {
		t.Errorf("champion dim = %+v (ok=%v)", champ, ok)
	}
	queue, ok := snap.Queue(420)
	if !ok || !queue.IsRanked {
		t.Errorf("queue dim = %+v (ok=%v)", queue, ok)
	}
	meta, ok := snap.Meta(1)
	if !ok || meta.Timestamp != 1741000000000 {
		t.Errorf("metadata = %+v (ok=%v)", meta, ok)
	}
	if len(snap.BridgeItems) != 2 {
		t.Errorf("got %d bridge rows, want 2", len(snap.BridgeItems))
	}
}

func TestLoad_ParticipantItemsJSON(t *testing.T) {
	root := t.TempDir()
	writeDataset(t, root, "acc1", "Ahri")

	snap, err := Load(root, []model.Player{{ID: "acc1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	roster := snap.Roster(1)
	if len(roster) != 1 {
		t.Fatalf("got %d participants, want 1", len(roster))
	}
	p := roster[0]
	if p.SummonerName != "TestPlayer" || p.TeamID != model.TeamBlue || !p.IsPlayer {
		t.Errorf("participant = %+v", p)
	}
	if p.TeamPosition != model.PositionMiddle {
		t.Errorf("position = %q", p.TeamPosition)
	}
	if len(p.Items) != 3 || p.Items[0] != 3006 || p.Items[2] != 0 {
		t.Errorf("items = %v, want [3006 3031 0]", p.Items)
	}
}

func TestLoad_DimensionsMergeFirstWins(t *testing.T) {
	root := t.TempDir()
	writeDataset(t, root, "acc1", "Ahri")
	writeDataset(t, root, "acc2", "NotAhri")

	snap, err := Load(root, []model.Player{{ID: "acc1"}, {ID: "acc2"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Facts) != 2 {
		t.Errorf("facts concatenate across players, got %d", len(snap.Facts))
	}
	champ, _ := snap.Champion(1)
	if champ.Name != "Ahri" {
		t.Errorf("first player's dimension row should win, got %q", champ.Name)
	}
}

func TestLoad_MissingPlayerDirSkipped(t *testing.T) {
	root := t.TempDir()
	writeDataset(t, root, "acc1", "Ahri")

	snap, err := Load(root, []model.Player{{ID: "ghost"}, {ID: "acc1"}})
	if err != nil {
		t.Fatalf("a missing dataset directory should be skipped: %v", err)
	}
	if len(snap.Facts) != 1 {
		t.Errorf("got %d facts, want 1", len(snap.Facts))
	}
}

func TestLoad_NoFactsAnywhere(t *testing.T) {
	root := t.TempDir()
	_, err := Load(root, []model.Player{{ID: "ghost"}})
	if !errors.Is(err, ErrNoMatches) {
		t.Fatalf("err = %v, want ErrNoMatches", err)
	}
}

func TestLoad_RunePrimaryKeyFallback(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "acc1")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "fact_matches.csv",
		"match_key,champion_key,rune_primary_key,kills\n1,1,9,5\n")

	snap, err := Load(root, []model.Player{{ID: "acc1"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Facts[0].RuneKey != 9 {
		t.Errorf("RuneKey = %d, want fallback to rune_primary_key", snap.Facts[0].RuneKey)
	}
}

func TestCoerce_MissingAndMalformedCells(t *testing.T) {
	r := row{
		cols:   map[string]int{"a": 0, "b": 1, "c": 2, "missing_cell": 9},
		fields: []string{"12.0", "not-a-number", "True"},
	}
	if got := r.intCol("a"); got != 12 {
		t.Errorf("float-formatted int = %d, want 12", got)
	}
	if got := r.intCol("b"); got != 0 {
		t.Errorf("malformed int = %d, want 0", got)
	}
	if !r.boolCol("c") {
		t.Error("True should parse as true")
	}
	if got := r.strCol("missing_cell"); got != "" {
		t.Errorf("out-of-range column = %q, want empty", got)
	}
	if got := r.strCol("absent"); got != "" {
		t.Errorf("unknown column = %q, want empty", got)
	}
}
