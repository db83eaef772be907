package badge

import (
	"testing"

	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// filler builds an unremarkable roster slot so comparative badges have
// opposition to beat.
func filler(num int, team model.TeamID) model.Participant {
	return model.Participant{
		ParticipantNum: num,
		TeamID:         team,
		TeamPosition:   model.PositionMiddle,
		Kills:          4, Deaths: 4, Assists: 4, KDA: 2.0,
		GoldEarned:  9000,
		DamageDealt: 12000, DamageTaken: 14000,
		CSTotal: 150, CSPerMinute: 5.5,
		VisionScore: 20, WardsPlaced: 8, WardsKilled: 2,
		KillParticipation:   0.5,
		GameDurationMinutes: 30,
	}
}

// fullRoster returns ten filler participants, five per team. The caller
// overwrites slots to stage a scenario.
func fullRoster() []model.Participant {
	roster := make([]model.Participant, 10)
	for i := 0; i < 5; i++ {
		roster[i] = filler(i+1, model.TeamBlue)
	}
	for i := 5; i < 10; i++ {
		roster[i] = filler(i+1, model.TeamRed)
	}
	return roster
}

func has(badges []Badge, key string) bool {
	for _, b := range badges {
		if b.Key == key {
			return true
		}
	}
	return false
}

func TestEvaluate_CarryGame(t *testing.T) {
	roster := fullRoster()
	star := &roster[0]
	star.Kills, star.Deaths, star.Assists = 14, 0, 6
	star.KDA = 20.0
	star.GoldEarned = 18000
	star.DamageDealt = 40000
	star.Win = true

	earned := Evaluate(star, roster)

	for _, key := range []string{"flawless", "sharpshooter", "solo_carry", "wealthy", "damage_dealer", "menace"} {
		if !has(earned, key) {
			t.Errorf("missing %q in %v", key, keys(earned))
		}
	}
	if has(earned, "inting") || has(earned, "bankrupt") {
		t.Errorf("negative badges should not fire on a carry game: %v", keys(earned))
	}
}

func TestEvaluate_MultiKillSuppression(t *testing.T) {
	roster := fullRoster()
	p := &roster[0]
	p.DoubleKills, p.TripleKills, p.QuadraKills = 2, 1, 1

	earned := Evaluate(p, roster)
	if !has(earned, "quadrakill") {
		t.Errorf("quadrakill should fire: %v", keys(earned))
	}
	if has(earned, "triple_kill") {
		t.Errorf("triple_kill must be suppressed by the quadra: %v", keys(earned))
	}
	if !has(earned, "double_kill") {
		t.Errorf("double_kill is never suppressed: %v", keys(earned))
	}

	p.PentaKills = 1
	earned = Evaluate(p, roster)
	if !has(earned, "pentakill") || has(earned, "quadrakill") {
		t.Errorf("penta should suppress quadrakill: %v", keys(earned))
	}
}

func TestEvaluate_ExtremumTieBothQualify(t *testing.T) {
	roster := fullRoster()
	roster[0].GoldEarned = 20000
	roster[5].GoldEarned = 20000

	if !has(Evaluate(&roster[0], roster), "wealthy") {
		t.Error("first tied participant should be wealthy")
	}
	if !has(Evaluate(&roster[5], roster), "wealthy") {
		t.Error("second tied participant should be wealthy")
	}
}

func TestEvaluate_NegativeBadges(t *testing.T) {
	roster := fullRoster()
	feeder := &roster[2]
	feeder.Kills, feeder.Deaths, feeder.Assists = 1, 12, 1
	feeder.KDA = 0.17
	feeder.VisionScore = 4
	feeder.WardsPlaced = 1
	feeder.CSPerMinute = 3.0

	earned := Evaluate(feeder, roster)
	for _, key := range []string{"inting", "dark_zone", "wardless", "poor_farmer"} {
		if !has(earned, key) {
			t.Errorf("missing %q in %v", key, keys(earned))
		}
	}
	// Middle lane is not a frontline role.
	if !has(earned, "run_it_down") {
		t.Errorf("run_it_down should fire for a mid laner: %v", keys(earned))
	}

	feeder.TeamPosition = model.PositionTop
	if has(Evaluate(feeder, roster), "run_it_down") {
		t.Error("run_it_down must not fire for a frontline role")
	}
}

func TestEvaluate_DurationDefault(t *testing.T) {
	roster := fullRoster()
	p := &roster[0]
	p.Deaths = 1
	p.GameDurationMinutes = 0 // defaults to 25

	if !has(Evaluate(p, roster), "untouchable") {
		t.Error("untouchable should fire with the default duration")
	}
}

func TestEvaluate_SupportExemptions(t *testing.T) {
	roster := fullRoster()
	sup := &roster[4]
	sup.TeamPosition = model.PositionUtility
	sup.CSPerMinute = 1.0
	sup.WardsPlaced = 2

	earned := Evaluate(sup, roster)
	if has(earned, "poor_farmer") || has(earned, "wardless") {
		t.Errorf("supports are exempt from farm and ward demerits: %v", keys(earned))
	}
}

func TestTopBadges_PriorityThenCatalogOrder(t *testing.T) {
	roster := fullRoster()
	star := &roster[0]
	star.Kills, star.Deaths, star.Assists = 14, 0, 6
	star.KDA = 20.0
	star.GoldEarned = 18000
	star.DamageDealt = 40000
	star.Win = true

	earned := Evaluate(star, roster)
	top := TopBadges(earned, 3)

	if len(top) != 3 {
		t.Fatalf("got %d badges, want 3", len(top))
	}
	// The three priority-10 badges of this game, in catalog order.
	for i, want := range []string{"flawless", "hard_carry", "menace"} {
		if top[i].Key != want {
			t.Errorf("top[%d] = %q, want %q", i, top[i].Key, want)
		}
	}
	for i := 1; i < len(top); i++ {
		if top[i].Priority > top[i-1].Priority {
			t.Fatalf("badges out of priority order: %v", keys(top))
		}
	}
}

func TestTopBadges_DefaultLimit(t *testing.T) {
	earned := make([]Badge, 0, 8)
	for _, key := range []string{"flawless", "sharpshooter", "wealthy", "tank", "ward_hunter", "map_control", "balanced", "dark_zone"} {
		b, ok := Lookup(key)
		if !ok {
			t.Fatalf("unknown badge %q", key)
		}
		earned = append(earned, b)
	}
	if got := TopBadges(earned, 0); len(got) != DefaultTopN {
		t.Fatalf("got %d badges, want %d", len(got), DefaultTopN)
	}
}

func TestCatalog_UniqueKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range Catalog() {
		if b.Key == "" {
			t.Fatal("badge with empty key")
		}
		if seen[b.Key] {
			t.Fatalf("duplicate badge key %q", b.Key)
		}
		seen[b.Key] = true
	}
}

func keys(badges []Badge) []string {
	out := make([]string, len(badges))
	for i, b := range badges {
		out[i] = b.Key
	}
	return out
}
