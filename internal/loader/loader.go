// Package loader reads the exported star-schema CSV tables into a dataset
// snapshot. Each configured player owns one directory of CSV files; facts,
// bridges and rosters are concatenated across players while dimension rows
// merge first-wins, matching how the exporter assigns shared surrogate keys.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/redgreenblue444/lol-dashboard/internal/dataset"
	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// ErrNoMatches means no player directory contributed a single fact row.
var ErrNoMatches = errors.New("no matches found in any player dataset")

// Load reads every player's dataset directory under root and merges them into
// one snapshot. A player directory with no fact table is skipped with no
// error; Load fails only when the merged snapshot would be empty.
func Load(root string, players []model.Player) (*dataset.Snapshot, error) {
	snap := dataset.New()
	for _, p := range players {
		dir := filepath.Join(root, p.ID)
		if err := loadPlayer(snap, dir); err != nil {
			return nil, fmt.Errorf("loading dataset for player %s: %w", p.ID, err)
		}
	}
	if len(snap.Facts) == 0 {
		return nil, ErrNoMatches
	}
	return snap, nil
}

func loadPlayer(snap *dataset.Snapshot, dir string) error {
	facts, err := readTable(filepath.Join(dir, "fact_matches.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, r := range facts.rows {
		snap.Facts = append(snap.Facts, factFromRow(r))
	}

	if t, err := readOptional(filepath.Join(dir, "dim_champion.csv")); err != nil {
		return err
	} else if t != nil {
		for _, r := range t.rows {
			c := model.Champion{
				Key:     r.intCol("champion_key"),
				ID:      r.intCol("champion_id"),
				Name:    r.strCol("champion_name"),
				Role:    r.strCol("role"),
				IconURL: r.strCol("icon_url"),
			}
			if _, seen := snap.Champions[c.Key]; !seen {
				snap.Champions[c.Key] = c
			}
		}
	}

	if t, err := readOptional(filepath.Join(dir, "dim_date.csv")); err != nil {
		return err
	} else if t != nil {
		for _, r := range t.rows {
			d := model.DateInfo{
				Key:       r.intCol("date_key"),
				FullDate:  r.strCol("full_date"),
				DayOfWeek: r.strCol("day_of_week"),
				IsWeekend: r.boolCol("is_weekend"),
				HourOfDay: r.intCol("hour_of_day"),
			}
			if _, seen := snap.Dates[d.Key]; !seen {
				snap.Dates[d.Key] = d
			}
		}
	}

	if t, err := readOptional(filepath.Join(dir, "dim_queue.csv")); err != nil {
		return err
	} else if t != nil {
		for _, r := range t.rows {
			q := model.Queue{
				Key:      r.intCol("queue_key"),
				Name:     r.strCol("queue_name"),
				IsRanked: r.boolCol("is_ranked"),
			}
			if _, seen := snap.Queues[q.Key]; !seen {
				snap.Queues[q.Key] = q
			}
		}
	}

	if t, err := readOptional(filepath.Join(dir, "dim_rune.csv")); err != nil {
		return err
	} else if t != nil {
		for _, r := range t.rows {
			page := runePageFromRow(r)
			if _, seen := snap.Runes[page.Key]; !seen {
				snap.Runes[page.Key] = page
			}
		}
	}

	if t, err := readOptional(filepath.Join(dir, "dim_items.csv")); err != nil {
		return err
	} else if t != nil {
		for _, r := range t.rows {
			it := model.Item{
				Key:     r.intCol("item_key"),
				Name:    r.strCol("item_name"),
				IconURL: r.strCol("icon_url"),
			}
			if _, seen := snap.Items[it.Key]; !seen {
				snap.Items[it.Key] = it
			}
		}
	}

	if t, err := readOptional(filepath.Join(dir, "dim_match_metadata.csv")); err != nil {
		return err
	} else if t != nil {
		for _, r := range t.rows {
			m := model.MatchMeta{
				MatchKey:            r.intCol("match_key"),
				MatchID:             r.strCol("match_id"),
				GameDurationSeconds: r.intCol("game_duration_seconds"),
				GameVersion:         r.strCol("game_version"),
				Timestamp:           r.int64Col("timestamp"),
			}
			if _, seen := snap.Metadata[m.MatchKey]; !seen {
				snap.Metadata[m.MatchKey] = m
			}
		}
	}

	if t, err := readOptional(filepath.Join(dir, "bridge_match_items.csv")); err != nil {
		return err
	} else if t != nil {
		for _, r := range t.rows {
			snap.BridgeItems = append(snap.BridgeItems, model.BridgeItem{
				MatchKey:     r.intCol("match_key"),
				ItemKey:      r.intCol("item_key"),
				ItemPosition: r.intCol("item_position"),
			})
		}
	}

	if t, err := readOptional(filepath.Join(dir, "bridge_match_participants.csv")); err != nil {
		return err
	} else if t != nil {
		for _, r := range t.rows {
			p := participantFromRow(r)
			snap.Participants[p.MatchKey] = append(snap.Participants[p.MatchKey], p)
		}
	}

	return nil
}

func factFromRow(r row) model.FactMatch {
	f := model.FactMatch{
		MatchKey:    r.intCol("match_key"),
		ChampionKey: r.intCol("champion_key"),
		QueueKey:    r.intCol("queue_key"),
		DateKey:     r.intCol("date_key"),
		RuneKey:     r.intCol("rune_key"),

		Kills:   r.intCol("kills"),
		Deaths:  r.intCol("deaths"),
		Assists: r.intCol("assists"),
		KDA:     r.floatCol("kda"),

		GoldEarned:    r.intCol("gold_earned"),
		GoldPerMinute: r.floatCol("gold_per_minute"),

		DamageDealt:     r.intCol("damage_dealt"),
		DamageTaken:     r.intCol("damage_taken"),
		DamagePerMinute: r.floatCol("damage_per_minute"),

		CSTotal:     r.intCol("cs_total"),
		CSPerMinute: r.floatCol("cs_per_minute"),

		VisionScore:           r.intCol("vision_score"),
		WardsPlaced:           r.intCol("wards_placed"),
		WardsKilled:           r.intCol("wards_killed"),
		ControlWardsPurchased: r.intCol("control_wards_purchased"),

		KillParticipation: r.floatCol("kill_participation"),

		DoubleKills: r.intCol("double_kills"),
		TripleKills: r.intCol("triple_kills"),
		QuadraKills: r.intCol("quadra_kills"),
		PentaKills:  r.intCol("penta_kills"),

		LargestKillingSpree: r.intCol("largest_killing_spree"),
		TurretKills:         r.intCol("turret_kills"),
		InhibitorKills:      r.intCol("inhibitor_kills"),
		SoloKills:           r.intCol("solo_kills"),

		Win:                 r.boolCol("win"),
		GameDurationMinutes: r.floatCol("game_duration_minutes"),
	}
	// Older exports keyed the rune page under rune_primary_key.
	if f.RuneKey == 0 {
		f.RuneKey = r.intCol("rune_primary_key")
	}
	return f
}

func runePageFromRow(r row) model.RunePage {
	return model.RunePage{
		Key:              r.intCol("rune_key"),
		PrimaryStyleName: r.strCol("primary_style_name"),
		SubStyleName:     r.strCol("sub_style_name"),
		Keystone: model.RuneSlot{
			ID:   r.intCol("keystone_id"),
			Name: r.strCol("keystone_name"),
			Icon: r.strCol("keystone_icon"),
		},
		Primary: [3]model.RuneSlot{
			{ID: r.intCol("primary_rune2_id"), Name: r.strCol("primary_rune2_name"), Icon: r.strCol("primary_rune2_icon")},
			{ID: r.intCol("primary_rune3_id"), Name: r.strCol("primary_rune3_name"), Icon: r.strCol("primary_rune3_icon")},
			{ID: r.intCol("primary_rune4_id"), Name: r.strCol("primary_rune4_name"), Icon: r.strCol("primary_rune4_icon")},
		},
		Secondary: [2]model.RuneSlot{
			{ID: r.intCol("secondary_rune1_id"), Name: r.strCol("secondary_rune1_name"), Icon: r.strCol("secondary_rune1_icon")},
			{ID: r.intCol("secondary_rune2_id"), Name: r.strCol("secondary_rune2_name"), Icon: r.strCol("secondary_rune2_icon")},
		},
	}
}

func participantFromRow(r row) model.Participant {
	return model.Participant{
		MatchKey:       r.intCol("match_key"),
		ParticipantNum: r.intCol("participant_num"),

		SummonerName:   r.strCol("summoner_name"),
		RiotIDGameName: r.strCol("riot_id_game_name"),
		RiotIDTagLine:  r.strCol("riot_id_tag_line"),

		ChampionID:   r.intCol("champion_id"),
		ChampionName: r.strCol("champion_name"),

		TeamID:       model.TeamID(r.intCol("team_id")),
		TeamPosition: model.Position(r.strCol("team_position")),
		IsPlayer:     r.boolCol("is_player"),
		Win:          r.boolCol("win"),

		Kills:   r.intCol("kills"),
		Deaths:  r.intCol("deaths"),
		Assists: r.intCol("assists"),
		KDA:     r.floatCol("kda"),

		GoldEarned:    r.intCol("gold_earned"),
		GoldPerMinute: r.floatCol("gold_per_minute"),

		DamageDealt:     r.intCol("damage_dealt"),
		DamageTaken:     r.intCol("damage_taken"),
		DamagePerMinute: r.floatCol("damage_per_minute"),

		CSTotal:     r.intCol("cs_total"),
		CSPerMinute: r.floatCol("cs_per_minute"),

		VisionScore:           r.intCol("vision_score"),
		WardsPlaced:           r.intCol("wards_placed"),
		WardsKilled:           r.intCol("wards_killed"),
		ControlWardsPurchased: r.intCol("control_wards_purchased"),

		KillParticipation: r.floatCol("kill_participation"),

		DoubleKills: r.intCol("double_kills"),
		TripleKills: r.intCol("triple_kills"),
		QuadraKills: r.intCol("quadra_kills"),
		PentaKills:  r.intCol("penta_kills"),

		TurretKills:    r.intCol("turret_kills"),
		InhibitorKills: r.intCol("inhibitor_kills"),

		GameDurationMinutes: r.floatCol("game_duration_minutes"),

		Items: r.intsCol("items"),
	}
}

// readOptional reads a table, mapping a missing file to (nil, nil).
func readOptional(path string) (*table, error) {
	t, err := readTable(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return t, err
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}

	t := &table{cols: cols}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		t.rows = append(t.rows, row{cols: cols, fields: record})
	}
	return t, nil
}

type table struct {
	cols map[string]int
	rows []row
}

// row gives typed access to one CSV record by column name. Missing columns
// and unparseable cells resolve to zero values, mirroring how the exporter
// treats absent source fields.
type row struct {
	cols   map[string]int
	fields []string
}
