// Package dataset holds the loaded star-schema tables as one immutable
// snapshot. The loader builds a snapshot once per run; every engine receives
// it read-only, so there is no shared mutable state between computations.
package dataset

import "github.com/redgreenblue444/lol-dashboard/internal/model"

// Snapshot is the full loaded dataset: fact rows, dimension lookup tables,
// the match→items bridge, and the per-match participant rosters.
type Snapshot struct {
	Facts []model.FactMatch

	Champions map[int]model.Champion
	Dates     map[int]model.DateInfo
	Queues    map[int]model.Queue
	Runes     map[int]model.RunePage
	Items     map[int]model.Item
	Metadata  map[int]model.MatchMeta

	BridgeItems []model.BridgeItem

	// Participants groups the up-to-ten roster rows by match key.
	Participants map[int][]model.Participant
}

// New returns an empty snapshot with all lookup tables allocated.
func New() *Snapshot {
	return &Snapshot{
		Champions:    make(map[int]model.Champion),
		Dates:        make(map[int]model.DateInfo),
		Queues:       make(map[int]model.Queue),
		Runes:        make(map[int]model.RunePage),
		Items:        make(map[int]model.Item),
		Metadata:     make(map[int]model.MatchMeta),
		Participants: make(map[int][]model.Participant),
	}
}

// Champion resolves a champion dimension key. A miss returns the zero record;
// callers degrade gracefully rather than erroring.
func (s *Snapshot) Champion(key int) (model.Champion, bool) {
	c, ok := s.Champions[key]
	return c, ok
}

// Date resolves a date dimension key.
func (s *Snapshot) Date(key int) (model.DateInfo, bool) {
	d, ok := s.Dates[key]
	return d, ok
}

// Queue resolves a queue dimension key.
func (s *Snapshot) Queue(key int) (model.Queue, bool) {
	q, ok := s.Queues[key]
	return q, ok
}

// Rune resolves a rune-page dimension key.
func (s *Snapshot) Rune(key int) (model.RunePage, bool) {
	r, ok := s.Runes[key]
	return r, ok
}

// Item resolves an item dimension key.
func (s *Snapshot) Item(key int) (model.Item, bool) {
	i, ok := s.Items[key]
	return i, ok
}

// Meta resolves the metadata record for a match key.
func (s *Snapshot) Meta(matchKey int) (model.MatchMeta, bool) {
	m, ok := s.Metadata[matchKey]
	return m, ok
}

// Roster returns the participant rows for a match, or nil when the match has
// no recorded roster.
func (s *Snapshot) Roster(matchKey int) []model.Participant {
	return s.Participants[matchKey]
}
