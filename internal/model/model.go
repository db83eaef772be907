package model

// TeamID identifies which side of the map a participant played on.
type TeamID int

const (
	TeamBlue TeamID = 100
	TeamRed  TeamID = 200
)

func (t TeamID) String() string {
	switch t {
	case TeamBlue:
		return "BLUE"
	case TeamRed:
		return "RED"
	default:
		return "?"
	}
}

// Position is the assigned lane/role of a participant.
type Position string

const (
	PositionTop     Position = "TOP"
	PositionJungle  Position = "JUNGLE"
	PositionMiddle  Position = "MIDDLE"
	PositionBottom  Position = "BOTTOM"
	PositionUtility Position = "UTILITY"
)

// IsSupport reports whether the position is the support (utility) role.
func (p Position) IsSupport() bool { return p == PositionUtility }

// IsJungle reports whether the position is the jungle role.
func (p Position) IsJungle() bool { return p == PositionJungle }

// IsTankRole reports whether the position is one that commonly plays
// frontline champions (top, support, jungle). Used to exempt those roles
// from death-count penalties.
func (p Position) IsTankRole() bool {
	return p == PositionTop || p == PositionUtility || p == PositionJungle
}

// ---- Dimension records (populated once at load, never mutated) ----

type Champion struct {
	Key     int
	ID      int
	Name    string
	Role    string
	IconURL string
}

type DateInfo struct {
	Key       int
	FullDate  string // YYYY-MM-DD
	DayOfWeek string // "Monday" .. "Sunday"
	IsWeekend bool
	HourOfDay int
}

type Queue struct {
	Key      int
	Name     string
	IsRanked bool
}

type Item struct {
	Key     int
	Name    string
	IconURL string
}

// RuneSlot is a single resolved rune (keystone or minor).
type RuneSlot struct {
	ID   int
	Name string
	Icon string
}

// RunePage is the resolved rune loadout for a match: the keystone, the three
// remaining primary-tree runes, and the two secondary-tree runes.
type RunePage struct {
	Key              int
	PrimaryStyleName string
	SubStyleName     string
	Keystone         RuneSlot
	Primary          [3]RuneSlot
	Secondary        [2]RuneSlot
}

// MatchMeta carries per-match metadata keyed by match surrogate key.
type MatchMeta struct {
	MatchKey            int
	MatchID             string
	GameDurationSeconds int
	GameVersion         string
	Timestamp           int64 // game creation, epoch milliseconds
}

// BridgeItem is one row of the match→items bridge table.
type BridgeItem struct {
	MatchKey     int
	ItemKey      int
	ItemPosition int
}

// ---- Fact rows ----

// FactMatch is one row of the fact table: the tracked player's performance in
// a single game, with foreign keys into the dimension tables.
type FactMatch struct {
	MatchKey    int
	ChampionKey int
	QueueKey    int
	DateKey     int
	RuneKey     int

	Kills   int
	Deaths  int
	Assists int
	KDA     float64 // recomputed during enrichment, source value never trusted

	GoldEarned    int
	GoldPerMinute float64

	DamageDealt     int
	DamageTaken     int
	DamagePerMinute float64

	CSTotal     int
	CSPerMinute float64

	VisionScore           int
	WardsPlaced           int
	WardsKilled           int
	ControlWardsPurchased int

	KillParticipation float64 // 0..1

	DoubleKills int
	TripleKills int
	QuadraKills int
	PentaKills  int

	LargestKillingSpree int
	TurretKills         int
	InhibitorKills      int
	SoloKills           int

	Win                 bool
	GameDurationMinutes float64
}

// EnrichedMatch is a fact row joined with its dimensions: the self-contained
// record every downstream engine consumes. Missing dimension lookups leave
// the derived fields at their zero values; that is the documented
// degrade-gracefully policy, not an error.
type EnrichedMatch struct {
	FactMatch

	ChampionName string
	ChampionID   int
	Role         string

	QueueName string
	IsRanked  bool

	Date      string
	DayOfWeek string
	IsWeekend bool
	HourOfDay int

	MatchID   string
	Timestamp int64 // epoch milliseconds, canonical sort key

	Items []int // item keys in build order

	RunePrimary   string
	RuneSecondary string
	RuneCombo     string // "<primary style> / <secondary style>"
	Runes         RunePage
}

// ---- Participants ----

// Participant is one of the up-to-ten players in a single match's roster.
// Same counter shape as a fact row, scoped to one game.
type Participant struct {
	MatchKey       int
	ParticipantNum int

	SummonerName   string
	RiotIDGameName string
	RiotIDTagLine  string

	ChampionID   int
	ChampionName string

	TeamID       TeamID
	TeamPosition Position
	IsPlayer     bool
	Win          bool

	Kills   int
	Deaths  int
	Assists int
	KDA     float64

	GoldEarned    int
	GoldPerMinute float64

	DamageDealt     int
	DamageTaken     int
	DamagePerMinute float64

	CSTotal     int
	CSPerMinute float64

	VisionScore           int
	WardsPlaced           int
	WardsKilled           int
	ControlWardsPurchased int

	KillParticipation float64

	DoubleKills int
	TripleKills int
	QuadraKills int
	PentaKills  int

	TurretKills    int
	InhibitorKills int

	GameDurationMinutes float64

	Items []int
}

// DisplayName returns the best available name for the participant.
func (p *Participant) DisplayName() string {
	if p.SummonerName != "" && p.SummonerName != "Unknown" {
		return p.SummonerName
	}
	if p.RiotIDGameName != "" {
		return p.RiotIDGameName
	}
	return "Unknown"
}

// Duration returns the game duration in minutes, defaulting to 25 when the
// source row carried no value. Duration-gated badge checks rely on this.
func (p *Participant) Duration() float64 {
	if p.GameDurationMinutes <= 0 {
		return 25
	}
	return p.GameDurationMinutes
}

// Player describes one configured account whose exported dataset can be
// loaded into the dashboard.
type Player struct {
	ID          string `yaml:"id"`
	DisplayName string `yaml:"display_name"`
}
