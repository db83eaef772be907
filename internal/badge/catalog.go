package badge

// Tier groups badges by how flattering they are. It drives display color.
type Tier string

const (
	TierGold     Tier = "gold"
	TierSilver   Tier = "silver"
	TierBronze   Tier = "bronze"
	TierNeutral  Tier = "neutral"
	TierNegative Tier = "negative"
)

// Badge is one earned accolade (or demerit) for a participant's game.
type Badge struct {
	Key         string
	Icon        string
	Name        string
	Description string
	Tier        Tier
	Priority    int
}

// definition pairs a badge with its predicate. Predicates read the
// participant's line plus the precomputed roster aggregates; they never
// mutate anything.
type definition struct {
	Badge
	check func(e *evalContext) bool
}

// catalog lists every badge in evaluation order. Order matters twice: badges
// are emitted in this order, and TopBadges breaks priority ties by it.
var catalog = []definition{
	{Badge{"flawless", "💎", "Flawless", "No deaths with at least one kill", TierGold, 10},
		func(e *evalContext) bool { return e.p.Deaths == 0 && e.p.Kills > 0 }},
	{Badge{"pentakill", "⚡", "Pentakill", "Scored a pentakill", TierGold, 10},
		func(e *evalContext) bool { return e.p.PentaKills > 0 }},
	{Badge{"hard_carry", "🏆", "Hard Carry", "Dealt 40%+ of the team's damage in a win", TierGold, 10},
		func(e *evalContext) bool {
			return e.p.Win && e.team.totalDamage > 0 &&
				float64(e.p.DamageDealt)/float64(e.team.totalDamage) >= 0.40
		}},
	{Badge{"menace", "😈", "Menace", "Highest damage in the lobby", TierGold, 10},
		func(e *evalContext) bool { return e.p.DamageDealt == e.game.maxDamage }},
	{Badge{"untouchable", "🛡️", "Untouchable", "At most one death in a full-length game", TierGold, 9},
		func(e *evalContext) bool { return e.p.Deaths <= 1 && e.duration >= 25 }},
	{Badge{"efficiency", "🎯", "Efficiency", "KDA of 10 or better", TierGold, 9},
		func(e *evalContext) bool { return e.p.KDA >= 10 }},
	{Badge{"quadrakill", "🔥", "Quadrakill", "Scored a quadrakill", TierSilver, 8},
		func(e *evalContext) bool { return e.p.QuadraKills > 0 && e.p.PentaKills == 0 }},
	{Badge{"sharpshooter", "🎯", "Sharpshooter", "10+ kills with fewer than 3 deaths", TierSilver, 7},
		func(e *evalContext) bool { return e.p.Kills >= 10 && e.p.Deaths < 3 }},
	{Badge{"wealthy", "💰", "Wealthy", "Most gold in the lobby", TierGold, 7},
		func(e *evalContext) bool { return e.p.GoldEarned == e.game.maxGold }},
	{Badge{"damage_dealer", "💥", "Damage Dealer", "Top damage in the lobby", TierGold, 7},
		func(e *evalContext) bool { return e.p.DamageDealt == e.game.maxDamage }},
	{Badge{"greedy_farmer", "🐷", "Greedy Farmer", "12+ CS per minute", TierGold, 7},
		func(e *evalContext) bool { return e.p.CSPerMinute >= 12 }},
	{Badge{"clutch", "⏱️", "Clutch", "KDA of 4+ in a 35 minute game", TierSilver, 7},
		func(e *evalContext) bool { return e.duration >= 35 && e.p.KDA >= 4 }},
	{Badge{"comeback", "📈", "Comeback", "Clean high-impact win", TierSilver, 7},
		func(e *evalContext) bool {
			return e.p.Win && e.p.Deaths <= 3 &&
				float64(e.p.DamageDealt) > float64(e.game.totalDamage)/10
		}},
	{Badge{"worth_it", "⚖️", "Worth It", "Died for a multi-kill", TierSilver, 7},
		func(e *evalContext) bool {
			return (e.p.TripleKills > 0 || e.p.QuadraKills > 0 || e.p.PentaKills > 0) &&
				e.p.Deaths >= 1
		}},
	{Badge{"solo_carry", "🥇", "Solo Carry", "Team's top fragger with 10+ kills", TierSilver, 6},
		func(e *evalContext) bool { return e.p.Kills == e.team.maxKills && e.p.Kills >= 10 }},
	{Badge{"farming_god", "🌾", "Farming God", "10+ CS/min or most CS in the lobby", TierSilver, 6},
		func(e *evalContext) bool { return e.p.CSPerMinute >= 10 || e.p.CSTotal == e.game.maxCS }},
	{Badge{"vision_master", "👁️", "Vision Master", "50+ vision score or lobby-best vision", TierSilver, 6},
		func(e *evalContext) bool { return e.p.VisionScore >= 50 || e.p.VisionScore == e.game.maxVision }},
	{Badge{"team_player", "🤝", "Team Player", "Part of 80%+ of the team's kills", TierSilver, 6},
		func(e *evalContext) bool { return e.p.KillParticipation >= 0.80 }},
	{Badge{"triple_kill", "🔱", "Triple Kill", "Scored a triple kill", TierBronze, 6},
		func(e *evalContext) bool {
			return e.p.TripleKills > 0 && e.p.QuadraKills == 0 && e.p.PentaKills == 0
		}},
	{Badge{"split_pusher", "🗡️", "Split Pusher", "5+ turrets with low kill participation", TierSilver, 6},
		func(e *evalContext) bool { return e.p.TurretKills >= 5 && e.p.KillParticipation < 0.40 }},
	{Badge{"duelist", "⚔️", "Duelist", "Kill-heavy line with few assists", TierSilver, 6},
		func(e *evalContext) bool {
			return e.p.Kills >= 8 && float64(e.p.Assists) < float64(e.p.Kills)*0.5
		}},
	{Badge{"gold_rush", "🤑", "Gold Rush", "400+ gold per minute", TierSilver, 6},
		func(e *evalContext) bool { return e.p.GoldPerMinute >= 400 }},
	{Badge{"tank", "🧱", "Tank", "Soaked the most damage in the lobby", TierBronze, 5},
		func(e *evalContext) bool { return e.p.DamageTaken == e.game.maxTaken }},
	{Badge{"tower_destroyer", "🏰", "Tower Destroyer", "Took down 3+ turrets", TierBronze, 5},
		func(e *evalContext) bool { return e.p.TurretKills >= 3 }},
	{Badge{"life_support", "💉", "Life Support", "15+ assists", TierSilver, 5},
		func(e *evalContext) bool { return e.p.Assists >= 15 }},
	{Badge{"dragon_slayer", "🐉", "Dragon Slayer", "Jungler with a full farm game", TierBronze, 5},
		func(e *evalContext) bool { return e.p.TeamPosition.IsJungle() && e.p.CSTotal >= 150 }},
	{Badge{"inhibitor_destroyer", "💣", "Inhibitor Destroyer", "Broke 2+ inhibitors", TierBronze, 5},
		func(e *evalContext) bool { return e.p.InhibitorKills >= 2 }},
	{Badge{"objective_focused", "🎯", "Objective Focused", "5+ structures destroyed", TierBronze, 5},
		func(e *evalContext) bool { return e.p.TurretKills+e.p.InhibitorKills >= 5 }},
	{Badge{"lightbringer", "🕯️", "Lightbringer", "Placed 30+ wards", TierSilver, 5},
		func(e *evalContext) bool { return e.p.WardsPlaced >= 30 }},
	{Badge{"oracle", "🔮", "Oracle", "Cleared 15+ wards", TierSilver, 5},
		func(e *evalContext) bool { return e.p.WardsKilled >= 15 }},
	{Badge{"support", "😇", "Guardian Angel", "Pure enabler line", TierSilver, 5},
		func(e *evalContext) bool { return e.p.Assists >= 15 && e.p.Kills < 3 }},
	{Badge{"bait_master", "🪝", "Bait Master", "Soaked the most damage and barely died", TierBronze, 5},
		func(e *evalContext) bool { return e.p.DamageTaken == e.game.maxTaken && e.p.Deaths <= 3 }},
	{Badge{"ward_hunter", "🔦", "Ward Hunter", "Cleared 10+ wards", TierBronze, 4},
		func(e *evalContext) bool { return e.p.WardsKilled >= 10 }},
	{Badge{"map_control", "🗺️", "Map Control", "Placed 20+ wards", TierBronze, 4},
		func(e *evalContext) bool { return e.p.WardsPlaced >= 20 }},
	{Badge{"efficient_spender", "🧮", "Efficient Spender", "Above-average damage on a below-average budget", TierBronze, 4},
		func(e *evalContext) bool {
			return float64(e.p.GoldEarned) < e.game.avgGold*1.2 &&
				float64(e.p.DamageDealt) > float64(e.game.totalDamage)/10*1.2
		}},
	{Badge{"control_freak", "🧿", "Control Freak", "Bought 10+ control wards", TierBronze, 4},
		func(e *evalContext) bool { return e.p.ControlWardsPurchased >= 10 }},
	{Badge{"executioner", "🪓", "Executioner", "10+ kills with almost no assists", TierBronze, 4},
		func(e *evalContext) bool { return e.p.Kills >= 10 && e.p.Assists < 3 }},
	{Badge{"better_jungle_wins", "🌲", "Better Jungle Wins", "Jungler near the lobby lead in farm or damage", TierNeutral, 4},
		func(e *evalContext) bool {
			return e.p.TeamPosition.IsJungle() &&
				(float64(e.p.CSTotal) > float64(e.game.maxCS)*0.9 ||
					float64(e.p.DamageDealt) > float64(e.game.maxDamage)*0.9)
		}},
	{Badge{"roamer", "🧭", "Roamer", "Support present for most of the team's kills", TierBronze, 4},
		func(e *evalContext) bool { return e.p.TeamPosition.IsSupport() && e.p.KillParticipation >= 0.60 }},
	{Badge{"double_kill", "✌️", "Double Kill", "Scored a double kill", TierBronze, 4},
		func(e *evalContext) bool { return e.p.DoubleKills > 0 }},
	{Badge{"run_it_down", "🏃", "Run It Down", "10+ deaths outside a frontline role", TierNegative, 3},
		func(e *evalContext) bool { return e.p.Deaths >= 10 && !e.p.TeamPosition.IsTankRole() }},
	{Badge{"glass_cannon", "🍷", "Glass Cannon", "Huge damage both ways with plenty of deaths", TierNeutral, 3},
		func(e *evalContext) bool {
			return float64(e.p.DamageDealt) > float64(e.game.totalDamage)/10*1.3 &&
				float64(e.p.DamageTaken) > float64(e.game.totalTaken)/10*1.2 &&
				e.p.Deaths >= 5
		}},
	{Badge{"afk_farming", "🚜", "AFK Farming", "300+ CS while skipping the fights", TierNeutral, 3},
		func(e *evalContext) bool { return e.p.CSTotal >= 300 && e.p.KillParticipation < 0.30 }},
	{Badge{"ks_stealer", "🦅", "KS Stealer", "Kill-hoarding with almost no assists", TierNeutral, 3},
		func(e *evalContext) bool { return e.p.Kills >= 15 && e.p.Assists < 5 }},
	{Badge{"ghost_ping", "👻", "Ghost Ping", "Team's top warding support in a loss", TierNeutral, 3},
		func(e *evalContext) bool {
			return e.p.TeamPosition.IsSupport() && e.p.WardsPlaced >= e.team.maxWards && !e.p.Win
		}},
	{Badge{"int_to_win", "🎲", "Int To Win", "Won despite 10+ deaths", TierNeutral, 3},
		func(e *evalContext) bool { return e.p.Deaths >= 10 && e.p.Win }},
	{Badge{"inting", "💀", "Inting", "10+ deaths with a sub-1 KDA", TierNegative, 2},
		func(e *evalContext) bool { return e.p.Deaths >= 10 && e.p.KDA < 1.0 }},
	{Badge{"gold_sink", "🕳️", "Gold Sink", "Team's lowest gold in a full-length game", TierNegative, 2},
		func(e *evalContext) bool { return e.p.GoldEarned == e.team.minGold && e.duration >= 20 }},
	{Badge{"invisible", "🫥", "Invisible", "Under 20% kill participation", TierNegative, 2},
		func(e *evalContext) bool { return e.p.KillParticipation < 0.20 }},
	{Badge{"blind_spot", "🙈", "Blind Spot", "Lowest vision score in the lobby", TierNegative, 2},
		func(e *evalContext) bool { return e.p.VisionScore == e.game.minVision }},
	{Badge{"caught", "🎣", "Caught", "Kept dying without fighting back", TierNegative, 2},
		func(e *evalContext) bool { return e.p.Deaths >= 5 && e.p.Kills+e.p.Assists < 3 }},
	{Badge{"poor_farmer", "🌱", "Poor Farmer", "Under 4 CS/min outside the support role", TierNegative, 2},
		func(e *evalContext) bool { return e.p.CSPerMinute < 4 && !e.p.TeamPosition.IsSupport() }},
	{Badge{"report_jungle", "🙄", "Report Jungle", "Jungler with the team's worst vision", TierNegative, 2},
		func(e *evalContext) bool {
			return e.p.TeamPosition.IsJungle() && e.p.VisionScore == e.team.minVision
		}},
	{Badge{"balanced", "☯️", "Balanced", "Perfectly middle-of-the-road KDA", TierNeutral, 2},
		func(e *evalContext) bool { return e.p.KDA >= 2 && e.p.KDA <= 4 }},
	{Badge{"wardless", "🌑", "Wardless", "Fewer than 5 wards outside the support role", TierNegative, 1},
		func(e *evalContext) bool { return e.p.WardsPlaced < 5 && !e.p.TeamPosition.IsSupport() }},
	{Badge{"bankrupt", "📉", "Bankrupt", "Lowest gold in the lobby", TierNegative, 1},
		func(e *evalContext) bool { return e.p.GoldEarned == e.game.minGold }},
	{Badge{"dark_zone", "🌚", "Dark Zone", "Vision score under 10", TierNegative, 1},
		func(e *evalContext) bool { return e.p.VisionScore < 10 }},
}

// Catalog returns the full badge list in evaluation order, without predicates.
func Catalog() []Badge {
	out := make([]Badge, len(catalog))
	for i, d := range catalog {
		out[i] = d.Badge
	}
	return out
}

// Lookup resolves a badge by key.
func Lookup(key string) (Badge, bool) {
	for _, d := range catalog {
		if d.Key == key {
			return d.Badge, true
		}
	}
	return Badge{}, false
}
