package aggregator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/redgreenblue444/lol-dashboard/internal/model"
)

// minItemsForBuild filters out incomplete builds from early surrenders.
const minItemsForBuild = 3

// unknownStyle marks a rune page whose primary style never resolved.
const unknownStyle = "Unknown"

// ItemBuild is one recurring item combination and its record.
type ItemBuild struct {
	Items    []int   // item keys, ascending
	Champion string  // champion of the first match seen with this build
	Games    int
	Wins     int
	WinRate  float64 // percent, 1 decimal
}

// ItemBuilds groups matches by their completed item set and returns the top n
// builds by games played. The set is the first six non-empty item slots,
// order-insensitive; matches with fewer than three items are skipped.
func ItemBuilds(matches []model.EnrichedMatch, n int) []ItemBuild {
	index := make(map[string]int)
	var builds []ItemBuild

	for _, m := range matches {
		items := make([]int, 0, 6)
		for _, it := range m.Items {
			if it == 0 {
				continue
			}
			items = append(items, it)
			if len(items) == 6 {
				break
			}
		}
		if len(items) < minItemsForBuild {
			continue
		}
		sort.Ints(items)

		key := joinInts(items)
		i, ok := index[key]
		if !ok {
			i = len(builds)
			index[key] = i
			builds = append(builds, ItemBuild{Items: items, Champion: m.ChampionName})
		}
		builds[i].Games++
		if m.Win {
			builds[i].Wins++
		}
	}

	for i := range builds {
		builds[i].WinRate = round1(float64(builds[i].Wins) / float64(builds[i].Games) * 100)
	}
	sort.SliceStable(builds, func(i, j int) bool {
		return builds[i].Games > builds[j].Games
	})
	if n < len(builds) {
		builds = builds[:n]
	}
	return builds
}

func joinInts(items []int) string {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = strconv.Itoa(it)
	}
	return strings.Join(parts, "-")
}

// RuneSetup is one recurring keystone plus style combination and its record.
type RuneSetup struct {
	Keystone     string
	KeystoneIcon string
	Primary      string
	Secondary    string
	Games        int
	Wins         int
	WinRate      float64 // percent, 1 decimal
}

// RuneSetups groups matches by keystone and style combination and returns the
// top n setups by games played. Matches whose rune page never resolved (no
// keystone, or an unknown primary style) are skipped.
func RuneSetups(matches []model.EnrichedMatch, n int) []RuneSetup {
	index := make(map[string]int)
	var setups []RuneSetup

	for _, m := range matches {
		keystone := m.Runes.Keystone.Name
		if keystone == "" || m.RunePrimary == unknownStyle {
			continue
		}

		key := keystone + "|" + m.RuneCombo
		i, ok := index[key]
		if !ok {
			i = len(setups)
			index[key] = i
			setups = append(setups, RuneSetup{
				Keystone:     keystone,
				KeystoneIcon: m.Runes.Keystone.Icon,
				Primary:      m.RunePrimary,
				Secondary:    m.RuneSecondary,
			})
		}
		setups[i].Games++
		if m.Win {
			setups[i].Wins++
		}
	}

	for i := range setups {
		setups[i].WinRate = round1(float64(setups[i].Wins) / float64(setups[i].Games) * 100)
	}
	sort.SliceStable(setups, func(i, j int) bool {
		return setups[i].Games > setups[j].Games
	})
	if n < len(setups) {
		setups = setups[:n]
	}
	return setups
}
