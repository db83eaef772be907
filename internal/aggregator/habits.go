package aggregator

import "github.com/redgreenblue444/lol-dashboard/internal/model"

// weekdays fixes the display order of the day-of-week distribution.
var weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// DaySlot is one weekday's slice of the playing-habit distribution.
type DaySlot struct {
	Day     string
	Games   int
	Wins    int
	WinRate float64 // percent, 1 decimal
}

// ByDayOfWeek distributes matches over the seven weekdays, Monday first.
// Days with no games keep a zero win rate.
func ByDayOfWeek(matches []model.EnrichedMatch) []DaySlot {
	slots := make([]DaySlot, len(weekdays))
	index := make(map[string]int, len(weekdays))
	for i, day := range weekdays {
		slots[i].Day = day
		index[day] = i
	}

	for _, m := range matches {
		i, ok := index[m.DayOfWeek]
		if !ok {
			continue
		}
		slots[i].Games++
		if m.Win {
			slots[i].Wins++
		}
	}

	for i := range slots {
		if slots[i].Games > 0 {
			slots[i].WinRate = round1(float64(slots[i].Wins) / float64(slots[i].Games) * 100)
		}
	}
	return slots
}

// HourSlot is one hour's slice of the playing-habit distribution.
type HourSlot struct {
	Hour    int // 0..23
	Games   int
	Wins    int
	WinRate float64 // percent, 1 decimal
}

// ByHourOfDay distributes matches over the 24 hours of the day. All 24 slots
// are always returned, in order, so callers can render a full clock.
func ByHourOfDay(matches []model.EnrichedMatch) []HourSlot {
	slots := make([]HourSlot, 24)
	for i := range slots {
		slots[i].Hour = i
	}

	for _, m := range matches {
		if m.HourOfDay < 0 || m.HourOfDay > 23 {
			continue
		}
		slots[m.HourOfDay].Games++
		if m.Win {
			slots[m.HourOfDay].Wins++
		}
	}

	for i := range slots {
		if slots[i].Games > 0 {
			slots[i].WinRate = round1(float64(slots[i].Wins) / float64(slots[i].Games) * 100)
		}
	}
	return slots
}
