package roster

import "time"

// monthContext holds the calendar facts of a generation run: how many
// days the month has, how days map to weeks, and how many seats each day
// carries once overrides are applied.
type monthContext struct {
	year  int
	month time.Month

	days         int
	firstWeekday int // weekday of day 1, Sunday = 0
	weeks        int

	daySeats   []int // indexed day-1
	nightSeats []int
}

// newMonthContext derives the calendar context from settings. The
// settings are assumed normalized.
func newMonthContext(s Settings) monthContext {
	first := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.UTC)
	// Day 0 of the next month is the last day of this one.
	days := time.Date(s.Year, s.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	mc := monthContext{
		year:         s.Year,
		month:        s.Month,
		days:         days,
		firstWeekday: int(first.Weekday()),
		daySeats:     make([]int, days),
		nightSeats:   make([]int, days),
	}
	mc.weeks = mc.weekOf(days) + 1

	for d := 0; d < days; d++ {
		mc.daySeats[d] = s.DaySeats
		mc.nightSeats[d] = s.NightSeats
	}
	for _, ov := range s.SeatOverrides {
		if ov.Day < 1 || ov.Day > days {
			continue
		}
		if ov.DaySeats != nil && *ov.DaySeats >= 0 {
			mc.daySeats[ov.Day-1] = *ov.DaySeats
		}
		if ov.NightSeats != nil && *ov.NightSeats >= 0 {
			mc.nightSeats[ov.Day-1] = *ov.NightSeats
		}
	}

	return mc
}

// weekOf returns the zero-based calendar week index of a day of month.
// Weeks run Sunday..Saturday and are anchored to the month's first row,
// so day d lands in week floor((firstWeekday + d - 1) / 7).
func (mc monthContext) weekOf(day int) int {
	return (mc.firstWeekday + day - 1) / 7
}

// seatsFor returns the seat count for the given day and shift kind.
func (mc monthContext) seatsFor(day int, kind ShiftKind) int {
	if kind == NightShift {
		return mc.nightSeats[day-1]
	}
	return mc.daySeats[day-1]
}

// dateOf returns midnight UTC of the given day of month.
func (mc monthContext) dateOf(day int) time.Time {
	return time.Date(mc.year, mc.month, day, 0, 0, 0, 0, time.UTC)
}

// totalDemand is the month-wide seat count across both shifts.
func (mc monthContext) totalDemand() int {
	total := 0
	for d := 0; d < mc.days; d++ {
		total += mc.daySeats[d] + mc.nightSeats[d]
	}
	return total
}
