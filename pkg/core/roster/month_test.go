package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMonthContext_January2025(t *testing.T) {
	mc := newMonthContext(Settings{Year: 2025, Month: time.January, DaySeats: 1, NightSeats: 1}.normalized())

	assert.Equal(t, 31, mc.days)
	// 2025-01-01 is a Wednesday.
	assert.Equal(t, 3, mc.firstWeekday)
	assert.Equal(t, 5, mc.weeks)
}

func TestNewMonthContext_LeapFebruary(t *testing.T) {
	mc := newMonthContext(Settings{Year: 2024, Month: time.February}.normalized())
	assert.Equal(t, 29, mc.days)

	mc = newMonthContext(Settings{Year: 2025, Month: time.February}.normalized())
	assert.Equal(t, 28, mc.days)
}

func TestMonthContext_WeekOf(t *testing.T) {
	mc := newMonthContext(Settings{Year: 2025, Month: time.January}.normalized())

	// Wed Jan 1 .. Sat Jan 4 share the first week row.
	assert.Equal(t, 0, mc.weekOf(1))
	assert.Equal(t, 0, mc.weekOf(4))
	// Sun Jan 5 starts the next one.
	assert.Equal(t, 1, mc.weekOf(5))
	assert.Equal(t, 4, mc.weekOf(31))
}

func TestMonthContext_SeatOverrides(t *testing.T) {
	two := 2
	zero := 0
	mc := newMonthContext(Settings{
		Year: 2025, Month: time.January,
		DaySeats: 1, NightSeats: 1,
		SeatOverrides: []SeatOverride{
			{Day: 4, DaySeats: &two},
			{Day: 5, NightSeats: &zero},
			{Day: 99, DaySeats: &two}, // out of range, ignored
		},
	}.normalized())

	assert.Equal(t, 2, mc.seatsFor(4, DayShift))
	assert.Equal(t, 1, mc.seatsFor(4, NightShift))
	assert.Equal(t, 0, mc.seatsFor(5, NightShift))
	assert.Equal(t, 1, mc.seatsFor(6, DayShift))
}

func TestMonthContext_TotalDemand(t *testing.T) {
	two := 2
	mc := newMonthContext(Settings{
		Year: 2025, Month: time.January,
		DaySeats: 1, NightSeats: 1,
		SeatOverrides: []SeatOverride{{Day: 1, DaySeats: &two}},
	}.normalized())

	assert.Equal(t, 31*2+1, mc.totalDemand())
}

func TestMonthContext_DateOf(t *testing.T) {
	mc := newMonthContext(Settings{Year: 2025, Month: time.January}.normalized())
	assert.Equal(t, time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), mc.dateOf(15))
}
