package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestState(t *testing.T, employees int) *runState {
	t.Helper()
	mc := newMonthContext(Settings{Year: 2025, Month: time.January}.normalized())
	return newRunState(mc, employees)
}

func TestRunState_CommitFirstShift(t *testing.T) {
	st := newTestState(t, 1)

	st.commit(0, 10, DayShift)

	rec := st.recs[0]
	assert.Equal(t, 1, rec.assigned)
	assert.Equal(t, 1, rec.streak)
	assert.Equal(t, 10, rec.lastWorked)
	assert.Equal(t, 0, rec.lastNight)
	assert.True(t, st.workedOn(0, 10))
}

func TestRunState_StreakIncrementsOnConsecutiveDays(t *testing.T) {
	st := newTestState(t, 1)

	st.commit(0, 5, DayShift)
	st.commit(0, 6, NightShift)
	st.commit(0, 7, DayShift)

	assert.Equal(t, 3, st.recs[0].streak)
	assert.Equal(t, 3, st.recs[0].assigned)
	assert.Equal(t, 6, st.recs[0].lastNight)
}

func TestRunState_StreakResetsAfterGap(t *testing.T) {
	st := newTestState(t, 1)

	st.commit(0, 5, DayShift)
	st.commit(0, 6, DayShift)
	st.commit(0, 9, DayShift)

	assert.Equal(t, 1, st.recs[0].streak)
}

func TestRunState_WeekCounts(t *testing.T) {
	st := newTestState(t, 1)

	// Jan 2025: days 1-4 are week 0, day 5 opens week 1.
	st.commit(0, 1, DayShift)
	st.commit(0, 4, DayShift)
	st.commit(0, 5, DayShift)

	assert.Equal(t, 2, st.recs[0].weekCounts[0])
	assert.Equal(t, 1, st.recs[0].weekCounts[1])
}

func TestRunState_WorkedInWindow(t *testing.T) {
	st := newTestState(t, 1)

	for day := 1; day <= 5; day++ {
		st.commit(0, day, DayShift)
	}

	// Window is d-7..d-1.
	assert.Equal(t, 5, st.workedInWindow(0, 6))
	assert.Equal(t, 5, st.workedInWindow(0, 8))
	assert.Equal(t, 2, st.workedInWindow(0, 11))
	assert.Equal(t, 0, st.workedInWindow(0, 13))
}

func TestRunState_WorkedOnIgnoresOutOfMonthDays(t *testing.T) {
	st := newTestState(t, 1)

	assert.False(t, st.workedOn(0, 0))
	assert.False(t, st.workedOn(0, -3))
	assert.False(t, st.workedOn(0, 32))
}
