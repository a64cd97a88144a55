package roster

// employeeRecord is the mutable per-employee scheduling state for one
// generation run, stored as an indexed record rather than id-keyed maps
// so lookups stay O(1) and test fixtures stay easy to build.
type employeeRecord struct {
	assigned   int
	streak     int
	lastWorked int // day of month, 0 = never
	lastNight  int // day of last night shift, 0 = never
	weekCounts []int
	worked     []bool // indexed by day of month; [0] unused
}

// runState tracks every employee's counters while the two passes commit
// assignments. It is created fresh per run, mutated only by the passes,
// and discarded once the rows are returned.
type runState struct {
	month monthContext
	recs  []employeeRecord
}

func newRunState(mc monthContext, employees int) *runState {
	st := &runState{
		month: mc,
		recs:  make([]employeeRecord, employees),
	}
	for i := range st.recs {
		st.recs[i].weekCounts = make([]int, mc.weeks)
		st.recs[i].worked = make([]bool, mc.days+1)
	}
	return st
}

// commit records one accepted assignment for the employee at roster
// index idx. Streak follows the lifecycle rule: 1 on first work, +1 when
// the gap since the last worked day is exactly one day, reset to 1
// otherwise.
func (st *runState) commit(idx, day int, kind ShiftKind) {
	rec := &st.recs[idx]

	switch {
	case rec.lastWorked == day-1:
		rec.streak++
	case rec.lastWorked == day:
		// Second commit on the same day cannot happen through the
		// passes (day uniqueness), but keep the counter stable if it
		// ever does.
	default:
		rec.streak = 1
	}

	rec.lastWorked = day
	rec.worked[day] = true
	if kind == NightShift {
		rec.lastNight = day
	}
	rec.assigned++
	rec.weekCounts[st.month.weekOf(day)]++
}

// workedOn reports whether the employee worked the given day of month.
// Days outside the month report false.
func (st *runState) workedOn(idx, day int) bool {
	if day < 1 || day > st.month.days {
		return false
	}
	return st.recs[idx].worked[day]
}

// workedInWindow counts worked days in the trailing 7-day window
// d-7..d-1, used for the weekly cap.
func (st *runState) workedInWindow(idx, day int) int {
	count := 0
	for d := day - 7; d <= day-1; d++ {
		if st.workedOn(idx, d) {
			count++
		}
	}
	return count
}
