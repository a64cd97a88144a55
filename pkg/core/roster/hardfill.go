package roster

// Hard fill: a deterministic post-process over seats the strict pass
// left open. Constraints are relaxed in a fixed escalation order —
// nothing, then the weekly cap, then the streak limit — stopping at the
// first stage that yields a candidate. The two safety rules (no
// double-booking within a day, no day shift directly after a night
// shift) hold at every stage. A seat that survives all three stages
// stays blank for the run.
//
// Unlike the strict pass there is no randomness here: candidates are
// chosen greedily by largest remaining-desired gap, ties broken by
// lowest assigned count.

var relaxStages = []RelaxLevel{RelaxNone, RelaxWeeklyCap, RelaxStreak}

// hardFill walks the rows in date order and fills missing seats one at a
// time, mutating the same run state the strict pass used and
// reconciling each row's missing count per successful fill.
func (g *generator) hardFill(rows []AssignmentRow) {
	for i := range rows {
		row := &rows[i]
		for _, kind := range []ShiftKind{DayShift, NightShift} {
			for *row.missing(kind) > 0 {
				idx, ok := g.hardFillCandidate(rows, row, kind)
				if !ok {
					break
				}

				*row.ids(kind) = append(*row.ids(kind), g.employees[idx].ID)
				g.state.commit(idx, row.Day, kind)
				*row.missing(kind)--
			}
		}
	}
}

// hardFillCandidate picks one candidate for a seat, escalating through
// the relaxation stages. The pool is everyone — primaries and reserves —
// minus anyone already on either shift of the day.
func (g *generator) hardFillCandidate(rows []AssignmentRow, row *AssignmentRow, kind ShiftKind) (int, bool) {
	pickedToday := make(map[int]bool)
	for idx := range g.employees {
		if row.HasAnyShift(g.employees[idx].ID) {
			pickedToday[idx] = true
		}
	}

	for _, level := range relaxStages {
		var pool []int
		for idx := range g.employees {
			if !g.eligible(idx, kind, row.Day, pickedToday, level) {
				continue
			}
			if !g.safeAcrossDays(rows, row.Day, kind, idx) {
				continue
			}
			pool = append(pool, idx)
		}
		if len(pool) == 0 {
			continue
		}

		// Prefer candidates still under their desired target; fall back
		// to the full stage pool when everyone is at or over.
		var under []int
		for _, idx := range pool {
			if g.state.recs[idx].assigned < g.employees[idx].DesiredShifts {
				under = append(under, idx)
			}
		}
		if len(under) > 0 {
			pool = under
		}

		best := pool[0]
		for _, idx := range pool[1:] {
			gap := g.employees[idx].DesiredShifts - g.state.recs[idx].assigned
			bestGap := g.employees[best].DesiredShifts - g.state.recs[best].assigned
			if gap > bestGap ||
				(gap == bestGap && g.state.recs[idx].assigned < g.state.recs[best].assigned) {
				best = idx
			}
		}
		return best, true
	}

	return 0, false
}

// safeAcrossDays enforces the morning-after-night rule against the rows
// themselves. Hard fill revisits days out of commit order, so the
// lastNight counter alone cannot vouch for either direction: filling a
// day seat must check the previous row's night list, and filling a
// night seat must not create a conflict with the next row's day list.
func (g *generator) safeAcrossDays(rows []AssignmentRow, day int, kind ShiftKind, idx int) bool {
	if !g.settings.NoMorningAfterNight {
		return true
	}
	id := g.employees[idx].ID

	if kind == DayShift && day > 1 && rows[day-2].Has(NightShift, id) {
		return false
	}
	if kind == NightShift && day < len(rows) && rows[day].Has(DayShift, id) {
		return false
	}
	return true
}
