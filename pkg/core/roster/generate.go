package roster

import (
	"fmt"
	"strings"
)

// generator owns the mutable state of one run: the calendar context, the
// per-employee counters, and the random source. It lives for exactly one
// Generate call.
type generator struct {
	settings  Settings
	month     monthContext
	employees []Employee
	state     *runState
	rng       *Source

	// primaries and reserves are roster indices; the allowed strict-pass
	// pool is primaries, plus reserves when the precheck admitted them.
	primaries []int
	reserves  []int

	reservesAdmitted bool
}

// Generate runs the strict fill pass over every day of the month, then
// the optional hard-fill pass, and returns one AssignmentRow per
// calendar day in date order plus the demand/supply report.
//
// The run is deterministic for identical input and seed. It never fails
// for sanitized input: unfillable seats are reported through missing
// counts and shortfall diagnostics on the affected rows.
func Generate(employees []Employee, settings Settings, seed uint32) *Schedule {
	settings = settings.normalized()
	mc := newMonthContext(settings)
	report := precheck(employees, mc, settings.AutoReserves)

	g := &generator{
		settings:         settings,
		month:            mc,
		employees:        employees,
		state:            newRunState(mc, len(employees)),
		rng:              NewSource(seed),
		reservesAdmitted: report.ReservesAdmitted,
	}
	for i := range employees {
		if employees[i].Reserve {
			g.reserves = append(g.reserves, i)
		} else {
			g.primaries = append(g.primaries, i)
		}
	}

	rows := make([]AssignmentRow, mc.days)
	for day := 1; day <= mc.days; day++ {
		row := &rows[day-1]
		row.Date = mc.dateOf(day)
		row.Day = day

		// Night fills after day so it sees the day picks as "already
		// assigned today".
		pickedToday := make(map[int]bool)
		g.fillShift(row, day, DayShift, pickedToday)
		g.fillShift(row, day, NightShift, pickedToday)
	}

	if settings.HardFill {
		g.hardFill(rows)
	}

	return &Schedule{Rows: rows, Report: report, Seed: seed}
}

// allowedPool returns the strict-pass candidate indices: primaries
// first, reserves appended only when admitted by the precheck.
func (g *generator) allowedPool() []int {
	pool := make([]int, 0, len(g.primaries)+len(g.reserves))
	pool = append(pool, g.primaries...)
	if g.reservesAdmitted {
		pool = append(pool, g.reserves...)
	}
	return pool
}

// fillShift fills one shift's seats for one day with repeated weighted
// draws from the eligible pool. Accepted candidates leave the pool;
// when no positive-weight candidate remains, the rest of the seats stay
// open and the row records aggregated shortfall diagnostics.
func (g *generator) fillShift(row *AssignmentRow, day int, kind ShiftKind, pickedToday map[int]bool) {
	seats := g.month.seatsFor(day, kind)
	pool := g.allowedPool()
	filled := 0

	for filled < seats {
		idx, ok := g.drawCandidate(pool, kind, day, pickedToday, &pool)
		if !ok {
			break
		}

		*row.ids(kind) = append(*row.ids(kind), g.employees[idx].ID)
		g.state.commit(idx, day, kind)
		pickedToday[idx] = true
		pool = removeIndex(pool, idx)
		filled++
	}

	if filled < seats {
		*row.missing(kind) = seats - filled
		g.setShortfall(row, kind, day, pickedToday)
	}
}

// drawCandidate performs one weighted draw over the pool. The remaining
// pool is written back through poolOut so hard-ceiling discards shrink
// it for the retries and for later seats.
func (g *generator) drawCandidate(pool []int, kind ShiftKind, day int, pickedToday map[int]bool, poolOut *[]int) (int, bool) {
	for len(pool) > 0 {
		// The ceiling gate is recomputed before every draw: the pool
		// boundary moves as candidates are committed or discarded.
		underTargetExists := false
		for _, idx := range pool {
			if g.state.recs[idx].assigned < g.employees[idx].DesiredShifts &&
				g.eligible(idx, kind, day, pickedToday, RelaxNone) {
				underTargetExists = true
				break
			}
		}

		var eligible []int
		var weights []float64
		total := 0.0
		for _, idx := range pool {
			if !g.eligible(idx, kind, day, pickedToday, RelaxNone) {
				continue
			}
			w := g.weight(idx, kind, day, underTargetExists)
			eligible = append(eligible, idx)
			weights = append(weights, w)
			total += w
		}

		if total <= 0 {
			*poolOut = pool
			return 0, false
		}

		// Cumulative selection: walk the pool subtracting weights from
		// a random threshold. The last candidate catches the threshold
		// surviving floating-point residue.
		pick := eligible[len(eligible)-1]
		r := g.rng.Float64() * total
		for i, idx := range eligible {
			r -= weights[i]
			if r <= 0 {
				pick = idx
				break
			}
		}

		// A draw can still land on a ceiling-blocked candidate when the
		// pool boundary shifted under it; discard and retry without it.
		if underTargetExists && g.state.recs[pick].assigned >= g.employees[pick].DesiredShifts {
			pool = removeIndex(pool, pick)
			continue
		}

		*poolOut = pool
		return pick, true
	}

	*poolOut = pool
	return 0, false
}

// setShortfall writes the unmet-demand diagnostic for a shift: one entry
// per distinct violation reason observed across the full allowed pool,
// with occurrence counts, plus a synthetic hard-ceiling reason for
// candidates excluded purely by the ceiling.
func (g *generator) setShortfall(row *AssignmentRow, kind ShiftKind, day int, pickedToday map[int]bool) {
	counts := make(map[string]int)
	var order []string
	record := func(reason string) {
		if counts[reason] == 0 {
			order = append(order, reason)
		}
		counts[reason]++
	}

	pool := g.allowedPool()
	underTargetExists := false
	for _, idx := range pool {
		if g.state.recs[idx].assigned < g.employees[idx].DesiredShifts &&
			g.eligible(idx, kind, day, pickedToday, RelaxNone) {
			underTargetExists = true
			break
		}
	}

	for _, idx := range pool {
		vs := g.violations(idx, kind, day, pickedToday, RelaxNone)
		for _, reason := range vs {
			record(reason)
		}
		if len(vs) == 0 && underTargetExists && g.state.recs[idx].assigned >= g.employees[idx].DesiredShifts {
			record(reasonHardCeiling)
		}
	}

	parts := make([]string, 0, len(order))
	for _, reason := range order {
		parts = append(parts, fmt.Sprintf("%s (%d)", reason, counts[reason]))
	}
	*shortfallField(row, kind) = strings.Join(parts, ", ")
}

func shortfallField(row *AssignmentRow, kind ShiftKind) *string {
	if kind == NightShift {
		return &row.NightShortfall
	}
	return &row.DayShortfall
}

// removeIndex returns the pool without the given roster index, order
// preserved.
func removeIndex(pool []int, idx int) []int {
	for i, v := range pool {
		if v == idx {
			return append(pool[:i:i], pool[i+1:]...)
		}
	}
	return pool
}
