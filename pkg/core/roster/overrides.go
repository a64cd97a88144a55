package roster

import "github.com/google/uuid"

// Manual edits to a generated schedule. These operate on the output rows
// only and never re-enter the engine's constraint logic or state — a
// schedule is immutable to the engine once returned. Callers get exactly
// one guarantee enforced for them: per-day uniqueness. Everything else
// (streaks, fairness counters) is deliberately left stale on manual
// edits.

// AssignEmployee puts an employee on the given day's shift, decrementing
// the row's missing count. The call is a silent no-op — returning false —
// when the employee is already on either shift of that day, preserving
// day uniqueness. The day is 1-based; out-of-range days are a no-op.
func AssignEmployee(rows []AssignmentRow, day int, kind ShiftKind, id uuid.UUID) bool {
	if day < 1 || day > len(rows) {
		return false
	}
	row := &rows[day-1]

	if row.HasAnyShift(id) {
		return false
	}

	*row.ids(kind) = append(*row.ids(kind), id)
	if *row.missing(kind) > 0 {
		*row.missing(kind)--
	}
	return true
}

// RemoveEmployee takes an employee off the given day's shift and
// increments the row's missing count. Returns false when the employee
// was not on that shift.
func RemoveEmployee(rows []AssignmentRow, day int, kind ShiftKind, id uuid.UUID) bool {
	if day < 1 || day > len(rows) {
		return false
	}
	row := &rows[day-1]

	ids := *row.ids(kind)
	for i, assigned := range ids {
		if assigned == id {
			*row.ids(kind) = append(ids[:i], ids[i+1:]...)
			*row.missing(kind)++
			return true
		}
	}
	return false
}
