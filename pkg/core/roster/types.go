// Package roster generates a month's day/night duty roster from an employee
// list under fairness, rest, and coverage constraints.
//
// Generation is a single synchronous computation over a bounded input. It
// never fails for sanitized input: when demand exceeds what the constraints
// allow, seats are left blank and the affected rows carry human-readable
// shortfall diagnostics instead.
package roster

import (
	"time"

	"github.com/google/uuid"
)

// ShiftKind identifies one of the two daily shifts.
type ShiftKind int

const (
	DayShift ShiftKind = iota
	NightShift
)

func (k ShiftKind) String() string {
	if k == NightShift {
		return "night"
	}
	return "day"
}

// Preference is an employee's stated shift preference.
type Preference string

const (
	PreferDay     Preference = "day"
	PreferNight   Preference = "night"
	PreferNeither Preference = "neither"
)

// matches reports whether the preference names the given shift kind.
func (p Preference) matches(k ShiftKind) bool {
	return (p == PreferDay && k == DayShift) || (p == PreferNight && k == NightShift)
}

// opposes reports whether the preference names the opposite shift kind.
// Opposed candidates are effectively excluded from that shift in the
// strict pass (their weight is zero).
func (p Preference) opposes(k ShiftKind) bool {
	return (p == PreferDay && k == NightShift) || (p == PreferNight && k == DayShift)
}

// Employee is one roster member.
type Employee struct {
	// ID is a stable opaque identity, minted at roster load.
	ID uuid.UUID

	// Name is the display name shown in rendered rosters.
	Name string

	// Preference is the preferred shift kind ("neither" accepts both).
	Preference Preference

	// DesiredShifts is the target number of shifts for the month. The
	// strict pass will not push an employee past this target while any
	// eligible under-target candidate remains in the allowed pool.
	DesiredShifts int

	// Reserve marks backup staff. Reserves are excluded from the strict
	// pass unless auto-reserves is enabled and aggregate primary supply
	// covers demand; they always participate in the hard-fill pass.
	Reserve bool
}

// SeatOverride changes the seat counts for a single calendar day.
// A nil field leaves the corresponding default in place.
type SeatOverride struct {
	Day        int
	DaySeats   *int
	NightSeats *int
}

// Settings is the engine's input configuration. The calling layer is
// responsible for sanitizing values (see internal/config); normalized()
// applies defaults and clamps so that a zero value is still safe.
type Settings struct {
	Year  int
	Month time.Month

	// DaySeats and NightSeats are the default seats per calendar day.
	DaySeats   int
	NightSeats int

	// SeatOverrides adjusts seats on specific days (e.g. weekends).
	SeatOverrides []SeatOverride

	// NoMorningAfterNight forbids a day shift immediately following a
	// night shift. This is a safety rule: it is never relaxed.
	NoMorningAfterNight bool

	// WeeklyCap is the maximum worked days within any trailing 7-day
	// window. Minimum 1, default 5.
	WeeklyCap int

	// MaxStreak is the maximum consecutive worked days. Clamped to
	// 1..7, default 5.
	MaxStreak int

	// WeekSpread nudges each employee's shifts toward an even
	// distribution across the weeks of the month.
	WeekSpread bool

	// AutoReserves admits reserves into the strict pass, provided the
	// primaries' aggregate desired supply already covers demand.
	AutoReserves bool

	// HardFill enables the relaxation pass over seats the strict pass
	// left open.
	HardFill bool
}

const (
	defaultWeeklyCap = 5
	defaultMaxStreak = 5
	maxStreakCeiling = 7
)

// normalized returns a copy with defaults applied and values clamped to
// their valid ranges.
func (s Settings) normalized() Settings {
	if s.WeeklyCap < 1 {
		s.WeeklyCap = defaultWeeklyCap
	}
	if s.MaxStreak < 1 {
		s.MaxStreak = defaultMaxStreak
	}
	if s.MaxStreak > maxStreakCeiling {
		s.MaxStreak = maxStreakCeiling
	}
	if s.DaySeats < 0 {
		s.DaySeats = 0
	}
	if s.NightSeats < 0 {
		s.NightSeats = 0
	}
	return s
}

// AssignmentRow is one calendar day of the generated roster.
type AssignmentRow struct {
	// Date is midnight UTC of the calendar day.
	Date time.Time

	// Day is the 1-based day of month.
	Day int

	// DayIDs and NightIDs are the assigned employees in pick order.
	DayIDs   []uuid.UUID
	NightIDs []uuid.UUID

	// MissingDay and MissingNight count seats left unfilled.
	MissingDay   int
	MissingNight int

	// DayShortfall and NightShortfall explain why seats stayed open,
	// aggregated per violation reason, e.g.
	// "weekly cap 5 (3), morning after night (1)".
	DayShortfall   string
	NightShortfall string
}

// ids returns the assignment list for the given shift kind.
func (r *AssignmentRow) ids(kind ShiftKind) *[]uuid.UUID {
	if kind == NightShift {
		return &r.NightIDs
	}
	return &r.DayIDs
}

// missing returns a pointer to the missing-seat counter for the kind.
func (r *AssignmentRow) missing(kind ShiftKind) *int {
	if kind == NightShift {
		return &r.MissingNight
	}
	return &r.MissingDay
}

// Has reports whether the employee appears on the given shift.
func (r *AssignmentRow) Has(kind ShiftKind, id uuid.UUID) bool {
	for _, assigned := range *r.ids(kind) {
		if assigned == id {
			return true
		}
	}
	return false
}

// HasAnyShift reports whether the employee appears on either shift of
// this day.
func (r *AssignmentRow) HasAnyShift(id uuid.UUID) bool {
	return r.Has(DayShift, id) || r.Has(NightShift, id)
}

// RunReport is the demand-vs-supply metadata attached to a run. It lets
// consumers explain blanks: when DesiredSum is below TotalDemand the
// roster cannot be complete without hard fill.
type RunReport struct {
	// TotalDemand is the month-wide seat count (day + night, all days).
	TotalDemand int

	// DesiredSum is the sum of desired shifts over non-reserve employees.
	DesiredSum int

	// ReservesAdmitted records whether reserves were allowed into the
	// strict pass's candidate pool.
	ReservesAdmitted bool
}

// Schedule is the output of one generation run.
type Schedule struct {
	// Rows holds one AssignmentRow per calendar day, in date order.
	Rows []AssignmentRow

	// Report is the demand/supply precheck result for this run.
	Report RunReport

	// Seed is the sequence-generator seed the run used. Re-running with
	// the same input and seed reproduces the schedule exactly.
	Seed uint32
}
