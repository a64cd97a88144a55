package roster

import "fmt"

// RelaxLevel is the escalation stage the hard-fill pass runs eligibility
// under. Levels are ordered: each level relaxes everything the previous
// one does.
type RelaxLevel int

const (
	// RelaxNone applies every constraint.
	RelaxNone RelaxLevel = iota

	// RelaxWeeklyCap ignores the trailing 7-day cap.
	RelaxWeeklyCap

	// RelaxStreak ignores the weekly cap and the consecutive-day limit.
	RelaxStreak
)

// Shortfall diagnostic reasons. Parameterized reasons carry the limit
// that blocked the candidate so the rendered roster reads naturally.
const (
	reasonAlreadyAssigned   = "already assigned today"
	reasonMorningAfterNight = "morning after night"
	reasonHardCeiling       = "hard ceiling (others under target)"
)

func reasonWeeklyCap(cap int) string {
	return fmt.Sprintf("weekly cap %d", cap)
}

func reasonMaxStreak(max int) string {
	return fmt.Sprintf("max streak %d", max)
}

// violations returns the constraints the candidate at roster index idx
// would break working the given shift on the given day, under the given
// relaxation level. An empty result means the candidate is eligible.
//
// Never relaxed, at any level:
//   - already picked today, on either shift
//   - a day shift directly after a night shift, when that rule is on
//
// Relaxable:
//   - trailing 7-day cap (level >= RelaxWeeklyCap)
//   - consecutive-day limit (level >= RelaxStreak)
func (g *generator) violations(idx int, kind ShiftKind, day int, pickedToday map[int]bool, level RelaxLevel) []string {
	var out []string
	rec := &g.state.recs[idx]

	if pickedToday[idx] {
		out = append(out, reasonAlreadyAssigned)
	}

	if rec.streak >= g.settings.MaxStreak && level < RelaxStreak {
		out = append(out, reasonMaxStreak(g.settings.MaxStreak))
	}

	if kind == DayShift && g.settings.NoMorningAfterNight && rec.lastNight == day-1 && rec.lastNight > 0 {
		out = append(out, reasonMorningAfterNight)
	}

	if g.state.workedInWindow(idx, day) >= g.settings.WeeklyCap && level < RelaxWeeklyCap {
		out = append(out, reasonWeeklyCap(g.settings.WeeklyCap))
	}

	return out
}

// eligible reports whether the candidate has no violations under the
// given relaxation level.
func (g *generator) eligible(idx int, kind ShiftKind, day int, pickedToday map[int]bool, level RelaxLevel) bool {
	return len(g.violations(idx, kind, day, pickedToday, level)) == 0
}
