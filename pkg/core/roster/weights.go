package roster

// Candidate scoring for the strict pass. The final weight is a product
// of independent bias factors, so any single zero factor excludes the
// candidate outright while the rest gently reorder the pool:
//
//   - preference: 1.0 on a match, 0.8 for "neither", 0.0 for the
//     opposite shift (opposite-preference candidates never win a strict
//     pick)
//   - desired bias: rewards remaining need, punishes being at/over target
//   - fairness: 1/(1+assigned), discourages already-busy people
//   - rest bias: 0.5 when the previous day was worked
//   - spread bias: pushes toward the per-week target when enabled
//   - streak bias: favors starting, continuing, and finishing work
//     blocks; zero once the streak limit is hit
//   - jitter: 0.95..1.05 draw to break ties and avoid deterministic
//     starvation

func preferenceWeight(p Preference, kind ShiftKind) float64 {
	switch {
	case p.matches(kind):
		return 1.0
	case p.opposes(kind):
		return 0.0
	default:
		return 0.8
	}
}

// desiredBias scales with remaining need: the further below target, the
// stronger the pull, dropping sharply once the target is met.
func desiredBias(desired, assigned int) float64 {
	if desired == 0 {
		return 0.9
	}
	remaining := desired - assigned
	switch {
	case remaining > 0:
		extra := remaining - 1
		if extra > 4 {
			extra = 4
		}
		return 1.6 + 0.3*float64(extra)
	case remaining == 0:
		return 0.5
	default:
		return 0.25
	}
}

func fairnessBias(assigned int) float64 {
	return 1.0 / float64(1+assigned)
}

// spreadBias compares the employee's count in the current week against
// the fractional per-week target desired/weeks.
func spreadBias(weekCount, desired, weeks int) float64 {
	target := float64(desired) / float64(weeks)
	count := float64(weekCount)
	switch {
	case count < target:
		return 1.2
	case count > target:
		return 0.7
	default:
		return 1.0
	}
}

// streakBias encourages coherent work blocks. The limit acts as a hard
// exclusion here as well, independent of the eligibility check.
func streakBias(streak, maxStreak, remaining int) float64 {
	switch {
	case streak >= maxStreak:
		return 0.0
	case remaining <= 2 && streak >= 1:
		// Close to target: finish the current block.
		return 1.3
	case streak == 0:
		return 1.2
	default:
		return 1.1
	}
}

// weight scores an eligible candidate for a shift on a day.
// underTargetExists is the hard-ceiling gate: while any eligible
// under-target candidate remains in the allowed pool, candidates at or
// over their desired count score zero regardless of every other factor.
//
// Calling weight advances the run's random stream (jitter), so the call
// order is part of the deterministic draw sequence.
func (g *generator) weight(idx int, kind ShiftKind, day int, underTargetExists bool) float64 {
	emp := &g.employees[idx]
	rec := &g.state.recs[idx]

	if underTargetExists && rec.assigned >= emp.DesiredShifts {
		return 0
	}

	w := preferenceWeight(emp.Preference, kind)
	w *= desiredBias(emp.DesiredShifts, rec.assigned)
	w *= fairnessBias(rec.assigned)

	if g.state.workedOn(idx, day-1) {
		w *= 0.5
	}

	if g.settings.WeekSpread && emp.DesiredShifts > 0 {
		w *= spreadBias(rec.weekCounts[g.month.weekOf(day)], emp.DesiredShifts, g.month.weeks)
	}

	w *= streakBias(rec.streak, g.settings.MaxStreak, emp.DesiredShifts-rec.assigned)
	w *= 0.95 + g.rng.Float64()*0.1

	if w < 0 {
		return 0
	}
	return w
}
