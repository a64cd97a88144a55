package roster

// precheck compares month-wide demand against the primaries' aggregate
// desired supply and decides whether reserves join the strict pass.
// Reserves are admitted only when the caller asked for it AND the
// primaries alone could cover demand; otherwise reserves stay out of the
// strict pass and participate through hard fill or manual edits.
func precheck(employees []Employee, mc monthContext, autoReserves bool) RunReport {
	report := RunReport{TotalDemand: mc.totalDemand()}

	for i := range employees {
		if employees[i].Reserve {
			continue
		}
		report.DesiredSum += employees[i].DesiredShifts
	}

	report.ReservesAdmitted = autoReserves && report.DesiredSum >= report.TotalDemand
	return report
}
