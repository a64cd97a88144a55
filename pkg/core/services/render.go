package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jakechorley/ward-rota/pkg/core/roster"
)

// RenderSchedule formats a generated schedule as a plain-text table for
// the terminal, one line per calendar day, with open seats and their
// diagnostics spelled out.
func RenderSchedule(result *RosterResult) string {
	names := make(map[uuid.UUID]string, len(result.Employees))
	for _, emp := range result.Employees {
		names[emp.ID] = emp.Name
	}

	var b strings.Builder
	report := result.Schedule.Report

	fmt.Fprintf(&b, "Demand %d seats, desired supply %d", report.TotalDemand, report.DesiredSum)
	if report.ReservesAdmitted {
		b.WriteString(", reserves admitted")
	}
	fmt.Fprintf(&b, " (seed %d)\n\n", result.Schedule.Seed)

	for i := range result.Schedule.Rows {
		row := &result.Schedule.Rows[i]
		fmt.Fprintf(&b, "%s  %s  day: %-30s night: %s\n",
			row.Date.Format("2006-01-02"),
			row.Date.Format("Mon"),
			renderShift(names, row.DayIDs, row.MissingDay, row.DayShortfall),
			renderShift(names, row.NightIDs, row.MissingNight, row.NightShortfall))
	}

	return b.String()
}

func renderShift(names map[uuid.UUID]string, ids []uuid.UUID, missing int, shortfall string) string {
	parts := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		parts = append(parts, names[id])
	}
	if missing > 0 {
		note := fmt.Sprintf("%d open", missing)
		if shortfall != "" {
			note += ": " + shortfall
		}
		parts = append(parts, "["+note+"]")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// RenderEmployees formats the loaded roster for the employees command.
func RenderEmployees(employees []roster.Employee) string {
	var b strings.Builder
	for _, emp := range employees {
		role := "primary"
		if emp.Reserve {
			role = "reserve"
		}
		fmt.Fprintf(&b, "%-20s %-8s prefers %-8s desired %d\n",
			emp.Name, role, emp.Preference, emp.DesiredShifts)
	}
	return b.String()
}
