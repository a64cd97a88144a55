package services

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-rota/internal/config"
	"github.com/jakechorley/ward-rota/pkg/core/roster"
)

// RosterResult carries a generated schedule together with the loaded
// roster, so callers can map assignment ids back to names.
type RosterResult struct {
	Schedule  *roster.Schedule
	Employees []roster.Employee

	// SeedPinned is true when the seed came from config or a flag
	// rather than the entropy source.
	SeedPinned bool
}

// GenerateRoster builds the engine input from configuration, resolves
// the seed (flag override, then config, then fresh entropy), and runs
// the generation.
func GenerateRoster(cfg *config.Config, logger *zap.Logger, seedOverride *uint32) (*RosterResult, error) {
	employees := BuildEmployees(cfg)

	settings, err := buildSettings(cfg)
	if err != nil {
		return nil, err
	}

	seed, pinned, err := resolveSeed(cfg, seedOverride)
	if err != nil {
		return nil, err
	}

	logger.Debug("Generating roster",
		zap.Int("year", cfg.Year),
		zap.Int("month", cfg.Month),
		zap.Int("employees", len(employees)),
		zap.Uint32("seed", seed),
		zap.Bool("seed_pinned", pinned),
		zap.Bool("hard_fill", settings.HardFill))

	sched := roster.Generate(employees, settings, seed)

	open := 0
	for _, row := range sched.Rows {
		open += row.MissingDay + row.MissingNight
	}
	logger.Info("Roster generated",
		zap.Int("days", len(sched.Rows)),
		zap.Int("total_demand", sched.Report.TotalDemand),
		zap.Int("desired_sum", sched.Report.DesiredSum),
		zap.Bool("reserves_admitted", sched.Report.ReservesAdmitted),
		zap.Int("open_seats", open))

	if open > 0 && sched.Report.DesiredSum < sched.Report.TotalDemand {
		logger.Warn("Demand exceeds desired supply; roster has open seats",
			zap.Int("shortfall", sched.Report.TotalDemand-sched.Report.DesiredSum))
	}

	return &RosterResult{
		Schedule:   sched,
		Employees:  employees,
		SeedPinned: pinned,
	}, nil
}

// BuildEmployees converts roster entries into engine employees, minting
// a fresh id per entry. Desired counts are clamped here; the engine
// assumes sanitized input.
func BuildEmployees(cfg *config.Config) []roster.Employee {
	employees := make([]roster.Employee, 0, len(cfg.Employees))
	for _, entry := range cfg.Employees {
		desired := entry.DesiredShifts
		if desired < 0 {
			desired = 0
		}
		employees = append(employees, roster.Employee{
			ID:            uuid.New(),
			Name:          entry.Name,
			Preference:    parsePreference(entry.Preference),
			DesiredShifts: desired,
			Reserve:       entry.Reserve,
		})
	}
	return employees
}

func parsePreference(s string) roster.Preference {
	switch s {
	case "day":
		return roster.PreferDay
	case "night":
		return roster.PreferNight
	default:
		return roster.PreferNeither
	}
}

// buildSettings maps configuration onto engine settings, expanding each
// seat rule's recurrence against the month's calendar days.
func buildSettings(cfg *config.Config) (roster.Settings, error) {
	settings := roster.Settings{
		Year:                cfg.Year,
		Month:               time.Month(cfg.Month),
		DaySeats:            cfg.DaySeats,
		NightSeats:          cfg.NightSeats,
		NoMorningAfterNight: cfg.NoMorningAfterNight,
		WeeklyCap:           cfg.WeeklyCap,
		MaxStreak:           cfg.MaxStreak,
		WeekSpread:          cfg.WeekSpreadEnabled(),
		AutoReserves:        cfg.AutoReserves,
		HardFill:            cfg.HardFill,
	}

	overrides, err := expandSeatRules(cfg)
	if err != nil {
		return roster.Settings{}, err
	}
	settings.SeatOverrides = overrides

	return settings, nil
}

// expandSeatRules evaluates each rule's rrule over the month and emits
// one engine override per matched calendar day.
func expandSeatRules(cfg *config.Config) ([]roster.SeatOverride, error) {
	if len(cfg.SeatRules) == 0 {
		return nil, nil
	}

	monthStart := time.Date(cfg.Year, time.Month(cfg.Month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	var overrides []roster.SeatOverride
	for i, rule := range cfg.SeatRules {
		r, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rrule in seatOverrides[%d]: %w", i, err)
		}
		r.DTStart(monthStart)

		for _, date := range r.Between(monthStart, monthEnd, true) {
			overrides = append(overrides, roster.SeatOverride{
				Day:        date.Day(),
				DaySeats:   rule.DaySeats,
				NightSeats: rule.NightSeats,
			})
		}
	}

	return overrides, nil
}

// resolveSeed picks the run's seed: explicit override first, then the
// config pin, then fresh entropy.
func resolveSeed(cfg *config.Config, seedOverride *uint32) (seed uint32, pinned bool, err error) {
	if seedOverride != nil {
		return *seedOverride, true, nil
	}
	if cfg.Seed != nil {
		return *cfg.Seed, true, nil
	}

	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, false, fmt.Errorf("failed to draw seed: %w", err)
	}
	return binary.LittleEndian.Uint32(buf[:]), false, nil
}
