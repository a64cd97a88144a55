package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/ward-rota/internal/config"
)

func testConfig() *config.Config {
	seed := uint32(42)
	return &config.Config{
		Year: 2025, Month: 1,
		DaySeats: 1, NightSeats: 1,
		NoMorningAfterNight: true,
		WeeklyCap:           5,
		MaxStreak:           5,
		Seed:                &seed,
		Employees: []config.EmployeeEntry{
			{Name: "Alice", Preference: "day", DesiredShifts: 10},
			{Name: "Bob", Preference: "night", DesiredShifts: 10},
			{Name: "Carol", DesiredShifts: 10},
			{Name: "Dan", Reserve: true},
		},
	}
}

func TestGenerateRoster_CoversMonth(t *testing.T) {
	result, err := GenerateRoster(testConfig(), zap.NewNop(), nil)
	require.NoError(t, err)

	assert.Len(t, result.Schedule.Rows, 31)
	assert.Len(t, result.Employees, 4)
	assert.True(t, result.SeedPinned)
	assert.Equal(t, uint32(42), result.Schedule.Seed)
}

func TestGenerateRoster_SeedOverrideWinsOverConfig(t *testing.T) {
	override := uint32(7)
	result, err := GenerateRoster(testConfig(), zap.NewNop(), &override)
	require.NoError(t, err)

	assert.Equal(t, uint32(7), result.Schedule.Seed)
	assert.True(t, result.SeedPinned)
}

func TestGenerateRoster_FreshSeedWhenUnpinned(t *testing.T) {
	cfg := testConfig()
	cfg.Seed = nil

	result, err := GenerateRoster(cfg, zap.NewNop(), nil)
	require.NoError(t, err)
	assert.False(t, result.SeedPinned)
}

func TestGenerateRoster_SeatRuleExpansion(t *testing.T) {
	two := 2
	cfg := testConfig()
	cfg.SeatRules = []config.SeatRule{
		{RRule: "FREQ=WEEKLY;BYDAY=SA,SU", DaySeats: &two},
	}

	result, err := GenerateRoster(cfg, zap.NewNop(), nil)
	require.NoError(t, err)

	// January 2025 has 4 Saturdays and 4 Sundays: 8 extra day seats.
	assert.Equal(t, 62+8, result.Schedule.Report.TotalDemand)

	// Sunday Jan 5 carries two day seats (filled or open).
	row := result.Schedule.Rows[4]
	assert.Equal(t, time.Saturday, result.Schedule.Rows[3].Date.Weekday())
	assert.Equal(t, 2, len(row.DayIDs)+row.MissingDay)
}

func TestBuildEmployees_DefaultsAndClamps(t *testing.T) {
	cfg := &config.Config{
		Employees: []config.EmployeeEntry{
			{Name: "Eve", Preference: "", DesiredShifts: -2},
		},
	}

	employees := BuildEmployees(cfg)
	require.Len(t, employees, 1)
	assert.Equal(t, "Eve", employees[0].Name)
	assert.Zero(t, employees[0].DesiredShifts)
	assert.NotEqual(t, employees[0].ID.String(), "00000000-0000-0000-0000-000000000000")
}

func TestRenderSchedule_ShowsNamesAndOpenSeats(t *testing.T) {
	result, err := GenerateRoster(testConfig(), zap.NewNop(), nil)
	require.NoError(t, err)

	out := RenderSchedule(result)
	assert.Contains(t, out, "2025-01-01")
	assert.Contains(t, out, "2025-01-31")
	assert.Contains(t, out, "seed 42")
	// Demand 62 vs desired 30 guarantees open seats in the rendering.
	assert.Contains(t, out, "open")
}

func TestRenderEmployees_ListsRoles(t *testing.T) {
	result, err := GenerateRoster(testConfig(), zap.NewNop(), nil)
	require.NoError(t, err)

	out := RenderEmployees(result.Employees)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "reserve")
	assert.Contains(t, out, "primary")
}
