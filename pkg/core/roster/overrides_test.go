package roster

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func emptyRows(days int) []AssignmentRow {
	rows := make([]AssignmentRow, days)
	for d := range rows {
		rows[d].Day = d + 1
	}
	return rows
}

func TestAssignEmployee_FillsSeatAndDecrementsMissing(t *testing.T) {
	rows := emptyRows(31)
	rows[4].MissingDay = 2
	id := uuid.New()

	assert.True(t, AssignEmployee(rows, 5, DayShift, id))
	assert.True(t, rows[4].Has(DayShift, id))
	assert.Equal(t, 1, rows[4].MissingDay)
}

func TestAssignEmployee_NoOpWhenOnOtherShift(t *testing.T) {
	rows := emptyRows(31)
	id := uuid.New()
	rows[4].NightIDs = []uuid.UUID{id}
	rows[4].MissingDay = 1

	assert.False(t, AssignEmployee(rows, 5, DayShift, id))
	assert.False(t, rows[4].Has(DayShift, id))
	assert.Equal(t, 1, rows[4].MissingDay)
}

func TestAssignEmployee_NoOpWhenAlreadyOnShift(t *testing.T) {
	rows := emptyRows(31)
	id := uuid.New()
	rows[4].DayIDs = []uuid.UUID{id}

	assert.False(t, AssignEmployee(rows, 5, DayShift, id))
	assert.Len(t, rows[4].DayIDs, 1)
}

func TestAssignEmployee_MissingNeverGoesNegative(t *testing.T) {
	rows := emptyRows(31)

	assert.True(t, AssignEmployee(rows, 5, NightShift, uuid.New()))
	assert.Zero(t, rows[4].MissingNight)
}

func TestAssignEmployee_OutOfRangeDay(t *testing.T) {
	rows := emptyRows(31)

	assert.False(t, AssignEmployee(rows, 0, DayShift, uuid.New()))
	assert.False(t, AssignEmployee(rows, 32, DayShift, uuid.New()))
}

func TestRemoveEmployee_RemovesAndIncrementsMissing(t *testing.T) {
	rows := emptyRows(31)
	keep := uuid.New()
	id := uuid.New()
	rows[4].DayIDs = []uuid.UUID{keep, id}

	assert.True(t, RemoveEmployee(rows, 5, DayShift, id))
	assert.Equal(t, []uuid.UUID{keep}, rows[4].DayIDs)
	assert.Equal(t, 1, rows[4].MissingDay)
}

func TestRemoveEmployee_NoOpWhenAbsent(t *testing.T) {
	rows := emptyRows(31)

	assert.False(t, RemoveEmployee(rows, 5, DayShift, uuid.New()))
	assert.Zero(t, rows[4].MissingDay)
}
