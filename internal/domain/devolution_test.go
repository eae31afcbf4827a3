package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeLateFee(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		daysLate int
		rate     float64
		want     float64
	}{
		{"Five days late", 1000, 5, 0.10, 500},
		{"On time", 1000, 0, 0.10, 0},
		{"Negative days", 1000, -3, 0.10, 0},
		{"Different rate", 2000, 2, 0.05, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLateFee(tt.value, tt.daysLate, tt.rate))
		})
	}
}

func TestIsLateAndDaysLate(t *testing.T) {
	t.Run("Returned after expected", func(t *testing.T) {
		d := &Devolution{Date: "2025-03-15"}
		assert.True(t, IsLate(d, "2025-03-10"))
		assert.Equal(t, 5, DaysLate(d, "2025-03-10"))
	})

	t.Run("Returned on time", func(t *testing.T) {
		d := &Devolution{Date: "2025-03-10"}
		assert.False(t, IsLate(d, "2025-03-10"))
		assert.Equal(t, 0, DaysLate(d, "2025-03-10"))
	})

	t.Run("Returned early", func(t *testing.T) {
		d := &Devolution{Date: "2025-03-08"}
		assert.False(t, IsLate(d, "2025-03-10"))
		assert.Equal(t, 0, DaysLate(d, "2025-03-10"))
	})

	t.Run("Malformed dates fail safe", func(t *testing.T) {
		d := &Devolution{Date: "not-a-date"}
		assert.False(t, IsLate(d, "2025-03-10"))
		assert.Equal(t, 0, DaysLate(d, "2025-03-10"))

		d = &Devolution{Date: "2025-03-15"}
		assert.False(t, IsLate(d, "garbage"))
		assert.Equal(t, 0, DaysLate(d, "garbage"))
	})
}

func TestDevolutionStatusPredicates(t *testing.T) {
	assert.True(t, IsDevolutionPending(&Devolution{Status: DevolutionPending}))
	assert.True(t, IsDevolutionReturned(&Devolution{Status: DevolutionReturned}))
	assert.True(t, IsDevolutionDamaged(&Devolution{Status: DevolutionDamaged}))
	assert.True(t, IsDevolutionMissing(&Devolution{Status: DevolutionMissing}))
	assert.True(t, IsDevolutionProcessed(&Devolution{Status: DevolutionProcessed}))
	assert.False(t, IsDevolutionPending(&Devolution{Status: DevolutionReturned}))
}

func TestHasPenalty(t *testing.T) {
	assert.True(t, HasPenalty(&Devolution{Penalty: 50}))
	assert.False(t, HasPenalty(&Devolution{Penalty: 0}))
	assert.False(t, HasPenalty(&Devolution{}))
}

func TestDevolutionStatusBadge(t *testing.T) {
	tests := []struct {
		status DevolutionStatus
		color  string
		icon   string
	}{
		{DevolutionReturned, "success", "checkmark-circle"},
		{DevolutionProcessed, "success", "checkmark-done-circle"},
		{DevolutionDamaged, "danger", "warning"},
		{DevolutionMissing, "danger", "close-circle"},
		{DevolutionPending, "warning", "time"},
		{DevolutionStatus("???"), "warning", "time"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			badge := DevolutionStatusBadge(tt.status)
			assert.Equal(t, tt.color, badge.Color)
			assert.Equal(t, tt.icon, badge.Icon)
		})
	}
}

func TestComputeDevolutionStatistics(t *testing.T) {
	items := []Devolution{
		{Status: DevolutionPending},
		{Status: DevolutionReturned, Penalty: 150},
		{Status: DevolutionDamaged, Penalty: 300},
		{Status: DevolutionMissing},
		{Status: DevolutionProcessed},
	}
	stats := ComputeDevolutionStatistics(items)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Returned)
	assert.Equal(t, 1, stats.Damaged)
	assert.Equal(t, 1, stats.Missing)
	assert.Equal(t, 450.0, stats.TotalPenalties)
}

func TestDevolutionFilters(t *testing.T) {
	items := []Devolution{
		{ID: 1, ContractID: 10, ClientID: 100, EquipmentID: 7, Status: DevolutionPending},
		{ID: 2, ContractID: 10, ClientID: 200, EquipmentID: 8, Status: DevolutionReturned},
		{ID: 3, ContractID: 20, ClientID: 100, EquipmentID: 7, Status: DevolutionPending},
	}

	assert.Len(t, FilterDevolutionsByStatus(items, DevolutionPending), 2)
	assert.Len(t, FilterDevolutionsByContract(items, 10), 2)
	assert.Len(t, FilterDevolutionsByClient(items, 100), 2)
	assert.Len(t, FilterDevolutionsByEquipment(items, 8), 1)

	// Filters never mutate the input.
	assert.Equal(t, int32(1), items[0].ID)
	assert.Len(t, items, 3)
}

func TestSortDevolutionsByDate(t *testing.T) {
	items := []Devolution{
		{ID: 1, Date: "2025-03-01"},
		{ID: 2, Date: "2025-03-15"},
		{ID: 3, Date: "bogus"},
		{ID: 4, Date: "2025-03-10"},
	}
	sorted := SortDevolutionsByDate(items)
	assert.Equal(t, int32(2), sorted[0].ID)
	assert.Equal(t, int32(4), sorted[1].ID)
	assert.Equal(t, int32(1), sorted[2].ID)
	assert.Equal(t, int32(3), sorted[3].ID) // unparseable sinks last

	// Original order intact.
	assert.Equal(t, int32(1), items[0].ID)
}

func TestMarkProcessedAndApplyPenalty(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	original := Devolution{ID: 1, Status: DevolutionReturned}

	processed := MarkProcessed(original, now)
	assert.Equal(t, DevolutionProcessed, processed.Status)
	assert.Equal(t, "2025-03-10T12:00:00Z", processed.UpdatedAt)
	assert.Equal(t, DevolutionReturned, original.Status)

	fined := ApplyPenalty(original, 250, "atraso de 5 dias", now)
	assert.Equal(t, 250.0, fined.Penalty)
	assert.Equal(t, "atraso de 5 dias", fined.RejectionReason)
	assert.Equal(t, 0.0, original.Penalty)
}

func TestGenerateDevolutionNumber(t *testing.T) {
	now := time.UnixMilli(1741617000123)
	num := GenerateDevolutionNumber(now)
	assert.True(t, strings.HasPrefix(num, "DEV000123"))
	assert.Len(t, num, 12) // DEV + 6 clock digits + 3 random digits
}

func TestValidDevolutionDraft(t *testing.T) {
	valid := &Devolution{ContractID: 1, EquipmentID: 2, Quantity: 1, Status: DevolutionPending}
	assert.True(t, ValidDevolutionDraft(valid))

	assert.False(t, ValidDevolutionDraft(&Devolution{EquipmentID: 2, Quantity: 1, Status: DevolutionPending}))
	assert.False(t, ValidDevolutionDraft(&Devolution{ContractID: 1, Quantity: 1, Status: DevolutionPending}))
	assert.False(t, ValidDevolutionDraft(&Devolution{ContractID: 1, EquipmentID: 2, Status: DevolutionPending}))
	assert.False(t, ValidDevolutionDraft(&Devolution{ContractID: 1, EquipmentID: 2, Quantity: 1}))
}
