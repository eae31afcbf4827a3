package service

import (
	"context"
	"testing"
	"time"

	"locamaq-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devolutionFixture(t *testing.T) (DevolutionService, *fakeContractRepo, *fakeEquipmentRepo) {
	t.Helper()
	contractRepo := newFakeContractRepo()
	equipmentRepo := newFakeEquipmentRepo()
	devolutionRepo := newFakeDevolutionRepo()

	require.NoError(t, contractRepo.Create(context.Background(), &domain.Contract{
		ClientID:      7,
		ContractValue: 1500.00,
		DueDate:       "2025-03-10",
	}))
	require.NoError(t, equipmentRepo.Create(context.Background(), &domain.Equipment{
		Name:           "Betoneira 400L",
		Code:           "BET0001001",
		AvailableQty:   2,
		DailyPrice:     50.00,
		PatrimonyPrice: 1000.00,
	}))

	svc := NewDevolutionService(devolutionRepo, contractRepo, equipmentRepo, 0.10)
	return svc, contractRepo, equipmentRepo
}

func TestDevolutionService_CreateDevolution(t *testing.T) {
	ctx := context.Background()

	t.Run("LateReturnAccruesPenalty", func(t *testing.T) {
		svc, _, _ := devolutionFixture(t)

		d := &domain.Devolution{
			ContractID:  1,
			EquipmentID: 1,
			Quantity:    1,
			Status:      domain.DevolutionReturned,
			Date:        "2025-03-15",
		}
		require.NoError(t, svc.CreateDevolution(ctx, d))

		// five days late at 10% of a R$1000 patrimony value per day
		assert.Equal(t, 500.00, d.Penalty)
		assert.Equal(t, int32(7), d.ClientID)
		assert.NotEmpty(t, d.Number)
	})

	t.Run("OnTimeReturnHasNoPenalty", func(t *testing.T) {
		svc, _, _ := devolutionFixture(t)

		d := &domain.Devolution{
			ContractID:  1,
			EquipmentID: 1,
			Quantity:    1,
			Status:      domain.DevolutionReturned,
			Date:        "2025-03-09",
		}
		require.NoError(t, svc.CreateDevolution(ctx, d))
		assert.Zero(t, d.Penalty)
	})

	t.Run("ExplicitPenaltyIsKept", func(t *testing.T) {
		svc, _, _ := devolutionFixture(t)

		d := &domain.Devolution{
			ContractID:  1,
			EquipmentID: 1,
			Quantity:    1,
			Status:      domain.DevolutionDamaged,
			Date:        "2025-03-15",
			Penalty:     75.00,
		}
		require.NoError(t, svc.CreateDevolution(ctx, d))
		assert.Equal(t, 75.00, d.Penalty)
	})

	t.Run("RejectsIncompleteDraft", func(t *testing.T) {
		svc, _, _ := devolutionFixture(t)

		err := svc.CreateDevolution(ctx, &domain.Devolution{ContractID: 1})
		assert.ErrorIs(t, err, ErrInvalidDevolution)
	})

	t.Run("DefaultsNumberDateAndStatus", func(t *testing.T) {
		svc, _, _ := devolutionFixture(t)

		d := &domain.Devolution{ContractID: 1, EquipmentID: 1, Quantity: 1}
		require.NoError(t, svc.CreateDevolution(ctx, d))
		assert.Equal(t, domain.DevolutionPending, d.Status)
		assert.Contains(t, d.Number, "DEV")

		_, err := time.Parse(time.RFC3339, d.Date)
		assert.NoError(t, err)
	})
}

func TestDevolutionService_ProcessDevolution(t *testing.T) {
	ctx := context.Background()

	t.Run("RestocksReturnedUnits", func(t *testing.T) {
		svc, _, equipmentRepo := devolutionFixture(t)

		d := &domain.Devolution{
			ContractID:  1,
			EquipmentID: 1,
			Quantity:    2,
			Status:      domain.DevolutionReturned,
			Date:        "2025-03-09",
		}
		require.NoError(t, svc.CreateDevolution(ctx, d))

		processed, err := svc.ProcessDevolution(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DevolutionProcessed, processed.Status)

		equipment, err := equipmentRepo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(4), equipment.AvailableQty)
	})

	t.Run("AppliesManualPenalty", func(t *testing.T) {
		svc, _, _ := devolutionFixture(t)

		d := &domain.Devolution{
			ContractID:  1,
			EquipmentID: 1,
			Quantity:    1,
			Status:      domain.DevolutionDamaged,
			Date:        "2025-03-09",
		}
		require.NoError(t, svc.CreateDevolution(ctx, d))

		penalized, err := svc.PenalizeDevolution(ctx, d.ID, 250.00, "tambor amassado")
		require.NoError(t, err)
		assert.Equal(t, 250.00, penalized.Penalty)
		assert.Equal(t, "tambor amassado", penalized.RejectionReason)
		assert.True(t, domain.HasPenalty(penalized))

		stored, err := svc.GetDevolution(ctx, d.ID)
		require.NoError(t, err)
		assert.Equal(t, 250.00, stored.Penalty)
	})

	t.Run("RejectsNonPositivePenalty", func(t *testing.T) {
		svc, _, _ := devolutionFixture(t)

		d := &domain.Devolution{
			ContractID:  1,
			EquipmentID: 1,
			Quantity:    1,
			Status:      domain.DevolutionDamaged,
			Date:        "2025-03-09",
		}
		require.NoError(t, svc.CreateDevolution(ctx, d))

		_, err := svc.PenalizeDevolution(ctx, d.ID, 0, "sem motivo")
		assert.ErrorIs(t, err, ErrInvalidPenalty)
	})

	t.Run("MissingUnitsStayOut", func(t *testing.T) {
		svc, _, equipmentRepo := devolutionFixture(t)

		d := &domain.Devolution{
			ContractID:  1,
			EquipmentID: 1,
			Quantity:    1,
			Status:      domain.DevolutionMissing,
			Date:        "2025-03-09",
		}
		require.NoError(t, svc.CreateDevolution(ctx, d))

		_, err := svc.ProcessDevolution(ctx, d.ID)
		require.NoError(t, err)

		equipment, err := equipmentRepo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int32(2), equipment.AvailableQty)
	})
}
