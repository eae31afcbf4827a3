package service

import (
	"context"
	"errors"
	"time"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository"
)

var (
	ErrInvalidDevolution = errors.New("devolution draft is incomplete")
	ErrInvalidPenalty    = errors.New("penalty must be greater than zero")
)

type devolutionService struct {
	devolutionRepo repository.DevolutionRepository
	contractRepo   repository.ContractRepository
	equipmentRepo  repository.EquipmentRepository
	penaltyRate    float64
}

func NewDevolutionService(devolutionRepo repository.DevolutionRepository, contractRepo repository.ContractRepository, equipmentRepo repository.EquipmentRepository, penaltyRate float64) DevolutionService {
	if penaltyRate <= 0 {
		penaltyRate = domain.DefaultPenaltyRate
	}
	return &devolutionService{
		devolutionRepo: devolutionRepo,
		contractRepo:   contractRepo,
		equipmentRepo:  equipmentRepo,
		penaltyRate:    penaltyRate,
	}
}

// CreateDevolution registers a return. The return number and date are
// generated when absent, and a late fee accrues automatically when the
// return date falls past the contract's due date.
func (s *devolutionService) CreateDevolution(ctx context.Context, d *domain.Devolution) error {
	now := time.Now()
	if d.Number == "" {
		d.Number = domain.GenerateDevolutionNumber(now)
	}
	if d.Date == "" {
		d.Date = now.UTC().Format(time.RFC3339)
	}
	if d.Status == "" {
		d.Status = domain.DevolutionPending
	}
	if !domain.ValidDevolutionDraft(d) {
		return ErrInvalidDevolution
	}

	contract, err := s.contractRepo.GetByID(ctx, d.ContractID)
	if err != nil {
		return err
	}
	if d.ClientID == 0 {
		d.ClientID = contract.ClientID
	}

	if d.Penalty == 0 {
		if daysLate := domain.DaysLate(d, contract.DueDate); daysLate > 0 {
			equipment, err := s.equipmentRepo.GetByID(ctx, d.EquipmentID)
			if err != nil {
				return err
			}
			d.Penalty = domain.ComputeLateFee(equipment.PatrimonyPrice, daysLate, s.penaltyRate)
		}
	}

	return s.devolutionRepo.Create(ctx, d)
}

func (s *devolutionService) GetDevolution(ctx context.Context, id int32) (*domain.Devolution, error) {
	return s.devolutionRepo.GetByID(ctx, id)
}

func (s *devolutionService) UpdateDevolution(ctx context.Context, d *domain.Devolution) error {
	if !domain.ValidDevolutionDraft(d) {
		return ErrInvalidDevolution
	}
	return s.devolutionRepo.Update(ctx, d)
}

func (s *devolutionService) DeleteDevolution(ctx context.Context, id int32) error {
	return s.devolutionRepo.Delete(ctx, id)
}

func (s *devolutionService) ListDevolutions(ctx context.Context) ([]domain.Devolution, error) {
	return s.devolutionRepo.List(ctx)
}

func (s *devolutionService) ListDevolutionsByContract(ctx context.Context, contractID int32) ([]domain.Devolution, error) {
	return s.devolutionRepo.ListByContract(ctx, contractID)
}

// ProcessDevolution closes out a return and restocks the equipment.
func (s *devolutionService) ProcessDevolution(ctx context.Context, id int32) (*domain.Devolution, error) {
	d, err := s.devolutionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	processed := domain.MarkProcessed(*d, time.Now())
	if err := s.devolutionRepo.Update(ctx, &processed); err != nil {
		return nil, err
	}

	// Missing units never come back to stock.
	if d.Status == domain.DevolutionReturned || d.Status == domain.DevolutionDamaged {
		equipment, err := s.equipmentRepo.GetByID(ctx, d.EquipmentID)
		if err != nil {
			return nil, err
		}
		equipment.AvailableQty += d.Quantity
		if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
			return nil, err
		}
	}
	return &processed, nil
}

// PenalizeDevolution records a manually assessed fine on a return.
func (s *devolutionService) PenalizeDevolution(ctx context.Context, id int32, penalty float64, reason string) (*domain.Devolution, error) {
	if penalty <= 0 {
		return nil, ErrInvalidPenalty
	}
	d, err := s.devolutionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	penalized := domain.ApplyPenalty(*d, penalty, reason, time.Now())
	if err := s.devolutionRepo.Update(ctx, &penalized); err != nil {
		return nil, err
	}
	return &penalized, nil
}

func (s *devolutionService) DevolutionStatistics(ctx context.Context) (domain.DevolutionStatistics, error) {
	items, err := s.devolutionRepo.List(ctx)
	if err != nil {
		return domain.DevolutionStatistics{}, err
	}
	return domain.ComputeDevolutionStatistics(items), nil
}
