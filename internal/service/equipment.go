package service

import (
	"context"
	"errors"
	"time"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository"
)

var ErrInvalidEquipment = errors.New("equipment draft is incomplete")

type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
}

func NewEquipmentService(equipmentRepo repository.EquipmentRepository) EquipmentService {
	return &equipmentService{equipmentRepo: equipmentRepo}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, equipment *domain.Equipment) error {
	if equipment.Code == "" {
		equipment.Code = domain.GenerateEquipmentCode(equipment.Name, equipment.ID, time.Now())
	}
	if !domain.ValidEquipment(equipment) {
		return ErrInvalidEquipment
	}
	if err := s.equipmentRepo.Create(ctx, equipment); err != nil {
		return err
	}
	return nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error) {
	return s.equipmentRepo.GetByID(ctx, id)
}

func (s *equipmentService) UpdateEquipment(ctx context.Context, equipment *domain.Equipment) error {
	if !domain.ValidEquipment(equipment) {
		return ErrInvalidEquipment
	}
	return s.equipmentRepo.Update(ctx, equipment)
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, id int32) error {
	return s.equipmentRepo.Delete(ctx, id)
}

func (s *equipmentService) ListEquipment(ctx context.Context, query string, sortKey domain.EquipmentSortKey) ([]domain.Equipment, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items = domain.FilterEquipmentByText(items, query)
	if sortKey != "" {
		items = domain.SortEquipment(items, sortKey)
	}
	return items, nil
}

func (s *equipmentService) EquipmentStatistics(ctx context.Context) (domain.EquipmentStatistics, error) {
	items, err := s.equipmentRepo.List(ctx)
	if err != nil {
		return domain.EquipmentStatistics{}, err
	}
	return domain.ComputeEquipmentStatistics(items), nil
}

func (s *equipmentService) QuoteBestPrice(ctx context.Context, equipmentID int32, days int) (domain.BestPrice, error) {
	equipment, err := s.equipmentRepo.GetByID(ctx, equipmentID)
	if err != nil {
		return domain.BestPrice{}, err
	}
	return domain.BestPriceForDuration(equipment, days), nil
}
