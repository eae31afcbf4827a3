package service

import (
	"context"
	"errors"
	"time"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository"
)

var ErrInvalidContract = errors.New("contract draft is incomplete")

type contractService struct {
	contractRepo repository.ContractRepository
	clientRepo   repository.ClientRepository
}

func NewContractService(contractRepo repository.ContractRepository, clientRepo repository.ClientRepository) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
	}
}

// CreateContract persists a draft. Clients working offline submit contracts
// under negative temporary ids; the server discards those and assigns the
// real id, which the caller reads back from the struct.
func (s *contractService) CreateContract(ctx context.Context, contract *domain.Contract) error {
	if domain.IsTempID(contract.ID) {
		contract.ID = 0
	}
	if contract.ContractValue == 0 {
		contract.ContractValue = domain.LineItemsTotal(contract.Equipment)
	}
	if !domain.ValidContractDraft(contract) {
		return ErrInvalidContract
	}
	if _, err := s.clientRepo.GetByID(ctx, contract.ClientID); err != nil {
		return err
	}
	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return err
	}
	for i := range contract.Equipment {
		item := &contract.Equipment[i]
		item.ContractID = contract.ID
		item.Total = domain.LineItemTotal(item)
		if err := s.contractRepo.CreateLineItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *contractService) GetContract(ctx context.Context, id int32) (*domain.Contract, error) {
	return s.contractRepo.GetByID(ctx, id)
}

// UpdateContract replaces the contract row and its line items wholesale.
func (s *contractService) UpdateContract(ctx context.Context, contract *domain.Contract) error {
	if !domain.ValidContractDraft(contract) {
		return ErrInvalidContract
	}
	if err := s.contractRepo.Update(ctx, contract); err != nil {
		return err
	}
	if err := s.contractRepo.DeleteLineItems(ctx, contract.ID); err != nil {
		return err
	}
	for i := range contract.Equipment {
		item := &contract.Equipment[i]
		item.ContractID = contract.ID
		item.Total = domain.LineItemTotal(item)
		if err := s.contractRepo.CreateLineItem(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (s *contractService) DeleteContract(ctx context.Context, id int32) error {
	return s.contractRepo.Delete(ctx, id)
}

func (s *contractService) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	return s.contractRepo.List(ctx)
}

func (s *contractService) ListContractsByClient(ctx context.Context, clientID int32) ([]domain.Contract, error) {
	return s.contractRepo.ListByClient(ctx, clientID)
}

// ListContractsDueWithin returns contracts whose due date falls between now
// and now plus the given number of days.
func (s *contractService) ListContractsDueWithin(ctx context.Context, days int) ([]domain.Contract, error) {
	now := time.Now().UTC()
	from := now.Format("2006-01-02")
	to := now.AddDate(0, 0, days).Format("2006-01-02")
	return s.contractRepo.ListDueBetween(ctx, from, to)
}
