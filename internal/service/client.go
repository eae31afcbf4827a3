package service

import (
	"context"
	"errors"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository"
)

var ErrInvalidTaxID = errors.New("tax id failed checksum validation")

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) CreateClient(ctx context.Context, client *domain.Client) error {
	if !domain.ValidClientTaxID(client) {
		return ErrInvalidTaxID
	}
	return s.clientRepo.Create(ctx, client)
}

func (s *clientService) GetClient(ctx context.Context, id int32) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) UpdateClient(ctx context.Context, client *domain.Client) error {
	if !domain.ValidClientTaxID(client) {
		return ErrInvalidTaxID
	}
	return s.clientRepo.Update(ctx, client)
}

func (s *clientService) DeleteClient(ctx context.Context, id int32) error {
	return s.clientRepo.Delete(ctx, id)
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	return s.clientRepo.List(ctx)
}
