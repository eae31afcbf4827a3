package service

import (
	"context"

	"locamaq-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error) // user, access token
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) error
	GetClient(ctx context.Context, id int32) (*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) error
	DeleteClient(ctx context.Context, id int32) error
	ListClients(ctx context.Context) ([]domain.Client, error)
}

type EquipmentService interface {
	CreateEquipment(ctx context.Context, equipment *domain.Equipment) error
	GetEquipment(ctx context.Context, id int32) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, equipment *domain.Equipment) error
	DeleteEquipment(ctx context.Context, id int32) error
	ListEquipment(ctx context.Context, query string, sortKey domain.EquipmentSortKey) ([]domain.Equipment, error)
	EquipmentStatistics(ctx context.Context) (domain.EquipmentStatistics, error)
	QuoteBestPrice(ctx context.Context, equipmentID int32, days int) (domain.BestPrice, error)
}

type ContractService interface {
	CreateContract(ctx context.Context, contract *domain.Contract) error
	GetContract(ctx context.Context, id int32) (*domain.Contract, error)
	UpdateContract(ctx context.Context, contract *domain.Contract) error
	DeleteContract(ctx context.Context, id int32) error
	ListContracts(ctx context.Context) ([]domain.Contract, error)
	ListContractsByClient(ctx context.Context, clientID int32) ([]domain.Contract, error)
	ListContractsDueWithin(ctx context.Context, days int) ([]domain.Contract, error)
}

type DevolutionService interface {
	CreateDevolution(ctx context.Context, devolution *domain.Devolution) error
	GetDevolution(ctx context.Context, id int32) (*domain.Devolution, error)
	UpdateDevolution(ctx context.Context, devolution *domain.Devolution) error
	DeleteDevolution(ctx context.Context, id int32) error
	ListDevolutions(ctx context.Context) ([]domain.Devolution, error)
	ListDevolutionsByContract(ctx context.Context, contractID int32) ([]domain.Devolution, error)
	ProcessDevolution(ctx context.Context, id int32) (*domain.Devolution, error)
	PenalizeDevolution(ctx context.Context, id int32, penalty float64, reason string) (*domain.Devolution, error)
	DevolutionStatistics(ctx context.Context) (domain.DevolutionStatistics, error)
}

type SignatureService interface {
	RequestSignature(ctx context.Context, contractID int32) (*domain.Signature, error)
	SignContract(ctx context.Context, contractID int32, data domain.SigningData) (*domain.Signature, error)
	RejectSignature(ctx context.Context, contractID int32, reason string) (*domain.Signature, error)
	GetContractSignature(ctx context.Context, contractID int32) (*domain.Signature, error)
	ExpireStaleSignatures(ctx context.Context) (int64, error)
}

type EmailService interface {
	SendDueSoonReminder(ctx context.Context, to, clientName, contractNumber, dueDate string, value float64) error
	SendSignatureRequest(ctx context.Context, to, clientName, contractNumber string) error
	SendOverdueNotice(ctx context.Context, to, clientName, contractNumber, dueDate string, value float64) error
}
