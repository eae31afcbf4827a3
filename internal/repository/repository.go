package repository

import (
	"context"

	"locamaq-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, id int32) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Client, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *domain.Equipment) error
	GetByID(ctx context.Context, id int32) (*domain.Equipment, error)
	Update(ctx context.Context, equipment *domain.Equipment) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Equipment, error)
}

type ContractRepository interface {
	Create(ctx context.Context, contract *domain.Contract) error
	GetByID(ctx context.Context, id int32) (*domain.Contract, error)
	Update(ctx context.Context, contract *domain.Contract) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Contract, error)
	ListByClient(ctx context.Context, clientID int32) ([]domain.Contract, error)
	ListDueBetween(ctx context.Context, from, to string) ([]domain.Contract, error)

	// Line items
	CreateLineItem(ctx context.Context, item *domain.ContractEquipment) error
	ListLineItems(ctx context.Context, contractID int32) ([]domain.ContractEquipment, error)
	DeleteLineItems(ctx context.Context, contractID int32) error

	// Signature status lives on the contract row
	UpdateSignatureStatus(ctx context.Context, contractID int32, status domain.SignatureStatus, signedAt string) error
}

type DevolutionRepository interface {
	Create(ctx context.Context, devolution *domain.Devolution) error
	GetByID(ctx context.Context, id int32) (*domain.Devolution, error)
	Update(ctx context.Context, devolution *domain.Devolution) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.Devolution, error)
	ListByContract(ctx context.Context, contractID int32) ([]domain.Devolution, error)
}

type SignatureRepository interface {
	Create(ctx context.Context, signature *domain.Signature) error
	GetByID(ctx context.Context, id int32) (*domain.Signature, error)
	GetByContract(ctx context.Context, contractID int32) (*domain.Signature, error)
	Update(ctx context.Context, signature *domain.Signature) error
	ExpirePendingBefore(ctx context.Context, cutoff string) (int64, error)
}
