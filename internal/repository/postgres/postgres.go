package postgres

import (
	"database/sql"

	"locamaq-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ClientRepository
	repository.EquipmentRepository
	repository.ContractRepository
	repository.DevolutionRepository
	repository.SignatureRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                   db,
		UserRepository:       NewUserRepository(db),
		ClientRepository:     NewClientRepository(db),
		EquipmentRepository:  NewEquipmentRepository(db),
		ContractRepository:   NewContractRepository(db),
		DevolutionRepository: NewDevolutionRepository(db),
		SignatureRepository:  NewSignatureRepository(db),
	}
}
