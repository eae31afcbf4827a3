package postgres

import (
	"context"
	"database/sql"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository"
)

const signatureColumns = `id, contract_id, COALESCE(payload, ''), COALESCE(signed_at::text, ''), status, COALESCE(notes, ''), COALESCE(created_at::text, ''), COALESCE(updated_at::text, '')`

type signatureRepository struct {
	db *sql.DB
}

func NewSignatureRepository(db *sql.DB) repository.SignatureRepository {
	return &signatureRepository{db: db}
}

func scanSignature(row interface{ Scan(...any) error }, s *domain.Signature) error {
	return row.Scan(&s.ID, &s.ContractID, &s.Payload, &s.SignedAt, &s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt)
}

func (r *signatureRepository) Create(ctx context.Context, s *domain.Signature) error {
	query := `INSERT INTO signatures (contract_id, payload, signed_at, status, notes, created_at)
	          VALUES ($1, $2, NULLIF($3, '')::timestamptz, $4, $5, NOW()) RETURNING id`
	return r.db.QueryRowContext(ctx, query, s.ContractID, s.Payload, s.SignedAt, s.Status, s.Notes).Scan(&s.ID)
}

func (r *signatureRepository) GetByID(ctx context.Context, id int32) (*domain.Signature, error) {
	s := &domain.Signature{}
	query := `SELECT ` + signatureColumns + ` FROM signatures WHERE id = $1`
	if err := scanSignature(r.db.QueryRowContext(ctx, query, id), s); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByContract returns the latest signature record for a contract.
func (r *signatureRepository) GetByContract(ctx context.Context, contractID int32) (*domain.Signature, error) {
	s := &domain.Signature{}
	query := `SELECT ` + signatureColumns + ` FROM signatures WHERE contract_id = $1 ORDER BY id DESC LIMIT 1`
	if err := scanSignature(r.db.QueryRowContext(ctx, query, contractID), s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *signatureRepository) Update(ctx context.Context, s *domain.Signature) error {
	query := `UPDATE signatures SET payload=$1, signed_at=NULLIF($2, '')::timestamptz, status=$3, notes=$4, updated_at=NOW() WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, s.Payload, s.SignedAt, s.Status, s.Notes, s.ID)
	return err
}

// ExpirePendingBefore marks pending signatures created before the cutoff as
// expired and returns how many rows changed.
func (r *signatureRepository) ExpirePendingBefore(ctx context.Context, cutoff string) (int64, error) {
	query := `UPDATE signatures SET status=$1, updated_at=NOW() WHERE status=$2 AND created_at < $3::timestamptz`
	res, err := r.db.ExecContext(ctx, query, domain.SignatureExpired, domain.SignaturePending, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
