package postgres

import (
	"context"
	"database/sql"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository"
)

const devolutionColumns = `id, contract_id, client_id, COALESCE(number, ''), COALESCE(date::text, ''), equipment_id, quantity, status, COALESCE(notes, ''), COALESCE(rejection_reason, ''), COALESCE(penalty, 0), COALESCE(created_at::text, ''), COALESCE(updated_at::text, '')`

type devolutionRepository struct {
	db *sql.DB
}

func NewDevolutionRepository(db *sql.DB) repository.DevolutionRepository {
	return &devolutionRepository{db: db}
}

func scanDevolution(row interface{ Scan(...any) error }, d *domain.Devolution) error {
	return row.Scan(&d.ID, &d.ContractID, &d.ClientID, &d.Number, &d.Date, &d.EquipmentID, &d.Quantity, &d.Status, &d.Notes, &d.RejectionReason, &d.Penalty, &d.CreatedAt, &d.UpdatedAt)
}

func (r *devolutionRepository) Create(ctx context.Context, d *domain.Devolution) error {
	query := `INSERT INTO devolutions (contract_id, client_id, number, date, equipment_id, quantity, status, notes, rejection_reason, penalty, created_at)
	          VALUES ($1, $2, $3, NULLIF($4, '')::timestamptz, $5, $6, $7, $8, $9, $10, NOW()) RETURNING id`
	return r.db.QueryRowContext(ctx, query, d.ContractID, d.ClientID, d.Number, d.Date, d.EquipmentID, d.Quantity, d.Status, d.Notes, d.RejectionReason, d.Penalty).Scan(&d.ID)
}

func (r *devolutionRepository) GetByID(ctx context.Context, id int32) (*domain.Devolution, error) {
	d := &domain.Devolution{}
	query := `SELECT ` + devolutionColumns + ` FROM devolutions WHERE id = $1`
	if err := scanDevolution(r.db.QueryRowContext(ctx, query, id), d); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *devolutionRepository) Update(ctx context.Context, d *domain.Devolution) error {
	query := `UPDATE devolutions SET status=$1, notes=$2, rejection_reason=$3, penalty=$4, quantity=$5, updated_at=NOW() WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, d.Status, d.Notes, d.RejectionReason, d.Penalty, d.Quantity, d.ID)
	return err
}

func (r *devolutionRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM devolutions WHERE id = $1`, id)
	return err
}

func (r *devolutionRepository) List(ctx context.Context) ([]domain.Devolution, error) {
	query := `SELECT ` + devolutionColumns + ` FROM devolutions ORDER BY date DESC NULLS LAST, id DESC`
	return r.queryDevolutions(ctx, query)
}

func (r *devolutionRepository) ListByContract(ctx context.Context, contractID int32) ([]domain.Devolution, error) {
	query := `SELECT ` + devolutionColumns + ` FROM devolutions WHERE contract_id = $1 ORDER BY date DESC NULLS LAST, id DESC`
	return r.queryDevolutions(ctx, query, contractID)
}

func (r *devolutionRepository) queryDevolutions(ctx context.Context, query string, args ...any) ([]domain.Devolution, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Devolution
	for rows.Next() {
		var d domain.Devolution
		if err := scanDevolution(rows, &d); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
