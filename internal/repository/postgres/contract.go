package postgres

import (
	"context"
	"database/sql"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository"
)

const contractColumns = `c.id, c.client_id, COALESCE(c.number, ''), COALESCE(c.issued_at::text, ''), COALESCE(c.due_date::text, ''), c.value, COALESCE(c.work_site, ''), COALESCE(c.period, ''), COALESCE(c.delivery_site, ''), COALESCE(c.responsible, ''), COALESCE(c.signature_status, ''), COALESCE(c.signed_at::text, ''), COALESCE(cl.name, ''), COALESCE(c.created_at::text, ''), COALESCE(c.updated_at::text, '')`

const contractFrom = ` FROM contracts c LEFT JOIN clients cl ON cl.id = c.client_id`

type contractRepository struct {
	db *sql.DB
}

func NewContractRepository(db *sql.DB) repository.ContractRepository {
	return &contractRepository{db: db}
}

func scanContract(row interface{ Scan(...any) error }, c *domain.Contract) error {
	return row.Scan(&c.ID, &c.ClientID, &c.Number, &c.IssuedAt, &c.DueDate, &c.ContractValue, &c.WorkSite, &c.Period, &c.DeliverySite, &c.Responsible, &c.SignatureStatus, &c.SignedAt, &c.ClientName, &c.CreatedAt, &c.UpdatedAt)
}

func (r *contractRepository) Create(ctx context.Context, c *domain.Contract) error {
	query := `INSERT INTO contracts (client_id, number, issued_at, due_date, value, work_site, period, delivery_site, responsible, signature_status, created_at)
	          VALUES ($1, $2, NULLIF($3, '')::timestamptz, NULLIF($4, '')::timestamptz, $5, $6, $7, $8, $9, $10, NOW()) RETURNING id`
	status := c.SignatureStatus
	if status == "" {
		status = domain.SignaturePending
	}
	return r.db.QueryRowContext(ctx, query, c.ClientID, c.Number, c.IssuedAt, c.DueDate, c.ContractValue, c.WorkSite, c.Period, c.DeliverySite, c.Responsible, status).Scan(&c.ID)
}

func (r *contractRepository) GetByID(ctx context.Context, id int32) (*domain.Contract, error) {
	c := &domain.Contract{}
	query := `SELECT ` + contractColumns + contractFrom + ` WHERE c.id = $1`
	if err := scanContract(r.db.QueryRowContext(ctx, query, id), c); err != nil {
		return nil, err
	}
	items, err := r.ListLineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Equipment = items
	return c, nil
}

func (r *contractRepository) Update(ctx context.Context, c *domain.Contract) error {
	query := `UPDATE contracts SET client_id=$1, number=$2, issued_at=NULLIF($3, '')::timestamptz, due_date=NULLIF($4, '')::timestamptz, value=$5, work_site=$6, period=$7, delivery_site=$8, responsible=$9, updated_at=NOW() WHERE id=$10`
	_, err := r.db.ExecContext(ctx, query, c.ClientID, c.Number, c.IssuedAt, c.DueDate, c.ContractValue, c.WorkSite, c.Period, c.DeliverySite, c.Responsible, c.ID)
	return err
}

func (r *contractRepository) Delete(ctx context.Context, id int32) error {
	if err := r.DeleteLineItems(ctx, id); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, id)
	return err
}

func (r *contractRepository) List(ctx context.Context) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + contractFrom + ` ORDER BY c.due_date NULLS LAST, c.id`
	return r.queryContracts(ctx, query)
}

func (r *contractRepository) ListByClient(ctx context.Context, clientID int32) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + contractFrom + ` WHERE c.client_id = $1 ORDER BY c.due_date NULLS LAST, c.id`
	return r.queryContracts(ctx, query, clientID)
}

// ListDueBetween selects contracts whose due date falls in [from, to).
// Bounds arrive as API date strings.
func (r *contractRepository) ListDueBetween(ctx context.Context, from, to string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + contractFrom + ` WHERE c.due_date >= $1::timestamptz AND c.due_date < $2::timestamptz ORDER BY c.due_date, c.id`
	return r.queryContracts(ctx, query, from, to)
}

func (r *contractRepository) queryContracts(ctx context.Context, query string, args ...any) ([]domain.Contract, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contracts []domain.Contract
	for rows.Next() {
		var c domain.Contract
		if err := scanContract(rows, &c); err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}

func (r *contractRepository) CreateLineItem(ctx context.Context, item *domain.ContractEquipment) error {
	query := `INSERT INTO contract_equipment (contract_id, equipment_id, quantity, unit_price, total, freight_value)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, item.ContractID, item.EquipmentID, item.Quantity, item.UnitPrice, item.Total, item.FreightValue).Scan(&item.ID)
}

func (r *contractRepository) ListLineItems(ctx context.Context, contractID int32) ([]domain.ContractEquipment, error) {
	query := `SELECT ce.id, ce.contract_id, ce.equipment_id, ce.quantity, ce.unit_price, ce.total, COALESCE(ce.freight_value, 0), COALESCE(e.name, '')
	          FROM contract_equipment ce LEFT JOIN equipment e ON e.id = ce.equipment_id
	          WHERE ce.contract_id = $1 ORDER BY ce.id`
	rows, err := r.db.QueryContext(ctx, query, contractID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ContractEquipment
	for rows.Next() {
		var it domain.ContractEquipment
		if err := rows.Scan(&it.ID, &it.ContractID, &it.EquipmentID, &it.Quantity, &it.UnitPrice, &it.Total, &it.FreightValue, &it.EquipmentName); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *contractRepository) DeleteLineItems(ctx context.Context, contractID int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM contract_equipment WHERE contract_id = $1`, contractID)
	return err
}

func (r *contractRepository) UpdateSignatureStatus(ctx context.Context, contractID int32, status domain.SignatureStatus, signedAt string) error {
	query := `UPDATE contracts SET signature_status=$1, signed_at=NULLIF($2, '')::timestamptz, updated_at=NOW() WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, status, signedAt, contractID)
	return err
}
