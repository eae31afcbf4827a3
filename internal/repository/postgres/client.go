package postgres

import (
	"context"
	"database/sql"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository"
)

const clientColumns = `id, name, tax_id, COALESCE(secondary_doc, ''), address, district, COALESCE(postal_code, ''), city, state, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(created_at::text, ''), COALESCE(updated_at::text, '')`

type clientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func scanClient(row interface{ Scan(...any) error }, c *domain.Client) error {
	return row.Scan(&c.ID, &c.Name, &c.TaxID, &c.SecondaryDoc, &c.Address, &c.District, &c.PostalCode, &c.City, &c.State, &c.Phone, &c.Email, &c.CreatedAt, &c.UpdatedAt)
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (name, tax_id, secondary_doc, address, district, postal_code, city, state, phone, email, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW()) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.TaxID, c.SecondaryDoc, c.Address, c.District, c.PostalCode, c.City, c.State, c.Phone, c.Email).Scan(&c.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, id int32) (*domain.Client, error) {
	c := &domain.Client{}
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	if err := scanClient(r.db.QueryRowContext(ctx, query, id), c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name=$1, tax_id=$2, secondary_doc=$3, address=$4, district=$5, postal_code=$6, city=$7, state=$8, phone=$9, email=$10, updated_at=NOW() WHERE id=$11`
	_, err := r.db.ExecContext(ctx, query, c.Name, c.TaxID, c.SecondaryDoc, c.Address, c.District, c.PostalCode, c.City, c.State, c.Phone, c.Email, c.ID)
	return err
}

func (r *clientRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	return err
}

func (r *clientRepository) List(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := scanClient(rows, &c); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
