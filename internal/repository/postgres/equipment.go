package postgres

import (
	"context"
	"database/sql"

	"locamaq-backend/internal/domain"
	"locamaq-backend/internal/repository"
)

const equipmentColumns = `id, name, code, available_qty, daily_price, COALESCE(weekly_price, 0), COALESCE(biweekly_price, 0), COALESCE(monthly_price, 0), COALESCE(patrimony_price, 0), COALESCE(created_at::text, ''), COALESCE(updated_at::text, '')`

type equipmentRepository struct {
	db *sql.DB
}

func NewEquipmentRepository(db *sql.DB) repository.EquipmentRepository {
	return &equipmentRepository{db: db}
}

func scanEquipment(row interface{ Scan(...any) error }, e *domain.Equipment) error {
	return row.Scan(&e.ID, &e.Name, &e.Code, &e.AvailableQty, &e.DailyPrice, &e.WeeklyPrice, &e.BiweeklyPrice, &e.MonthlyPrice, &e.PatrimonyPrice, &e.CreatedAt, &e.UpdatedAt)
}

func (r *equipmentRepository) Create(ctx context.Context, e *domain.Equipment) error {
	query := `INSERT INTO equipment (name, code, available_qty, daily_price, weekly_price, biweekly_price, monthly_price, patrimony_price, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW()) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.Name, e.Code, e.AvailableQty, e.DailyPrice, e.WeeklyPrice, e.BiweeklyPrice, e.MonthlyPrice, e.PatrimonyPrice).Scan(&e.ID)
}

func (r *equipmentRepository) GetByID(ctx context.Context, id int32) (*domain.Equipment, error) {
	e := &domain.Equipment{}
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	if err := scanEquipment(r.db.QueryRowContext(ctx, query, id), e); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *equipmentRepository) Update(ctx context.Context, e *domain.Equipment) error {
	query := `UPDATE equipment SET name=$1, code=$2, available_qty=$3, daily_price=$4, weekly_price=$5, biweekly_price=$6, monthly_price=$7, patrimony_price=$8, updated_at=NOW() WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, e.Name, e.Code, e.AvailableQty, e.DailyPrice, e.WeeklyPrice, e.BiweeklyPrice, e.MonthlyPrice, e.PatrimonyPrice, e.ID)
	return err
}

func (r *equipmentRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	return err
}

func (r *equipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		var e domain.Equipment
		if err := scanEquipment(rows, &e); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}
