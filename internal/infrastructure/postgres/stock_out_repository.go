package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación del puerto StockOutRepository sobre PostgreSQL.
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador.
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

const stockOutColumns = `id, business_id, spare_part_id, quantity, date, unit_price, total_value, approved_by, created_at, updated_at`

func scanStockOut(row pgx.Row) (*entity.StockOut, error) {
	var m entity.StockOut
	if err := row.Scan(&m.ID, &m.BusinessID, &m.SparePartID, &m.Quantity, &m.Date, &m.UnitPrice, &m.TotalValue, &m.ApprovedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StockOutRepo) Create(ctx context.Context, out *entity.StockOut) error {
	_, err := r.q.Exec(ctx, `INSERT INTO stock_outs (`+stockOutColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		out.ID, out.BusinessID, out.SparePartID, out.Quantity, out.Date, out.UnitPrice, out.TotalValue,
		out.ApprovedBy, out.CreatedAt, out.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("salida", out.BusinessID)
		}
		return fmt.Errorf("insert stock out: %w", err)
	}
	return nil
}

func (r *StockOutRepo) GetByID(ctx context.Context, id string) (*entity.StockOut, error) {
	return r.getOne(ctx, `SELECT `+stockOutColumns+` FROM stock_outs WHERE id = $1`, id)
}

func (r *StockOutRepo) GetByBusinessID(ctx context.Context, businessID string) (*entity.StockOut, error) {
	return r.getOne(ctx, `SELECT `+stockOutColumns+` FROM stock_outs WHERE business_id = $1`, businessID)
}

func (r *StockOutRepo) getOne(ctx context.Context, query, arg string) (*entity.StockOut, error) {
	m, err := scanStockOut(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock out: %w", err)
	}
	return m, nil
}

func (r *StockOutRepo) List(ctx context.Context) ([]*entity.StockOut, error) {
	rows, err := r.q.Query(ctx, `SELECT `+stockOutColumns+` FROM stock_outs ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list stock outs: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockOut
	for rows.Next() {
		m, err := scanStockOut(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock out: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *StockOutRepo) Update(ctx context.Context, out *entity.StockOut) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE stock_outs SET quantity = $2, date = $3, unit_price = $4, total_value = $5, approved_by = $6, updated_at = $7 WHERE id = $1`,
		out.ID, out.Quantity, out.Date, out.UnitPrice, out.TotalValue, out.ApprovedBy, out.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockOutRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_outs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockOutRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_outs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock outs: %w", err)
	}
	return n, nil
}
