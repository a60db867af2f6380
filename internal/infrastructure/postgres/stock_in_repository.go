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

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación del puerto StockInRepository sobre PostgreSQL.
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador.
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

const stockInColumns = `id, business_id, spare_part_id, quantity, date, received_by, created_at, updated_at`

func scanStockIn(row pgx.Row) (*entity.StockIn, error) {
	var m entity.StockIn
	if err := row.Scan(&m.ID, &m.BusinessID, &m.SparePartID, &m.Quantity, &m.Date, &m.ReceivedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StockInRepo) Create(ctx context.Context, in *entity.StockIn) error {
	_, err := r.q.Exec(ctx, `INSERT INTO stock_ins (`+stockInColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		in.ID, in.BusinessID, in.SparePartID, in.Quantity, in.Date, in.ReceivedBy, in.CreatedAt, in.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("entrada", in.BusinessID)
		}
		return fmt.Errorf("insert stock in: %w", err)
	}
	return nil
}

func (r *StockInRepo) GetByID(ctx context.Context, id string) (*entity.StockIn, error) {
	return r.getOne(ctx, `SELECT `+stockInColumns+` FROM stock_ins WHERE id = $1`, id)
}

func (r *StockInRepo) GetByBusinessID(ctx context.Context, businessID string) (*entity.StockIn, error) {
	return r.getOne(ctx, `SELECT `+stockInColumns+` FROM stock_ins WHERE business_id = $1`, businessID)
}

func (r *StockInRepo) getOne(ctx context.Context, query, arg string) (*entity.StockIn, error) {
	m, err := scanStockIn(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock in: %w", err)
	}
	return m, nil
}

func (r *StockInRepo) List(ctx context.Context) ([]*entity.StockIn, error) {
	rows, err := r.q.Query(ctx, `SELECT `+stockInColumns+` FROM stock_ins ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list stock ins: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockIn
	for rows.Next() {
		m, err := scanStockIn(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock in: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *StockInRepo) Update(ctx context.Context, in *entity.StockIn) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE stock_ins SET quantity = $2, date = $3, received_by = $4, updated_at = $5 WHERE id = $1`,
		in.ID, in.Quantity, in.Date, in.ReceivedBy, in.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock in: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockInRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM stock_ins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock in: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *StockInRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stock_ins`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count stock ins: %w", err)
	}
	return n, nil
}
