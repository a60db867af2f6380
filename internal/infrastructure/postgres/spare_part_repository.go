package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

var _ repository.SparePartRepository = (*SparePartRepo)(nil)

// SparePartRepo implementación del puerto SparePartRepository sobre PostgreSQL.
type SparePartRepo struct {
	q Querier
}

// NewSparePartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSparePartRepository(q Querier) *SparePartRepo {
	return &SparePartRepo{q: q}
}

const sparePartColumns = `id, business_id, name, category, unit_price, quantity, total_value, created_at, updated_at`

func scanSparePart(row pgx.Row) (*entity.SparePart, error) {
	var p entity.SparePart
	err := row.Scan(&p.ID, &p.BusinessID, &p.Name, &p.Category, &p.UnitPrice, &p.Quantity, &p.TotalValue, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un repuesto.
func (r *SparePartRepo) Create(ctx context.Context, part *entity.SparePart) error {
	query := `INSERT INTO spare_parts (` + sparePartColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		part.ID, part.BusinessID, part.Name, part.Category, part.UnitPrice, part.Quantity,
		part.TotalValue, part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("repuesto", part.BusinessID)
		}
		return fmt.Errorf("insert spare part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *SparePartRepo) GetByID(ctx context.Context, id string) (*entity.SparePart, error) {
	p, err := scanSparePart(r.q.QueryRow(ctx, `SELECT `+sparePartColumns+` FROM spare_parts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spare part: %w", err)
	}
	return p, nil
}

// GetByBusinessID obtiene un repuesto por su código.
func (r *SparePartRepo) GetByBusinessID(ctx context.Context, businessID string) (*entity.SparePart, error) {
	p, err := scanSparePart(r.q.QueryRow(ctx, `SELECT `+sparePartColumns+` FROM spare_parts WHERE business_id = $1`, businessID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spare part by business id: %w", err)
	}
	return p, nil
}

// List devuelve los repuestos en orden de creación.
func (r *SparePartRepo) List(ctx context.Context) ([]*entity.SparePart, error) {
	rows, err := r.q.Query(ctx, `SELECT `+sparePartColumns+` FROM spare_parts ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("list spare parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.SparePart
	for rows.Next() {
		p, err := scanSparePart(rows)
		if err != nil {
			return nil, fmt.Errorf("scan spare part: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables del repuesto.
func (r *SparePartRepo) Update(ctx context.Context, part *entity.SparePart) error {
	query := `
		UPDATE spare_parts
		SET business_id = $2, name = $3, category = $4, unit_price = $5, quantity = $6, total_value = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		part.ID, part.BusinessID, part.Name, part.Category, part.UnitPrice, part.Quantity, part.TotalValue, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Duplicate("repuesto", part.BusinessID)
		}
		return fmt.Errorf("update spare part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// AdjustQuantity suma delta en un solo UPDATE condicional que también recalcula total_value.
func (r *SparePartRepo) AdjustQuantity(ctx context.Context, id string, delta int) (*entity.SparePart, error) {
	query := `
		UPDATE spare_parts
		SET quantity = quantity + $2, total_value = (quantity + $2) * unit_price, updated_at = $3
		WHERE id = $1 AND quantity + $2 >= 0
		RETURNING ` + sparePartColumns
	p, err := scanSparePart(r.q.QueryRow(ctx, query, id, delta, time.Now().UTC()))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		if isCheckViolation(err) {
			return nil, domain.ErrInsufficientStock
		}
		return nil, fmt.Errorf("adjust spare part quantity: %w", err)
	}
	var exists bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM spare_parts WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, fmt.Errorf("adjust spare part quantity: %w", err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInsufficientStock
}

// Delete elimina el repuesto; los movimientos no tienen FK y quedan huérfanos.
func (r *SparePartRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM spare_parts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete spare part: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
