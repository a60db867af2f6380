package repository

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// StockOutRepository define el puerto de persistencia para salidas de stock (DIP).
type StockOutRepository interface {
	Create(ctx context.Context, out *entity.StockOut) error
	GetByID(ctx context.Context, id string) (*entity.StockOut, error)
	GetByBusinessID(ctx context.Context, businessID string) (*entity.StockOut, error)
	// List devuelve las salidas en orden de inserción.
	List(ctx context.Context) ([]*entity.StockOut, error)
	Update(ctx context.Context, out *entity.StockOut) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
