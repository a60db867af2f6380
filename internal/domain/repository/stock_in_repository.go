package repository

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// StockInRepository define el puerto de persistencia para entradas de stock (DIP).
type StockInRepository interface {
	Create(ctx context.Context, in *entity.StockIn) error
	GetByID(ctx context.Context, id string) (*entity.StockIn, error)
	GetByBusinessID(ctx context.Context, businessID string) (*entity.StockIn, error)
	// List devuelve las entradas en orden de inserción.
	List(ctx context.Context) ([]*entity.StockIn, error)
	Update(ctx context.Context, in *entity.StockIn) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
