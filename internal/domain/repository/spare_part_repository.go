package repository

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// SparePartRepository define el puerto de persistencia para SparePart (DIP).
// GetByID y GetByBusinessID devuelven (nil, nil) si no existe.
type SparePartRepository interface {
	Create(ctx context.Context, part *entity.SparePart) error
	GetByID(ctx context.Context, id string) (*entity.SparePart, error)
	GetByBusinessID(ctx context.Context, businessID string) (*entity.SparePart, error)
	List(ctx context.Context) ([]*entity.SparePart, error)
	// Update reemplaza los campos editables; ErrNotFound si el ID no existe.
	Update(ctx context.Context, part *entity.SparePart) error
	// AdjustQuantity suma delta a la existencia y recalcula el valor total en una sola
	// operación atómica del almacén. ErrNotFound si no existe, ErrInsufficientStock si
	// la existencia quedaría negativa (en ese caso no se modifica nada).
	AdjustQuantity(ctx context.Context, id string, delta int) (*entity.SparePart, error)
	// Delete elimina sin validar referencias; ErrNotFound si el ID no existe.
	Delete(ctx context.Context, id string) error
}
