package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Repuestos-api/internal/application/dto"
	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// SparePartUseCase casos de uso CRUD para repuestos.
// TotalValue se recalcula en cada alta y edición.
type SparePartUseCase struct {
	repo repository.SparePartRepository
	now  func() time.Time
}

// NewSparePartUseCase construye el caso de uso.
func NewSparePartUseCase(repo repository.SparePartRepository) *SparePartUseCase {
	return &SparePartUseCase{repo: repo, now: time.Now}
}

// Create crea un repuesto. ErrDuplicate si el código ya existe.
func (uc *SparePartUseCase) Create(ctx context.Context, in dto.CreateSparePartRequest) (*dto.SparePartResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	businessID := strings.TrimSpace(in.BusinessID)
	existing, err := uc.repo.GetByBusinessID(ctx, businessID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("repuesto", businessID)
	}
	qty := 0
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	now := uc.now()
	part := &entity.SparePart{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       strings.TrimSpace(in.Name),
		Category:   strings.TrimSpace(in.Category),
		UnitPrice:  *in.UnitPrice,
		Quantity:   qty,
		TotalValue: inventory.ComputeTotalValue(qty, *in.UnitPrice),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, part); err != nil {
		return nil, err
	}
	return ToSparePartResponse(part), nil
}

// GetByID obtiene un repuesto. ErrNotFound si no existe.
func (uc *SparePartUseCase) GetByID(ctx context.Context, id string) (*dto.SparePartResponse, error) {
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.NotFound("repuesto")
	}
	return ToSparePartResponse(part), nil
}

// List lista todos los repuestos.
func (uc *SparePartUseCase) List(ctx context.Context) ([]dto.SparePartResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SparePartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToSparePartResponse(p))
	}
	return items, nil
}

// Update aplica sólo los campos presentes y recalcula TotalValue.
func (uc *SparePartUseCase) Update(ctx context.Context, id string, in dto.UpdateSparePartRequest) (*dto.SparePartResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	part, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, domain.NotFound("repuesto")
	}
	if in.BusinessID != nil {
		businessID := strings.TrimSpace(*in.BusinessID)
		if businessID != part.BusinessID {
			other, err := uc.repo.GetByBusinessID(ctx, businessID)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != part.ID {
				return nil, domain.Duplicate("repuesto", businessID)
			}
		}
		part.BusinessID = businessID
	}
	if in.Name != nil {
		part.Name = strings.TrimSpace(*in.Name)
	}
	if in.Category != nil {
		part.Category = strings.TrimSpace(*in.Category)
	}
	if in.UnitPrice != nil {
		part.UnitPrice = *in.UnitPrice
	}
	if in.Quantity != nil {
		part.Quantity = *in.Quantity
	}
	part.TotalValue = inventory.ComputeTotalValue(part.Quantity, part.UnitPrice)
	part.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, part); err != nil {
		return nil, err
	}
	return ToSparePartResponse(part), nil
}

// Delete elimina un repuesto. Los movimientos que lo referencian quedan huérfanos.
func (uc *SparePartUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("repuesto")
		}
		return err
	}
	return nil
}

// ToSparePartResponse convierte la entidad a su DTO de salida.
func ToSparePartResponse(p *entity.SparePart) *dto.SparePartResponse {
	if p == nil {
		return nil
	}
	return &dto.SparePartResponse{
		ID:         p.ID,
		BusinessID: p.BusinessID,
		Name:       p.Name,
		Category:   p.Category,
		UnitPrice:  p.UnitPrice,
		Quantity:   p.Quantity,
		TotalValue: p.TotalValue,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
