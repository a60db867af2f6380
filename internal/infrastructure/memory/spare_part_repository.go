package memory

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/inventory"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// SparePartRepo implementación en memoria de repository.SparePartRepository.
type SparePartRepo struct {
	s *Store
}

// NewSparePartRepo construye el repositorio.
func NewSparePartRepo(s *Store) *SparePartRepo {
	return &SparePartRepo{s: s}
}

var _ repository.SparePartRepository = (*SparePartRepo)(nil)

// Create inserta un repuesto. ErrDuplicate si el código ya existe.
func (r *SparePartRepo) Create(_ context.Context, part *entity.SparePart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.parts {
		if p.BusinessID == part.BusinessID {
			return domain.Duplicate("repuesto", part.BusinessID)
		}
	}
	cp := *part
	r.s.parts[part.ID] = &cp
	r.s.partOrder = append(r.s.partOrder, part.ID)
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *SparePartRepo) GetByID(_ context.Context, id string) (*entity.SparePart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.parts[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// GetByBusinessID obtiene un repuesto por su código.
func (r *SparePartRepo) GetByBusinessID(_ context.Context, businessID string) (*entity.SparePart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.parts {
		if p.BusinessID == businessID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve los repuestos en orden de inserción.
func (r *SparePartRepo) List(_ context.Context) ([]*entity.SparePart, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.SparePart, 0, len(r.s.partOrder))
	for _, id := range r.s.partOrder {
		cp := *r.s.parts[id]
		out = append(out, &cp)
	}
	return out, nil
}

// Update reemplaza el repuesto. ErrDuplicate si el nuevo código pertenece a otro repuesto.
func (r *SparePartRepo) Update(_ context.Context, part *entity.SparePart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parts[part.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, p := range r.s.parts {
		if id != part.ID && p.BusinessID == part.BusinessID {
			return domain.Duplicate("repuesto", part.BusinessID)
		}
	}
	cp := *part
	r.s.parts[part.ID] = &cp
	return nil
}

// AdjustQuantity aplica el delta bajo el lock de escritura.
func (r *SparePartRepo) AdjustQuantity(_ context.Context, id string, delta int) (*entity.SparePart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.parts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	next := *p
	if err := inventory.Revalue(&next, delta); err != nil {
		return nil, err
	}
	r.s.parts[id] = &next
	cp := next
	return &cp, nil
}

// Delete elimina el repuesto sin tocar los movimientos que lo referencian.
func (r *SparePartRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.parts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.parts, id)
	r.s.partOrder = removeID(r.s.partOrder, id)
	return nil
}
