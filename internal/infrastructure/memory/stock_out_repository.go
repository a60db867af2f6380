package memory

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// StockOutRepo implementación en memoria de repository.StockOutRepository.
type StockOutRepo struct {
	s *Store
}

// NewStockOutRepo construye el repositorio.
func NewStockOutRepo(s *Store) *StockOutRepo {
	return &StockOutRepo{s: s}
}

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

func (r *StockOutRepo) Create(_ context.Context, out *entity.StockOut) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.stockOuts {
		if m.BusinessID == out.BusinessID {
			return domain.Duplicate("salida", out.BusinessID)
		}
	}
	cp := *out
	r.s.stockOuts[out.ID] = &cp
	r.s.stockOutOrder = append(r.s.stockOutOrder, out.ID)
	return nil
}

func (r *StockOutRepo) GetByID(_ context.Context, id string) (*entity.StockOut, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.stockOuts[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *StockOutRepo) GetByBusinessID(_ context.Context, businessID string) (*entity.StockOut, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.stockOuts {
		if m.BusinessID == businessID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *StockOutRepo) List(_ context.Context) ([]*entity.StockOut, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.StockOut, 0, len(r.s.stockOutOrder))
	for _, id := range r.s.stockOutOrder {
		cp := *r.s.stockOuts[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *StockOutRepo) Update(_ context.Context, out *entity.StockOut) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stockOuts[out.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *out
	r.s.stockOuts[out.ID] = &cp
	return nil
}

func (r *StockOutRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stockOuts[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.stockOuts, id)
	r.s.stockOutOrder = removeID(r.s.stockOutOrder, id)
	return nil
}

func (r *StockOutRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.stockOuts)), nil
}
