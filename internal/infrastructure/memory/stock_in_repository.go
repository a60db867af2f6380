package memory

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain"
	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// StockInRepo implementación en memoria de repository.StockInRepository.
type StockInRepo struct {
	s *Store
}

// NewStockInRepo construye el repositorio.
func NewStockInRepo(s *Store) *StockInRepo {
	return &StockInRepo{s: s}
}

var _ repository.StockInRepository = (*StockInRepo)(nil)

func (r *StockInRepo) Create(_ context.Context, in *entity.StockIn) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.stockIns {
		if m.BusinessID == in.BusinessID {
			return domain.Duplicate("entrada", in.BusinessID)
		}
	}
	cp := *in
	r.s.stockIns[in.ID] = &cp
	r.s.stockInOrder = append(r.s.stockInOrder, in.ID)
	return nil
}

func (r *StockInRepo) GetByID(_ context.Context, id string) (*entity.StockIn, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.stockIns[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *StockInRepo) GetByBusinessID(_ context.Context, businessID string) (*entity.StockIn, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.stockIns {
		if m.BusinessID == businessID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *StockInRepo) List(_ context.Context) ([]*entity.StockIn, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.StockIn, 0, len(r.s.stockInOrder))
	for _, id := range r.s.stockInOrder {
		cp := *r.s.stockIns[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *StockInRepo) Update(_ context.Context, in *entity.StockIn) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stockIns[in.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *in
	r.s.stockIns[in.ID] = &cp
	return nil
}

func (r *StockInRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.stockIns[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.stockIns, id)
	r.s.stockInOrder = removeID(r.s.stockInOrder, id)
	return nil
}

func (r *StockInRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.stockIns)), nil
}
