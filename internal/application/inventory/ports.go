package inventory

import (
	"context"

	"github.com/jhoicas/Repuestos-api/internal/domain/repository"
)

// Repos repositorios de una misma unidad de trabajo.
type Repos struct {
	Parts repository.SparePartRepository
	Ins   repository.StockInRepository
	Outs  repository.StockOutRepository
}

// TxRunner ejecuta fn con repositorios atados a una transacción.
// Si fn devuelve error no se persiste nada de lo escrito dentro de fn.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}

// directRunner usa los repositorios sin transacción; cada escritura es independiente.
type directRunner struct {
	repos Repos
}

func (r directRunner) Run(_ context.Context, fn func(repos Repos) error) error {
	return fn(r.repos)
}
