// Package memory implementa los repositorios sobre mapas en memoria.
// Se usa con DB_DRIVER=memory y como backend de las pruebas de casos de uso y handlers.
package memory

import (
	"sync"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
)

// Store agrupa las colecciones en memoria bajo un único mutex.
// Las listas conservan el orden de inserción.
type Store struct {
	mu sync.RWMutex

	parts     map[string]*entity.SparePart
	partOrder []string

	stockIns     map[string]*entity.StockIn
	stockInOrder []string

	stockOuts     map[string]*entity.StockOut
	stockOutOrder []string

	users map[string]*entity.User
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		parts:     make(map[string]*entity.SparePart),
		stockIns:  make(map[string]*entity.StockIn),
		stockOuts: make(map[string]*entity.StockOut),
		users:     make(map[string]*entity.User),
	}
}

func removeID(order []string, id string) []string {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
