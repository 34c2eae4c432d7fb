// Package memory implementa los repositorios en memoria. Sirve para desarrollo
// local (STORAGE=memory) y para los tests de casos de uso y handlers.
package memory

import (
	"sync"

	"github.com/jhoicas/Marketplace-api/internal/domain/entity"
)

// Store contiene todas las "tablas". Un único RWMutex protege todo el estado.
type Store struct {
	mu sync.RWMutex

	seq       map[string]int64
	users     map[int64]*entity.User
	products  map[int64]*entity.Product
	history   []*entity.UploadHistory
	orders    map[int64]*entity.Order
	inquiries map[int64]*entity.Inquiry
	otps      map[int64]*entity.OTPCode
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		seq:       make(map[string]int64),
		users:     make(map[int64]*entity.User),
		products:  make(map[int64]*entity.Product),
		orders:    make(map[int64]*entity.Order),
		inquiries: make(map[int64]*entity.Inquiry),
		otps:      make(map[int64]*entity.OTPCode),
	}
}

func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// guard decide si cada operación toma el lock o si ya lo tiene tomado una transacción.
type guard struct {
	s    *Store
	held bool
}

func noop() {}

func (g guard) read() func() {
	if g.held {
		return noop
	}
	g.s.mu.RLock()
	return g.s.mu.RUnlock
}

func (g guard) write() func() {
	if g.held {
		return noop
	}
	g.s.mu.Lock()
	return g.s.mu.Unlock
}
