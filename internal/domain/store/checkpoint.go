package store

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// Checkpoint estado opaco del store antes de una mutación.
// Del libro de movimientos solo guarda su longitud: al ser de solo agregar,
// volver al checkpoint equivale a descartar lo agregado después.
type Checkpoint struct {
	users      []entity.User
	categories []entity.Category
	items      []entity.Item
	movements  int
}

// Checkpoint captura el estado actual.
func (s *Store) Checkpoint() Checkpoint {
	return Checkpoint{
		users:      s.users.list(),
		categories: s.categories.list(),
		items:      s.items.list(),
		movements:  s.movements.len(),
	}
}

// Rollback deshace todo lo ocurrido desde cp. Los movimientos anteriores a cp no se tocan.
func (s *Store) Rollback(cp Checkpoint) {
	s.users.reset(cp.users)
	s.categories.reset(cp.categories)
	s.items.reset(cp.items)
	s.movements.truncate(cp.movements)
}
