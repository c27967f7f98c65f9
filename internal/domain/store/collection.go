package store

import (
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// collection guarda registros en orden de inserción con un índice por id.
// Los registros son valores: Get y List devuelven copias.
type collection[T any] struct {
	idOf  func(T) string
	rows  []T
	index map[string]int
}

func newCollection[T any](idOf func(T) string) *collection[T] {
	return &collection[T]{idOf: idOf, index: make(map[string]int)}
}

func (c *collection[T]) insert(v T) error {
	id := c.idOf(v)
	if _, ok := c.index[id]; ok {
		return domain.ErrDuplicateID
	}
	c.index[id] = len(c.rows)
	c.rows = append(c.rows, v)
	return nil
}

// update reemplaza el registro completo conservando su posición.
func (c *collection[T]) update(v T) error {
	i, ok := c.index[c.idOf(v)]
	if !ok {
		return domain.ErrNotFound
	}
	c.rows[i] = v
	return nil
}

func (c *collection[T]) remove(id string) error {
	i, ok := c.index[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.rows = append(c.rows[:i], c.rows[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.rows); j++ {
		c.index[c.idOf(c.rows[j])] = j
	}
	return nil
}

func (c *collection[T]) get(id string) (T, bool) {
	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.rows[i], true
}

func (c *collection[T]) list() []T {
	out := make([]T, len(c.rows))
	copy(out, c.rows)
	return out
}

func (c *collection[T]) len() int { return len(c.rows) }

// reset reemplaza el contenido por rows (copia) y reconstruye el índice.
func (c *collection[T]) reset(rows []T) {
	c.rows = make([]T, len(rows))
	copy(c.rows, rows)
	c.index = make(map[string]int, len(rows))
	for i, r := range c.rows {
		c.index[c.idOf(r)] = i
	}
}

// truncate descarta los registros a partir de n. Solo lo usa Rollback sobre el libro de movimientos.
func (c *collection[T]) truncate(n int) {
	if n >= len(c.rows) {
		return
	}
	for _, r := range c.rows[n:] {
		delete(c.index, c.idOf(r))
	}
	c.rows = c.rows[:n:n]
}
