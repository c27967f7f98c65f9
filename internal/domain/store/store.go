// Package store mantiene las cuatro colecciones del inventario en memoria.
// No aplica reglas entre entidades: eso es trabajo del guard.
package store

import (
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/pkg/textnorm"
)

// Store colecciones de usuarios, categorías, artículos y movimientos.
// No es seguro para uso concurrente; el servicio de inventario serializa el acceso.
type Store struct {
	users      *collection[entity.User]
	categories *collection[entity.Category]
	items      *collection[entity.Item]
	movements  *collection[entity.StockMovement]
}

// New crea un store vacío.
func New() *Store {
	return &Store{
		users:      newCollection(func(u entity.User) string { return u.ID }),
		categories: newCollection(func(c entity.Category) string { return c.ID }),
		items:      newCollection(func(it entity.Item) string { return it.ID }),
		movements:  newCollection(func(m entity.StockMovement) string { return m.ID }),
	}
}

// FromSnapshot construye un store con los datos cargados por la persistencia.
// Rechaza ids repetidos y usernames que colisionen.
func FromSnapshot(snap *entity.Snapshot) (*Store, error) {
	s := New()
	if snap == nil {
		return s, nil
	}
	for _, u := range snap.Users {
		if err := s.InsertUser(u); err != nil {
			return nil, err
		}
	}
	for _, c := range snap.Categories {
		if err := s.InsertCategory(c); err != nil {
			return nil, err
		}
	}
	for _, it := range snap.Items {
		if err := s.InsertItem(it); err != nil {
			return nil, err
		}
	}
	for _, m := range snap.Movements {
		if err := s.AppendMovement(m); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Snapshot devuelve una copia de las cuatro colecciones en orden de inserción.
func (s *Store) Snapshot() *entity.Snapshot {
	return &entity.Snapshot{
		Users:      s.users.list(),
		Categories: s.categories.list(),
		Items:      s.items.list(),
		Movements:  s.movements.list(),
	}
}

// --- usuarios ---

// InsertUser agrega un usuario. Username se compara sin distinguir mayúsculas.
func (s *Store) InsertUser(u entity.User) error {
	if _, ok := s.users.get(u.ID); ok {
		return domain.ErrDuplicateID
	}
	if s.usernameTaken(u.Username, "") {
		return domain.ErrDuplicateUsername
	}
	return s.users.insert(u)
}

// UpdateUser reemplaza el usuario con el mismo id.
func (s *Store) UpdateUser(u entity.User) error {
	if _, ok := s.users.get(u.ID); !ok {
		return domain.ErrNotFound
	}
	if s.usernameTaken(u.Username, u.ID) {
		return domain.ErrDuplicateUsername
	}
	return s.users.update(u)
}

// RemoveUser elimina el usuario sin comprobar referencias.
func (s *Store) RemoveUser(id string) error { return s.users.remove(id) }

// User busca un usuario por id.
func (s *Store) User(id string) (entity.User, bool) { return s.users.get(id) }

// Users lista los usuarios en orden de inserción.
func (s *Store) Users() []entity.User { return s.users.list() }

// UserByUsername busca un usuario por username sin distinguir mayúsculas.
func (s *Store) UserByUsername(username string) (entity.User, bool) {
	key := textnorm.FoldKey(username)
	for _, u := range s.users.rows {
		if textnorm.FoldKey(u.Username) == key {
			return u, true
		}
	}
	return entity.User{}, false
}

func (s *Store) usernameTaken(username, exceptID string) bool {
	u, ok := s.UserByUsername(username)
	return ok && u.ID != exceptID
}

// --- categorías ---

// InsertCategory agrega una categoría.
func (s *Store) InsertCategory(c entity.Category) error { return s.categories.insert(c) }

// UpdateCategory reemplaza la categoría con el mismo id.
func (s *Store) UpdateCategory(c entity.Category) error { return s.categories.update(c) }

// RemoveCategory elimina la categoría sin comprobar referencias.
func (s *Store) RemoveCategory(id string) error { return s.categories.remove(id) }

// Category busca una categoría por id.
func (s *Store) Category(id string) (entity.Category, bool) { return s.categories.get(id) }

// Categories lista las categorías en orden de inserción.
func (s *Store) Categories() []entity.Category { return s.categories.list() }

// --- artículos ---

// InsertItem agrega un artículo.
func (s *Store) InsertItem(it entity.Item) error { return s.items.insert(it) }

// UpdateItem reemplaza el artículo con el mismo id.
func (s *Store) UpdateItem(it entity.Item) error { return s.items.update(it) }

// RemoveItem elimina el artículo sin comprobar referencias.
func (s *Store) RemoveItem(id string) error { return s.items.remove(id) }

// Item busca un artículo por id.
func (s *Store) Item(id string) (entity.Item, bool) { return s.items.get(id) }

// Items lista los artículos en orden de inserción.
func (s *Store) Items() []entity.Item { return s.items.list() }

// --- movimientos (solo agregar) ---

// AppendMovement agrega un movimiento al final del libro.
func (s *Store) AppendMovement(m entity.StockMovement) error { return s.movements.insert(m) }

// Movement busca un movimiento por id.
func (s *Store) Movement(id string) (entity.StockMovement, bool) { return s.movements.get(id) }

// Movements lista el libro en orden de registro.
func (s *Store) Movements() []entity.StockMovement { return s.movements.list() }

// MovementCount cantidad de movimientos registrados.
func (s *Store) MovementCount() int { return s.movements.len() }
