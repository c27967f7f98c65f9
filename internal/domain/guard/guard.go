// Package guard valida la integridad referencial antes de cada escritura.
// Son funciones puras sobre el estado del store: no escriben ni registran nada.
package guard

import (
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// State vista de solo lectura que el guard necesita del store.
type State interface {
	Category(id string) (entity.Category, bool)
	Item(id string) (entity.Item, bool)
	Items() []entity.Item
	Movements() []entity.StockMovement
}

// CanDeleteCategory rechaza con ReferencedByItems (ids de los artículos) si algún artículo usa la categoría.
func CanDeleteCategory(s State, categoryID string) error {
	var refs []string
	for _, it := range s.Items() {
		if it.CategoryID == categoryID {
			refs = append(refs, it.ID)
		}
	}
	if len(refs) > 0 {
		return domain.New(domain.KindReferencedByItems, refs...)
	}
	return nil
}

// CanDeleteItem rechaza con ReferencedByMovements (ids de los movimientos) si el artículo tiene historial.
func CanDeleteItem(s State, itemID string) error {
	var refs []string
	for _, m := range s.Movements() {
		if m.ItemID == itemID {
			refs = append(refs, m.ID)
		}
	}
	if len(refs) > 0 {
		return domain.New(domain.KindReferencedByMovements, refs...)
	}
	return nil
}

// CanDeleteUser impide que el usuario autenticado se elimine a sí mismo.
func CanDeleteUser(userID, currentUserID string) error {
	if userID == currentUserID {
		return domain.ErrSelfDeletion
	}
	return nil
}

// ValidateItemCategory exige que la categoría del artículo exista.
func ValidateItemCategory(s State, item entity.Item) error {
	if _, ok := s.Category(item.CategoryID); !ok {
		return domain.ErrUnknownCategory
	}
	return nil
}

// ValidateMovementItem exige que el artículo del movimiento exista.
func ValidateMovementItem(s State, m entity.StockMovement) error {
	if _, ok := s.Item(m.ItemID); !ok {
		return domain.ErrUnknownItem
	}
	return nil
}
