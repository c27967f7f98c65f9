package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// Item representa un artículo del catálogo. Su stock no se guarda: se deriva del libro de movimientos.
type Item struct {
	ID          string
	Name        string
	CategoryID  string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewItem construye un artículo. La existencia de la categoría la valida el guard.
func NewItem(id, name, categoryID, description string, now time.Time) (Item, error) {
	it := Item{
		ID:          strings.TrimSpace(id),
		Name:        strings.TrimSpace(name),
		CategoryID:  strings.TrimSpace(categoryID),
		Description: strings.TrimSpace(description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return it, it.Validate()
}

// Validate verifica los campos obligatorios.
func (it Item) Validate() error {
	if it.ID == "" {
		return domain.ErrInvalidInput
	}
	if it.Name == "" {
		return domain.ErrEmptyName
	}
	if it.CategoryID == "" {
		return domain.ErrUnknownCategory
	}
	return nil
}
