package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// Identificador y nombre de la categoría centinela que se muestra cuando un
// artículo apunta a una categoría inexistente.
const (
	UnknownCategoryID   = "unknown"
	UnknownCategoryName = "Unknown Category"
)

// Category agrupa artículos del catálogo.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory construye una categoría; el nombre no puede quedar vacío tras recortar espacios.
func NewCategory(id, name string, now time.Time) (Category, error) {
	c := Category{
		ID:        strings.TrimSpace(id),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return c, c.Validate()
}

// Validate verifica los campos obligatorios.
func (c Category) Validate() error {
	if c.ID == "" {
		return domain.ErrInvalidInput
	}
	if c.Name == "" {
		return domain.ErrEmptyName
	}
	return nil
}

// UnknownCategory devuelve la categoría centinela.
func UnknownCategory() Category {
	return Category{ID: UnknownCategoryID, Name: UnknownCategoryName}
}
