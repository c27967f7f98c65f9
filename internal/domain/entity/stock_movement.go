package entity

import (
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// MovementType tipo de movimiento de stock.
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementIn  MovementType = "IN"  // entrada
	MovementOut MovementType = "OUT" // salida
)

// Valid indica si el tipo es IN u OUT.
func (t MovementType) Valid() bool {
	return t == MovementIn || t == MovementOut
}

// ParseMovementType acepta "in"/"out" sin distinguir mayúsculas.
func ParseMovementType(s string) (MovementType, error) {
	t := MovementType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", domain.ErrInvalidInput
	}
	return t, nil
}

// StockMovement es una entrada del libro de movimientos. Inmutable una vez creada.
// Supplier solo aplica a entradas (IN) y Reason solo a salidas (OUT).
type StockMovement struct {
	ID        string
	ItemID    string
	Type      MovementType
	Quantity  int64 // siempre > 0; el signo lo da Type
	Date      time.Time
	Notes     string
	Supplier  string
	Reason    string
	CreatedBy string // UserID, vacío si lo registró un proceso
	CreatedAt time.Time
}

// NewStockMovement construye y valida un movimiento. Descarta Supplier en salidas y Reason en entradas.
func NewStockMovement(m StockMovement) (StockMovement, error) {
	m.ID = strings.TrimSpace(m.ID)
	m.ItemID = strings.TrimSpace(m.ItemID)
	m.Notes = strings.TrimSpace(m.Notes)
	m.Supplier = strings.TrimSpace(m.Supplier)
	m.Reason = strings.TrimSpace(m.Reason)
	switch m.Type {
	case MovementIn:
		m.Reason = ""
	case MovementOut:
		m.Supplier = ""
	}
	return m, m.Validate()
}

// Validate verifica tipo, cantidad, fecha y referencias obligatorias.
func (m StockMovement) Validate() error {
	if m.ID == "" || !m.Type.Valid() || m.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	if m.ItemID == "" {
		return domain.ErrUnknownItem
	}
	if m.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// Signed devuelve la cantidad con signo: positiva para IN, negativa para OUT.
func (m StockMovement) Signed() int64 {
	if m.Type == MovementOut {
		return -m.Quantity
	}
	return m.Quantity
}
