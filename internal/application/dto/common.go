package dto

import (
	"strings"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP. Refs lista los ids que bloquean la operación
// (p.ej. artículos de una categoría que se intenta borrar).
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Refs    []string `json:"refs,omitempty"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// Formatos aceptados para fechas de movimientos.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// ParseDate interpreta una fecha de movimiento. Vacío devuelve el instante cero
// (el servicio lo reemplaza por la hora actual).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, domain.ErrInvalidInput
}
