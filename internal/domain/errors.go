package domain

import (
	"errors"
	"strings"
)

// Kind identifica la clase de error de dominio. El núcleo solo transporta la clase
// (y referencias), nunca mensajes para el usuario: la capa de presentación los traduce.
type Kind string

// Clases de error del núcleo de inventario.
const (
	KindNotFound              Kind = "NOT_FOUND"
	KindDuplicateID           Kind = "DUPLICATE_ID"
	KindDuplicateUsername     Kind = "DUPLICATE_USERNAME"
	KindUnknownCategory       Kind = "UNKNOWN_CATEGORY"
	KindUnknownItem           Kind = "UNKNOWN_ITEM"
	KindReferencedByItems     Kind = "REFERENCED_BY_ITEMS"
	KindReferencedByMovements Kind = "REFERENCED_BY_MOVEMENTS"
	KindSelfDeletion          Kind = "SELF_DELETION"
	KindInsufficientStock     Kind = "INSUFFICIENT_STOCK"
	KindInvalidQuantity       Kind = "INVALID_QUANTITY"
	KindEmptyName             Kind = "EMPTY_NAME"

	// Clases de las capas externas (entrada HTTP, sesión).
	KindInvalidInput Kind = "INVALID_INPUT"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
)

// Error es un error de dominio. Refs lista los ids involucrados
// (p.ej. los artículos que bloquean el borrado de una categoría).
type Error struct {
	Kind Kind
	Refs []string
}

func (e *Error) Error() string {
	if len(e.Refs) == 0 {
		return string(e.Kind)
	}
	return string(e.Kind) + ": " + strings.Join(e.Refs, ",")
}

// Is compara por clase, de modo que errors.Is(err, domain.ErrReferencedByItems)
// funciona aunque err traiga referencias.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// New construye un error de la clase indicada con sus referencias.
func New(kind Kind, refs ...string) *Error {
	return &Error{Kind: kind, Refs: refs}
}

// KindOf devuelve la clase de err o "" si no es un error de dominio.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// RefsOf devuelve las referencias de err si es un error de dominio.
func RefsOf(err error) []string {
	var e *Error
	if errors.As(err, &e) {
		return e.Refs
	}
	return nil
}

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound              = New(KindNotFound)
	ErrDuplicateID           = New(KindDuplicateID)
	ErrDuplicateUsername     = New(KindDuplicateUsername)
	ErrUnknownCategory       = New(KindUnknownCategory)
	ErrUnknownItem           = New(KindUnknownItem)
	ErrReferencedByItems     = New(KindReferencedByItems)
	ErrReferencedByMovements = New(KindReferencedByMovements)
	ErrSelfDeletion          = New(KindSelfDeletion)
	ErrInsufficientStock     = New(KindInsufficientStock)
	ErrInvalidQuantity       = New(KindInvalidQuantity)
	ErrEmptyName             = New(KindEmptyName)
	ErrInvalidInput          = New(KindInvalidInput)
	ErrUnauthorized          = New(KindUnauthorized)
	ErrForbidden             = New(KindForbidden)
)
