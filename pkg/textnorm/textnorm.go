// Package textnorm normaliza texto de usuario: claves sin mayúsculas para
// comparar nombres de usuario y orden alfabético sensible al idioma para listados.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FoldKey devuelve la clave de comparación sin distinción de mayúsculas (Unicode case folding).
func FoldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// EqualFold compara dos textos con FoldKey.
func EqualFold(a, b string) bool {
	return FoldKey(a) == FoldKey(b)
}

// Collator ordena nombres para mostrar. No es seguro para uso concurrente:
// crear uno por operación de ordenamiento.
type Collator struct {
	c *collate.Collator
}

// NewCollator crea un collator neutro que ignora mayúsculas y acentos en el nivel primario.
func NewCollator() *Collator {
	return &Collator{c: collate.New(language.Und, collate.IgnoreCase)}
}

// Compare devuelve -1, 0 o 1 según el orden alfabético de a y b.
func (c *Collator) Compare(a, b string) int {
	return c.c.CompareString(a, b)
}
