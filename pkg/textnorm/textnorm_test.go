package textnorm_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/pkg/textnorm"
)

func TestFoldKey(t *testing.T) {
	assert.Equal(t, textnorm.FoldKey("Admin"), textnorm.FoldKey("ADMIN"))
	assert.Equal(t, textnorm.FoldKey("  admin "), textnorm.FoldKey("Admin"))
	assert.Equal(t, textnorm.FoldKey("ÁRBOL"), textnorm.FoldKey("árbol"))
	assert.NotEqual(t, textnorm.FoldKey("admin"), textnorm.FoldKey("admin2"))
}

func TestEqualFold(t *testing.T) {
	assert.True(t, textnorm.EqualFold("Bodega", "bODEGA"))
	assert.False(t, textnorm.EqualFold("Bodega", "Bodegas"))
}

func TestCollator_OrdenAlfabetico(t *testing.T) {
	names := []string{"pens", "banana", "Árbol", "apple"}
	c := textnorm.NewCollator()
	sort.SliceStable(names, func(i, j int) bool { return c.Compare(names[i], names[j]) < 0 })

	assert.Equal(t, []string{"apple", "Árbol", "banana", "pens"}, names)
}
