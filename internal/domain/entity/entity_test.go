package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

var day1 = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestNewUser(t *testing.T) {
	u, err := entity.NewUser(" admin001 ", "  admin ", entity.RoleAdmin, "$2a$hash", day1)
	require.NoError(t, err)
	assert.Equal(t, "admin001", u.ID)
	assert.Equal(t, "admin", u.Username)
	assert.True(t, u.IsAdmin())

	_, err = entity.NewUser("u1", "   ", entity.RoleUser, "h", day1)
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = entity.NewUser("u1", "bob", entity.Role("Root"), "h", day1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewUser("u1", "bob", entity.RoleUser, "", day1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseRole(t *testing.T) {
	r, err := entity.ParseRole("admin")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, r)

	r, err = entity.ParseRole(" USER ")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, r)

	_, err = entity.ParseRole("bodeguero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewCategory_NombreVacio(t *testing.T) {
	_, err := entity.NewCategory("cat001", " \t ", day1)
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	c, err := entity.NewCategory("cat001", " Office ", day1)
	require.NoError(t, err)
	assert.Equal(t, "Office", c.Name)
}

func TestNewItem(t *testing.T) {
	_, err := entity.NewItem("item001", "", "cat001", "", day1)
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = entity.NewItem("item001", "Pens", "", "", day1)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	it, err := entity.NewItem("item001", "Pens", "cat001", " blue ink ", day1)
	require.NoError(t, err)
	assert.Equal(t, "blue ink", it.Description)
}

func TestNewStockMovement(t *testing.T) {
	tests := []struct {
		name    string
		in      entity.StockMovement
		wantErr error
	}{
		{"cantidad cero", entity.StockMovement{ID: "m1", ItemID: "pens", Type: entity.MovementIn, Quantity: 0, Date: day1}, domain.ErrInvalidQuantity},
		{"cantidad negativa", entity.StockMovement{ID: "m1", ItemID: "pens", Type: entity.MovementOut, Quantity: -3, Date: day1}, domain.ErrInvalidQuantity},
		{"tipo inválido", entity.StockMovement{ID: "m1", ItemID: "pens", Type: "ADJUST", Quantity: 1, Date: day1}, domain.ErrInvalidInput},
		{"sin fecha", entity.StockMovement{ID: "m1", ItemID: "pens", Type: entity.MovementIn, Quantity: 1}, domain.ErrInvalidInput},
		{"sin artículo", entity.StockMovement{ID: "m1", Type: entity.MovementIn, Quantity: 1, Date: day1}, domain.ErrUnknownItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entity.NewStockMovement(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewStockMovement_CamposPorTipo(t *testing.T) {
	in, err := entity.NewStockMovement(entity.StockMovement{
		ID: "m1", ItemID: "pens", Type: entity.MovementIn, Quantity: 10, Date: day1,
		Supplier: " Acme ", Reason: "no aplica",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", in.Supplier)
	assert.Empty(t, in.Reason)
	assert.Equal(t, int64(10), in.Signed())

	out, err := entity.NewStockMovement(entity.StockMovement{
		ID: "m2", ItemID: "pens", Type: entity.MovementOut, Quantity: 3, Date: day1,
		Supplier: "no aplica", Reason: "consumo",
	})
	require.NoError(t, err)
	assert.Empty(t, out.Supplier)
	assert.Equal(t, "consumo", out.Reason)
	assert.Equal(t, int64(-3), out.Signed())
}

func TestParseMovementType(t *testing.T) {
	mt, err := entity.ParseMovementType("out")
	require.NoError(t, err)
	assert.Equal(t, entity.MovementOut, mt)

	_, err = entity.ParseMovementType("transfer")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSnapshotYChangeset(t *testing.T) {
	var nilSnap *entity.Snapshot
	assert.True(t, nilSnap.Empty())
	assert.True(t, (&entity.Snapshot{}).Empty())
	assert.False(t, (&entity.Snapshot{Categories: []entity.Category{{ID: "c"}}}).Empty())

	assert.False(t, entity.Changeset{}.Any())
	assert.True(t, entity.Changeset{Movements: true}.Any())
	assert.True(t, entity.AllCollections().Users)
}
