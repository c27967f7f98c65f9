package ledger_test

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/ledger"
)

var (
	day1 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 = day1.AddDate(0, 0, 1)
	day3 = day1.AddDate(0, 0, 2)
)

func mv(id, item string, typ entity.MovementType, qty int64, date time.Time) entity.StockMovement {
	return entity.StockMovement{ID: id, ItemID: item, Type: typ, Quantity: qty, Date: date}
}

func ids(ms []entity.StockMovement) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func TestCurrentStock_EscenarioEntradaYSalida(t *testing.T) {
	movements := []entity.StockMovement{
		mv("m1", "pens", entity.MovementIn, 10, day1),
		mv("m2", "pens", entity.MovementOut, 3, day2),
	}
	assert.Equal(t, int64(7), ledger.CurrentStock("pens", movements))
	assert.Equal(t, int64(0), ledger.CurrentStock("paper", movements))
}

func TestCurrentStock_Conmutativo(t *testing.T) {
	movements := []entity.StockMovement{
		mv("m1", "pens", entity.MovementIn, 10, day1),
		mv("m2", "pens", entity.MovementOut, 3, day2),
		mv("m3", "paper", entity.MovementIn, 50, day1),
		mv("m4", "pens", entity.MovementIn, 4, day3),
		mv("m5", "paper", entity.MovementOut, 20, day3),
	}
	items := []entity.Item{{ID: "pens", Name: "Pens", CategoryID: "office"}, {ID: "paper", Name: "Paper", CategoryID: "office"}}
	cats := []entity.Category{{ID: "office", Name: "Office"}}

	wantPens := ledger.CurrentStock("pens", movements)
	wantInv := ledger.DeriveInventory(items, cats, movements)

	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]entity.StockMovement(nil), movements...)
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		assert.Equal(t, wantPens, ledger.CurrentStock("pens", shuffled))
		assert.Equal(t, wantInv, ledger.DeriveInventory(items, cats, shuffled))
	}
	assert.Equal(t, int64(11), wantPens)
}

func TestDeriveInventory(t *testing.T) {
	items := []entity.Item{
		{ID: "pens", Name: "Pens", CategoryID: "office"},
		{ID: "laptop", Name: "Laptop", CategoryID: "borrada"},
		{ID: "paper", Name: "Paper", CategoryID: "office"},
	}
	cats := []entity.Category{{ID: "office", Name: "Office"}}
	movements := []entity.StockMovement{
		mv("m1", "pens", entity.MovementIn, 10, day1),
		mv("m2", "laptop", entity.MovementIn, 2, day1),
		mv("m3", "fantasma", entity.MovementIn, 99, day1),
	}

	inv := ledger.DeriveInventory(items, cats, movements)
	require.Len(t, inv, 3)

	assert.Equal(t, "pens", inv[0].Item.ID)
	assert.Equal(t, int64(10), inv[0].Quantity)
	assert.Equal(t, "Office", inv[0].Category.Name)

	assert.Equal(t, entity.UnknownCategory(), inv[1].Category)
	assert.Equal(t, int64(2), inv[1].Quantity)

	// artículo sin movimientos aparece con cantidad 0
	assert.Equal(t, int64(0), inv[2].Quantity)

	assert.Equal(t, inv, ledger.DeriveInventory(items, cats, movements), "derivar dos veces da el mismo resultado")
	assert.Equal(t, int64(12), ledger.TotalQuantity(inv))
}

func TestRecentMovements_OrdenYEmpates(t *testing.T) {
	movements := []entity.StockMovement{
		mv("a", "pens", entity.MovementIn, 1, day1),
		mv("b", "pens", entity.MovementIn, 1, day2),
		mv("c", "pens", entity.MovementOut, 1, day3),
		mv("d", "pens", entity.MovementIn, 1, day2),
		mv("e", "pens", entity.MovementIn, 1, day3),
	}

	got := ledger.RecentMovements(movements, entity.MovementIn, 3)
	assert.Equal(t, []string{"e", "b", "d"}, ids(got))

	all := ledger.RecentMovements(movements, entity.MovementIn, 0)
	assert.Equal(t, []string{"e", "b", "d", "a"}, ids(all))

	out := ledger.RecentMovements(movements, entity.MovementOut, 5)
	assert.Equal(t, []string{"c"}, ids(out))

	assert.Equal(t, []string{"c", "e"}, ids(ledger.LatestMovements(movements, 2)))
	assert.Equal(t, "a", movements[0].ID, "no reordena la entrada")
}

func TestItemHistory_SaldoAcumulado(t *testing.T) {
	movements := []entity.StockMovement{
		mv("m2", "pens", entity.MovementOut, 3, day2),
		mv("m1", "pens", entity.MovementIn, 10, day1),
		mv("x", "paper", entity.MovementIn, 5, day1),
		mv("m3", "pens", entity.MovementIn, 5, day3),
	}

	h := ledger.ItemHistory("pens", movements)
	require.Len(t, h, 3)
	assert.Equal(t, "m1", h[0].Movement.ID)
	assert.Equal(t, int64(10), h[0].Balance)
	assert.Equal(t, int64(7), h[1].Balance)
	assert.Equal(t, int64(12), h[2].Balance)

	assert.Empty(t, ledger.ItemHistory("nada", movements))
}

func TestFitsInbound(t *testing.T) {
	movs := []entity.StockMovement{
		mv("m1", "pens", entity.MovementIn, 10, day1),
		mv("m2", "pens", entity.MovementOut, 3, day2),
		mv("m3", "clips", entity.MovementIn, 5, day2),
	}
	assert.Equal(t, int64(15), ledger.InboundTotal(movs))

	assert.True(t, ledger.FitsInbound(1, movs))
	assert.True(t, ledger.FitsInbound(math.MaxInt64-15, movs))
	assert.False(t, ledger.FitsInbound(math.MaxInt64-14, movs))
	assert.False(t, ledger.FitsInbound(math.MaxInt64, movs))
	assert.False(t, ledger.FitsInbound(0, movs))
	assert.True(t, ledger.FitsInbound(math.MaxInt64, nil))
}
