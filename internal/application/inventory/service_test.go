package inventory_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

var (
	day1 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	day2 = day1.AddDate(0, 0, 1)
)

// failingRepo falla en Save cuando fail está activo.
type failingRepo struct {
	*memory.SnapshotRepo
	fail bool
}

func (r *failingRepo) Save(ctx context.Context, snap *entity.Snapshot, changed entity.Changeset) error {
	if r.fail {
		return errors.New("disco lleno")
	}
	return r.SnapshotRepo.Save(ctx, snap, changed)
}

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%03d", n)
	}
}

func newService(t *testing.T) (*inventory.Service, *failingRepo) {
	t.Helper()
	repo := &failingRepo{SnapshotRepo: memory.NewSnapshotRepository(nil)}
	svc, err := inventory.Open(context.Background(), repo, logger.Nop(),
		inventory.WithClock(func() time.Time { return day1 }),
		inventory.WithIDGenerator(seqIDs()),
		inventory.WithBcryptCost(bcrypt.MinCost),
	)
	require.NoError(t, err)
	return svc, repo
}

// withPens crea la categoría office y el artículo pens con stock 7 (entrada 10, salida 3).
func withPens(t *testing.T, svc *inventory.Service) (entity.Category, entity.Item) {
	t.Helper()
	ctx := context.Background()
	office, err := svc.CreateCategory(ctx, "office")
	require.NoError(t, err)
	pens, err := svc.CreateItem(ctx, inventory.ItemInput{Name: "pens", CategoryID: office.ID})
	require.NoError(t, err)
	_, err = svc.RecordStockIn(ctx, inventory.StockInInput{ItemID: pens.ID, Quantity: 10, Date: day1, Supplier: "Acme"})
	require.NoError(t, err)
	_, err = svc.RecordStockOut(ctx, inventory.StockOutInput{ItemID: pens.ID, Quantity: 3, Date: day2, Reason: "consumo"})
	require.NoError(t, err)
	return office, pens
}

func TestRecordStockOut_StockInsuficiente(t *testing.T) {
	svc, _ := newService(t)
	_, pens := withPens(t, svc)

	_, err := svc.RecordStockOut(context.Background(), inventory.StockOutInput{ItemID: pens.ID, Quantity: 10, Date: day2})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	qty, err := svc.CurrentStock(pens.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), qty)
	assert.Len(t, svc.ListMovements(), 2)
}

func TestRecordStockOut_ExactoDejaCero(t *testing.T) {
	svc, _ := newService(t)
	_, pens := withPens(t, svc)

	_, err := svc.RecordStockOut(context.Background(), inventory.StockOutInput{ItemID: pens.ID, Quantity: 7})
	require.NoError(t, err)
	qty, _ := svc.CurrentStock(pens.ID)
	assert.Equal(t, int64(0), qty)
	assert.Empty(t, svc.AvailableForStockOut())
}

func TestRecordStock_Validaciones(t *testing.T) {
	svc, _ := newService(t)
	_, pens := withPens(t, svc)
	ctx := context.Background()

	_, err := svc.RecordStockIn(ctx, inventory.StockInInput{ItemID: pens.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = svc.RecordStockIn(ctx, inventory.StockInInput{ItemID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnknownItem)
	_, err = svc.RecordStockOut(ctx, inventory.StockOutInput{ItemID: pens.ID, Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	_, err = svc.RecordStockOut(ctx, inventory.StockOutInput{ItemID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrUnknownItem)

	assert.Len(t, svc.ListMovements(), 2)
}

func TestRecordStockIn_FechaPorDefecto(t *testing.T) {
	svc, _ := newService(t)
	_, pens := withPens(t, svc)

	m, err := svc.RecordStockIn(context.Background(), inventory.StockInInput{ItemID: pens.ID, Quantity: 1, CreatedBy: "u1"})
	require.NoError(t, err)
	assert.Equal(t, day1, m.Date)
	assert.Equal(t, "u1", m.CreatedBy)
}

func TestNoNegativoBajoLaAPI(t *testing.T) {
	svc, _ := newService(t)
	_, pens := withPens(t, svc)
	ctx := context.Background()

	ops := []struct {
		in  bool
		qty int64
	}{{false, 5}, {false, 5}, {true, 2}, {false, 4}, {false, 1}, {true, 9}, {false, 10}, {false, 9}}
	for _, op := range ops {
		if op.in {
			_, _ = svc.RecordStockIn(ctx, inventory.StockInInput{ItemID: pens.ID, Quantity: op.qty})
		} else {
			_, _ = svc.RecordStockOut(ctx, inventory.StockOutInput{ItemID: pens.ID, Quantity: op.qty})
		}
		qty, err := svc.CurrentStock(pens.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, qty, int64(0))
	}
}

func TestRecordStockIn_RechazaDesbordeDeStock(t *testing.T) {
	svc, _ := newService(t)
	office, pens := withPens(t, svc)
	ctx := context.Background()
	before := svc.Snapshot()

	_, err := svc.RecordStockIn(ctx, inventory.StockInInput{ItemID: pens.ID, Quantity: math.MaxInt64})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, before, svc.Snapshot())

	qty, err := svc.CurrentStock(pens.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), qty)

	// el tope cuenta todas las entradas del libro, no solo las del artículo
	_, err = svc.ReceiveNewItem(ctx, inventory.NewItemStockInInput{
		Item:     inventory.ItemInput{Name: "clips", CategoryID: office.ID},
		Quantity: math.MaxInt64 - 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	assert.Equal(t, before, svc.Snapshot())

	// el stock sigue operable
	_, err = svc.RecordStockOut(ctx, inventory.StockOutInput{ItemID: pens.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = svc.RecordStockIn(ctx, inventory.StockInInput{ItemID: pens.ID, Quantity: math.MaxInt64 - 10})
	require.NoError(t, err)
	qty, err = svc.CurrentStock(pens.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64-4), qty)
}

func TestDeleteCategory_ReferenciadaPorArticulos(t *testing.T) {
	svc, _ := newService(t)
	office, pens := withPens(t, svc)
	before := svc.Snapshot()

	err := svc.DeleteCategory(context.Background(), office.ID)
	assert.ErrorIs(t, err, domain.ErrReferencedByItems)
	assert.Equal(t, []string{pens.ID}, domain.RefsOf(err))
	assert.Equal(t, before, svc.Snapshot())

	_, err = svc.GetCategory(office.ID)
	assert.NoError(t, err)
}

func TestDeleteItem_ReferenciadoPorMovimientos(t *testing.T) {
	svc, _ := newService(t)
	office, pens := withPens(t, svc)
	ctx := context.Background()
	before := svc.Snapshot()

	err := svc.DeleteItem(ctx, pens.ID)
	assert.ErrorIs(t, err, domain.ErrReferencedByMovements)
	assert.Len(t, domain.RefsOf(err), 2)
	assert.Equal(t, before, svc.Snapshot())

	paper, err := svc.CreateItem(ctx, inventory.ItemInput{Name: "paper", CategoryID: office.ID})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteItem(ctx, paper.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, paper.ID), domain.ErrNotFound)
}

func TestCreateItem_CategoriaInexistente(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateItem(context.Background(), inventory.ItemInput{Name: "pens", CategoryID: "nonexistent"})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Empty(t, svc.ListItems())
}

func TestUpdateItem(t *testing.T) {
	svc, _ := newService(t)
	office, pens := withPens(t, svc)
	ctx := context.Background()

	_, err := svc.UpdateItem(ctx, pens.ID, inventory.ItemInput{Name: "pens", CategoryID: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	_, err = svc.UpdateItem(ctx, pens.ID, inventory.ItemInput{Name: "  ", CategoryID: office.ID})
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	_, err = svc.UpdateItem(ctx, "nope", inventory.ItemInput{Name: "x", CategoryID: office.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	it, err := svc.UpdateItem(ctx, pens.ID, inventory.ItemInput{Name: "Bolígrafos", CategoryID: office.ID, Description: "azul"})
	require.NoError(t, err)
	assert.Equal(t, "Bolígrafos", it.Name)
	got, _ := svc.GetItem(pens.ID)
	assert.Equal(t, "azul", got.Description)
}

func TestCategorias_NombreVacio(t *testing.T) {
	svc, _ := newService(t)
	office, _ := withPens(t, svc)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyName)
	_, err = svc.UpdateCategory(ctx, office.ID, "")
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	c, err := svc.UpdateCategory(ctx, office.ID, " Oficina ")
	require.NoError(t, err)
	assert.Equal(t, "Oficina", c.Name)

	empty, err := svc.CreateCategory(ctx, "vacía")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCategory(ctx, empty.ID))
	assert.Len(t, svc.CategoriesWithItemCount(), 1)
}

func TestUsuarios(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	admin, err := svc.CreateUser(ctx, inventory.UserInput{Username: "admin", Role: entity.RoleAdmin, Password: "password123"})
	require.NoError(t, err)
	assert.NotEqual(t, "password123", admin.CredentialHash)

	_, err = svc.CreateUser(ctx, inventory.UserInput{Username: "ADMIN", Role: entity.RoleUser, Password: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	bob, err := svc.CreateUser(ctx, inventory.UserInput{Username: "bob", Role: entity.RoleUser, Password: "secreto"})
	require.NoError(t, err)

	// eliminar al usuario autenticado
	assert.ErrorIs(t, svc.DeleteUser(ctx, admin.ID, admin.ID), domain.ErrSelfDeletion)
	assert.Len(t, svc.ListUsers(), 2)

	// actualizar sin contraseña conserva la credencial
	_, err = svc.UpdateUser(ctx, bob.ID, inventory.UserInput{Username: "Roberto", Role: entity.RoleAdmin})
	require.NoError(t, err)
	u, err := svc.Authenticate("roberto", "secreto")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	_, err = svc.UpdateUser(ctx, bob.ID, inventory.UserInput{Username: "Admin", Role: entity.RoleUser})
	assert.ErrorIs(t, err, domain.ErrDuplicateUsername)

	require.NoError(t, svc.DeleteUser(ctx, bob.ID, admin.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, bob.ID, admin.ID), domain.ErrNotFound)
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.CreateUser(context.Background(), inventory.UserInput{Username: "Admin", Role: entity.RoleAdmin, Password: "password123"})
	require.NoError(t, err)

	u, err := svc.Authenticate(" admin ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Username)

	_, err = svc.Authenticate("admin", "otra")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = svc.Authenticate("nadie", "password123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMutacion_RevierteSiFallaLaPersistencia(t *testing.T) {
	svc, repo := newService(t)
	office, pens := withPens(t, svc)
	ctx := context.Background()
	before := svc.Snapshot()
	saves := repo.Saves()

	repo.fail = true
	_, err := svc.RecordStockIn(ctx, inventory.StockInInput{ItemID: pens.ID, Quantity: 5})
	assert.Error(t, err)
	_, err = svc.CreateCategory(ctx, "nueva")
	assert.Error(t, err)
	_, err = svc.ReceiveNewItem(ctx, inventory.NewItemStockInInput{
		Item: inventory.ItemInput{Name: "laptop"}, NewCategoryName: "tech", Quantity: 2,
	})
	assert.Error(t, err)
	assert.Error(t, svc.DeleteItem(ctx, "nope"))
	_, err = svc.UpdateCategory(ctx, office.ID, "Renombrada")
	assert.Error(t, err)

	assert.Equal(t, before, svc.Snapshot())
	assert.Equal(t, saves, repo.Saves())

	repo.fail = false
	_, err = svc.RecordStockIn(ctx, inventory.StockInInput{ItemID: pens.ID, Quantity: 5})
	require.NoError(t, err)
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, svc.ListMovements(), loaded.Movements)
	assert.Equal(t, svc.ListItems(), loaded.Items)
}

func TestLibroSoloCrece(t *testing.T) {
	svc, _ := newService(t)
	_, pens := withPens(t, svc)
	ctx := context.Background()
	first := svc.ListMovements()

	_, _ = svc.RecordStockOut(ctx, inventory.StockOutInput{ItemID: pens.ID, Quantity: 100})
	_ = svc.DeleteItem(ctx, pens.ID)
	_, _ = svc.RecordStockIn(ctx, inventory.StockInInput{ItemID: pens.ID, Quantity: 1})

	now := svc.ListMovements()
	require.Len(t, now, len(first)+1)
	assert.Equal(t, first, now[:len(first)])
}

func TestReceiveNewItem(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	res, err := svc.ReceiveNewItem(ctx, inventory.NewItemStockInInput{
		Item:            inventory.ItemInput{Name: "Dell XPS 15"},
		NewCategoryName: "Tecnología",
		Quantity:        3,
		Supplier:        "Dell",
	})
	require.NoError(t, err)
	require.NotNil(t, res.Category)
	assert.Equal(t, res.Category.ID, res.Item.CategoryID)
	assert.Equal(t, "Dell", res.Movement.Supplier)

	qty, err := svc.CurrentStock(res.Item.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), qty)

	// cantidad inválida: no se crea nada
	_, err = svc.ReceiveNewItem(ctx, inventory.NewItemStockInInput{
		Item: inventory.ItemInput{Name: "mouse"}, NewCategoryName: "Periféricos", Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	// categoría existente inexistente: tampoco
	_, err = svc.ReceiveNewItem(ctx, inventory.NewItemStockInInput{
		Item: inventory.ItemInput{Name: "mouse", CategoryID: "nope"}, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	assert.Len(t, svc.ListCategories(), 1)
	assert.Len(t, svc.ListItems(), 1)
	assert.Len(t, svc.ListMovements(), 1)
}

func TestLecturas(t *testing.T) {
	svc, _ := newService(t)
	_, pens := withPens(t, svc)

	inv := svc.Inventory()
	require.Len(t, inv, 1)
	assert.Equal(t, int64(7), inv[0].Quantity)
	assert.Equal(t, inv, svc.Inventory())

	h, err := svc.ItemHistory(pens.ID)
	require.NoError(t, err)
	require.Len(t, h, 2)
	assert.Equal(t, int64(7), h[1].Balance)

	_, err = svc.ItemHistory("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.CurrentStock("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Len(t, svc.RecentMovements(entity.MovementOut, 5), 1)
	assert.Len(t, svc.RecentMovements("", 0), 2)

	d := svc.Dashboard()
	assert.Equal(t, 1, d.TotalItems)
	assert.Equal(t, int64(7), d.TotalQuantity)

	iws := svc.ItemsWithStock()
	require.Len(t, iws, 1)
	assert.Equal(t, int64(7), iws[0].CurrentStock)

	_, err = svc.GetUser("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSeedEmpty_SoloColeccionesVacias(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	_, err := svc.CreateCategory(ctx, "propia")
	require.NoError(t, err)

	seed := &entity.Snapshot{
		Users:      []entity.User{{ID: "admin001", Username: "admin", Role: entity.RoleAdmin, CredentialHash: "h"}},
		Categories: []entity.Category{{ID: "cat001", Name: "Oficina"}},
		Items: []entity.Item{
			{ID: "item001", Name: "Papel A4", CategoryID: "cat001"},
		},
	}
	changed, err := svc.SeedEmpty(ctx, seed)
	require.NoError(t, err)
	assert.True(t, changed.Users)
	assert.False(t, changed.Categories)
	assert.True(t, changed.Items)

	assert.Len(t, svc.ListUsers(), 1)
	assert.Len(t, svc.ListCategories(), 1)
	assert.Empty(t, svc.ListItems(), "el artículo apunta a una categoría no sembrada")

	again, err := svc.SeedEmpty(ctx, seed)
	require.NoError(t, err)
	assert.False(t, again.Users)
}
