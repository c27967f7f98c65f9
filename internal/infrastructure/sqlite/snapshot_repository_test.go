package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/sqlite"
)

var day1 = time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)

func sample() *entity.Snapshot {
	return &entity.Snapshot{
		Users: []entity.User{
			{ID: "admin001", Username: "admin", Role: entity.RoleAdmin, CredentialHash: "$2a$hash", CreatedAt: day1, UpdatedAt: day1},
		},
		Categories: []entity.Category{
			{ID: "cat002", Name: "Electrónica", CreatedAt: day1, UpdatedAt: day1},
			{ID: "cat001", Name: "Oficina", CreatedAt: day1, UpdatedAt: day1},
		},
		Items: []entity.Item{
			{ID: "item001", Name: "Papel A4", CategoryID: "cat001", CreatedAt: day1, UpdatedAt: day1},
		},
		Movements: []entity.StockMovement{
			{ID: "m1", ItemID: "item001", Type: entity.MovementIn, Quantity: 10, Date: day1, Supplier: "Acme", CreatedAt: day1},
			{ID: "m2", ItemID: "item001", Type: entity.MovementOut, Quantity: 3, Date: day1.Add(time.Hour), Reason: "consumo", CreatedBy: "admin001", CreatedAt: day1},
		},
	}
}

func openMemory(t *testing.T) *sqlite.SnapshotRepo {
	t.Helper()
	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlite.NewSnapshotRepository(db)
}

func TestLoad_BaseVacia(t *testing.T) {
	repo := openMemory(t)
	snap, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, snap.Empty())
}

func TestSaveLoad_ConservaOrdenYCampos(t *testing.T) {
	repo := openMemory(t)
	ctx := context.Background()
	want := sample()

	require.NoError(t, repo.Save(ctx, want, entity.AllCollections()))
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSave_SoloColeccionesMarcadas(t *testing.T) {
	repo := openMemory(t)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, sample(), entity.AllCollections()))

	next := sample()
	next.Categories = next.Categories[:1]
	next.Items[0].Name = "Papel carta"
	next.Movements = append(next.Movements, entity.StockMovement{
		ID: "m3", ItemID: "item001", Type: entity.MovementIn, Quantity: 5, Date: day1.Add(2 * time.Hour),
	})

	require.NoError(t, repo.Save(ctx, next, entity.Changeset{Items: true, Movements: true}))
	got, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Len(t, got.Categories, 2, "categorías no marcadas no se tocan")
	assert.Equal(t, "Papel carta", got.Items[0].Name)
	require.Len(t, got.Movements, 3)
	assert.Equal(t, "m3", got.Movements[2].ID)

	// guardar de nuevo el mismo libro no duplica
	require.NoError(t, repo.Save(ctx, next, entity.Changeset{Movements: true}))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Movements, 3)
}

func TestOpen_ArchivoPersiste(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "almacen.db")

	db, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewSnapshotRepository(db).Save(ctx, sample(), entity.AllCollections()))
	require.NoError(t, db.Close())

	db, err = sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()
	got, err := sqlite.NewSnapshotRepository(db).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}
