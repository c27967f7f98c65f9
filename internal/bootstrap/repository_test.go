package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/bootstrap"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

func TestOpenRepository(t *testing.T) {
	ctx := context.Background()
	for _, cfg := range []config.DBConfig{
		{Driver: config.DriverMemory},
		{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
	} {
		t.Run(cfg.Driver, func(t *testing.T) {
			repo, closeRepo, err := bootstrap.OpenRepository(ctx, cfg)
			require.NoError(t, err)
			defer closeRepo()

			snap, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.True(t, snap.Empty())
			require.NoError(t, repo.Save(ctx, &entity.Snapshot{}, entity.AllCollections()))
		})
	}
}

func TestOpenRepository_DriverDesconocido(t *testing.T) {
	_, _, err := bootstrap.OpenRepository(context.Background(), config.DBConfig{Driver: "mongo"})
	assert.Error(t, err)
}
