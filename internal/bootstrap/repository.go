// Package bootstrap arma las dependencias compartidas por el servidor HTTP y la CLI.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/Almacen-api/pkg/config"
)

// OpenRepository abre la persistencia elegida por DB_DRIVER. El cierre devuelto libera la conexión.
func OpenRepository(ctx context.Context, cfg config.DBConfig) (repository.SnapshotRepository, func(), error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return postgres.NewSnapshotRepository(pool), pool.Close, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("abrir %s: %w", cfg.SQLitePath, err)
		}
		return sqlite.NewSnapshotRepository(db), func() { _ = db.Close() }, nil
	case config.DriverMemory:
		return memory.NewSnapshotRepository(nil), func() {}, nil
	}
	return nil, nil, fmt.Errorf("driver de persistencia desconocido %q", cfg.Driver)
}
