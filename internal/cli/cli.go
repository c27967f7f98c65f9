// Package cli implementa los subcomandos de almacenctl sobre el mismo servicio que usa la API.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/subcommands"

	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/internal/bootstrap"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// Opener abre el servicio de inventario; el cierre libera la persistencia.
type Opener func(ctx context.Context) (*inventory.Service, func(), error)

// Env lo que comparten los subcomandos.
type Env struct {
	Open Opener
	Out  io.Writer
	Err  io.Writer
	Now  func() time.Time
}

// Register agrega los subcomandos al commander.
func Register(c *subcommands.Commander, env *Env) {
	if env.Now == nil {
		env.Now = time.Now
	}
	c.Register(&stockCmd{env: env}, "inventario")
	c.Register(&historyCmd{env: env}, "inventario")
	c.Register(&exportCmd{env: env}, "reportes")
	c.Register(&seedCmd{env: env}, "administración")
}

// OpenFromConfig abre el servicio con la configuración de entorno (DB_DRIVER, SQLITE_PATH, ...).
func OpenFromConfig(log *logger.Logger) Opener {
	return func(ctx context.Context) (*inventory.Service, func(), error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, err
		}
		repo, closeRepo, err := bootstrap.OpenRepository(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		svc, err := inventory.Open(ctx, repo, log)
		if err != nil {
			closeRepo()
			return nil, nil, err
		}
		return svc, closeRepo, nil
	}
}

// withService abre el servicio, ejecuta fn y traduce el error a código de salida.
func (e *Env) withService(ctx context.Context, fn func(svc *inventory.Service) error) subcommands.ExitStatus {
	svc, closeFn, err := e.Open(ctx)
	if err != nil {
		fmt.Fprintln(e.Err, err)
		return subcommands.ExitFailure
	}
	defer closeFn()
	if err := fn(svc); err != nil {
		fmt.Fprintln(e.Err, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
