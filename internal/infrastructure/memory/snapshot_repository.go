// Package memory implementa la persistencia sin almacenamiento (DB_DRIVER=memory y tests).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo guarda la última copia recibida. Los datos se pierden al cerrar el proceso.
type SnapshotRepo struct {
	mu    sync.Mutex
	snap  entity.Snapshot
	saves int
}

// NewSnapshotRepository crea el repositorio, opcionalmente con datos iniciales.
func NewSnapshotRepository(initial *entity.Snapshot) *SnapshotRepo {
	r := &SnapshotRepo{}
	if initial != nil {
		r.snap = clone(*initial)
	}
	return r
}

// Load devuelve una copia del estado guardado.
func (r *SnapshotRepo) Load(ctx context.Context) (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := clone(r.snap)
	return &s, nil
}

// Save reemplaza las colecciones marcadas en changed.
func (r *SnapshotRepo) Save(ctx context.Context, snap *entity.Snapshot, changed entity.Changeset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c := clone(*snap)
	if changed.Users {
		r.snap.Users = c.Users
	}
	if changed.Categories {
		r.snap.Categories = c.Categories
	}
	if changed.Items {
		r.snap.Items = c.Items
	}
	if changed.Movements {
		r.snap.Movements = c.Movements
	}
	r.saves++
	return nil
}

// Saves cantidad de llamadas a Save aceptadas.
func (r *SnapshotRepo) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func clone(s entity.Snapshot) entity.Snapshot {
	return entity.Snapshot{
		Users:      append([]entity.User(nil), s.Users...),
		Categories: append([]entity.Category(nil), s.Categories...),
		Items:      append([]entity.Item(nil), s.Items...),
		Movements:  append([]entity.StockMovement(nil), s.Movements...),
	}
}
