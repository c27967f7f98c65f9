package repository

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// SnapshotRepository puerto de persistencia del inventario.
// Load entrega el estado inicial; Save recibe el estado completo tras cada mutación
// y changed indica qué colecciones cambiaron para que el adaptador escriba solo esas.
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, snap *entity.Snapshot, changed entity.Changeset) error
}
