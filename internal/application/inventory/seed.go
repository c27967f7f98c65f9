package inventory

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/guard"
	"github.com/jhoicas/Almacen-api/internal/domain/store"
)

// SeedEmpty carga seed solo en las colecciones que están vacías; las que ya tienen datos no se tocan.
// Devuelve qué colecciones se sembraron. Todo el sembrado es una sola mutación.
// Se llama al arrancar, antes de aceptar tráfico.
// Artículos cuya categoría no existe y movimientos cuyo artículo no existe se omiten.
func (s *Service) SeedEmpty(ctx context.Context, seed *entity.Snapshot) (entity.Changeset, error) {
	if seed == nil {
		return entity.Changeset{}, nil
	}
	var changed entity.Changeset
	s.mu.RLock()
	changed.Users = len(s.store.Users()) == 0 && len(seed.Users) > 0
	changed.Categories = len(s.store.Categories()) == 0 && len(seed.Categories) > 0
	changed.Items = len(s.store.Items()) == 0 && len(seed.Items) > 0
	changed.Movements = s.store.MovementCount() == 0 && len(seed.Movements) > 0
	s.mu.RUnlock()

	if !changed.Any() {
		return changed, nil
	}
	err := s.mutate(ctx, "seed", changed, func(st *store.Store) error {
		if changed.Users {
			for _, u := range seed.Users {
				if err := st.InsertUser(u); err != nil {
					return err
				}
			}
		}
		if changed.Categories {
			for _, c := range seed.Categories {
				if err := st.InsertCategory(c); err != nil {
					return err
				}
			}
		}
		if changed.Items {
			for _, it := range seed.Items {
				if err := guard.ValidateItemCategory(st, it); err != nil {
					s.log.Warn().Str("item_id", it.ID).Str("category_id", it.CategoryID).Msg("semilla: artículo omitido, categoría inexistente")
					continue
				}
				if err := st.InsertItem(it); err != nil {
					return err
				}
			}
		}
		if changed.Movements {
			for _, m := range seed.Movements {
				if err := guard.ValidateMovementItem(st, m); err != nil {
					s.log.Warn().Str("movement_id", m.ID).Str("item_id", m.ItemID).Msg("semilla: movimiento omitido, artículo inexistente")
					continue
				}
				if err := st.AppendMovement(m); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return entity.Changeset{}, err
	}
	s.log.Info().
		Bool("users", changed.Users).
		Bool("categories", changed.Categories).
		Bool("items", changed.Items).
		Bool("movements", changed.Movements).
		Msg("datos iniciales cargados")
	return changed, nil
}
