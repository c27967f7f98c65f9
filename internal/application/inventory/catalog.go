package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/guard"
	"github.com/jhoicas/Almacen-api/internal/domain/store"
)

// ItemInput datos editables de un artículo.
type ItemInput struct {
	Name        string
	CategoryID  string
	Description string
}

// CreateItem agrega un artículo a una categoría existente.
func (s *Service) CreateItem(ctx context.Context, in ItemInput) (entity.Item, error) {
	var out entity.Item
	err := s.mutate(ctx, "create_item", entity.Changeset{Items: true}, func(st *store.Store) error {
		it, err := s.insertItem(st, in, s.now())
		out = it
		return err
	})
	return out, err
}

// UpdateItem reemplaza nombre, categoría y descripción del artículo.
func (s *Service) UpdateItem(ctx context.Context, id string, in ItemInput) (entity.Item, error) {
	var out entity.Item
	err := s.mutate(ctx, "update_item", entity.Changeset{Items: true}, func(st *store.Store) error {
		prev, ok := st.Item(id)
		if !ok {
			return domain.ErrNotFound
		}
		it, err := entity.NewItem(id, in.Name, in.CategoryID, in.Description, s.now())
		if err != nil {
			return err
		}
		it.CreatedAt = prev.CreatedAt
		if err := guard.ValidateItemCategory(st, it); err != nil {
			return err
		}
		out = it
		return st.UpdateItem(it)
	})
	return out, err
}

// DeleteItem elimina un artículo sin movimientos.
func (s *Service) DeleteItem(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete_item", entity.Changeset{Items: true}, func(st *store.Store) error {
		if _, ok := st.Item(id); !ok {
			return domain.ErrNotFound
		}
		if err := guard.CanDeleteItem(st, id); err != nil {
			return err
		}
		return st.RemoveItem(id)
	})
}

func (s *Service) insertItem(st *store.Store, in ItemInput, now time.Time) (entity.Item, error) {
	it, err := entity.NewItem(s.newID(), in.Name, in.CategoryID, in.Description, now)
	if err != nil {
		return entity.Item{}, err
	}
	if err := guard.ValidateItemCategory(st, it); err != nil {
		return entity.Item{}, err
	}
	if err := st.InsertItem(it); err != nil {
		return entity.Item{}, err
	}
	return it, nil
}

// CreateCategory agrega una categoría; el nombre no puede quedar vacío.
func (s *Service) CreateCategory(ctx context.Context, name string) (entity.Category, error) {
	var out entity.Category
	err := s.mutate(ctx, "create_category", entity.Changeset{Categories: true}, func(st *store.Store) error {
		c, err := entity.NewCategory(s.newID(), name, s.now())
		if err != nil {
			return err
		}
		out = c
		return st.InsertCategory(c)
	})
	return out, err
}

// UpdateCategory renombra una categoría.
func (s *Service) UpdateCategory(ctx context.Context, id, name string) (entity.Category, error) {
	var out entity.Category
	err := s.mutate(ctx, "update_category", entity.Changeset{Categories: true}, func(st *store.Store) error {
		prev, ok := st.Category(id)
		if !ok {
			return domain.ErrNotFound
		}
		c, err := entity.NewCategory(id, name, s.now())
		if err != nil {
			return err
		}
		c.CreatedAt = prev.CreatedAt
		out = c
		return st.UpdateCategory(c)
	})
	return out, err
}

// DeleteCategory elimina una categoría que ningún artículo usa. Nunca borra en cascada.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	return s.mutate(ctx, "delete_category", entity.Changeset{Categories: true}, func(st *store.Store) error {
		if _, ok := st.Category(id); !ok {
			return domain.ErrNotFound
		}
		if err := guard.CanDeleteCategory(st, id); err != nil {
			return err
		}
		return st.RemoveCategory(id)
	})
}
