package inventory

import (
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/store"
)

// read ejecuta fn bajo el lock de lectura para que toda la derivación vea un mismo estado.
func read[T any](s *Service, fn func(st *store.Store) T) T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.store)
}

// Inventory stock actual de cada artículo, en orden de alta.
func (s *Service) Inventory() []entity.InventoryItem {
	return read(s, func(st *store.Store) []entity.InventoryItem {
		return ledger.DeriveInventory(st.Items(), st.Categories(), st.Movements())
	})
}

// CurrentStock stock actual de un artículo. NotFound si el artículo no existe.
func (s *Service) CurrentStock(itemID string) (int64, error) {
	type result struct {
		qty int64
		err error
	}
	r := read(s, func(st *store.Store) result {
		if _, ok := st.Item(itemID); !ok {
			return result{err: domain.ErrNotFound}
		}
		return result{qty: ledger.CurrentStock(itemID, st.Movements())}
	})
	return r.qty, r.err
}

// ItemHistory movimientos del artículo con el saldo acumulado.
func (s *Service) ItemHistory(itemID string) ([]entity.BalanceEntry, error) {
	type result struct {
		h   []entity.BalanceEntry
		err error
	}
	r := read(s, func(st *store.Store) result {
		if _, ok := st.Item(itemID); !ok {
			return result{err: domain.ErrNotFound}
		}
		return result{h: ledger.ItemHistory(itemID, st.Movements())}
	})
	return r.h, r.err
}

// RecentMovements los limit movimientos más recientes del tipo indicado. typ vacío no filtra.
func (s *Service) RecentMovements(typ entity.MovementType, limit int) []entity.StockMovement {
	return read(s, func(st *store.Store) []entity.StockMovement {
		if typ == "" {
			return ledger.LatestMovements(st.Movements(), limit)
		}
		return ledger.RecentMovements(st.Movements(), typ, limit)
	})
}

// Dashboard resumen del panel principal.
func (s *Service) Dashboard() ledger.Dashboard {
	return read(s, func(st *store.Store) ledger.Dashboard {
		return ledger.Summarize(st.Items(), st.Categories(), st.Movements())
	})
}

// ItemsWithStock artículos con su stock actual.
func (s *Service) ItemsWithStock() []entity.ItemWithStock {
	return read(s, func(st *store.Store) []entity.ItemWithStock {
		return ledger.ItemsWithStock(st.Items(), st.Movements())
	})
}

// AvailableForStockOut artículos con stock positivo.
func (s *Service) AvailableForStockOut() []entity.ItemWithStock {
	return read(s, func(st *store.Store) []entity.ItemWithStock {
		return ledger.AvailableForStockOut(st.Items(), st.Movements())
	})
}

// CategoriesWithItemCount categorías con la cantidad de artículos de cada una.
func (s *Service) CategoriesWithItemCount() []entity.CategoryWithItemCount {
	return read(s, func(st *store.Store) []entity.CategoryWithItemCount {
		return ledger.CategoriesWithItemCount(st.Categories(), st.Items())
	})
}

func (s *Service) ListUsers() []entity.User {
	return read(s, func(st *store.Store) []entity.User { return st.Users() })
}

func (s *Service) ListCategories() []entity.Category {
	return read(s, func(st *store.Store) []entity.Category { return st.Categories() })
}

func (s *Service) ListItems() []entity.Item {
	return read(s, func(st *store.Store) []entity.Item { return st.Items() })
}

func (s *Service) ListMovements() []entity.StockMovement {
	return read(s, func(st *store.Store) []entity.StockMovement { return st.Movements() })
}

// GetUser devuelve ErrNotFound si el id no existe. Lo mismo GetCategory y GetItem.
func (s *Service) GetUser(id string) (entity.User, error) {
	return lookup(s, func(st *store.Store) (entity.User, bool) { return st.User(id) })
}

func (s *Service) GetCategory(id string) (entity.Category, error) {
	return lookup(s, func(st *store.Store) (entity.Category, bool) { return st.Category(id) })
}

func (s *Service) GetItem(id string) (entity.Item, error) {
	return lookup(s, func(st *store.Store) (entity.Item, bool) { return st.Item(id) })
}

func lookup[T any](s *Service, fn func(st *store.Store) (T, bool)) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := fn(s.store)
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	return v, nil
}

// Snapshot copia consistente de las cuatro colecciones (reportes, CLI).
func (s *Service) Snapshot() *entity.Snapshot {
	return read(s, func(st *store.Store) *entity.Snapshot { return st.Snapshot() })
}
