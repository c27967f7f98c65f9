package ledger

import (
	"sort"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/pkg/textnorm"
)

// DashboardRecentLimit movimientos recientes de cada tipo que muestra el panel.
const DashboardRecentLimit = 5

// Dashboard resumen del panel principal.
type Dashboard struct {
	TotalItems    int
	TotalQuantity int64
	RecentIn      []entity.StockMovement
	RecentOut     []entity.StockMovement
	Inventory     []entity.InventoryItem // ordenado por nombre de artículo
}

// Summarize arma el panel a partir de un mismo estado.
func Summarize(items []entity.Item, categories []entity.Category, movements []entity.StockMovement) Dashboard {
	inv := DeriveInventory(items, categories, movements)
	SortByItemName(inv)
	return Dashboard{
		TotalItems:    len(items),
		TotalQuantity: TotalQuantity(inv),
		RecentIn:      RecentMovements(movements, entity.MovementIn, DashboardRecentLimit),
		RecentOut:     RecentMovements(movements, entity.MovementOut, DashboardRecentLimit),
		Inventory:     inv,
	}
}

// SortByItemName ordena alfabéticamente por nombre del artículo (sin distinguir mayúsculas ni acentos).
func SortByItemName(inv []entity.InventoryItem) {
	col := textnorm.NewCollator()
	sort.SliceStable(inv, func(i, j int) bool {
		return col.Compare(inv[i].Item.Name, inv[j].Item.Name) < 0
	})
}

// ItemsWithStock acompaña cada artículo con su stock actual.
func ItemsWithStock(items []entity.Item, movements []entity.StockMovement) []entity.ItemWithStock {
	balances := Balances(movements)
	out := make([]entity.ItemWithStock, 0, len(items))
	for _, it := range items {
		out = append(out, entity.ItemWithStock{Item: it, CurrentStock: balances[it.ID]})
	}
	return out
}

// AvailableForStockOut artículos con stock positivo, los únicos que admiten una salida.
func AvailableForStockOut(items []entity.Item, movements []entity.StockMovement) []entity.ItemWithStock {
	out := make([]entity.ItemWithStock, 0)
	for _, iws := range ItemsWithStock(items, movements) {
		if iws.CurrentStock > 0 {
			out = append(out, iws)
		}
	}
	return out
}

// CategoriesWithItemCount cuenta los artículos de cada categoría.
func CategoriesWithItemCount(categories []entity.Category, items []entity.Item) []entity.CategoryWithItemCount {
	counts := make(map[string]int, len(categories))
	for _, it := range items {
		counts[it.CategoryID]++
	}
	out := make([]entity.CategoryWithItemCount, 0, len(categories))
	for _, c := range categories {
		out = append(out, entity.CategoryWithItemCount{Category: c, ItemCount: counts[c.ID]})
	}
	return out
}
