// Package ledger deriva el stock a partir del libro de movimientos.
// Todas las funciones son puras: el resultado depende solo de sus argumentos.
package ledger

import (
	"math"
	"sort"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// Balances recorre el libro una sola vez y devuelve el saldo por artículo.
func Balances(movements []entity.StockMovement) map[string]int64 {
	out := make(map[string]int64)
	for _, m := range movements {
		out[m.ItemID] += m.Signed()
	}
	return out
}

// CurrentStock suma entradas y resta salidas del artículo. El orden de movements no importa.
func CurrentStock(itemID string, movements []entity.StockMovement) int64 {
	var qty int64
	for _, m := range movements {
		if m.ItemID == itemID {
			qty += m.Signed()
		}
	}
	return qty
}

// DeriveInventory produce una entrada por artículo, tenga o no movimientos, en el orden de items.
// Un artículo con categoría inexistente se muestra con la categoría centinela.
func DeriveInventory(items []entity.Item, categories []entity.Category, movements []entity.StockMovement) []entity.InventoryItem {
	balances := Balances(movements)
	byID := make(map[string]entity.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		cat, ok := byID[it.CategoryID]
		if !ok {
			cat = entity.UnknownCategory()
		}
		out = append(out, entity.InventoryItem{Item: it, Category: cat, Quantity: balances[it.ID]})
	}
	return out
}

// RecentMovements filtra por tipo, ordena por fecha descendente y toma los primeros limit.
// A igual fecha se conserva el orden de registro. limit <= 0 devuelve todos.
func RecentMovements(movements []entity.StockMovement, typ entity.MovementType, limit int) []entity.StockMovement {
	out := make([]entity.StockMovement, 0)
	for _, m := range movements {
		if m.Type == typ {
			out = append(out, m)
		}
	}
	sortByDateDesc(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// LatestMovements igual que RecentMovements pero sin filtrar por tipo.
func LatestMovements(movements []entity.StockMovement, limit int) []entity.StockMovement {
	out := make([]entity.StockMovement, len(movements))
	copy(out, movements)
	sortByDateDesc(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func sortByDateDesc(ms []entity.StockMovement) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].Date.After(ms[j].Date)
	})
}

// ItemHistory devuelve los movimientos del artículo en orden cronológico con el saldo después de cada uno.
func ItemHistory(itemID string, movements []entity.StockMovement) []entity.BalanceEntry {
	own := make([]entity.StockMovement, 0)
	for _, m := range movements {
		if m.ItemID == itemID {
			own = append(own, m)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Date.Before(own[j].Date)
	})

	out := make([]entity.BalanceEntry, 0, len(own))
	var balance int64
	for _, m := range own {
		balance += m.Signed()
		out = append(out, entity.BalanceEntry{Movement: m, Balance: balance})
	}
	return out
}

// TotalQuantity suma las cantidades del inventario derivado.
func TotalQuantity(inventory []entity.InventoryItem) int64 {
	var total int64
	for _, ii := range inventory {
		total += ii.Quantity
	}
	return total
}

// InboundTotal suma todas las entradas del libro. Acota cualquier saldo y cualquier total derivado.
func InboundTotal(movements []entity.StockMovement) int64 {
	var total int64
	for _, m := range movements {
		if m.Type == entity.MovementIn {
			total += m.Quantity
		}
	}
	return total
}

// FitsInbound indica si una nueva entrada de qty puede sumarse al libro sin desbordar int64.
func FitsInbound(qty int64, movements []entity.StockMovement) bool {
	return qty > 0 && qty <= math.MaxInt64-InboundTotal(movements)
}
