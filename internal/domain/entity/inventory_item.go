package entity

// InventoryItem vista derivada: artículo, su categoría y el stock actual. Nunca se persiste.
type InventoryItem struct {
	Item     Item
	Category Category
	Quantity int64
}

// ItemWithStock artículo con su stock actual (listado de gestión de artículos).
type ItemWithStock struct {
	Item
	CurrentStock int64
}

// CategoryWithItemCount categoría con la cantidad de artículos que la usan.
type CategoryWithItemCount struct {
	Category
	ItemCount int
}

// BalanceEntry un movimiento con el saldo del artículo después de aplicarlo.
type BalanceEntry struct {
	Movement StockMovement
	Balance  int64
}
