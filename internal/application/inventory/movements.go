package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/guard"
	"github.com/jhoicas/Almacen-api/internal/domain/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/store"
)

// StockInInput entrada de mercadería. Date cero usa la fecha actual.
type StockInInput struct {
	ItemID    string
	Quantity  int64
	Date      time.Time
	Supplier  string
	Notes     string
	CreatedBy string
}

// StockOutInput salida de mercadería. Date cero usa la fecha actual.
type StockOutInput struct {
	ItemID    string
	Quantity  int64
	Date      time.Time
	Reason    string
	Notes     string
	CreatedBy string
}

// NewItemStockInInput alta de un artículo nuevo con su primera entrada.
// Si NewCategoryName no está vacío se crea esa categoría y Item.CategoryID se ignora.
type NewItemStockInInput struct {
	Item            ItemInput
	NewCategoryName string
	Quantity        int64
	Date            time.Time
	Supplier        string
	Notes           string
	CreatedBy       string
}

// ReceiveResult lo creado por ReceiveNewItem.
type ReceiveResult struct {
	Category *entity.Category // nil si se usó una categoría existente
	Item     entity.Item
	Movement entity.StockMovement
}

var movementsChanged = entity.Changeset{Movements: true}

// RecordStockIn agrega una entrada al libro.
func (s *Service) RecordStockIn(ctx context.Context, in StockInInput) (entity.StockMovement, error) {
	var out entity.StockMovement
	err := s.mutate(ctx, "stock_in", movementsChanged, func(st *store.Store) error {
		m, err := s.appendIn(st, in.ItemID, in.Quantity, in.Date, in.Supplier, in.Notes, in.CreatedBy)
		out = m
		return err
	})
	return out, err
}

// RecordStockOut agrega una salida. Falla con InsufficientStock si la cantidad supera el stock actual;
// nunca recorta la cantidad ni deja el saldo negativo.
func (s *Service) RecordStockOut(ctx context.Context, in StockOutInput) (entity.StockMovement, error) {
	var out entity.StockMovement
	err := s.mutate(ctx, "stock_out", movementsChanged, func(st *store.Store) error {
		m, err := entity.NewStockMovement(entity.StockMovement{
			ID:        s.newID(),
			ItemID:    in.ItemID,
			Type:      entity.MovementOut,
			Quantity:  in.Quantity,
			Date:      s.dateOrNow(in.Date),
			Reason:    in.Reason,
			Notes:     in.Notes,
			CreatedBy: in.CreatedBy,
			CreatedAt: s.now(),
		})
		if err != nil {
			return err
		}
		if err := guard.ValidateMovementItem(st, m); err != nil {
			return err
		}
		if m.Quantity > ledger.CurrentStock(m.ItemID, st.Movements()) {
			return domain.ErrInsufficientStock
		}
		if err := st.AppendMovement(m); err != nil {
			return err
		}
		out = m
		return nil
	})
	return out, err
}

// ReceiveNewItem crea (opcionalmente) la categoría, el artículo y su primera entrada en una sola mutación.
func (s *Service) ReceiveNewItem(ctx context.Context, in NewItemStockInInput) (ReceiveResult, error) {
	var res ReceiveResult
	changed := entity.Changeset{Items: true, Movements: true, Categories: in.NewCategoryName != ""}
	err := s.mutate(ctx, "receive_new_item", changed, func(st *store.Store) error {
		// validar la cantidad antes de crear nada
		if in.Quantity <= 0 {
			return domain.ErrInvalidQuantity
		}
		now := s.now()
		itemIn := in.Item
		if in.NewCategoryName != "" {
			c, err := entity.NewCategory(s.newID(), in.NewCategoryName, now)
			if err != nil {
				return err
			}
			if err := st.InsertCategory(c); err != nil {
				return err
			}
			res.Category = &c
			itemIn.CategoryID = c.ID
		}
		it, err := s.insertItem(st, itemIn, now)
		if err != nil {
			return err
		}
		res.Item = it
		m, err := s.appendIn(st, it.ID, in.Quantity, in.Date, in.Supplier, in.Notes, in.CreatedBy)
		res.Movement = m
		return err
	})
	if err != nil {
		return ReceiveResult{}, err
	}
	return res, nil
}

func (s *Service) appendIn(st *store.Store, itemID string, qty int64, date time.Time, supplier, notes, createdBy string) (entity.StockMovement, error) {
	m, err := entity.NewStockMovement(entity.StockMovement{
		ID:        s.newID(),
		ItemID:    itemID,
		Type:      entity.MovementIn,
		Quantity:  qty,
		Date:      s.dateOrNow(date),
		Supplier:  supplier,
		Notes:     notes,
		CreatedBy: createdBy,
		CreatedAt: s.now(),
	})
	if err != nil {
		return entity.StockMovement{}, err
	}
	if err := guard.ValidateMovementItem(st, m); err != nil {
		return entity.StockMovement{}, err
	}
	// el saldo se pliega en int64; una entrada que lo desborde dejaría el stock negativo
	if !ledger.FitsInbound(m.Quantity, st.Movements()) {
		return entity.StockMovement{}, domain.ErrInvalidQuantity
	}
	if err := st.AppendMovement(m); err != nil {
		return entity.StockMovement{}, err
	}
	return m, nil
}

func (s *Service) dateOrNow(d time.Time) time.Time {
	if d.IsZero() {
		return s.now()
	}
	return d
}
